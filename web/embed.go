// Package web holds the browser catalog assets, embedded into the binary so
// the serve command works from any directory. The generated manifest
// (projects.json) is deliberately not embedded; it is produced at runtime.
package web

import "embed"

//go:embed index.html app.js style.css placeholder.svg
var Assets embed.FS
