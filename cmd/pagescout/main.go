// Package main provides the entry point for the pagescout CLI tool.
package main

import "github.com/pagescout/pagescout/cmd/pagescout/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
