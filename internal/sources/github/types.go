package github

import "time"

// repositoryResponse is a single entry from the list-repositories endpoint.
// Only the fields the scanner consumes are decoded.
type repositoryResponse struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	Fork        bool      `json:"fork"`
	Archived    bool      `json:"archived"`
	PushedAt    time.Time `json:"pushed_at"`
}

// pagesResponse is the hosted-page configuration for a repository.
type pagesResponse struct {
	URL     string `json:"url"`
	Status  string `json:"status"`
	HTMLURL string `json:"html_url"`
}

// topicsResponse is the topic list for a repository.
type topicsResponse struct {
	Names []string `json:"names"`
}
