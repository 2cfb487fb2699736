package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidEvent is returned when the event payload lacks required fields
	ErrInvalidEvent = goerr.New("invalid event payload")

	// ErrPullRequestNotFound is returned when no open pull request matches the head label
	ErrPullRequestNotFound = goerr.New("no open pull request for head label")

	// ErrInvalidTemplate is returned for malformed templates and unknown placeholders
	ErrInvalidTemplate = goerr.New("invalid comment template")
)
