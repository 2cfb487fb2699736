package model

import "strings"

// Event is the part of the workflow event payload needed to find the pull request
type Event struct {
	Ref      string // Git ref, e.g. "refs/heads/feature-x"
	FullName string // Target repository, "owner/name"
}

// BranchName returns the last "/" separated segment of the ref.
// Branch names that contain "/" are truncated to their last segment.
func BranchName(ref string) string {
	if ref == "" {
		return ""
	}
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}

// BranchName returns the branch name derived from the event ref
func (e *Event) BranchName() string {
	return BranchName(e.Ref)
}

// Owner returns the owner part of the target repository
func (e *Event) Owner() string {
	owner, _, _ := strings.Cut(e.FullName, "/")
	return owner
}

// Repo returns the name part of the target repository
func (e *Event) Repo() string {
	_, repo, _ := strings.Cut(e.FullName, "/")
	return repo
}

// HeadLabel returns "owner:branch". The owner is always the target repository
// owner, so only branches pushed to the same repository (not forks) match.
func (e *Event) HeadLabel() string {
	return e.Owner() + ":" + e.BranchName()
}
