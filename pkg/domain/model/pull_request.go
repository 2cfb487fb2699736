package model

// PullRequest is the pull request resolved from the event
type PullRequest struct {
	Owner      string // Target repository owner
	Repo       string // Target repository name
	Number     int    // Pull request number
	BranchName string // Branch name derived from the event ref
	HeadLabel  string // "owner:branch" label used for the lookup
}

// CommentResult describes what the reconciler did
type CommentResult struct {
	PullRequest *PullRequest
	Body        string // Rendered comment text
	Duplicated  bool   // An identical comment already existed
	DryRun      bool   // Creation was skipped because of dry-run
	CommentID   int64  // ID of the created comment, zero if none
	CommentURL  string // HTML URL of the created comment, empty if none
}

// Posted reports whether a new comment was created
func (r *CommentResult) Posted() bool {
	return r.CommentID != 0
}
