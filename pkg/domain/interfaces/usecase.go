package interfaces

import (
	"context"

	"github.com/m-mizutani/uatcomment/pkg/domain/model"
)

// CommentUseCase defines the pull request comment workflow
type CommentUseCase interface {
	// Post resolves the pull request for the event, renders the template and
	// creates the comment unless an identical one already exists
	Post(ctx context.Context, event *model.Event) (*model.CommentResult, error)
}

// OutputWriter publishes step outputs for later workflow steps
type OutputWriter interface {
	Write(values map[string]string) error
}
