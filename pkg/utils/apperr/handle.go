package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle reports a run-aborting error through the context logger
func Handle(ctx context.Context, err error) {
	ctxlog.From(ctx).Error("run aborted", "error", err)
}
