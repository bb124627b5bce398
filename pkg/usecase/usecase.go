package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/culler/pkg/domain/interfaces"
	"github.com/secmon-lab/culler/pkg/domain/model"
	"github.com/secmon-lab/culler/pkg/domain/types"
)

// UseCase orchestrates runs over the SCIM directory: fetch, select targets,
// drive the deletion engine per account, and aggregate a report.
type UseCase struct {
	client interfaces.SCIMClient
	engine *DeletionEngine
}

// New creates a new UseCase
func New(client interfaces.SCIMClient, opts ...EngineOption) *UseCase {
	return &UseCase{
		client: client,
		engine: NewDeletionEngine(client, opts...),
	}
}

// DeleteDeactivated deletes every directory record with active == false
func (u *UseCase) DeleteDeactivated(ctx context.Context) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	snapshot, err := u.client.FetchDirectory(ctx)
	if err != nil {
		return nil, err
	}

	targets := snapshot.Deactivated()
	logger.Info("Selected deactivated users for deletion",
		"targets", len(targets),
		"directorySize", len(snapshot.Users))

	builder := NewReportBuilder()
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "run cancelled")
		}
		builder.Add(u.engine.Delete(ctx, target.ID))
	}
	return builder.Build(), nil
}

// DeleteByEmails resolves each email against the directory and deletes the
// matching accounts. An email with no match becomes a data-quality failure
// outcome, not an error: the run continues.
func (u *UseCase) DeleteByEmails(ctx context.Context, emails []types.Email) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	snapshot, err := u.client.FetchDirectory(ctx)
	if err != nil {
		return nil, err
	}

	builder := NewReportBuilder()
	for _, email := range emails {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "run cancelled")
		}

		record, ok := snapshot.Lookup(email)
		if !ok {
			logger.Warn("No directory record for email",
				"email", email)
			builder.Add(lookupMissOutcome(email))
			continue
		}

		logger.Info("Deleting user",
			"accountID", record.ID,
			"email", email)
		builder.Add(u.engine.Delete(ctx, record.ID))
	}
	return builder.Build(), nil
}

// DeactivateByEmails sets active=false on each resolved account instead of
// deleting it. It shares the resolution and reporting path of deletion.
func (u *UseCase) DeactivateByEmails(ctx context.Context, emails []types.Email) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	snapshot, err := u.client.FetchDirectory(ctx)
	if err != nil {
		return nil, err
	}

	inactive := false
	builder := NewReportBuilder()
	for _, email := range emails {
		if err := ctx.Err(); err != nil {
			return nil, goerr.Wrap(err, "run cancelled")
		}

		record, ok := snapshot.Lookup(email)
		if !ok {
			logger.Warn("No directory record for email",
				"email", email)
			builder.Add(lookupMissOutcome(email))
			continue
		}

		outcome := model.DeletionOutcome{
			AccountID:  record.ID,
			AccountURL: u.client.UserURL(record.ID),
			Status:     types.OutcomeSuccess,
			Message:    "deactivated",
			Attempts:   1,
		}
		if err := u.client.UpdateUser(ctx, record.ID, model.UserUpdate{Active: &inactive}); err != nil {
			outcome.Status = types.OutcomeError
			if errors.Is(err, model.ErrUserNotFound) {
				outcome.Message = "user not found"
			} else {
				outcome.Message = err.Error()
			}
			logger.Warn("Deactivation failed",
				"accountID", record.ID,
				"error", err)
		} else {
			logger.Info("Deactivated user",
				"accountID", record.ID,
				"email", email)
		}
		builder.Add(outcome)
	}
	return builder.Build(), nil
}

// FetchDirectory exposes the directory snapshot for the list command
func (u *UseCase) FetchDirectory(ctx context.Context) (*model.DirectorySnapshot, error) {
	return u.client.FetchDirectory(ctx)
}

func lookupMissOutcome(email types.Email) model.DeletionOutcome {
	return model.DeletionOutcome{
		Status:  types.OutcomeError,
		Message: fmt.Sprintf("%s: not found via directory lookup", email),
	}
}
