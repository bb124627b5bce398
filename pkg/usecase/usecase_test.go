package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/culler/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/culler/pkg/domain/model"
	"github.com/secmon-lab/culler/pkg/domain/types"
	"github.com/secmon-lab/culler/pkg/usecase"
)

func directory() *model.DirectorySnapshot {
	return &model.DirectorySnapshot{
		Users: []model.UserRecord{
			{
				ID:       "acc-mod",
				UserName: "mallory",
				Active:   true,
				UserType: types.RoleModerator,
				Emails:   []model.UserEmail{{Value: "mallory@example.com", Primary: true}},
			},
			{
				ID:       "acc-reg",
				UserName: "rita",
				Active:   true,
				UserType: types.RoleRegistered,
				Emails:   []model.UserEmail{{Value: "rita@example.com", Primary: true}},
			},
			{
				ID:       "acc-off",
				UserName: "dormant",
				Active:   false,
				UserType: types.RoleRegistered,
				Emails:   []model.UserEmail{{Value: "dormant@example.com", Primary: true}},
			},
		},
		TotalResults: 3,
	}
}

func newUseCase(client *mocks.SCIMClientMock) *usecase.UseCase {
	return usecase.New(client, usecase.WithBackoff(0, 0))
}

func TestDeleteByEmails(t *testing.T) {
	ctx := context.Background()

	t.Run("Email run mixes successes, retry recovery and a lookup miss", func(t *testing.T) {
		client := newMock()
		client.FetchDirectoryFunc = func(ctx context.Context) (*model.DirectorySnapshot, error) {
			return directory(), nil
		}
		modDeletes := 0
		client.DeleteUserFunc = func(ctx context.Context, id types.AccountID) (*model.DeleteResult, error) {
			if id == "acc-mod" {
				modDeletes++
				if modDeletes <= 2 {
					return deleteResult(500, roleConflictMsg), nil
				}
			}
			return deleteResult(204, ""), nil
		}
		client.UpdateUserFunc = func(ctx context.Context, id types.AccountID, update model.UserUpdate) error {
			return nil
		}

		run, err := newUseCase(client).DeleteByEmails(ctx, []types.Email{
			"mallory@example.com",
			"ghost@example.com",
			"rita@example.com",
		})
		gt.NoError(t, err)

		gt.Equal(t, len(run.Outcomes), 3)

		// moderator recovered within the retry budget
		gt.Equal(t, run.Outcomes[0].AccountID, types.AccountID("acc-mod"))
		gt.Equal(t, run.Outcomes[0].Status, types.OutcomeSuccess)
		gt.Equal(t, run.Outcomes[0].Attempts, 3)

		// input email with no directory record is a data-quality failure
		gt.Equal(t, run.Outcomes[1].Status, types.OutcomeError)
		gt.S(t, run.Outcomes[1].Message).Contains("ghost@example.com")
		gt.S(t, run.Outcomes[1].Message).Contains("not found via directory lookup")

		// regular user deleted cleanly
		gt.Equal(t, run.Outcomes[2].AccountID, types.AccountID("acc-reg"))
		gt.Equal(t, run.Outcomes[2].Status, types.OutcomeSuccess)
		gt.Equal(t, run.Outcomes[2].Attempts, 1)

		gt.Equal(t, run.OverallStatus, types.RunPartialFailure)
		gt.Equal(t, len(run.Failures), 1)
		gt.Equal(t, len(client.UpdateUserCalls()), 2)
	})

	t.Run("Directory fetch failure aborts the run with no report", func(t *testing.T) {
		client := newMock()
		client.FetchDirectoryFunc = func(ctx context.Context) (*model.DirectorySnapshot, error) {
			return nil, goerr.New("directory page request failed")
		}

		_, err := newUseCase(client).DeleteByEmails(ctx, []types.Email{"rita@example.com"})
		gt.Error(t, err)
		gt.Equal(t, len(client.DeleteUserCalls()), 0)
	})

	t.Run("Lookup is case-insensitive against the stored address", func(t *testing.T) {
		client := newMock()
		client.FetchDirectoryFunc = func(ctx context.Context) (*model.DirectorySnapshot, error) {
			return directory(), nil
		}
		client.DeleteUserFunc = func(ctx context.Context, id types.AccountID) (*model.DeleteResult, error) {
			return deleteResult(204, ""), nil
		}

		run, err := newUseCase(client).DeleteByEmails(ctx, []types.Email{"RITA@EXAMPLE.COM"})
		gt.NoError(t, err)
		gt.Equal(t, run.OverallStatus, types.RunSuccess)
		gt.Equal(t, run.Outcomes[0].AccountID, types.AccountID("acc-reg"))
	})
}

func TestDeleteDeactivated(t *testing.T) {
	ctx := context.Background()

	client := newMock()
	client.FetchDirectoryFunc = func(ctx context.Context) (*model.DirectorySnapshot, error) {
		return directory(), nil
	}
	client.DeleteUserFunc = func(ctx context.Context, id types.AccountID) (*model.DeleteResult, error) {
		return deleteResult(204, ""), nil
	}

	run, err := newUseCase(client).DeleteDeactivated(ctx)
	gt.NoError(t, err)

	// only the inactive record is targeted
	deletes := client.DeleteUserCalls()
	gt.Equal(t, len(deletes), 1)
	gt.Equal(t, deletes[0].ID, types.AccountID("acc-off"))
	gt.Equal(t, run.OverallStatus, types.RunSuccess)
}

func TestDeactivateByEmails(t *testing.T) {
	ctx := context.Background()

	t.Run("Sets active=false on each resolved account", func(t *testing.T) {
		client := newMock()
		client.FetchDirectoryFunc = func(ctx context.Context) (*model.DirectorySnapshot, error) {
			return directory(), nil
		}
		client.UpdateUserFunc = func(ctx context.Context, id types.AccountID, update model.UserUpdate) error {
			return nil
		}

		run, err := newUseCase(client).DeactivateByEmails(ctx, []types.Email{"rita@example.com"})
		gt.NoError(t, err)
		gt.Equal(t, run.OverallStatus, types.RunSuccess)

		updates := client.UpdateUserCalls()
		gt.Equal(t, len(updates), 1)
		gt.Equal(t, updates[0].ID, types.AccountID("acc-reg"))
		gt.V(t, updates[0].Update.Active).NotNil()
		gt.False(t, *updates[0].Update.Active)
		gt.Equal(t, updates[0].Update.UserType, types.Role(""))
	})

	t.Run("Update failure becomes a per-account failure outcome", func(t *testing.T) {
		client := newMock()
		client.FetchDirectoryFunc = func(ctx context.Context) (*model.DirectorySnapshot, error) {
			return directory(), nil
		}
		client.UpdateUserFunc = func(ctx context.Context, id types.AccountID, update model.UserUpdate) error {
			return goerr.New("user update failed")
		}

		run, err := newUseCase(client).DeactivateByEmails(ctx, []types.Email{"rita@example.com"})
		gt.NoError(t, err)
		gt.Equal(t, run.OverallStatus, types.RunPartialFailure)
		gt.Equal(t, len(run.Failures), 1)
	})
}

func TestReportBuilder(t *testing.T) {
	t.Run("All successes report an overall success", func(t *testing.T) {
		b := usecase.NewReportBuilder()
		b.Add(model.DeletionOutcome{AccountID: "a", Status: types.OutcomeSuccess, Attempts: 1})
		b.Add(model.DeletionOutcome{AccountID: "b", Status: types.OutcomeSuccess, Attempts: 2})

		run := b.Build()
		gt.Equal(t, run.OverallStatus, types.RunSuccess)
		gt.Equal(t, len(run.Outcomes), 2)
		gt.Equal(t, len(run.Failures), 0)
		gt.True(t, run.RunID != "")
		gt.False(t, run.FinishedAt.Before(run.StartedAt))
	})

	t.Run("A single failure turns the run into a partial failure", func(t *testing.T) {
		b := usecase.NewReportBuilder()
		b.Add(model.DeletionOutcome{AccountID: "a", Status: types.OutcomeSuccess, Attempts: 1})
		b.Add(model.DeletionOutcome{AccountID: "b", Status: types.OutcomeError, Message: "max retries reached", Attempts: 4})

		run := b.Build()
		gt.Equal(t, run.OverallStatus, types.RunPartialFailure)
		gt.Equal(t, len(run.Failures), 1)
		gt.Equal(t, run.Failures[0].AccountID, types.AccountID("b"))
	})
}
