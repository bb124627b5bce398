package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/culler/pkg/domain/model"
	"github.com/secmon-lab/culler/pkg/domain/types"
)

func snapshot() *model.DirectorySnapshot {
	return &model.DirectorySnapshot{
		Users: []model.UserRecord{
			{
				ID:       "acc-1",
				UserName: "alice",
				Active:   true,
				UserType: types.RoleModerator,
				Emails: []model.UserEmail{
					{Value: "Alice@Example.com", Primary: true},
					{Value: "alice.alt@example.com"},
				},
			},
			{
				ID:       "acc-2",
				UserName: "service-bot",
				Active:   true,
				UserType: types.RoleRegistered,
				// no email entries at all
			},
			{
				ID:       "acc-3",
				UserName: "bob",
				Active:   false,
				UserType: types.RoleRegistered,
				Emails: []model.UserEmail{
					{Value: "bob@example.com", Primary: true},
				},
			},
		},
		TotalResults: 3,
	}
}

func TestLookup(t *testing.T) {
	t.Run("Matches ignoring letter case", func(t *testing.T) {
		record, ok := snapshot().Lookup("ALICE@example.COM")
		gt.True(t, ok)
		gt.Equal(t, record.ID, types.AccountID("acc-1"))
	})

	t.Run("Only the first email entry is considered", func(t *testing.T) {
		_, ok := snapshot().Lookup("alice.alt@example.com")
		gt.False(t, ok)
	})

	t.Run("Records without emails are skipped, not an error", func(t *testing.T) {
		record, ok := snapshot().Lookup("bob@example.com")
		gt.True(t, ok)
		gt.Equal(t, record.ID, types.AccountID("acc-3"))
	})

	t.Run("Miss returns not-found", func(t *testing.T) {
		_, ok := snapshot().Lookup("nobody@example.com")
		gt.False(t, ok)
	})
}

func TestDeactivated(t *testing.T) {
	targets := snapshot().Deactivated()
	gt.Equal(t, len(targets), 1)
	gt.Equal(t, targets[0].ID, types.AccountID("acc-3"))
}

func TestPrimaryEmail(t *testing.T) {
	t.Run("First entry wins", func(t *testing.T) {
		users := snapshot().Users
		email, ok := users[0].PrimaryEmail()
		gt.True(t, ok)
		gt.Equal(t, email, types.Email("Alice@Example.com"))
	})

	t.Run("No entries", func(t *testing.T) {
		users := snapshot().Users
		_, ok := users[1].PrimaryEmail()
		gt.False(t, ok)
	})
}
