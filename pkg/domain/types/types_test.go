package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/culler/pkg/domain/types"
)

func TestEmailMatches(t *testing.T) {
	gt.True(t, types.Email("User@Example.com").Matches("user@example.com"))
	gt.True(t, types.Email("user@example.com").Matches("USER@EXAMPLE.COM"))
	gt.False(t, types.Email("user@example.com").Matches("other@example.com"))
}

func TestRoleValid(t *testing.T) {
	gt.True(t, types.RoleRegistered.Valid())
	gt.True(t, types.RoleModerator.Valid())
	gt.True(t, types.RoleAdmin.Valid())
	gt.False(t, types.Role("SuperAdmin").Valid())
	gt.False(t, types.Role("").Valid())
}

func TestDeleteClassString(t *testing.T) {
	testCases := []struct {
		class    types.DeleteClass
		expected string
	}{
		{types.Deleted, "deleted"},
		{types.ProtectedAccount, "protected_account"},
		{types.NotFoundOrDisabled, "not_found_or_disabled"},
		{types.RoleConflict, "role_conflict"},
		{types.CommunityCreatorBlocked, "community_creator_blocked"},
		{types.UnclassifiedServerError, "unclassified_server_error"},
		{types.UnexpectedStatus, "unexpected_status"},
	}

	for _, tc := range testCases {
		gt.Equal(t, tc.class.String(), tc.expected)
	}
}
