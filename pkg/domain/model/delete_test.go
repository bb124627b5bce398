package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/culler/pkg/domain/model"
	"github.com/secmon-lab/culler/pkg/domain/types"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		result   model.DeleteResult
		expected types.DeleteClass
	}{
		{
			name:     "204 is success",
			result:   model.DeleteResult{StatusCode: 204},
			expected: types.Deleted,
		},
		{
			name: "400 with protection message",
			result: model.DeleteResult{
				StatusCode:   400,
				ErrorMessage: "You cannot delete or destroy System Accounts.",
			},
			expected: types.ProtectedAccount,
		},
		{
			name: "400 without protection message",
			result: model.DeleteResult{
				StatusCode:   400,
				ErrorMessage: "Bad request",
			},
			expected: types.UnexpectedStatus,
		},
		{
			name:     "404 is ambiguous not-found-or-disabled",
			result:   model.DeleteResult{StatusCode: 404},
			expected: types.NotFoundOrDisabled,
		},
		{
			name: "500 with role conflict marker",
			result: model.DeleteResult{
				StatusCode:   500,
				ErrorMessage: "Moderators cannot be deleted - tried to delete jdoe. Adjust role to User.",
			},
			expected: types.RoleConflict,
		},
		{
			name: "500 with community creator constraint",
			result: model.DeleteResult{
				StatusCode:   500,
				ErrorMessage: `The DELETE statement conflicted with the REFERENCE constraint "FK_CommunityMemberships_CreationUser".`,
			},
			expected: types.CommunityCreatorBlocked,
		},
		{
			name: "500 with unknown message",
			result: model.DeleteResult{
				StatusCode:   500,
				ErrorMessage: "SCIM user modification failed - unknown user",
			},
			expected: types.UnclassifiedServerError,
		},
		{
			name:     "Any other status is unexpected",
			result:   model.DeleteResult{StatusCode: 403, Body: "Forbidden"},
			expected: types.UnexpectedStatus,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, model.Classify(&tc.result), tc.expected)
		})
	}
}

func TestReason(t *testing.T) {
	t.Run("Unclassified server error carries the raw message", func(t *testing.T) {
		r := &model.DeleteResult{StatusCode: 500, ErrorMessage: "something odd"}
		gt.Equal(t, r.Reason(types.UnclassifiedServerError), "something odd")
	})

	t.Run("Unexpected status without error envelope falls back to the body", func(t *testing.T) {
		r := &model.DeleteResult{StatusCode: 502, Body: "Bad Gateway"}
		gt.Equal(t, r.Reason(types.UnexpectedStatus), "Bad Gateway")
	})

	t.Run("Community creator message tells the user to contact support", func(t *testing.T) {
		r := &model.DeleteResult{StatusCode: 500}
		gt.S(t, r.Reason(types.CommunityCreatorBlocked)).Contains("contact support")
	})
}
