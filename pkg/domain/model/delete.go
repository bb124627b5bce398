package model

import (
	"strings"

	"github.com/secmon-lab/culler/pkg/domain/types"
)

// Markers the vendor embeds in SCIM error bodies. These are the only place
// the tool string-matches on vendor error text; keep them in sync with the
// classifier below.
const (
	markerSystemAccount    = "System Accounts"
	markerRoleConflict     = "Adjust role to User"
	markerCommunityCreator = "FK_CommunityMemberships_CreationUser"
)

// DeleteResult is the raw outcome of one SCIM DELETE round trip. The client
// returns it for every HTTP response it receives; only transport failures
// surface as errors.
type DeleteResult struct {
	StatusCode int
	// ErrorMessage is the parsed ErrorMessage field of the body, when the
	// body carried one
	ErrorMessage string
	// Body is the raw response body, kept for unclassifiable responses
	Body string
}

// Classify maps a delete response into its DeleteClass. This is the single
// point where status codes and body substrings are interpreted; the deletion
// engine consumes only the resulting class.
func Classify(r *DeleteResult) types.DeleteClass {
	switch r.StatusCode {
	case 204:
		return types.Deleted
	case 400:
		if strings.Contains(r.ErrorMessage, markerSystemAccount) {
			return types.ProtectedAccount
		}
		return types.UnexpectedStatus
	case 404:
		return types.NotFoundOrDisabled
	case 500:
		switch {
		case strings.Contains(r.ErrorMessage, markerRoleConflict):
			return types.RoleConflict
		case strings.Contains(r.ErrorMessage, markerCommunityCreator):
			return types.CommunityCreatorBlocked
		default:
			return types.UnclassifiedServerError
		}
	default:
		return types.UnexpectedStatus
	}
}

// Reason returns the human-readable failure message for a classified
// response. It is only meaningful for non-success classes.
func (r *DeleteResult) Reason(class types.DeleteClass) string {
	switch class {
	case types.ProtectedAccount:
		return "system account cannot be deleted"
	case types.NotFoundOrDisabled:
		return "user not found, or SCIM user deletion is not enabled for this site"
	case types.CommunityCreatorBlocked:
		return "user is the creator of a community and cannot be deleted; contact support"
	case types.UnclassifiedServerError:
		return r.ErrorMessage
	default:
		if r.ErrorMessage != "" {
			return r.ErrorMessage
		}
		return r.Body
	}
}
