package types

import "strings"

// AccountID is the SCIM-scoped account identifier. It is distinct from the
// site's internal user ID and is the only identifier the SCIM endpoints accept.
type AccountID string

// String returns the string representation
func (id AccountID) String() string {
	return string(id)
}

// Email represents a user email address
type Email string

// String returns the string representation
func (e Email) String() string {
	return string(e)
}

// Matches reports whether the two addresses are equal ignoring letter case
func (e Email) Matches(other Email) bool {
	return strings.EqualFold(string(e), string(other))
}

// Role is the SCIM userType value of an account
type Role string

const (
	RoleRegistered Role = "Registered"
	RoleModerator  Role = "Moderator"
	RoleAdmin      Role = "Admin"
)

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// Valid reports whether the role is one the SCIM API accepts
func (r Role) Valid() bool {
	switch r {
	case RoleRegistered, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// Tier is the commercial plan category of a site. It determines which SCIM
// path template applies.
type Tier string

const (
	TierBasicOrBusiness      Tier = "basic_or_business"
	TierEnterpriseSelfHosted Tier = "enterprise_self_hosted"
)

// String returns the string representation
func (t Tier) String() string {
	return string(t)
}

// OutcomeStatus is the terminal status of a single account's processing
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeError   OutcomeStatus = "error"
)

// String returns the string representation
func (s OutcomeStatus) String() string {
	return string(s)
}

// OverallStatus is the aggregate status of a whole run
type OverallStatus string

const (
	RunSuccess        OverallStatus = "success"
	RunPartialFailure OverallStatus = "partial_failure"
)

// String returns the string representation
func (s OverallStatus) String() string {
	return string(s)
}

// DeleteClass is the classification of a SCIM delete response. The raw
// status-code-and-body branching happens exactly once, in the classifier;
// everything downstream switches on this closed set.
type DeleteClass int

const (
	// Deleted means the delete succeeded (204)
	Deleted DeleteClass = iota
	// ProtectedAccount means the account is a system account and can never
	// be deleted (400 with the protection message)
	ProtectedAccount
	// NotFoundOrDisabled means the API returned 404, which is ambiguous:
	// either SCIM deletion is disabled for the site or the account does not
	// exist. The response does not allow telling the two apart.
	NotFoundOrDisabled
	// RoleConflict means the account holds the Moderator or Admin role and
	// must be downgraded to Registered before deletion can succeed
	RoleConflict
	// CommunityCreatorBlocked means the account created a community and the
	// deletion is blocked by a reference constraint a role change cannot fix
	CommunityCreatorBlocked
	// UnclassifiedServerError is a 500 whose message matches no known marker
	UnclassifiedServerError
	// UnexpectedStatus is any other non-204 response
	UnexpectedStatus
)

// String returns the string representation
func (c DeleteClass) String() string {
	switch c {
	case Deleted:
		return "deleted"
	case ProtectedAccount:
		return "protected_account"
	case NotFoundOrDisabled:
		return "not_found_or_disabled"
	case RoleConflict:
		return "role_conflict"
	case CommunityCreatorBlocked:
		return "community_creator_blocked"
	case UnclassifiedServerError:
		return "unclassified_server_error"
	case UnexpectedStatus:
		return "unexpected_status"
	}
	return "unknown"
}
