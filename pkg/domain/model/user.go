package model

import "github.com/secmon-lab/culler/pkg/domain/types"

// UserEmail is one entry of a SCIM user's emails sequence
type UserEmail struct {
	Value   types.Email `json:"value"`
	Primary bool        `json:"primary,omitempty"`
}

// UserRecord is a single SCIM user as returned by the /Users endpoints.
// Records are immutable once fetched: the engine only ever mutates remote
// state, never its local copy of the directory.
type UserRecord struct {
	ID          types.AccountID `json:"id"`
	UserName    string          `json:"userName"`
	DisplayName string          `json:"displayName,omitempty"`
	Active      bool            `json:"active"`
	UserType    types.Role      `json:"userType,omitempty"`
	Emails      []UserEmail     `json:"emails,omitempty"`
}

// PrimaryEmail returns the first entry of the emails sequence. Lookup
// deliberately considers only the first entry, matching how the directory
// publishes the login address.
func (u *UserRecord) PrimaryEmail() (types.Email, bool) {
	if len(u.Emails) == 0 {
		return "", false
	}
	return u.Emails[0].Value, true
}

// UserUpdate is the body of a SCIM PUT. Nil fields are omitted so a role
// change does not accidentally flip the active flag and vice versa.
type UserUpdate struct {
	Active   *bool      `json:"active,omitempty"`
	UserType types.Role `json:"userType,omitempty"`
}

// DirectorySnapshot is the complete, point-in-time result of paginated user
// enumeration. TotalResults is the value reported by the final page; it may
// drift from len(Users) under concurrent external modification, which is a
// known caveat rather than an error.
type DirectorySnapshot struct {
	Users        []UserRecord `json:"users"`
	TotalResults int          `json:"totalResults"`
}

// Lookup resolves an email address to a directory record. Matching is
// case-insensitive against the first email entry only; records without any
// email are skipped, which is a non-match rather than a failure.
func (s *DirectorySnapshot) Lookup(email types.Email) (*UserRecord, bool) {
	for i := range s.Users {
		primary, ok := s.Users[i].PrimaryEmail()
		if !ok {
			continue
		}
		if primary.Matches(email) {
			return &s.Users[i], true
		}
	}
	return nil, false
}

// Deactivated returns the records with active == false, preserving
// directory order.
func (s *DirectorySnapshot) Deactivated() []UserRecord {
	var out []UserRecord
	for _, u := range s.Users {
		if !u.Active {
			out = append(out, u)
		}
	}
	return out
}
