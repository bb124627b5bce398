package interfaces

//go:generate moq -out mocks/scim_mock.go -pkg mocks . SCIMClient

import (
	"context"

	"github.com/secmon-lab/culler/pkg/domain/model"
	"github.com/secmon-lab/culler/pkg/domain/types"
)

// SCIMClient is the provisioning API surface the use cases depend on
type SCIMClient interface {
	// CheckConnection verifies the endpoint and token before a run starts
	CheckConnection(ctx context.Context) error

	// FetchDirectory retrieves the complete user directory via offset
	// pagination. Any failed page fails the whole fetch.
	FetchDirectory(ctx context.Context) (*model.DirectorySnapshot, error)

	// GetUser retrieves a single record, or model.ErrUserNotFound on 404
	GetUser(ctx context.Context, id types.AccountID) (*model.UserRecord, error)

	// UpdateUser issues a SCIM PUT for the account. A 404 is returned as
	// model.ErrUserNotFound; any other non-200 is an error as well.
	UpdateUser(ctx context.Context, id types.AccountID, update model.UserUpdate) error

	// DeleteUser issues a SCIM DELETE and returns the raw result for every
	// HTTP response received; an error means the request never completed.
	DeleteUser(ctx context.Context, id types.AccountID) (*model.DeleteResult, error)

	// UserURL returns the SCIM resource URL for an account
	UserURL(id types.AccountID) string
}
