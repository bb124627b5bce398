package scim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/culler/pkg/domain/interfaces"
	"github.com/secmon-lab/culler/pkg/domain/model"
	"github.com/secmon-lab/culler/pkg/domain/types"
)

const defaultPageSize = 100

// Client talks to the SCIM /Users resource family of one site. The token,
// TLS mode and proxy are fixed at construction and the client is safe for
// concurrent reads.
type Client struct {
	httpClient    *http.Client
	token         string
	usersEndpoint string
	tier          types.Tier
	pageSize      int
}

var _ interfaces.SCIMClient = &Client{}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The caller owns
// transport concerns such as TLS verification, proxy and timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithPageSize overrides the directory page size
func WithPageSize(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// New creates a Client for the given site. The SCIM endpoint is derived
// from the site URL by tier.
func New(siteURL, token string, opts ...Option) *Client {
	endpoint, tier := ResolveEndpoint(siteURL)
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		token:         token,
		usersEndpoint: endpoint,
		tier:          tier,
		pageSize:      defaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tier returns the tier resolved from the site URL
func (c *Client) Tier() types.Tier {
	return c.tier
}

// UsersEndpoint returns the resolved SCIM users endpoint
func (c *Client) UsersEndpoint() string {
	return c.usersEndpoint
}

// UserURL returns the SCIM resource URL for an account
func (c *Client) UserURL(id types.AccountID) string {
	return fmt.Sprintf("%s/%s", c.usersEndpoint, id)
}

func (c *Client) newRequest(ctx context.Context, method, rawURL string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("url", rawURL))
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "SCIM request failed",
			goerr.V("method", req.Method),
			goerr.V("url", req.URL.String()))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "failed to read SCIM response body")
	}
	return resp.StatusCode, body, nil
}

// errorBody is the error envelope the vendor returns on 400 and 500
type errorBody struct {
	ErrorMessage string `json:"ErrorMessage"`
}

func parseErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return eb.ErrorMessage
}

// CheckConnection verifies the endpoint and token with a single listing
// request before any run starts.
func (c *Client) CheckConnection(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, c.usersEndpoint, nil)
	if err != nil {
		return err
	}

	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return goerr.New("SCIM connection check failed; check your token and URL",
			goerr.V("status", status),
			goerr.V("body", string(body)))
	}
	return nil
}

// listResponse is one page of the SCIM users listing
type listResponse struct {
	TotalResults int                `json:"totalResults"`
	Resources    []model.UserRecord `json:"Resources"`
}

// FetchDirectory retrieves the full user directory. Pages of pageSize are
// requested from startIndex 1 until startIndex passes the totalResults
// reported by the page just received. A failed page fails the whole fetch:
// a partial directory is unsafe to drive deletion decisions from.
func (c *Client) FetchDirectory(ctx context.Context) (*model.DirectorySnapshot, error) {
	logger := ctxlog.From(ctx)

	var users []model.UserRecord
	totalResults := 0
	startIndex := 1
	for {
		logger.Debug("Fetching directory page",
			"startIndex", startIndex,
			"count", c.pageSize)

		pageURL := fmt.Sprintf("%s?count=%d&startIndex=%d", c.usersEndpoint, c.pageSize, startIndex)
		req, err := c.newRequest(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, err
		}

		status, body, err := c.do(req)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, goerr.New("directory page request failed",
				goerr.V("status", status),
				goerr.V("startIndex", startIndex),
				goerr.V("body", string(body)))
		}

		var page listResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, goerr.Wrap(err, "failed to decode directory page",
				goerr.V("startIndex", startIndex))
		}

		users = append(users, page.Resources...)
		totalResults = page.TotalResults

		// totalResults may drift between pages under concurrent external
		// modification; the loop trusts the value of the page just fetched
		// and does not reconcile.
		startIndex += c.pageSize
		if startIndex > totalResults {
			break
		}
	}

	logger.Info("Fetched user directory",
		"users", len(users),
		"totalResults", totalResults)

	return &model.DirectorySnapshot{
		Users:        users,
		TotalResults: totalResults,
	}, nil
}

// GetUser retrieves a single record by account ID
func (c *Client) GetUser(ctx context.Context, id types.AccountID) (*model.UserRecord, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.UserURL(id), nil)
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
		var user model.UserRecord
		if err := json.Unmarshal(body, &user); err != nil {
			return nil, goerr.Wrap(err, "failed to decode user record", goerr.V("accountID", id))
		}
		return &user, nil
	case http.StatusNotFound:
		return nil, goerr.Wrap(model.ErrUserNotFound, "get user", goerr.V("accountID", id))
	default:
		return nil, goerr.New("user fetch failed",
			goerr.V("accountID", id),
			goerr.V("status", status),
			goerr.V("body", string(body)))
	}
}

// UpdateUser issues a SCIM PUT for the account. The vendor silently ignores
// unknown userType values, so invalid roles are rejected here instead.
func (c *Client) UpdateUser(ctx context.Context, id types.AccountID, update model.UserUpdate) error {
	if update.UserType != "" && !update.UserType.Valid() {
		return goerr.Wrap(model.ErrInvalidRole, "update user",
			goerr.V("accountID", id),
			goerr.V("role", update.UserType))
	}

	req, err := c.newRequest(ctx, http.MethodPut, c.UserURL(id), update)
	if err != nil {
		return err
	}

	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	switch status {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return goerr.Wrap(model.ErrUserNotFound, "update user", goerr.V("accountID", id))
	default:
		return goerr.New("user update failed",
			goerr.V("accountID", id),
			goerr.V("status", status),
			goerr.V("body", string(body)))
	}
}

// DeleteUser issues a SCIM DELETE and returns the raw result for any HTTP
// response received. Interpreting the result is the classifier's job, not
// the transport's.
func (c *Client) DeleteUser(ctx context.Context, id types.AccountID) (*model.DeleteResult, error) {
	req, err := c.newRequest(ctx, http.MethodDelete, c.UserURL(id), nil)
	if err != nil {
		return nil, err
	}

	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	return &model.DeleteResult{
		StatusCode:   status,
		ErrorMessage: parseErrorMessage(body),
		Body:         string(body),
	}, nil
}
