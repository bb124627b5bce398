package model

import (
	"time"

	"github.com/secmon-lab/culler/pkg/domain/types"
)

// DeletionOutcome is the terminal result of one account's processing. It is
// created once per target and never mutated after the state machine reaches
// a terminal state.
type DeletionOutcome struct {
	AccountID  types.AccountID     `json:"account_id"`
	AccountURL string              `json:"account_url,omitempty"`
	Status     types.OutcomeStatus `json:"status"`
	Message    string              `json:"message"`
	Attempts   int                 `json:"attempts"`
}

// Failed reports whether the outcome is an error
func (o DeletionOutcome) Failed() bool {
	return o.Status == types.OutcomeError
}

// Report is the aggregate result of a whole run, handed to the report
// writer once all targets are processed.
type Report struct {
	RunID         string              `json:"run_id"`
	StartedAt     time.Time           `json:"started_at"`
	FinishedAt    time.Time           `json:"finished_at"`
	OverallStatus types.OverallStatus `json:"overall_status"`
	Outcomes      []DeletionOutcome   `json:"outcomes"`
	Failures      []DeletionOutcome   `json:"failures"`
}
