package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/secmon-lab/culler/pkg/domain/model"
	"github.com/secmon-lab/culler/pkg/domain/types"
)

// ReportBuilder accumulates per-account outcomes in processing order and
// assembles the final report. It performs no I/O; writing the report is the
// caller's concern.
type ReportBuilder struct {
	runID     string
	startedAt time.Time
	outcomes  []model.DeletionOutcome
}

// NewReportBuilder creates a builder stamped with a fresh run ID
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{
		runID:     uuid.New().String(),
		startedAt: time.Now(),
	}
}

// Add records one finalized outcome
func (b *ReportBuilder) Add(outcome model.DeletionOutcome) {
	b.outcomes = append(b.outcomes, outcome)
}

// Build assembles the report. Overall status is success iff no outcome
// carries an error status.
func (b *ReportBuilder) Build() *model.Report {
	var failures []model.DeletionOutcome
	for _, o := range b.outcomes {
		if o.Failed() {
			failures = append(failures, o)
		}
	}

	overall := types.RunSuccess
	if len(failures) > 0 {
		overall = types.RunPartialFailure
	}

	return &model.Report{
		RunID:         b.runID,
		StartedAt:     b.startedAt,
		FinishedAt:    time.Now(),
		OverallStatus: overall,
		Outcomes:      b.outcomes,
		Failures:      failures,
	}
}
