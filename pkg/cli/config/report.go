package config

import (
	"log/slog"

	"github.com/secmon-lab/culler/pkg/report"
	"github.com/urfave/cli/v3"
)

// Report holds report artifact configuration
type Report struct {
	Dir string
}

// Flags returns CLI flags for Report configuration
func (r *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "report-dir",
			Usage:       "Directory for run report artifacts",
			Category:    "Report",
			Value:       "reports",
			Sources:     cli.EnvVars("CULLER_REPORT_DIR"),
			Destination: &r.Dir,
		},
	}
}

// Configure creates the report writer
func (r *Report) Configure() *report.Writer {
	return report.NewWriter(r.Dir)
}

// LogValue returns structured log value
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dir", r.Dir),
	)
}
