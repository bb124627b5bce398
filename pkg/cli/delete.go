package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/culler/pkg/cli/config"
	"github.com/secmon-lab/culler/pkg/domain/model"
	"github.com/secmon-lab/culler/pkg/usecase"
	"github.com/secmon-lab/culler/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

func cmdDelete() *cli.Command {
	var (
		scimCfg     config.SCIM
		reportCfg   config.Report
		deactivated bool
		emailFile   string
	)

	flags := joinFlags(
		scimCfg.Flags(),
		reportCfg.Flags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "deactivated",
				Usage:       "Delete every deactivated user",
				Category:    "Selection",
				Destination: &deactivated,
			},
			&cli.StringFlag{
				Name:        "email-file",
				Usage:       "File with one email address per line; matching accounts are deleted",
				Category:    "Selection",
				Destination: &emailFile,
			},
		},
	)

	return &cli.Command{
		Name:  "delete",
		Usage: "Delete user accounts selected by deactivation status or email list",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if deactivated == (emailFile != "") {
				return goerr.New("exactly one of --deactivated or --email-file is required")
			}

			logger.Info("Starting deletion run",
				"scim", scimCfg,
				"report", reportCfg,
				"deactivated", deactivated,
				"emailFile", emailFile,
			)

			client, err := connect(ctx, &scimCfg)
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}

			uc := usecase.New(client)

			var run *model.Report
			if deactivated {
				run, err = uc.DeleteDeactivated(ctx)
			} else {
				emails, readErr := readEmailFile(emailFile)
				if readErr != nil {
					apperr.Handle(ctx, readErr)
					return readErr
				}
				run, err = uc.DeleteByEmails(ctx, emails)
			}
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}

			return writeSummary(ctx, run, &reportCfg)
		},
	}
}

// writeSummary persists the report artifact and logs the run summary
func writeSummary(ctx context.Context, run *model.Report, reportCfg *config.Report) error {
	logger := ctxlog.From(ctx)

	path, err := reportCfg.Configure().Write(run)
	if err != nil {
		apperr.Handle(ctx, err)
		return err
	}

	for _, f := range run.Failures {
		logger.Warn("Account failed",
			"accountID", f.AccountID,
			"accountURL", f.AccountURL,
			"message", f.Message,
			"attempts", f.Attempts)
	}

	logger.Info("Run complete",
		"runID", run.RunID,
		"overallStatus", run.OverallStatus.String(),
		"processed", len(run.Outcomes),
		"failures", len(run.Failures),
		"report", path)
	return nil
}
