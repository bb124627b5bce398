package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/culler/pkg/cli/config"
	"github.com/secmon-lab/culler/pkg/usecase"
	"github.com/secmon-lab/culler/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

func cmdDeactivate() *cli.Command {
	var (
		scimCfg   config.SCIM
		reportCfg config.Report
		emailFile string
	)

	flags := joinFlags(
		scimCfg.Flags(),
		reportCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "email-file",
				Usage:       "File with one email address per line; matching accounts are deactivated",
				Category:    "Selection",
				Required:    true,
				Destination: &emailFile,
			},
		},
	)

	return &cli.Command{
		Name:  "deactivate",
		Usage: "Deactivate (rather than delete) accounts resolved from an email list",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("Starting deactivation run",
				"scim", scimCfg,
				"report", reportCfg,
				"emailFile", emailFile,
			)

			emails, err := readEmailFile(emailFile)
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}

			client, err := connect(ctx, &scimCfg)
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}

			run, err := usecase.New(client).DeactivateByEmails(ctx, emails)
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}

			return writeSummary(ctx, run, &reportCfg)
		},
	}
}
