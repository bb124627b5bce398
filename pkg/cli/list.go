package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/culler/pkg/cli/config"
	"github.com/secmon-lab/culler/pkg/usecase"
	"github.com/secmon-lab/culler/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

func cmdList() *cli.Command {
	var (
		scimCfg config.SCIM
		output  string
	)

	flags := joinFlags(
		scimCfg.Flags(),
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Write the directory snapshot to this file instead of stdout",
				Destination: &output,
			},
		},
	)

	return &cli.Command{
		Name:  "list",
		Usage: "Fetch the full user directory and write it as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			client, err := connect(ctx, &scimCfg)
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}

			snapshot, err := usecase.New(client).FetchDirectory(ctx)
			if err != nil {
				apperr.Handle(ctx, err)
				return err
			}

			encoded, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to encode directory snapshot")
			}

			if output == "" {
				if _, err := os.Stdout.Write(append(encoded, '\n')); err != nil {
					return goerr.Wrap(err, "failed to write snapshot")
				}
				return nil
			}

			if err := os.WriteFile(output, encoded, 0o644); err != nil {
				return goerr.Wrap(err, "failed to write snapshot", goerr.V("path", output))
			}
			logger.Info("Wrote directory snapshot",
				"path", output,
				"users", len(snapshot.Users))
			return nil
		},
	}
}
