package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	var (
		cfg       config
		userID    string
		sessionID string
		bucket    string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "user",
			Aliases:     []string{"u"},
			Usage:       "User ID",
			Required:    true,
			Sources:     cli.EnvVars("ORATOR_USER"),
			Destination: &userID,
		},
		&cli.StringFlag{
			Name:        "session",
			Aliases:     []string{"s"},
			Usage:       "Session ID",
			Required:    true,
			Destination: &sessionID,
		},
		&cli.StringFlag{
			Name:        "bucket",
			Usage:       "Read the result artifact from this Cloud Storage bucket instead of the session store",
			Sources:     cli.EnvVars("ORATOR_BUCKET"),
			Destination: &bucket,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "show",
		Usage: "Show a stored session result as JSON",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupLogger(ctx)

			if bucket != "" {
				return showArtifact(ctx, c, &cfg, bucket, userID, sessionID)
			}

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			record, err := repo.GetSession(ctx, model.UserID(userID), model.SessionID(sessionID))
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(record.Result, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to marshal session result")
			}

			fmt.Fprintln(c.Root().Writer, string(data))
			return nil
		},
	}
}

// showArtifact prints the result JSON saved by the run command's artifact
// writer, bypassing the session store.
func showArtifact(ctx context.Context, c *cli.Command, cfg *config, bucket, userID, sessionID string) error {
	storage, err := cfg.newStorage(ctx, bucket)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("sessions/%s/%s/result.json", userID, sessionID)
	r, err := storage.Get(ctx, key)
	if err != nil {
		return err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return goerr.Wrap(err, "failed to read result artifact", goerr.V("key", key))
	}

	fmt.Fprintln(c.Root().Writer, string(data))
	return nil
}
