package cli

import (
	"context"
	"fmt"

	"github.com/orator-dev/orator/pkg/model"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var (
		cfg    config
		userID string
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
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "list",
		Usage: "List a user's coaching sessions",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupLogger(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			records, err := repo.ListSessions(ctx, model.UserID(userID))
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Fprintf(c.Root().Writer, "No sessions for user %s\n", userID)
				return nil
			}

			for _, record := range records {
				line := fmt.Sprintf("%s  %s", record.CreatedAt.Format("2006-01-02 15:04"), record.SessionID)
				if record.Analysis != nil && record.Analysis.Voice != nil {
					line += fmt.Sprintf("  (%.0f WPM, %d fillers)",
						record.Analysis.Voice.WPM, record.Analysis.Voice.Fillers)
				}
				fmt.Fprintln(c.Root().Writer, line)
			}

			return nil
		},
	}
}
