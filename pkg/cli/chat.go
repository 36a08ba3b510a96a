package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/usecase/chat"
	"github.com/urfave/cli/v3"
)

func chatCommand() *cli.Command {
	var (
		cfg       config
		userID    string
		sessionID string
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
			Usage:       "Session ID to discuss",
			Required:    true,
			Destination: &sessionID,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:  "chat",
		Usage: "Discuss a stored session result interactively",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupLogger(ctx)

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			gemini, err := cfg.newGemini(ctx)
			if err != nil {
				return err
			}

			session, err := chat.New(ctx, chat.NewInput{
				Repo:      repo,
				Gemini:    gemini,
				UserID:    model.UserID(userID),
				SessionID: model.SessionID(sessionID),
			})
			if err != nil {
				return goerr.Wrap(err, "failed to create chat session")
			}

			rl, err := readline.New("> ")
			if err != nil {
				return goerr.Wrap(err, "failed to initialize readline")
			}
			defer rl.Close()

			fmt.Fprintln(c.Root().Writer, "Chat session started. Type 'exit' to quit.")

			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt || err == io.EOF {
					break
				}
				if err != nil {
					return goerr.Wrap(err, "failed to read input")
				}

				message := strings.TrimSpace(line)
				if message == "exit" {
					break
				}
				if message == "" {
					continue
				}

				answer, err := session.Send(ctx, message)
				if err != nil {
					return goerr.Wrap(err, "failed to send message")
				}

				fmt.Fprintf(c.Root().Writer, "%s\n", answer)
			}

			fmt.Fprintln(c.Root().Writer, "\nChat session completed")
			return nil
		},
	}
}
