package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/adapter"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/orator-dev/orator/pkg/usecase/coaching"
	"github.com/urfave/cli/v3"
)

func runCommand() *cli.Command {
	var (
		cfg       config
		videoPath string
		userID    string
		sessionID string
		bucket    string
		noEval    bool
		quiet     bool
		asJSON    bool
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "video",
			Aliases:     []string{"v"},
			Usage:       "Path to the interview video file",
			Required:    true,
			Destination: &videoPath,
		},
		&cli.StringFlag{
			Name:        "user",
			Aliases:     []string{"u"},
			Usage:       "User ID",
			Value:       "user1",
			Sources:     cli.EnvVars("ORATOR_USER"),
			Destination: &userID,
		},
		&cli.StringFlag{
			Name:        "session",
			Aliases:     []string{"s"},
			Usage:       "Session ID (auto-generated if not provided)",
			Destination: &sessionID,
		},
		&cli.StringFlag{
			Name:        "bucket",
			Usage:       "Cloud Storage bucket for transcript and result artifacts",
			Sources:     cli.EnvVars("ORATOR_BUCKET"),
			Destination: &bucket,
		},
		&cli.StringFlag{
			Name:        "thresholds",
			Usage:       "Path to YAML file overriding aggregator thresholds",
			Sources:     cli.EnvVars("ORATOR_THRESHOLDS"),
			Destination: &cfg.thresholdsPath,
		},
		&cli.BoolFlag{
			Name:        "no-eval",
			Usage:       "Skip feedback quality evaluation",
			Destination: &noEval,
		},
		&cli.BoolFlag{
			Name:        "quiet",
			Aliases:     []string{"q"},
			Usage:       "Suppress progress output",
			Destination: &quiet,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Print the full session result as JSON",
			Destination: &asJSON,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:  "run",
		Usage: "Analyze an interview video and produce coaching feedback",
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

			thresholds, err := cfg.newThresholds()
			if err != nil {
				return err
			}

			opts := []coaching.Option{
				coaching.WithThresholds(thresholds),
			}
			if noEval {
				opts = append(opts, coaching.WithoutEvaluation())
			}
			if bucket != "" {
				storage, err := cfg.newStorage(ctx, bucket)
				if err != nil {
					return err
				}
				opts = append(opts, coaching.WithStorage(storage))
			}

			uc := coaching.New(repo, gemini, adapter.NewSearch(gemini), opts...)

			var sp *spinner.Spinner
			if !quiet {
				sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				sp.Suffix = " analyzing interview..."
				sp.Start()
			}

			result, err := uc.Run(ctx, coaching.RunInput{
				VideoPath: videoPath,
				UserID:    model.UserID(userID),
				SessionID: model.SessionID(sessionID),
			})

			if sp != nil {
				sp.Stop()
			}
			if err != nil {
				return goerr.Wrap(err, "coaching session failed")
			}

			if asJSON {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return goerr.Wrap(err, "failed to marshal session result")
				}
				fmt.Fprintln(c.Root().Writer, string(data))
				return nil
			}

			printSummary(c, result)
			return nil
		},
	}
}

func printSummary(c *cli.Command, result *model.SessionResult) {
	w := c.Root().Writer

	fmt.Fprintf(w, "Session: %s\n\n", result.SessionID)

	fmt.Fprintln(w, "Key metrics:")
	if v := result.Voice; v != nil {
		fmt.Fprintf(w, "  - Speaking pace: %.0f WPM\n", v.WPM)
		fmt.Fprintf(w, "  - Filler words: %d\n", v.Fillers)
	}
	if v := result.Language; v != nil {
		fmt.Fprintf(w, "  - Confidence score: %.2f\n", v.Confidence)
	}
	if v := result.Vision; v != nil {
		fmt.Fprintf(w, "  - Eye contact: %.0f%%\n", v.EyeContact*100)
	}

	if len(result.Feedback) > 0 {
		fmt.Fprintln(w, "\nTop feedback:")
		for i, fb := range result.Feedback {
			if i >= 3 {
				break
			}
			fmt.Fprintf(w, "  %d. %s\n", i+1, fb)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommended exercises:")
		for i, rec := range result.Recommendations {
			if i >= 3 {
				break
			}
			fmt.Fprintf(w, "  %d. %s\n", i+1, rec)
		}
	}

	if result.Progress != nil {
		fmt.Fprintf(w, "\nProgress: %s\n", *result.Progress)
	} else {
		fmt.Fprintln(w, "\nProgress: first session - baseline established")
	}
}
