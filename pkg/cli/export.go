package cli

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"github.com/orator-dev/orator/pkg/adapter"
	"github.com/orator-dev/orator/pkg/model"
	"github.com/urfave/cli/v3"
)

// metricsRow is one flattened metric of one session in long format.
type metricsRow struct {
	UserID    model.UserID
	SessionID model.SessionID
	Metric    string
	Value     float64
	CreatedAt string
}

// Save implements bigquery.ValueSaver. The insert ID makes re-exports idempotent.
func (r *metricsRow) Save() (map[string]bigquery.Value, string, error) {
	return map[string]bigquery.Value{
		"user_id":    string(r.UserID),
		"session_id": string(r.SessionID),
		"metric":     r.Metric,
		"value":      r.Value,
		"created_at": r.CreatedAt,
	}, fmt.Sprintf("%s/%s/%s", r.UserID, r.SessionID, r.Metric), nil
}

func exportCommand() *cli.Command {
	var (
		cfg     config
		userID  string
		dataset string
		table   string
		verify  bool
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
			Name:        "dataset",
			Usage:       "BigQuery dataset ID",
			Required:    true,
			Sources:     cli.EnvVars("ORATOR_BQ_DATASET"),
			Destination: &dataset,
		},
		&cli.StringFlag{
			Name:        "table",
			Usage:       "BigQuery table ID",
			Value:       "session_metrics",
			Sources:     cli.EnvVars("ORATOR_BQ_TABLE"),
			Destination: &table,
		},
		&cli.BoolFlag{
			Name:        "verify",
			Usage:       "Query the stored row count for the user after the export",
			Destination: &verify,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)

	return &cli.Command{
		Name:  "export",
		Usage: "Export a user's session metrics to BigQuery",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx = cfg.setupLogger(ctx)

			if cfg.project == "" {
				return goerr.Wrap(model.ErrConfig, "project is required for export")
			}

			repo, err := cfg.newRepository(ctx)
			if err != nil {
				return err
			}

			bq, err := adapter.NewBigQuery(ctx, cfg.project)
			if err != nil {
				return err
			}

			records, err := repo.ListSessions(ctx, model.UserID(userID))
			if err != nil {
				return err
			}

			var rows []bigquery.ValueSaver
			for _, record := range records {
				if record.Analysis == nil {
					continue
				}
				for metric, value := range record.Analysis.Flatten() {
					rows = append(rows, &metricsRow{
						UserID:    record.UserID,
						SessionID: record.SessionID,
						Metric:    metric,
						Value:     value,
						CreatedAt: record.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
					})
				}
			}

			if len(rows) == 0 {
				fmt.Fprintf(c.Root().Writer, "No metrics to export for user %s\n", userID)
				return nil
			}

			if err := bq.Insert(ctx, dataset, table, rows); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Exported %d metric rows from %d sessions\n", len(rows), len(records))

			if verify {
				count, err := storedRowCount(ctx, bq, cfg.project, dataset, table, userID)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.Root().Writer, "Stored rows for user %s: %d\n", userID, count)
			}

			return nil
		},
	}
}

// storedRowCount counts the exported rows for one user. Streaming inserts may
// lag behind, so the count can trail the export briefly.
func storedRowCount(ctx context.Context, bq adapter.BigQuery, project, dataset, table, userID string) (int64, error) {
	query := fmt.Sprintf(
		"SELECT COUNT(*) AS row_count FROM `%s.%s.%s` WHERE user_id = @user_id",
		project, dataset, table)

	results, err := bq.Query(ctx, query, bigquery.QueryParameter{Name: "user_id", Value: userID})
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, goerr.Wrap(model.ErrStore, "row count query returned no rows")
	}

	count, ok := results[0]["row_count"].(int64)
	if !ok {
		return 0, goerr.Wrap(model.ErrStore, "row count query returned an unexpected type")
	}

	return count, nil
}
