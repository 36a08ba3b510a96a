package adapter

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
)

// BigQuery is an interface for the session metrics export sink
type BigQuery interface {
	// Insert streams rows into the given dataset table
	Insert(ctx context.Context, datasetID, tableID string, rows []bigquery.ValueSaver) error

	// Query executes a query and returns the rows as maps
	Query(ctx context.Context, query string, params ...bigquery.QueryParameter) ([]map[string]bigquery.Value, error)
}

type bigqueryClient struct {
	client *bigquery.Client
}

// NewBigQuery creates a new BigQuery client
func NewBigQuery(ctx context.Context, projectID string) (BigQuery, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create BigQuery client")
	}

	return &bigqueryClient{client: client}, nil
}

func (bq *bigqueryClient) Insert(ctx context.Context, datasetID, tableID string, rows []bigquery.ValueSaver) error {
	inserter := bq.client.Dataset(datasetID).Table(tableID).Inserter()
	if err := inserter.Put(ctx, rows); err != nil {
		return goerr.Wrap(err, "failed to insert rows",
			goerr.V("dataset", datasetID), goerr.V("table", tableID))
	}
	return nil
}

func (bq *bigqueryClient) Query(ctx context.Context, query string, params ...bigquery.QueryParameter) ([]map[string]bigquery.Value, error) {
	q := bq.client.Query(query)
	q.Parameters = params

	it, err := q.Read(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read query result")
	}

	var results []map[string]bigquery.Value
	for {
		var row map[string]bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate query result")
		}
		results = append(results, row)
	}

	return results, nil
}
