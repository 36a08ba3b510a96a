package adapter_test

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/orator-dev/orator/pkg/adapter"
)

func TestStorage(t *testing.T) {
	bucket := os.Getenv("TEST_GCS_BUCKET")
	if bucket == "" {
		t.Skip("TEST_GCS_BUCKET is not set")
	}

	ctx := context.Background()
	client, err := adapter.NewStorage(ctx, bucket)
	gt.NoError(t, err)

	key := "sessions/test_user/session_storage_test_" + time.Now().Format("20060102150405") + "/result.json"
	payload := []byte(`{"session_id":"session_storage_test"}`)

	w, err := client.Put(ctx, key)
	gt.NoError(t, err)
	_, err = w.Write(payload)
	gt.NoError(t, err)
	gt.NoError(t, w.Close())

	r, err := client.Get(ctx, key)
	gt.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	gt.NoError(t, err)
	gt.Equal(t, string(data), string(payload))
}
