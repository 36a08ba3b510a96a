package coaching_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/orator-dev/orator/pkg/usecase/coaching"
)

func TestDefaultThresholds(t *testing.T) {
	th := coaching.DefaultThresholds()

	gt.V(t, th.MinEyeContact).Equal(0.5)
	gt.V(t, th.MaxFillers).Equal(10)
	gt.V(t, th.MinWPM).Equal(120.0)
	gt.V(t, th.MaxWPM).Equal(160.0)
	gt.V(t, th.MinEnergy).Equal(0.04)
	gt.V(t, th.MinGrammar).Equal(0.7)
	gt.V(t, th.MinConfidence).Equal(0.6)
	gt.V(t, th.MinSmileRatio).Equal(0.2)
}

func TestLoadThresholds(t *testing.T) {
	t.Run("file values override defaults, rest stay", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "thresholds.yml")
		gt.NoError(t, os.WriteFile(path, []byte("min_wpm: 110\nmax_fillers: 5\n"), 0600))

		th, err := coaching.LoadThresholds(path)
		gt.NoError(t, err)

		gt.V(t, th.MinWPM).Equal(110.0)
		gt.V(t, th.MaxFillers).Equal(5)
		gt.V(t, th.MaxWPM).Equal(160.0)
		gt.V(t, th.MinEyeContact).Equal(0.5)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := coaching.LoadThresholds(filepath.Join(t.TempDir(), "nope.yml"))
		gt.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "thresholds.yml")
		gt.NoError(t, os.WriteFile(path, []byte("min_wpm: [not a number"), 0600))

		_, err := coaching.LoadThresholds(path)
		gt.Error(t, err)
	})
}
