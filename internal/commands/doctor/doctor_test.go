package doctor

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/shortid/internal/core/config"
	"github.com/hay-kot/shortid/pkg/randid"
)

type staticCheck struct {
	name  string
	items []Item
}

func (s staticCheck) Name() string { return s.name }

func (s staticCheck) Run(context.Context) Result {
	return Result{Name: s.name, Items: s.items}
}

func TestRunAllAndReport(t *testing.T) {
	results := RunAll(context.Background(), []Check{
		staticCheck{name: "a", items: []Item{{Label: "one", Status: StatusPass}, {Label: "two", Status: StatusWarn}}},
		staticCheck{name: "b", items: []Item{{Label: "three", Status: StatusFail}}},
	})

	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Name)
	assert.Equal(t, "b", results[1].Name)

	report := NewReport(results)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 1, report.Warned)
	assert.Equal(t, 1, report.Failed)
	assert.False(t, report.Healthy)
	assert.True(t, NewReport(results[:1]).Healthy)
}

func TestItemJSON(t *testing.T) {
	var res Result
	res.Warn("label", "")

	b, err := json.Marshal(res.Items[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"label","status":"warn"}`, string(b))
}

func TestConfigCheck(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		res := NewConfigCheck(nil, "").Run(context.Background())
		require.Len(t, res.Items, 1)
		assert.Equal(t, StatusFail, res.Items[0].Status)
	})

	t.Run("valid", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Length = 10
		res := NewConfigCheck(&cfg, filepath.Join(t.TempDir(), "missing.yaml")).Run(context.Background())
		require.Len(t, res.Items, 1)
		assert.Equal(t, StatusPass, res.Items[0].Status)
		assert.Equal(t, "length 10, format text", res.Items[0].Detail)
	})

	t.Run("moderate default length warns", func(t *testing.T) {
		cfg := config.DefaultConfig()
		res := NewConfigCheck(&cfg, "").Run(context.Background())
		report := NewReport([]Result{res})
		assert.Equal(t, 1, report.Warned)
		assert.Equal(t, 0, report.Failed)
	})

	t.Run("invalid", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Length = 10
		cfg.Template = "{{ .ID "
		res := NewConfigCheck(&cfg, "").Run(context.Background())
		assert.Positive(t, NewReport([]Result{res}).Failed)
	})
}

func TestSourceCheck(t *testing.T) {
	t.Run("system", func(t *testing.T) {
		cfg := config.DefaultConfig()
		res := NewSourceCheck(&cfg).Run(context.Background())
		require.Len(t, res.Items, 1)
		assert.Equal(t, StatusPass, res.Items[0].Status)
	})

	t.Run("character device", func(t *testing.T) {
		if _, err := os.Stat("/dev/urandom"); err != nil {
			t.Skip("/dev/urandom not available")
		}

		cfg := config.DefaultConfig()
		cfg.Source = "/dev/urandom"
		res := NewSourceCheck(&cfg).Run(context.Background())
		require.Len(t, res.Items, 1)
		assert.Equal(t, StatusPass, res.Items[0].Status)
		assert.Equal(t, "/dev/urandom", res.Items[0].Label)
	})

	t.Run("regular file rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "entropy")
		require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o600))

		cfg := config.DefaultConfig()
		cfg.Source = path
		res := NewSourceCheck(&cfg).Run(context.Background())
		require.Len(t, res.Items, 1)
		assert.Equal(t, StatusFail, res.Items[0].Status)
		assert.Contains(t, res.Items[0].Detail, "not a character device")
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Source = filepath.Join(t.TempDir(), "nope")
		res := NewSourceCheck(&cfg).Run(context.Background())
		require.Len(t, res.Items, 1)
		assert.Equal(t, StatusFail, res.Items[0].Status)
	})
}

// cycle returns every index of the alphabet in turn, reps times.
func cycle(reps int) []byte {
	n := len(randid.Charset)
	b := make([]byte, 0, n*reps)
	for range reps {
		for i := range n {
			b = append(b, byte(i))
		}
	}
	return b
}

func TestSampleUniformity(t *testing.T) {
	n := len(randid.Charset)

	t.Run("even distribution passes", func(t *testing.T) {
		gen := randid.New(randid.ReaderSource{R: bytes.NewReader(cycle(100))})
		item := sampleUniformity(context.Background(), gen, n*100)
		assert.Equal(t, StatusPass, item.Status, item.Detail)
	})

	t.Run("stuck source fails", func(t *testing.T) {
		gen := randid.New(randid.ReaderSource{R: bytes.NewReader(make([]byte, n*100))})
		item := sampleUniformity(context.Background(), gen, n*100)
		assert.Equal(t, StatusFail, item.Status)
		assert.Contains(t, item.Detail, `'a'`)
	})

	t.Run("exhausted source fails", func(t *testing.T) {
		gen := randid.New(randid.ReaderSource{R: bytes.NewReader(cycle(1))})
		item := sampleUniformity(context.Background(), gen, n*2)
		assert.Equal(t, StatusFail, item.Status)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		item := sampleUniformity(ctx, randid.New(nil), 10)
		assert.Equal(t, StatusFail, item.Status)
	})
}

func TestUniformityCheck_RegularFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zeros")
	require.NoError(t, os.WriteFile(path, make([]byte, 70), 0o600))

	cfg := config.DefaultConfig()
	cfg.Source = path
	res := NewUniformityCheck(&cfg, 620).Run(context.Background())
	require.Len(t, res.Items, 1)
	assert.Equal(t, StatusFail, res.Items[0].Status)
}

func TestUniformityCheck_System(t *testing.T) {
	cfg := config.DefaultConfig()
	res := NewUniformityCheck(&cfg, 0).Run(context.Background())
	require.Len(t, res.Items, 1)
	assert.Equal(t, StatusPass, res.Items[0].Status, res.Items[0].Detail)
}
