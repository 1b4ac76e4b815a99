package printer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
)

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))
	assert.NotNil(t, Ctx(context.Background()))
}

func TestFatalError(t *testing.T) {
	t.Run("nil is silent", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf).FatalError(nil)
		assert.Empty(t, buf.String())
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf).FatalError(errors.New("random source unavailable"))

		out := buf.String()
		assert.Contains(t, out, "╭ Error")
		assert.Contains(t, out, "random source unavailable")
	})

	t.Run("validation error", func(t *testing.T) {
		var buf bytes.Buffer
		err := fmt.Errorf("invalid length: %w",
			criterio.NewFieldErrors("length", errors.New("must be at least 7 characters")))

		New(&buf).FatalError(err)

		out := buf.String()
		assert.Contains(t, out, "╭ Validation Error")
		assert.Contains(t, out, "length: ")
		assert.Contains(t, out, "must be at least 7 characters")
	})
}

func TestNew_BufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	p.Successf("done")
	p.Section("Checks")

	assert.Equal(t, Check+" done\nChecks\n", buf.String())
}

func TestFatalError_Prefix(t *testing.T) {
	var buf bytes.Buffer
	err := fmt.Errorf("load config: %w", criterio.NewFieldErrors("count", errors.New("too many")))
	New(&buf).FatalError(err)

	assert.Equal(t, "╭ Validation Error\n│ load config\n│\n│ "+Cross+" count: too many\n╵\n", buf.String())
}

func TestItems(t *testing.T) {
	var buf bytes.Buffer
	p := NewColor(&buf, true)

	p.CheckItem("source", "crypto/rand")
	p.WarnItem("length", "")
	p.FailItem("uniformity", "bucket 3 off")
	p.Field("safety", "safe")

	out := buf.String()
	assert.Contains(t, out, Check+ColorReset+" source: crypto/rand")
	assert.Contains(t, out, Dot+ColorReset+" length\n")
	assert.Contains(t, out, Cross+ColorReset+" uniformity: bucket 3 off")
	assert.Contains(t, out, "safety:"+ColorReset+" safe")
}
