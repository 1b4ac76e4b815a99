package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/shortid/pkg/randid"
)

func TestSafety(t *testing.T) {
	for _, s := range []randid.Safety{randid.SafetySafe, randid.SafetyModerate, randid.SafetyHighRisk} {
		assert.Contains(t, Safety(s), string(s))
	}

	assert.Equal(t, "unknown", Safety(randid.Safety("unknown")))
}

func TestFormTheme(t *testing.T) {
	assert.NotNil(t, FormTheme())
}
