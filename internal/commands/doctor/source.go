package doctor

import (
	"context"
	"fmt"
	"math"

	"github.com/hay-kot/shortid/internal/core/config"
	"github.com/hay-kot/shortid/internal/idgen"
	"github.com/hay-kot/shortid/pkg/randid"
)

// SourceCheck verifies the configured random source can be opened and read.
type SourceCheck struct {
	config *config.Config
}

// NewSourceCheck creates a new random source check.
func NewSourceCheck(cfg *config.Config) *SourceCheck {
	return &SourceCheck{config: cfg}
}

func (c *SourceCheck) Name() string {
	return "Random Source"
}

func (c *SourceCheck) Run(_ context.Context) Result {
	res := Result{Name: c.Name()}
	if c.config == nil {
		res.Fail("Source", "configuration not loaded")
		return res
	}

	label := "system (crypto/rand)"
	if !c.config.UsesSystemSource() {
		label = c.config.Source
	}

	src, closer, err := idgen.OpenSource(c.config)
	if err != nil {
		res.Fail(label, err.Error())
		return res
	}
	defer func() { _ = closer.Close() }()

	if err := randid.Probe(src); err != nil {
		res.Fail(label, err.Error())
		return res
	}

	res.Pass(label, "readable")
	return res
}

// UniformityCheck draws indexes from the configured source and verifies every
// character of the alphabet appears within a tolerance of its expected count.
type UniformityCheck struct {
	config *config.Config
	draws  int
}

// DefaultUniformityDraws is the sample size used by the doctor command.
const DefaultUniformityDraws = 10_000

// NewUniformityCheck creates a new uniformity check over the given number of draws.
func NewUniformityCheck(cfg *config.Config, draws int) *UniformityCheck {
	if draws < 1 {
		draws = DefaultUniformityDraws
	}
	return &UniformityCheck{config: cfg, draws: draws}
}

func (c *UniformityCheck) Name() string {
	return "Uniformity"
}

func (c *UniformityCheck) Run(ctx context.Context) Result {
	res := Result{Name: c.Name()}
	if c.config == nil {
		res.Fail("Distribution", "configuration not loaded")
		return res
	}

	src, closer, err := idgen.OpenSource(c.config)
	if err != nil {
		res.Fail("Distribution", err.Error())
		return res
	}
	defer func() { _ = closer.Close() }()

	res.Items = append(res.Items, sampleUniformity(ctx, randid.New(src), c.draws))
	return res
}

// sampleUniformity allows five standard deviations around the expected count
// per character, which a correct sampler practically never exceeds.
func sampleUniformity(ctx context.Context, gen *randid.Generator, draws int) Item {
	n := len(randid.Charset)
	counts := make([]int, n)

	for i := range draws {
		if i%1000 == 0 && ctx.Err() != nil {
			return Item{Label: "Distribution", Status: StatusFail, Detail: ctx.Err().Error()}
		}
		idx, err := gen.Int(n)
		if err != nil {
			return Item{Label: "Distribution", Status: StatusFail, Detail: err.Error()}
		}
		counts[idx]++
	}

	expected := float64(draws) / float64(n)
	tolerance := 5 * stddev(draws, n)

	worst, worstDev := 0, 0.0
	for i, got := range counts {
		dev := float64(got) - expected
		if dev < 0 {
			dev = -dev
		}
		if dev > worstDev {
			worst, worstDev = i, dev
		}
	}

	if worstDev > tolerance {
		return Item{
			Label:  "Distribution",
			Status: StatusFail,
			Detail: fmt.Sprintf("%q drawn %d times, expected %.0f ± %.0f", randid.Charset[worst], counts[worst], expected, tolerance),
		}
	}

	return Item{
		Label:  "Distribution",
		Status: StatusPass,
		Detail: fmt.Sprintf("%d draws within ± %.0f of %.0f per character", draws, tolerance, expected),
	}
}

// stddev is the binomial standard deviation of one character's count.
func stddev(draws, n int) float64 {
	p := 1 / float64(n)
	return math.Sqrt(float64(draws) * p * (1 - p))
}
