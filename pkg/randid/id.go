package randid

// Result is an ID together with the collision assessment for its length.
type Result struct {
	ID                   string `json:"id"`
	Safety               Safety `json:"safety,omitempty"`
	CollisionProbability string `json:"collision_probability,omitempty"`
	Recommendation       string `json:"recommendation,omitempty"`
}

// Generator draws IDs from a Source. A Generator holds no state besides its
// source, so it is safe for concurrent use whenever the source is.
type Generator struct {
	src Source
}

// New creates a Generator backed by src. A nil src uses SystemSource.
func New(src Source) *Generator {
	if src == nil {
		src = SystemSource{}
	}
	return &Generator{src: src}
}

// Bytes returns n random bytes from the generator's source.
func (g *Generator) Bytes(n int) ([]byte, error) {
	if n < 1 {
		return nil, cryptoErrorf("byte count must be a positive integer, got %d", n)
	}
	return g.src.Bytes(n)
}

// Generate returns an ID of the given length. Every position is an
// independent draw from Charset.
func (g *Generator) Generate(length int) (string, error) {
	if err := ValidateLength(length); err != nil {
		return "", err
	}

	b := make([]byte, length)
	for i := range b {
		idx, err := g.Int(len(Charset))
		if err != nil {
			return "", err
		}
		b[i] = Charset[idx]
	}

	return string(b), nil
}

// GenerateDefault returns an ID of DefaultLength.
func (g *Generator) GenerateDefault() (string, error) {
	return g.Generate(DefaultLength)
}

// GenerateWithInfo returns an ID of the given length along with the
// collision assessment for that length. The assessment depends only on the
// length, never on the generated value.
func (g *Generator) GenerateWithInfo(length int) (Result, error) {
	id, err := g.Generate(length)
	if err != nil {
		return Result{}, err
	}

	a, err := Assess(length)
	if err != nil {
		return Result{}, err
	}

	return Result{
		ID:                   id,
		Safety:               a.Safety,
		CollisionProbability: FormatProbability(a.Probability),
		Recommendation:       a.Recommendation,
	}, nil
}

var std = New(SystemSource{})

// Generate returns an ID of the given length using the system source.
func Generate(length int) (string, error) {
	return std.Generate(length)
}

// GenerateDefault returns an ID of DefaultLength using the system source.
func GenerateDefault() (string, error) {
	return std.GenerateDefault()
}

// GenerateWithInfo returns an ID and its collision assessment using the
// system source.
func GenerateWithInfo(length int) (Result, error) {
	return std.GenerateWithInfo(length)
}

// RandomInt returns an unbiased integer in [0, n) using the system source.
func RandomInt(n int) (int, error) {
	return std.Int(n)
}

// RandomBytes returns n bytes from the system source.
func RandomBytes(n int) ([]byte, error) {
	return std.Bytes(n)
}
