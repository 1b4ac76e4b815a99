// Package idgen orchestrates ID generation for the command line.
package idgen

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hay-kot/shortid/internal/core/config"
	"github.com/hay-kot/shortid/internal/core/validate"
	"github.com/hay-kot/shortid/pkg/randid"
	"github.com/hay-kot/shortid/pkg/tmpl"
)

// Options configures a generation request. Zero values fall back to the
// configuration.
type Options struct {
	Length   int
	Count    int
	Info     bool
	Template string
}

// Item is a single generated ID ready for output.
type Item struct {
	randid.Result
	// Formatted is the ID rendered through the output template.
	Formatted string `json:"formatted,omitempty"`
}

// Service orchestrates ID generation.
type Service struct {
	config *config.Config
	log    zerolog.Logger

	open    func() (*randid.Generator, io.Closer, error)
	once    sync.Once
	gen     *randid.Generator
	closer  io.Closer
	openErr error
}

// New creates a Service that draws from gen.
func New(gen *randid.Generator, cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		config: cfg,
		log:    log,
		open: func() (*randid.Generator, io.Closer, error) {
			return gen, nopCloser{}, nil
		},
	}
}

// NewFromConfig creates a Service that opens the configured random source on
// the first Generate call. Commands that never generate never touch it.
func NewFromConfig(cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		config: cfg,
		log:    log,
		open: func() (*randid.Generator, io.Closer, error) {
			src, closer, err := OpenSource(cfg)
			if err != nil {
				return nil, nil, fmt.Errorf("open random source: %w", err)
			}
			return randid.New(src), closer, nil
		},
	}
}

func (s *Service) generator() (*randid.Generator, error) {
	s.once.Do(func() {
		s.gen, s.closer, s.openErr = s.open()
		if s.openErr == nil {
			s.log.Debug().Str("source", s.config.Source).Msg("random source opened")
		}
	})
	return s.gen, s.openErr
}

// Close releases the random source if it was opened. Generate fails after
// Close.
func (s *Service) Close() error {
	s.once.Do(func() { s.openErr = fmt.Errorf("service closed") })
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Resolve fills unset options from the configuration and validates them.
func (s *Service) Resolve(opts Options) (Options, error) {
	if opts.Length == 0 {
		opts.Length = s.config.Length
	}
	if opts.Count == 0 {
		opts.Count = s.config.Count
	}
	if opts.Template == "" {
		opts.Template = s.config.Template
	}
	opts.Info = opts.Info || s.config.Info

	if err := randid.ValidateLength(opts.Length); err != nil {
		return Options{}, err
	}
	if err := validate.Count(opts.Count); err != nil {
		return Options{}, fmt.Errorf("count: %w", err)
	}

	return opts, nil
}

// Generate produces opts.Count independent IDs. Duplicates within a batch are
// possible and are not filtered.
func (s *Service) Generate(ctx context.Context, opts Options) ([]Item, error) {
	opts, err := s.Resolve(opts)
	if err != nil {
		return nil, err
	}

	gen, err := s.generator()
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Int("length", opts.Length).
		Int("count", opts.Count).
		Int("workers", max(s.config.Workers, 1)).
		Msg("generating ids")

	items := make([]Item, opts.Count)

	workers := max(s.config.Workers, 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range items {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			item, err := s.generateOne(gen, opts, i)
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Info {
		s.log.Debug().
			Str("safety", string(items[0].Safety)).
			Str("probability", items[0].CollisionProbability).
			Msg("collision assessment")
	}

	return items, nil
}

func (s *Service) generateOne(gen *randid.Generator, opts Options, index int) (Item, error) {
	var (
		res randid.Result
		err error
	)

	if opts.Info {
		res, err = gen.GenerateWithInfo(opts.Length)
	} else {
		res.ID, err = gen.Generate(opts.Length)
	}
	if err != nil {
		return Item{}, err
	}

	item := Item{Result: res}
	if opts.Template != "" {
		item.Formatted, err = tmpl.Render(opts.Template, config.TemplateData{
			ID:     res.ID,
			Index:  index,
			Length: opts.Length,
			Safety: string(res.Safety),
		})
		if err != nil {
			return Item{}, fmt.Errorf("render template: %w", err)
		}
	}

	return item, nil
}

// Risk returns the collision assessment for length, or for every supported
// length when length is zero.
func (s *Service) Risk(length int) ([]randid.Assessment, error) {
	if length != 0 {
		a, err := randid.Assess(length)
		if err != nil {
			return nil, err
		}
		return []randid.Assessment{a}, nil
	}

	out := make([]randid.Assessment, 0, randid.MaxLength-randid.MinLength+1)
	for l := randid.MinLength; l <= randid.MaxLength; l++ {
		a, err := randid.Assess(l)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}
