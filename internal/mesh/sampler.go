package mesh

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Result is the merged output of a Sampler run.
type Result struct {
	Points []Vec3
	Min    Vec3
	Max    Vec3
	Faces  int
}

// Sampler samples many triangles concurrently at a fixed spacing.
type Sampler struct {
	spacing  Frac
	parallel int
	logger   zerolog.Logger
}

// NewSampler returns a Sampler that keeps at most parallel triangles in
// flight. A parallel value below 1 means no limit.
func NewSampler(spacing Frac, parallel int, logger zerolog.Logger) *Sampler {
	return &Sampler{
		spacing:  spacing,
		parallel: parallel,
		logger:   logger.With().Str("module", "mesh").Logger(),
	}
}

func (s *Sampler) Run(ctx context.Context, tris []Triangle) (Result, error) {
	if !validSpacing(s.spacing) {
		return Result{}, ErrIllegalSpacing
	}

	start := time.Now()
	faces := make([][]Vec3, len(tris))

	g, gctx := errgroup.WithContext(ctx)
	if s.parallel > 0 {
		g.SetLimit(s.parallel)
	}
	for i, tri := range tris {
		if gctx.Err() != nil {
			break
		}
		i, tri := i, tri
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, err := Divisions(tri, s.spacing)
			if err != nil {
				return fmt.Errorf("face %d: %w", i, err)
			}
			faces[i] = Sample(tri, n)

			s.logger.Debug().
				Int("face", i).
				Int64("divisions", n).
				Int("points", len(faces[i])).
				Dur("elapsed", time.Since(start)).
				Msg("sampled face")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var all []Vec3
	for _, pts := range faces {
		all = append(all, pts...)
	}
	res := Result{Points: Dedupe(all), Faces: len(tris)}
	res.Min, res.Max = Bounds(res.Points)

	s.logger.Info().
		Int("faces", res.Faces).
		Int("points", len(res.Points)).
		Stringer("min", res.Min).
		Stringer("max", res.Max).
		Dur("duration", time.Since(start)).
		Msg("sampling finished")
	return res, nil
}
