package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aatomu/fraction"
	"github.com/aatomu/fraction/internal/mesh"
)

var errTriangleArity = errors.New("each --triangle takes 9 coordinates")

type options struct {
	coords     []int64
	spacingNum int64
	spacingDen int64
	parallel   int
	logLevel   string
	print      bool
}

// NewRootCommand builds the fracmesh command.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "fracmesh",
		Short: "Sample triangle surfaces on an exact rational lattice",
		Long: `fracmesh splits every triangle into a barycentric lattice fine enough that
no edge segment is longer than the spacing, and reports the distinct points.
All coordinates are kept as exact fractions.`,
		Example:      "  fracmesh --triangle 0,0,0,4,0,0,0,3,0 --spacing-num 1 --spacing-den 2",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.Int64SliceVar(&opts.coords, "triangle", nil, "triangle corners as x1,y1,z1,x2,y2,z2,x3,y3,z3 (repeatable)")
	flags.Int64Var(&opts.spacingNum, "spacing-num", 1, "numerator of the maximum segment length")
	flags.Int64Var(&opts.spacingDen, "spacing-den", 1, "denominator of the maximum segment length")
	flags.IntVar(&opts.parallel, "parallel", 500, "triangles sampled concurrently (0 = unlimited)")
	flags.StringVar(&opts.logLevel, "log-level", zerolog.InfoLevel.String(), "log level")
	flags.BoolVar(&opts.print, "print", false, "print every point")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().
		Logger()

	tris, err := triangles(opts.coords)
	if err != nil {
		return err
	}

	spacing := fraction.New(opts.spacingNum, opts.spacingDen)
	logger.Debug().Stringer("spacing", spacing).Int("faces", len(tris)).Msg("sampling start")

	res, err := mesh.NewSampler(spacing, opts.parallel, logger).Run(cmd.Context(), tris)
	if err != nil {
		return fmt.Errorf("sample %d triangles: %w", len(tris), err)
	}

	out := cmd.OutOrStdout()
	if opts.print {
		for _, p := range res.Points {
			fmt.Fprintf(out, "%v %v %v\n", p[0], p[1], p[2])
		}
	}
	size := res.Max.Sub(res.Min)
	fmt.Fprintf(out, "Face:%d Point:%d Min:%v Max:%v W:%v H:%v D:%v\n",
		res.Faces, len(res.Points), res.Min, res.Max, size[0], size[1], size[2])
	return nil
}

func triangles(coords []int64) ([]mesh.Triangle, error) {
	if len(coords) == 0 || len(coords)%9 != 0 {
		return nil, fmt.Errorf("%w: got %d", errTriangleArity, len(coords))
	}

	tris := make([]mesh.Triangle, 0, len(coords)/9)
	for c := coords; len(c) > 0; c = c[9:] {
		tris = append(tris, mesh.Triangle{
			mesh.Point(c[0], c[1], c[2]),
			mesh.Point(c[3], c[4], c[5]),
			mesh.Point(c[6], c[7], c[8]),
		})
	}
	return tris, nil
}
