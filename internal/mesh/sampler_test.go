package mesh

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/aatomu/fraction"
)

// Two halves of the square (0,0)-(2,2) sharing the diagonal BC.
var square = []Triangle{
	{Point(0, 0, 0), Point(2, 0, 0), Point(0, 2, 0)},
	{Point(2, 0, 0), Point(0, 2, 0), Point(2, 2, 0)},
}

func TestSamplerRun(t *testing.T) {
	for _, parallel := range []int{0, 1, 4} {
		s := NewSampler(fraction.FromInt[int64](1), parallel, zerolog.Nop())
		res, err := s.Run(context.Background(), square)
		require.NoError(t, err)

		// 10 lattice points per face at n=3, 4 of them on the shared edge.
		require.Len(t, res.Points, 16, "parallel %d", parallel)
		require.Equal(t, 2, res.Faces)
		require.Equal(t, Point(0, 0, 0), res.Min)
		require.Equal(t, Point(2, 2, 0), res.Max)
		require.Equal(t, Dedupe(res.Points), res.Points)
	}
}

func TestSamplerRunLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(zerolog.SyncWriter(&buf)).Level(zerolog.DebugLevel)

	_, err := NewSampler(fraction.FromInt[int64](1), 4, logger).Run(context.Background(), square)
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"message":"sampled face"`)
	require.Contains(t, buf.String(), `"message":"sampling finished"`)
	require.Contains(t, buf.String(), `"module":"mesh"`)
}

func TestSamplerRunIllegalSpacing(t *testing.T) {
	_, err := NewSampler(fraction.New[int64](1, 0), 1, zerolog.Nop()).Run(context.Background(), square)
	require.ErrorIs(t, err, ErrIllegalSpacing)
}

func TestSamplerRunTooFine(t *testing.T) {
	tris := append([]Triangle{{Point(0, 0, 0), Point(1e9, 0, 0), Point(0, 1, 0)}}, square...)
	_, err := NewSampler(fraction.FromInt[int64](1), 2, zerolog.Nop()).Run(context.Background(), tris)
	require.ErrorIs(t, err, ErrOutOfRange)

	tris = append(square, Triangle{Point(0, 0, 0), Point(5000, 0, 0), Point(0, 1, 0)})
	_, err = NewSampler(fraction.FromInt[int64](1), 2, zerolog.Nop()).Run(context.Background(), tris)
	require.ErrorIs(t, err, ErrTooFine)
}

func TestSamplerRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSampler(fraction.FromInt[int64](1), 1, zerolog.Nop()).Run(ctx, square)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSamplerRunEmpty(t *testing.T) {
	res, err := NewSampler(fraction.FromInt[int64](1), 1, zerolog.Nop()).Run(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, res.Points)
	require.Zero(t, res.Faces)
}
