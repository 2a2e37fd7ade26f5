package programs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandrolain/golambda/pkg/lambda"
	"github.com/sandrolain/golambda/pkg/programs"
)

func run(input []uint, program lambda.Expression) []uint {
	out := make([]uint, 0, len(input))
	lambda.RunOnIntegerSequence(input, program, func(n uint) {
		out = append(out, n)
	})
	return out
}

func TestIdentity(t *testing.T) {
	require.Equal(t, []uint{3, 1, 4}, run([]uint{3, 1, 4}, programs.Identity))
	require.Empty(t, run(nil, programs.Identity))
}

func TestSum(t *testing.T) {
	require.Equal(t, []uint{10}, run([]uint{1, 2, 3, 4}, programs.Sum))
	require.Equal(t, []uint{7}, run([]uint{7}, programs.Sum))
	require.Equal(t, []uint{0}, run(nil, programs.Sum))
}

func TestLength(t *testing.T) {
	require.Equal(t, []uint{4}, run([]uint{9, 9, 9, 9}, programs.Length))
	require.Equal(t, []uint{0}, run(nil, programs.Length))
}

func TestMapSucc(t *testing.T) {
	require.Equal(t, []uint{4, 2, 5}, run([]uint{3, 1, 4}, programs.MapSucc))
	require.Empty(t, run(nil, programs.MapSucc))
}

func TestMapDouble(t *testing.T) {
	require.Equal(t, []uint{6, 2, 8}, run([]uint{3, 1, 4}, programs.MapDouble))
	require.Equal(t, []uint{0}, run([]uint{0}, programs.MapDouble))
}

func TestHead(t *testing.T) {
	require.Equal(t, []uint{3}, run([]uint{3, 1, 4}, programs.Head))
}

func TestByNameCoversAllPublishedNames(t *testing.T) {
	names := programs.Names()
	require.NotEmpty(t, names)
	for _, name := range names {
		_, ok := programs.ByName(name)
		require.True(t, ok, "published name %q does not resolve", name)
	}

	_, ok := programs.ByName("no-such-program")
	require.False(t, ok)
}

func TestProgramsCompose(t *testing.T) {
	// double-then-sum, composed at the calculus level.
	composed := lambda.NewExpression(func(l lambda.Expression) lambda.Expression {
		return programs.Sum.Apply(programs.MapDouble.Apply(l))
	})
	require.Equal(t, []uint{20}, run([]uint{1, 2, 3, 4}, composed))
}
