package bwt

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/aretw0/bwtnet/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A$", "A$"},
		{"ACGT$", "T$ACG"},
		{"GATTACA$", "ACTGA$TA"},
		{"NNNN$", "NNNN$"},
		{"acgt$", "t$acg"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Forward(tt.in))
		})
	}
}

func TestInverse(t *testing.T) {
	assert.Equal(t, "ACGT$", Inverse("T$ACG"))
	assert.Equal(t, "GATTACA$", Inverse("ACTGA$TA"))
	assert.Equal(t, "A$", Inverse("A$"))
	assert.Equal(t, "$", Inverse("$"))
}

func TestInverse_ArbitraryPermutation(t *testing.T) {
	// Not the BWT of anything, but still a single terminator: the result keeps
	// the input length and ends with the terminator.
	out := Inverse("TACG$")
	require.Len(t, out, 5)
	assert.True(t, strings.HasSuffix(out, domain.Terminator))
}

func TestRoundTrip(t *testing.T) {
	const alphabet = "ACGTRYSWKMBDHVN-acgtn"
	rng := rand.New(rand.NewPCG(1, 2))

	for n := 1; n <= 40; n++ {
		var b strings.Builder
		for k := 0; k < n; k++ {
			b.WriteByte(alphabet[rng.IntN(len(alphabet))])
		}
		seq := b.String()

		bwt := Forward(seq + domain.Terminator)
		require.Len(t, bwt, n+1)
		assert.Equal(t, 1, strings.Count(bwt, domain.Terminator))
		assert.Equal(t, seq+domain.Terminator, Inverse(bwt), "sequence %q", seq)
	}
}

func TestApply(t *testing.T) {
	assert.Equal(t, "T$ACG", Apply(domain.ToBWT, "ACGT"))
	assert.Equal(t, "ACGT$", Apply(domain.ToDNA, "T$ACG"))
}
