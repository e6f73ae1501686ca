package batch

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/bwtnet/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_NoErrors(t *testing.T) {
	got := Assemble(nil, []domain.TransformedRecord{
		{Marker: '<', Label: "seq1", Body: "T$ACG"},
		{Marker: '>', Label: "seq2", Body: "ACGT$"},
	})

	assert.Equal(t, "< seq1\nT$ACG\n> seq2\nACGT$", got)
	assert.False(t, strings.HasPrefix(got, domain.ErrorSentinel))
}

func TestAssemble_WithErrors(t *testing.T) {
	got := Assemble(
		[]domain.ErrorTag{{Header: ">bad1"}, {Header: "<bad2"}},
		[]domain.TransformedRecord{{Marker: '<', Label: "seq1", Body: "T$ACG"}},
	)

	assert.Equal(t, "%%%>bad1%%%<bad2\n< seq1\nT$ACG", got)
}

func TestAssemble_OnlyErrors(t *testing.T) {
	got := Assemble([]domain.ErrorTag{{Header: ">bad"}}, nil)
	assert.Equal(t, "%%%>bad\n", got)
}

func TestAssemble_OneInvalidAmongMany(t *testing.T) {
	message := ">a\nACGT\n>b\nAC GT\n<c\nT$ACG\n>d\nNNN\n"

	out, err := NewParser().Parse(context.Background(), message)
	require.NoError(t, err)

	reply := Assemble(out.ErrorTags, out.Records)
	head, rest, found := strings.Cut(reply, "\n")
	require.True(t, found)

	assert.Equal(t, 1, strings.Count(head, domain.ErrorSentinel))
	assert.Equal(t, "%%%>b", head)
	assert.Len(t, strings.Split(rest, "\n"), 2*3)
}
