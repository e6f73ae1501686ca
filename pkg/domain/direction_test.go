package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		line   string
		want   Direction
		header bool
	}{
		{">seq1", ToBWT, true},
		{"<seq2", ToDNA, true},
		{">", ToBWT, true},
		{"ACGT", ToBWT, false},
		{"", ToBWT, false},
		{" >seq", ToBWT, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			dir, ok := DirectionOf(tt.line)
			assert.Equal(t, tt.header, ok)
			if ok {
				assert.Equal(t, tt.want, dir)
			}
			assert.Equal(t, tt.header, IsHeader(tt.line))
		})
	}
}

func TestDirection_MarkersFlip(t *testing.T) {
	assert.Equal(t, MarkerDNA, ToBWT.Marker())
	assert.Equal(t, MarkerBWT, ToBWT.OutputMarker())
	assert.Equal(t, MarkerBWT, ToDNA.Marker())
	assert.Equal(t, MarkerDNA, ToDNA.OutputMarker())
}

func TestTransformedRecord_Header(t *testing.T) {
	rec := NewRecord(">seq1 human")
	assert.Equal(t, ToBWT, rec.Direction)
	assert.Equal(t, "seq1 human", rec.Label)

	out := TransformedRecord{Marker: rec.Direction.OutputMarker(), Label: rec.Label, Body: "T$GCA"}
	assert.Equal(t, "< seq1 human", out.Header())
}
