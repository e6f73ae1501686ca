package bwt

import (
	"slices"
	"strings"

	"github.com/aretw0/bwtnet/pkg/domain"
)

// Forward returns the BWT of word. word must already end with exactly one
// termination symbol, so that all rotations are distinct.
func Forward(word string) string {
	n := len(word)
	if n == 0 {
		return ""
	}
	rotations := make([]string, n)
	for i := 0; i < n; i++ {
		// Move the last character to the front.
		word = word[n-1:] + word[:n-1]
		rotations[i] = word
	}
	slices.Sort(rotations)

	var b strings.Builder
	b.Grow(n)
	for _, r := range rotations {
		b.WriteByte(r[n-1])
	}
	return b.String()
}

// Inverse rebuilds the sequence whose BWT is word, termination symbol included.
// word must contain exactly one termination symbol.
func Inverse(word string) string {
	n := len(word)
	if n == 0 {
		return ""
	}

	// Column one of the sorted rotation matrix.
	rows := make([]string, n)
	for i := 0; i < n; i++ {
		rows[i] = word[i : i+1]
	}
	slices.Sort(rows)

	for k := 0; k < n-1; k++ {
		for i := 0; i < n; i++ {
			rows[i] = word[i:i+1] + rows[i]
		}
		slices.Sort(rows)
	}

	for _, r := range rows {
		if strings.HasSuffix(r, domain.Terminator) {
			return r
		}
	}
	return ""
}

// Apply runs the transform selected by dir on a validated body.
func Apply(dir domain.Direction, body string) string {
	if dir == domain.ToDNA {
		return Inverse(body)
	}
	return Forward(body + domain.Terminator)
}
