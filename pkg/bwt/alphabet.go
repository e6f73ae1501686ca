package bwt

import (
	"strings"

	"github.com/aretw0/bwtnet/pkg/domain"
)

// symbols is the extended nucleotide alphabet (IUPAC codes plus gap), upper case.
var symbols = [256]bool{
	'A': true, 'C': true, 'G': true, 'T': true,
	'R': true, 'Y': true, 'S': true, 'W': true,
	'K': true, 'M': true, 'B': true, 'D': true,
	'H': true, 'V': true, 'N': true, '-': true,
}

// Validate reports whether body is a usable sequence.
// At most one termination symbol is ignored; what remains must be non-empty and
// consist only of alphabet symbols, compared case-insensitively.
func Validate(body string) bool {
	stripped := strings.Replace(body, domain.Terminator, "", 1)
	if stripped == "" {
		return false
	}
	for i := 0; i < len(stripped); i++ {
		if !symbols[upper(stripped[i])] {
			return false
		}
	}
	return true
}

// Admissible reports whether body meets the precondition of the transform for dir:
// a DNA body carries no termination symbol, a BWT body carries exactly one.
func Admissible(dir domain.Direction, body string) bool {
	n := strings.Count(body, domain.Terminator)
	if dir == domain.ToDNA {
		return n == 1
	}
	return n == 0
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
