package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the server banner with its version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Nucleotide colors, one per letter.
	b := p.String(" b").Foreground(p.Color("#4ade80")).Bold()
	w := p.String("w").Foreground(p.Color("#60a5fa")).Bold()
	t := p.String("t").Foreground(p.Color("#facc15")).Bold()
	n := p.String("net").Foreground(p.Color("#f87171")).Bold()
	v := p.String(" v" + version).Faint()

	fmt.Println()
	fmt.Printf("%s%s%s%s%s\n", b, w, t, n, v)
	fmt.Println()
}
