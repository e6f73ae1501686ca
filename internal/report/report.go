// Package report writes a server reply to the client's output file and prints
// the console summary selected by the verbosity level.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/bwtnet/pkg/protocol"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Verbosity levels.
const (
	Quiet   = 0 // output file only
	Summary = 1 // plus a count of converted records
	Detail  = 2 // plus the headers of skipped records
)

// Writer turns raw replies into an output file and a console summary.
type Writer struct {
	Console    io.Writer
	OutputPath string
	Verbosity  int

	profile termenv.Profile
}

// New creates a Writer. Colors are used only when console is a terminal.
func New(console io.Writer, outputPath string, verbosity int) *Writer {
	profile := termenv.Ascii
	if f, ok := console.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		profile = termenv.EnvColorProfile()
	}
	return &Writer{
		Console:    console,
		OutputPath: outputPath,
		Verbosity:  verbosity,
		profile:    profile,
	}
}

// Write handles one raw reply.
// A rejection text is printed as is and no file is written.
func (w *Writer) Write(raw string) error {
	reply := protocol.DecodeReply(raw)

	if reply.Kind == protocol.ReplyRejected {
		w.println(w.paint(reply.Body, "#f87171"))
		return nil
	}

	if err := os.WriteFile(w.OutputPath, []byte(reply.Body), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if w.Verbosity < Summary {
		return nil
	}

	if reply.Kind == protocol.ReplyComplete {
		w.println(w.paint(fmt.Sprintf("%s correctly created with a total of %d transformation.",
			w.OutputPath, reply.Total()), "#4ade80"))
		return nil
	}

	w.println(w.paint(fmt.Sprintf("%s created with %d out of %d total inputs.",
		w.OutputPath, reply.Converted(), reply.Total()), "#facc15"))

	if w.Verbosity >= Detail {
		w.println(fmt.Sprintf("Skipped %d inputs:", len(reply.Skipped)))
		w.println(w.profile.String(strings.Join(reply.Skipped, "\n")).Faint().String())
	}
	return nil
}

func (w *Writer) paint(s, hex string) string {
	return w.profile.String(s).Foreground(w.profile.Color(hex)).String()
}

func (w *Writer) println(s string) {
	fmt.Fprintln(w.Console, s)
}
