package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/bwtnet/pkg/domain"
)

// ReadChunkSize is the size of each read from the stream.
const ReadChunkSize = 1024

var terminator = []byte(domain.FrameTerminator)

// ReadFrame reads from r until the frame terminator arrives and returns the bytes
// before it. The terminator may be split across reads. Anything after the first
// terminator is discarded.
//
// ReadFrame blocks for as long as r does. It returns domain.ErrUnterminatedFrame
// if r reaches EOF first.
func ReadFrame(r io.Reader) ([]byte, error) {
	var buf []byte
	chunk := make([]byte, ReadChunkSize)

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			// Only the tail can complete a terminator started in the previous read.
			from := max(0, len(buf)-len(terminator)+1)
			buf = append(buf, chunk[:n]...)
			if i := bytes.Index(buf[from:], terminator); i >= 0 {
				return buf[:from+i], nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w after %d bytes", domain.ErrUnterminatedFrame, len(buf))
			}
			return nil, err
		}
	}
}

// WriteFrame writes payload followed by the frame terminator in a single write.
func WriteFrame(w io.Writer, payload []byte) error {
	frame := make([]byte, 0, len(payload)+len(terminator))
	frame = append(frame, payload...)
	frame = append(frame, terminator...)
	_, err := w.Write(frame)
	return err
}
