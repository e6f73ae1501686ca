package batch

import (
	"strings"

	"github.com/aretw0/bwtnet/pkg/domain"
)

// Assemble serializes the outcome of a batch into a reply payload.
//
// When at least one record was skipped the payload starts with an error block:
// every skipped header preceded by the error sentinel, then a newline. The success
// block follows as alternating header and body lines with no trailing newline.
func Assemble(tags []domain.ErrorTag, records []domain.TransformedRecord) string {
	var b strings.Builder

	if len(tags) > 0 {
		for _, tag := range tags {
			b.WriteString(domain.ErrorSentinel)
			b.WriteString(tag.Header)
		}
		b.WriteByte('\n')
	}

	for i, rec := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(rec.Header())
		b.WriteByte('\n')
		b.WriteString(rec.Body)
	}

	return b.String()
}
