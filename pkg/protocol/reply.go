package protocol

import (
	"strings"

	"github.com/aretw0/bwtnet/pkg/domain"
)

// ReplyKind classifies a reply payload.
type ReplyKind int

const (
	// ReplyRejected is the fixed error text sent for a message that is not a batch.
	ReplyRejected ReplyKind = iota
	// ReplyComplete means every record was converted.
	ReplyComplete
	// ReplyPartial means at least one record was skipped.
	ReplyPartial
)

// Reply is a reply payload split into its parts.
type Reply struct {
	Kind ReplyKind
	// Skipped holds the original headers of skipped records.
	Skipped []string
	// Body is the success block: alternating output headers and sequences.
	// For a rejected reply it holds the rejection text.
	Body string
}

// Converted returns the number of records in the success block.
func (r Reply) Converted() int {
	if r.Kind == ReplyRejected || r.Body == "" {
		return 0
	}
	return (strings.Count(r.Body, "\n") + 1) / 2
}

// Total returns the number of records the batch contained.
func (r Reply) Total() int {
	return r.Converted() + len(r.Skipped)
}

// DecodeReply splits a raw reply. The error sentinel is checked first: an
// error block always starts the payload.
func DecodeReply(raw string) Reply {
	if block, body, ok := strings.Cut(raw, "\n"); ok && strings.HasPrefix(raw, domain.ErrorSentinel) {
		var skipped []string
		for _, h := range strings.Split(block, domain.ErrorSentinel) {
			if h != "" {
				skipped = append(skipped, h)
			}
		}
		return Reply{Kind: ReplyPartial, Skipped: skipped, Body: body}
	}

	if domain.IsHeader(raw) {
		return Reply{Kind: ReplyComplete, Body: raw}
	}

	return Reply{Kind: ReplyRejected, Body: raw}
}
