package domain

// Record is one header+body unit of a batch.
type Record struct {
	Direction Direction
	// Header is the full header line, marker included.
	Header string
	// Label is the header text after the marker.
	Label string
	// Body is the concatenation of the lines following the header.
	Body string
}

// NewRecord builds a Record from a header line. The line must satisfy IsHeader.
func NewRecord(header string) Record {
	dir, _ := DirectionOf(header)
	return Record{
		Direction: dir,
		Header:    header,
		Label:     header[1:],
	}
}

// TransformedRecord is a record whose body was converted successfully.
type TransformedRecord struct {
	Marker byte
	Label  string
	Body   string
}

// Header renders the output header line: marker, one space, label.
func (r TransformedRecord) Header() string {
	return string(r.Marker) + " " + r.Label
}

// ErrorTag wraps the original header of a record that was skipped.
type ErrorTag struct {
	Header string
}

// Outcome holds everything an accepted batch produced, in input order.
type Outcome struct {
	ErrorTags []ErrorTag
	Records   []TransformedRecord
}

// Total returns the number of records that were present in the batch.
func (o *Outcome) Total() int {
	return len(o.ErrorTags) + len(o.Records)
}
