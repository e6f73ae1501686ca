package domain

// Header markers.
const (
	MarkerDNA byte = '>'
	MarkerBWT byte = '<'
)

// Direction is the conversion a record asks for.
type Direction int

const (
	// ToBWT converts a DNA sequence (header marker '>') into its BWT.
	ToBWT Direction = iota
	// ToDNA inverts a BWT sequence (header marker '<') back into DNA.
	ToDNA
)

// String returns a stable lowercase name, used as a metric label.
func (d Direction) String() string {
	switch d {
	case ToBWT:
		return "to_bwt"
	case ToDNA:
		return "to_dna"
	default:
		return "unknown"
	}
}

// Marker returns the header marker of an input record with this direction.
func (d Direction) Marker() byte {
	if d == ToDNA {
		return MarkerBWT
	}
	return MarkerDNA
}

// OutputMarker returns the marker of the converted record, the complement of Marker.
func (d Direction) OutputMarker() byte {
	if d == ToDNA {
		return MarkerDNA
	}
	return MarkerBWT
}

// DirectionOf reports the direction encoded by a header line.
// ok is false when the line does not start with a header marker.
func DirectionOf(line string) (dir Direction, ok bool) {
	if line == "" {
		return ToBWT, false
	}
	switch line[0] {
	case MarkerDNA:
		return ToBWT, true
	case MarkerBWT:
		return ToDNA, true
	}
	return ToBWT, false
}

// IsHeader reports whether a line starts a new record.
func IsHeader(line string) bool {
	_, ok := DirectionOf(line)
	return ok
}
