package domain

// Wire and payload constants shared by the server and the client.
const (
	// Terminator is the termination symbol appended to a DNA sequence before the
	// forward transform. It sorts before every alphabet symbol.
	Terminator = "$"

	// ErrorSentinel prefixes and separates the error block of a reply.
	ErrorSentinel = "%%%"

	// FrameTerminator marks the end of a request or reply on the stream.
	FrameTerminator = "/0"

	// RejectionMessage is the reply sent for a batch that cannot be parsed at all.
	RejectionMessage = "Input Error: either empty file or no header in first line"
)

// DefaultPort is the TCP port used by both sides when none is configured.
const DefaultPort = 5500
