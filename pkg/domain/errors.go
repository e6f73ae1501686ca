package domain

import "errors"

// ErrBatchRejected is returned when a message is empty, holds a single line or
// does not start with a header.
var ErrBatchRejected = errors.New("batch rejected")

// ErrUnterminatedFrame is returned when a stream ends before the frame terminator arrives.
var ErrUnterminatedFrame = errors.New("stream closed before frame terminator")

// ErrInvalidPort is returned for ports outside 1..65535.
var ErrInvalidPort = errors.New("port not valid, please enter an integer between 1 and 65535")

// ErrInvalidAddress is returned when a host cannot be resolved.
var ErrInvalidAddress = errors.New("address not valid, please enter valid hostname or IP address")

// ErrInputNotFound is returned when the client input file cannot be read.
var ErrInputNotFound = errors.New("file not found, please enter a valid input file")
