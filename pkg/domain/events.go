package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRecordConverted EventType = "record_converted"
	EventRecordSkipped   EventType = "record_skipped"
	EventBatchRejected   EventType = "batch_rejected"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// RecordEvent describes the fate of one record.
type RecordEvent struct {
	EventBase
	Header    string    `json:"header"`
	Direction Direction `json:"direction"`
	Length    int       `json:"length"`
}

// BatchEvent describes a message rejected as a whole.
type BatchEvent struct {
	EventBase
	Lines int `json:"lines"`
}

// LifecycleHooks defines callbacks for conversion observability.
type LifecycleHooks struct {
	OnRecordConverted func(context.Context, *RecordEvent)
	OnRecordSkipped   func(context.Context, *RecordEvent)
	OnBatchRejected   func(context.Context, *BatchEvent)
}
