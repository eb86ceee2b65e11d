package domain

import (
	"context"
	"time"
)

// PromptKind names the shape of a prompt loop.
type PromptKind string

const (
	KindString      PromptKind = "string"
	KindBool        PromptKind = "bool"
	KindNumber      PromptKind = "number"
	KindNumberRange PromptKind = "number_range"
	KindMultiString PromptKind = "multi_string"
	KindMultiNumber PromptKind = "multi_number"
)

// RejectReason classifies why an attempt was discarded.
type RejectReason string

const (
	ReasonToken   RejectReason = "token"
	ReasonParse   RejectReason = "parse"
	ReasonRange   RejectReason = "range"
	ReasonCount   RejectReason = "count"
	ReasonInvalid RejectReason = "invalid_input"
)

// PromptEvent is emitted for every attempt of a prompt loop.
type PromptEvent struct {
	Timestamp time.Time    `json:"timestamp"`
	Kind      PromptKind   `json:"kind"`
	Message   string       `json:"message"`
	Input     string       `json:"input,omitempty"`
	Reason    RejectReason `json:"reason,omitempty"`
	Attempt   int          `json:"attempt"`
}

// PromptHooks defines callbacks for prompt observability.
type PromptHooks struct {
	OnAttempt func(context.Context, *PromptEvent)
	OnReject  func(context.Context, *PromptEvent)
	OnAccept  func(context.Context, *PromptEvent)
}
