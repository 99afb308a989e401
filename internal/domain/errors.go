package domain

import (
	"context"
	"errors"
)

var (
	// ErrGeneratorOffline is returned by a generator that was never given
	// usable credentials. It is permanent for the process lifetime.
	ErrGeneratorOffline = errors.New("generator offline")

	// ErrEmptyResponse means the provider answered but no text could be
	// extracted from the response.
	ErrEmptyResponse = errors.New("provider returned no text")
)

// Failure reasons used as log values and metric labels.
const (
	ReasonOffline       = "offline"
	ReasonEmptyResponse = "empty_response"
	ReasonTimeout       = "timeout"
	ReasonCanceled      = "canceled"
	ReasonTransport     = "transport"
	ReasonValidation    = "validation"
)

// FailureReason classifies a generation error. It returns "" for a nil error.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrGeneratorOffline):
		return ReasonOffline
	case errors.Is(err, ErrEmptyResponse):
		return ReasonEmptyResponse
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, context.Canceled):
		return ReasonCanceled
	default:
		return ReasonTransport
	}
}
