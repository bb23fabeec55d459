// Package ports defines interfaces between the application core and its
// adapters. The HTTP layer depends on these contracts rather than on
// concrete services, and the services depend on them for randomness and
// metrics.
//
// Port Design Principles:
//   - Context as first parameter on request-scoped operations
//   - Return domain types, never transport DTOs
//   - Errors use domain error types (ErrRequestProcessing, ErrValidation)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/alien-survival-api/internal/domain"
)

// AdviceGenerator produces survival advice for a user profile.
//
// Example usage in the HTTP layer:
//
//	advice, err := generator.Generate(ctx, req)
//	if err != nil {
//	    dto.HandleError(c, err)
//	    return
//	}
type AdviceGenerator interface {
	// Generate builds advice for req. Unknown or missing signs resolve to
	// the fallback profile; that is not an error.
	// Returns a domain.RequestProcessingError if the advice cannot be built.
	Generate(ctx context.Context, req domain.Request) (domain.Advice, error)
}

// SignResolver maps a birthdate to its zodiac sign.
type SignResolver interface {
	// ResolveSign parses a YYYY-MM-DD birthdate.
	// Returns a domain.ValidationError for missing or malformed dates.
	ResolveSign(ctx context.Context, birthdate string) (domain.Sign, error)
}

// SongPicker draws one song title per call.
// Implementations must be safe for concurrent use.
type SongPicker interface {
	Pick() (string, error)
}

// AdviceRecorder receives one event per generated advice.
// Implementations must be safe for concurrent use.
type AdviceRecorder interface {
	// RecordAdvice is called with the sign actually used and whether the
	// fallback replaced the requested sign.
	RecordAdvice(sign string, fallback bool)
}
