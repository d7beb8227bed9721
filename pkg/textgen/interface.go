// Package textgen defines text generation backed by a large language model.
package textgen

import "context"

// Generator produces text for a prompt under a system instruction.
//
//go:generate mockgen -package mocktextgen -source=interface.go -destination=mock/mocktextgen.go *
type Generator interface {
	// Generate returns the model's answer. Upstream quota errors surface as
	// serrors.ErrRateLimited.
	Generate(ctx context.Context, system, prompt string) (string, error)
	// Model names the model answering Generate calls.
	Model() string
}
