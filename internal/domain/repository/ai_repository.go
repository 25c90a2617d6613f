package repository

import "context"

// AIRepository is the text-generation boundary.
type AIRepository interface {
	// GenerateText sends a system/user instruction pair and returns the
	// generated prose, bounded by maxTokens.
	GenerateText(ctx context.Context, system, prompt string, maxTokens int32) (string, error)

	// Close releases the underlying client.
	Close() error
}
