package storage

import (
	"agenthub/pkg/domain"
	"context"
)

// MemoryStorage keeps the console agents' shared memory log.
type MemoryStorage interface {
	StoreMemory(ctx context.Context, item domain.MemoryItem) error
	// Memories returns the latest limit items, oldest first.
	Memories(ctx context.Context, limit uint) ([]domain.MemoryItem, error)
	ClearMemories(ctx context.Context) error
}
