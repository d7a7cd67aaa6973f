package commands

import (
	"context"

	"crossprobe/internal/application"
	"crossprobe/internal/domain"
)

// RefreshCommand rebuilds the entity cache from the design database.
type RefreshCommand struct {
	cache *application.EntityCache
}

// NewRefreshCommand creates a new RefreshCommand
func NewRefreshCommand(cache *application.EntityCache) *RefreshCommand {
	return &RefreshCommand{cache: cache}
}

// Execute refreshes the cache and returns refresh statistics. On
// failure the cache keeps serving its last-known-good generation; the
// error is for the host layer to log or surface, never fatal.
func (c *RefreshCommand) Execute(ctx context.Context) (*domain.RefreshStats, error) {
	return c.cache.Refresh()
}
