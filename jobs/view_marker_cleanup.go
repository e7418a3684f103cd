package jobs

import (
	"context"
	"fmt"
	"time"
)

type ViewMarkerCleanupConfig struct {
	// Grace keeps markers for a while after they expire.
	Grace time.Duration `mapstructure:"grace"`
}

// ViewMarkerCleanup deletes view markers that no longer deduplicate
// anything. Counters are left untouched.
func (h *handler) ViewMarkerCleanup(ctx context.Context, c Config) error {
	var cfg ViewMarkerCleanupConfig
	if err := c.Decode(&cfg); err != nil {
		return fmt.Errorf("invalid config for %s job: %w", TypeViewMarkerCleanup, err)
	}

	before := h.now().Add(-cfg.Grace)
	h.logger.Info(ctx, fmt.Sprintf("starting %q job", TypeViewMarkerCleanup), "before", before)

	purged, err := h.viewService.PurgeExpiredMarkers(ctx, before)
	if err != nil {
		return fmt.Errorf("purging expired view markers: %w", err)
	}

	h.logger.Info(ctx, "purged expired view markers", "count", purged)
	return nil
}
