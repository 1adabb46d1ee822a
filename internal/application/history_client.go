package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const timelineClockLayout = "15:04:05"

// HistoryClient keeps the last successfully loaded history of a user.
type HistoryClient struct {
	service ports.AnalysisService
	log     zerolog.Logger

	mu      sync.RWMutex
	entries []domain.HistoryEntry
	loaded  bool
}

type TimelinePoint struct {
	Time  string  `json:"time"`
	Score float64 `json:"score"`
}

func NewHistoryClient(service ports.AnalysisService, log zerolog.Logger) *HistoryClient {
	return &HistoryClient{
		service: service,
		log:     log.With().Str("component", "history").Logger(),
	}
}

// Load replaces the held history with the service's answer. On failure the
// previous history is kept and the error is returned for a non-fatal notice.
func (c *HistoryClient) Load(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	entries, err := c.service.History(ctx, userID)
	if err != nil {
		c.log.Warn().Err(err).Str("user_id", userID).Msg("history refresh failed")
		return c.Entries(), fmt.Errorf("load history: %w", err)
	}

	c.mu.Lock()
	c.entries = append([]domain.HistoryEntry(nil), entries...)
	c.loaded = true
	c.mu.Unlock()

	c.log.Debug().Str("user_id", userID).Int("entries", len(entries)).Msg("history loaded")

	return c.Entries(), nil
}

func (c *HistoryClient) Entries() []domain.HistoryEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]domain.HistoryEntry(nil), c.entries...)
}

// Loaded reports whether any Load has succeeded.
func (c *HistoryClient) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.loaded
}

// TimelineSeries maps history entries to clock-time points in loc. The order
// given by the service is kept as is.
func TimelineSeries(history []domain.HistoryEntry, loc *time.Location) []TimelinePoint {
	if loc == nil {
		loc = time.Local
	}

	return lo.Map(history, func(entry domain.HistoryEntry, _ int) TimelinePoint {
		return TimelinePoint{
			Time:  entry.Timestamp.In(loc).Format(timelineClockLayout),
			Score: entry.WellbeingScore,
		}
	})
}
