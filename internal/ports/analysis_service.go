package ports

import (
	"context"

	"github.com/bnema/wellbeing-cli/internal/domain"
)

// AnalysisService is the remote analysis backend.
type AnalysisService interface {
	Analyze(ctx context.Context, userID string, input domain.SessionInput) (domain.AnalysisResult, error)
	History(ctx context.Context, userID string) ([]domain.HistoryEntry, error)
}
