package ports

import (
	"context"

	"github.com/bnema/wellbeing-cli/internal/domain"
)

type DraftRepository interface {
	Load(ctx context.Context) (domain.Draft, error)
	Save(ctx context.Context, draft domain.Draft) error
	Clear(ctx context.Context) error
}
