package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/wellbeing-cli/internal/adapters/blob/file"
	passstore "github.com/bnema/wellbeing-cli/internal/adapters/blob/pass"
	"github.com/bnema/wellbeing-cli/internal/ports"
)

// Store reads and writes through a primary artifact store and falls back to a
// secondary one when the primary fails.
type Store struct {
	primary  ports.ArtifactStore
	fallback ports.ArtifactStore
}

var _ ports.ArtifactStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary artifact store is nil")
	errNilFallbackStore = errors.New("fallback artifact store is nil")
)

func NewStore(primary ports.ArtifactStore, fallback ports.ArtifactStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(prefix string, fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(prefix), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	err := s.primary.Put(ctx, key, data)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Put(ctx, key, data)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.primary.Get(ctx, key)
	if err == nil {
		return data, nil
	}
	if shouldSkipFallback(err) {
		return nil, err
	}

	fallbackData, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackData, nil
	}

	return nil, fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Delete removes the key from both backends, since a Put may have landed in
// either one.
func (s *Store) Delete(ctx context.Context, key string) error {
	primaryErr := s.primary.Delete(ctx, key)
	if shouldSkipFallback(primaryErr) {
		return primaryErr
	}
	fallbackErr := s.fallback.Delete(ctx, key)

	switch {
	case primaryErr == nil || fallbackErr == nil:
		return nil
	default:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", primaryErr, fallbackErr)
	}
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
