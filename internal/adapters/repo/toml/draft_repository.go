package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	DraftPathKey = "draft.path"

	draftFileMode   = 0o600
	draftDirMode    = 0o700
	draftConfigDir  = ".config/wb"
	draftConfigFile = "draft.toml"
	tempFilePattern = ".draft-*.toml.tmp"
)

type DraftRepository struct {
	draftPath string
	now       func() time.Time
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.DraftRepository = (*DraftRepository)(nil)

func NewDraftRepository(cfg *viper.Viper) (*DraftRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(DraftPathKey, filepath.Join(homeDir, draftConfigDir, draftConfigFile))

	draftPath := cfg.GetString(DraftPathKey)
	if draftPath == "" {
		return nil, errors.New("draft path is empty")
	}
	draftPath, err = normalizeDraftPath(draftPath)
	if err != nil {
		return nil, err
	}

	return &DraftRepository{draftPath: draftPath, now: time.Now, mu: lockForPath(draftPath)}, nil
}

func (r *DraftRepository) Path() string {
	return r.draftPath
}

func (r *DraftRepository) Load(ctx context.Context) (domain.Draft, error) {
	if err := ctx.Err(); err != nil {
		return domain.Draft{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Draft{}, err
	}

	return fromSchema(file.Draft), nil
}

func (r *DraftRepository) Save(ctx context.Context, draft domain.Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.readSchema(); err != nil {
		return err
	}

	encoded := toSchema(draft)
	encoded.UpdatedAt = r.now().UTC().Format(time.RFC3339)

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(draftFileSchema{Draft: encoded})
}

func (r *DraftRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.draftPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove draft file: %w", err)
	}

	return nil
}

func (r *DraftRepository) readSchema() (draftFileSchema, error) {
	data, err := os.ReadFile(r.draftPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return draftFileSchema{}, nil
		}
		return draftFileSchema{}, fmt.Errorf("read draft file: %w", err)
	}

	var file draftFileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return draftFileSchema{}, fmt.Errorf("decode draft file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return draftFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeDraftPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve draft path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *DraftRepository) writeSchema(file draftFileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.draftPath), draftDirMode); err != nil {
		return fmt.Errorf("create draft directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode draft file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.draftPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp draft file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp draft file: %w", err)
	}

	if err := tempFile.Chmod(draftFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp draft file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp draft file: %w", err)
	}

	if err := os.Rename(tempName, r.draftPath); err != nil {
		return fmt.Errorf("replace draft file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(draft domain.Draft) draftSchema {
	return draftSchema{
		Text:      draft.Text,
		AudioMode: string(draft.AudioMode),
		ImageMode: string(draft.ImageMode),
		Audio:     toArtifactSchema(draft.Audio),
		Image:     toArtifactSchema(draft.Image),
	}
}

func fromSchema(draft draftSchema) domain.Draft {
	return domain.Draft{
		Text:      draft.Text,
		AudioMode: domain.ModalityMode(draft.AudioMode),
		ImageMode: domain.ModalityMode(draft.ImageMode),
		Audio:     fromArtifactSchema(draft.Audio),
		Image:     fromArtifactSchema(draft.Image),
	}
}

func toArtifactSchema(ref *domain.ArtifactRef) *artifactSchema {
	if ref == nil {
		return nil
	}

	return &artifactSchema{
		Key:       ref.Key,
		MediaType: ref.MediaType,
		Filename:  ref.Filename,
		Source:    string(ref.Source),
		Size:      ref.Size,
	}
}

func fromArtifactSchema(ref *artifactSchema) *domain.ArtifactRef {
	if ref == nil || ref.Key == "" {
		return nil
	}

	return &domain.ArtifactRef{
		Key:       ref.Key,
		MediaType: ref.MediaType,
		Filename:  ref.Filename,
		Source:    domain.ArtifactSource(ref.Source),
		Size:      ref.Size,
	}
}
