package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*DraftRepository, string) {
	t.Helper()

	draftPath := filepath.Join(t.TempDir(), "draft.toml")
	config := viper.New()
	config.Set(DraftPathKey, draftPath)

	repo, err := NewDraftRepository(config)
	require.NoError(t, err)

	return repo, draftPath
}

func TestDraftRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	draft := domain.Draft{
		Text:      "I feel great",
		AudioMode: domain.ModeLive,
		ImageMode: domain.ModeUpload,
		Audio: &domain.ArtifactRef{
			Key:       "audio/abc.wav",
			MediaType: "audio/wav",
			Filename:  "recording.wav",
			Source:    domain.ModeLive,
			Size:      44,
		},
	}

	require.NoError(t, repo.Save(context.Background(), draft))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, draft, got)
}

func TestDraftRepositoryMissingFileIsEmptyDraft(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Draft{}, got)
}

func TestDraftRepositoryWritesPrivateVersionedFile(t *testing.T) {
	t.Parallel()

	repo, draftPath := newTestRepository(t)
	repo.now = func() time.Time { return time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC) }

	require.NoError(t, repo.Save(context.Background(), domain.Draft{Text: "hello"}))

	info, err := os.Stat(draftPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(draftPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "2026-02-14T11:00:00Z")
}

func TestDraftRepositoryRejectsFutureSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, draftPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(draftPath, []byte("version = 9\n"), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported draft schema version 9")
}

func TestDraftRepositoryReadsHandWrittenFile(t *testing.T) {
	t.Parallel()

	repo, draftPath := newTestRepository(t)
	require.NoError(t, os.WriteFile(draftPath, []byte(strings.Join([]string{
		"[draft]",
		"text = \"tired\"",
		"image_mode = \"live\"",
		"",
		"[draft.image]",
		"key = \"image/1.jpg\"",
		"media_type = \"image/jpeg\"",
		"filename = \"camera-capture.jpg\"",
		"source = \"live\"",
		"size = 3",
	}, "\n")), 0o600))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tired", got.Text)
	assert.Equal(t, domain.ModalityMode(""), got.AudioMode)
	assert.Equal(t, domain.ModeLive, got.ImageMode)
	require.NotNil(t, got.Image)
	assert.Equal(t, "image/1.jpg", got.Image.Key)
	assert.Nil(t, got.Audio)
}

func TestDraftRepositoryClear(t *testing.T) {
	t.Parallel()

	repo, draftPath := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), domain.Draft{Text: "x"}))
	require.NoError(t, repo.Clear(context.Background()))
	require.NoError(t, repo.Clear(context.Background()))

	_, err := os.Stat(draftPath)
	assert.True(t, os.IsNotExist(err))
}

func TestDraftRepositoryHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, repo.Save(ctx, domain.Draft{}), context.Canceled)
	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
