package application

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	wavHeader = []byte("RIFF\x24\x00\x00\x00WAVEfmt \x10\x00\x00\x00\x01\x00\x01\x00")
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
)

func TestSniffUploadAcceptsMatchingMedia(t *testing.T) {
	t.Parallel()

	audio, err := SniffUpload(domain.ModalityAudio, "voice.bin", wavHeader)
	require.NoError(t, err)
	assert.Equal(t, domain.ModalityAudio, audio.Modality)
	assert.Equal(t, "audio/wav", audio.MediaType)
	assert.Equal(t, "voice.bin", audio.Filename)
	assert.Equal(t, domain.ModeUpload, audio.Source)

	image, err := SniffUpload(domain.ModalityImage, "me.png", pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", image.MediaType)
}

func TestSniffUploadRejectsWrongSlot(t *testing.T) {
	t.Parallel()

	_, err := SniffUpload(domain.ModalityImage, "voice.png", wavHeader)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)

	_, err = SniffUpload(domain.ModalityAudio, "notes.wav", []byte("just some text"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)

	_, err = SniffUpload(domain.ModalityText, "x", pngHeader)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestSniffUploadRejectsEmptyData(t *testing.T) {
	t.Parallel()

	_, err := SniffUpload(domain.ModalityAudio, "empty.wav", nil)
	assert.Error(t, err)
}

func TestReadUpload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "face.png")
	require.NoError(t, os.WriteFile(path, pngHeader, 0o600))

	artifact, err := ReadUpload(domain.ModalityImage, path)
	require.NoError(t, err)
	assert.Equal(t, "face.png", artifact.Filename)
	assert.Equal(t, pngHeader, artifact.Data)

	_, err = ReadUpload(domain.ModalityImage, dir)
	assert.Error(t, err)

	_, err = ReadUpload(domain.ModalityImage, filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
