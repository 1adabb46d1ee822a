package application

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/gabriel-vasile/mimetype"
)

const MaxUploadBytes = 25 << 20

// ReadUpload loads a file chosen by the user into an artifact for the slot.
func ReadUpload(modality domain.Modality, path string) (*domain.Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s upload: %w", modality, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s upload %q is a directory", modality, path)
	}
	if info.Size() > MaxUploadBytes {
		return nil, fmt.Errorf("%s upload %q exceeds %d bytes", modality, path, MaxUploadBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s upload: %w", modality, err)
	}

	return SniffUpload(modality, filepath.Base(path), data)
}

// SniffUpload tags uploaded bytes with their detected media type. The
// filename extension is not trusted.
func SniffUpload(modality domain.Modality, filename string, data []byte) (*domain.Artifact, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%s upload %q is empty", modality, filename)
	}

	mediaType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	mediaType = strings.TrimSpace(mediaType)
	if !acceptsMediaType(modality, mediaType) {
		return nil, fmt.Errorf("%w: %s for %s slot", domain.ErrUnsupportedMedia, mediaType, modality)
	}

	return &domain.Artifact{
		Modality:  modality,
		MediaType: mediaType,
		Filename:  filename,
		Source:    domain.ModeUpload,
		Data:      data,
	}, nil
}

func acceptsMediaType(modality domain.Modality, mediaType string) bool {
	switch modality {
	case domain.ModalityAudio:
		return strings.HasPrefix(mediaType, "audio/") || mediaType == "video/webm" || mediaType == "application/ogg"
	case domain.ModalityImage:
		return strings.HasPrefix(mediaType, "image/")
	default:
		return false
	}
}
