package toml

import "fmt"

const currentSchemaVersion = 1

type draftFileSchema struct {
	Version int         `toml:"version"`
	Draft   draftSchema `toml:"draft"`
}

func (s *draftFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s draftFileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported draft schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type draftSchema struct {
	Text      string          `toml:"text"`
	AudioMode string          `toml:"audio_mode"`
	ImageMode string          `toml:"image_mode"`
	Audio     *artifactSchema `toml:"audio,omitempty"`
	Image     *artifactSchema `toml:"image,omitempty"`
	UpdatedAt string          `toml:"updated_at,omitempty"`
}

type artifactSchema struct {
	Key       string `toml:"key"`
	MediaType string `toml:"media_type"`
	Filename  string `toml:"filename"`
	Source    string `toml:"source"`
	Size      int    `toml:"size"`
}
