package application

import (
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
	"github.com/google/uuid"
)

// DraftService keeps a CaptureController alive across CLI invocations.
// Draft metadata goes to the repository and artifact bytes to the store.
type DraftService struct {
	repo   ports.DraftRepository
	store  ports.ArtifactStore
	newKey func() string
}

func NewDraftService(repo ports.DraftRepository, store ports.ArtifactStore) *DraftService {
	return &DraftService{repo: repo, store: store, newKey: uuid.NewString}
}

// Open restores the stored draft into a fresh controller.
func (s *DraftService) Open(ctx context.Context) (*CaptureController, error) {
	draft, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	draft = draft.WithDefaults()

	controller := NewCaptureController()
	controller.SetText(draft.Text)
	if err := controller.SetModalityMode(domain.ModalityAudio, draft.AudioMode); err != nil {
		return nil, err
	}
	if err := controller.SetModalityMode(domain.ModalityImage, draft.ImageMode); err != nil {
		return nil, err
	}

	for _, slot := range []struct {
		modality domain.Modality
		ref      *domain.ArtifactRef
	}{
		{domain.ModalityAudio, draft.Audio},
		{domain.ModalityImage, draft.Image},
	} {
		if slot.ref == nil {
			continue
		}

		data, err := s.store.Get(ctx, slot.ref.Key)
		if err != nil {
			return nil, fmt.Errorf("load %s artifact: %w", slot.modality, err)
		}

		if err := controller.SetArtifact(slot.modality, &domain.Artifact{
			Modality:  slot.modality,
			MediaType: slot.ref.MediaType,
			Filename:  slot.ref.Filename,
			Source:    slot.ref.Source,
			Data:      data,
		}); err != nil {
			return nil, err
		}
	}

	return controller, nil
}

// Save persists the controller state. New blobs are written before the
// metadata; if the metadata cannot be saved they are removed again.
func (s *DraftService) Save(ctx context.Context, controller *CaptureController) error {
	previous, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load draft: %w", err)
	}

	input := controller.Submission()
	modes := controller.Modes()
	draft := domain.Draft{
		Text:      input.Text,
		AudioMode: modes.Audio,
		ImageMode: modes.Image,
	}

	var written []string
	rollback := func(cause error) error {
		var rollbackErr error
		for _, key := range written {
			if err := s.store.Delete(ctx, key); err != nil {
				rollbackErr = errors.Join(rollbackErr, err)
			}
		}
		if rollbackErr != nil {
			return fmt.Errorf("save draft and rollback stored artifacts: %w", errors.Join(cause, rollbackErr))
		}
		return cause
	}

	if !input.Audio.Empty() {
		ref, err := s.putArtifact(ctx, input.Audio)
		if err != nil {
			return rollback(err)
		}
		written = append(written, ref.Key)
		draft.Audio = ref
	}
	if !input.Image.Empty() {
		ref, err := s.putArtifact(ctx, input.Image)
		if err != nil {
			return rollback(err)
		}
		written = append(written, ref.Key)
		draft.Image = ref
	}

	if err := s.repo.Save(ctx, draft); err != nil {
		return rollback(fmt.Errorf("save draft: %w", err))
	}

	return s.deleteRefs(ctx, previous.Audio, previous.Image)
}

// Discard drops the stored draft and every artifact it referenced. Modes
// survive a discard, like CaptureController.Reset.
func (s *DraftService) Discard(ctx context.Context) error {
	previous, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load draft: %w", err)
	}
	previous = previous.WithDefaults()

	if err := s.repo.Save(ctx, domain.Draft{AudioMode: previous.AudioMode, ImageMode: previous.ImageMode}); err != nil {
		return fmt.Errorf("discard draft: %w", err)
	}

	return s.deleteRefs(ctx, previous.Audio, previous.Image)
}

// Purge removes the draft file entirely, modes included.
func (s *DraftService) Purge(ctx context.Context) error {
	previous, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load draft: %w", err)
	}

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}

	return s.deleteRefs(ctx, previous.Audio, previous.Image)
}

// Draft returns the stored metadata without loading artifact bytes.
func (s *DraftService) Draft(ctx context.Context) (domain.Draft, error) {
	draft, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("load draft: %w", err)
	}

	return draft.WithDefaults(), nil
}

func (s *DraftService) putArtifact(ctx context.Context, artifact *domain.Artifact) (*domain.ArtifactRef, error) {
	key := path.Join(string(artifact.Modality), s.newKey()+path.Ext(artifact.Filename))
	if err := s.store.Put(ctx, key, artifact.Data); err != nil {
		return nil, fmt.Errorf("store %s artifact: %w", artifact.Modality, err)
	}

	return &domain.ArtifactRef{
		Key:       key,
		MediaType: artifact.MediaType,
		Filename:  artifact.Filename,
		Source:    artifact.Source,
		Size:      len(artifact.Data),
	}, nil
}

func (s *DraftService) deleteRefs(ctx context.Context, refs ...*domain.ArtifactRef) error {
	var errs error
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		if err := s.store.Delete(ctx, ref.Key); err != nil {
			errs = errors.Join(errs, fmt.Errorf("delete stale artifact %q: %w", ref.Key, err))
		}
	}

	return errs
}
