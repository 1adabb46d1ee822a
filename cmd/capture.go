package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/wellbeing-cli/internal/application"
	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/observability"
	"github.com/bnema/wellbeing-cli/internal/ports"
	"golang.org/x/sync/errgroup"
)

const maxRecordDuration = 5 * time.Minute

type liveCapture struct {
	record time.Duration
	snap   bool
}

func (c liveCapture) requested() bool {
	return c.record != 0 || c.snap
}

// captureLive records and snaps concurrently and stores what it captured in
// the controller. Nothing is stored unless every requested capture worked.
// Progress is drawn on progress when it is non-nil.
func captureLive(ctx context.Context, a *app, controller *application.CaptureController, req liveCapture, progress io.Writer) error {
	if req.record < 0 || req.record > maxRecordDuration {
		return fmt.Errorf("record duration must be between 0 and %s", maxRecordDuration)
	}

	var audio, image *domain.Artifact

	capture := func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		if req.record > 0 {
			g.Go(func() error {
				var err error
				audio, err = recordClip(gctx, a.microphone, req.record)
				return err
			})
		}
		if req.snap {
			g.Go(func() error {
				var err error
				image, err = snapFrame(gctx, a.camera)
				return err
			})
		}
		return g.Wait()
	}

	var err error
	if progress != nil {
		err = runWithProgress(ctx, progress, a.clock, liveCaptureStep(req), capture)
	} else {
		err = capture(ctx)
	}
	if err != nil {
		return err
	}

	for _, captured := range []*domain.Artifact{audio, image} {
		if captured == nil {
			continue
		}
		if err := controller.SetModalityMode(captured.Modality, domain.ModeLive); err != nil {
			return err
		}
		if err := controller.SetArtifact(captured.Modality, captured); err != nil {
			return err
		}
		observability.Component(a.log, "capture").Info().Str("modality", string(captured.Modality)).Int("bytes", captured.Size()).Msg("live capture stored")
	}

	return nil
}

func recordClip(ctx context.Context, mic ports.Microphone, duration time.Duration) (artifact *domain.Artifact, err error) {
	rec := application.NewAudioRecorder(mic)
	defer func() {
		err = errors.Join(err, rec.Close())
	}()

	if err := rec.Start(ctx); err != nil {
		return nil, err
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return rec.Stop()
}

func snapFrame(ctx context.Context, camera ports.Camera) (artifact *domain.Artifact, err error) {
	capture := application.NewCameraCapture(camera)
	if err := capture.Open(ctx); err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, capture.Close())
	}()

	return capture.Capture()
}
