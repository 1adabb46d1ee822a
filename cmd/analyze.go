package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/bnema/wellbeing-cli/internal/adapters/render/report"
	"github.com/bnema/wellbeing-cli/internal/application"
	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/observability"
	"github.com/spf13/cobra"
)

type analysisOutput struct {
	Result  domain.AnalysisResult     `json:"result"`
	Delta   application.Delta         `json:"delta"`
	Latency string                    `json:"latency"`
	Radar   []application.SeriesPoint `json:"radar"`
}

func newAnalyzeCmd(app *app) *cobra.Command {
	var text string
	var audioPath string
	var imagePath string
	var record time.Duration
	var snap bool
	var asJSON bool
	var keepDraft bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Submit the current draft plus any given inputs for analysis",
		Long:  "analyze merges --text, --audio, --image, --record and --snap into the saved draft, sends it to the analysis service and renders the report. The draft is cleared after a successful analysis unless --keep-draft is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			controller, err := app.drafts.Open(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("text") {
				controller.SetText(text)
			}
			if err := attachUpload(controller, domain.ModalityAudio, audioPath); err != nil {
				return err
			}
			if err := attachUpload(controller, domain.ModalityImage, imagePath); err != nil {
				return err
			}
			if req := (liveCapture{record: record, snap: snap}); req.requested() {
				var progress io.Writer
				if !asJSON {
					progress = cmd.ErrOrStderr()
				}
				if err := captureLive(ctx, app, controller, req, progress); err != nil {
					return err
				}
			}

			if err := app.drafts.Save(ctx, controller); err != nil {
				return err
			}
			if !controller.IsSubmittable() {
				return fmt.Errorf("%w: add --text, --audio, --image, --record or --snap", domain.ErrEmptySubmission)
			}
			warnMismatches(app, controller)

			client := application.NewAnalysisClient(app.service, app.clock, app.log)
			input := controller.Submission()
			var result domain.AnalysisResult
			submit := func(ctx context.Context) error {
				var err error
				result, err = client.Submit(ctx, app.cfg.UserName, input)
				return err
			}

			if asJSON {
				err = submit(ctx)
			} else {
				err = runWithProgress(ctx, cmd.ErrOrStderr(), app.clock, submissionStep(input, app.cfg.HTTPTimeout), submit)
			}
			if err != nil {
				snapshot := client.Snapshot()
				if snapshot.State == application.RequestFailed {
					return fmt.Errorf("%s (draft kept for retry): %w", snapshot.Message, err)
				}
				return err
			}

			if !keepDraft {
				if err := app.drafts.Discard(ctx); err != nil {
					observability.Component(app.log, "draft").Warn().Err(err).Msg("clear draft after analysis")
				}
			}

			return writeAnalysisOutput(cmd, app, result, asJSON)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "free-text note to analyze")
	cmd.Flags().StringVar(&audioPath, "audio", "", "audio file to upload")
	cmd.Flags().StringVar(&imagePath, "image", "", "image file to upload")
	cmd.Flags().DurationVar(&record, "record", 0, "record audio from the microphone for this long")
	cmd.Flags().BoolVar(&snap, "snap", false, "capture a photo from the camera")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVar(&keepDraft, "keep-draft", false, "keep the draft after a successful analysis")
	cmd.MarkFlagsMutuallyExclusive("audio", "record")
	cmd.MarkFlagsMutuallyExclusive("image", "snap")

	return cmd
}

func attachUpload(controller *application.CaptureController, modality domain.Modality, path string) error {
	if path == "" {
		return nil
	}

	artifact, err := application.ReadUpload(modality, path)
	if err != nil {
		return err
	}
	if err := controller.SetModalityMode(modality, domain.ModeUpload); err != nil {
		return err
	}

	return controller.SetArtifact(modality, artifact)
}

func warnMismatches(app *app, controller *application.CaptureController) {
	for _, modality := range []domain.Modality{domain.ModalityAudio, domain.ModalityImage} {
		if controller.ArtifactMismatch(modality) {
			observability.Component(app.log, "draft").Warn().Str("modality", string(modality)).Msg("attached artifact was captured in a different mode than the active one")
		}
	}
}

func writeAnalysisOutput(cmd *cobra.Command, app *app, result domain.AnalysisResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(analysisOutput{
			Result:  result,
			Delta:   application.ScoreDelta(result),
			Latency: application.FormattedLatency(result),
			Radar:   application.RadarSeries(result),
		})
	}

	rendered, err := app.resultRenderer(result, report.RenderOptions{Location: app.location})
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
