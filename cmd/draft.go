package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/wellbeing-cli/internal/application"
	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/spf13/cobra"
)

type draftSlotOutput struct {
	Mode     domain.ModalityMode `json:"mode"`
	Artifact *domain.ArtifactRef `json:"artifact,omitempty"`
	Mismatch bool                `json:"mismatch"`
}

type draftOutput struct {
	Text        string          `json:"text"`
	Audio       draftSlotOutput `json:"audio"`
	Image       draftSlotOutput `json:"image"`
	Submittable bool            `json:"submittable"`
}

func newDraftCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Build up a submission across several commands",
	}

	cmd.AddCommand(
		newDraftShowCmd(app),
		newDraftTextCmd(app),
		newDraftModeCmd(app),
		newDraftAttachCmd(app),
		newDraftRecordCmd(app),
		newDraftSnapCmd(app),
		newDraftClearCmd(app),
		newDraftResetCmd(app),
	)

	return cmd
}

func newDraftShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := app.drafts.Draft(cmd.Context())
			if err != nil {
				return err
			}

			out := draftOutput{
				Text:        draft.Text,
				Audio:       slotOutput(draft.AudioMode, draft.Audio),
				Image:       slotOutput(draft.ImageMode, draft.Image),
				Submittable: draft.Text != "" || refHasData(draft.Audio) || refHasData(draft.Image),
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			return writeDraft(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the draft as JSON")

	return cmd
}

func newDraftTextCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "text [note...]",
		Short: "Set the text note; no arguments clears it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateDraft(cmd, app, func(controller *application.CaptureController) error {
				controller.SetText(strings.Join(args, " "))
				return nil
			})
		},
	}
}

func newDraftModeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mode <audio|image> <upload|live>",
		Short: "Choose how a modality is captured",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			modality, err := domain.ParseCaptureModality(args[0])
			if err != nil {
				return err
			}
			mode, err := domain.ParseModalityMode(args[1])
			if err != nil {
				return err
			}

			return updateDraft(cmd, app, func(controller *application.CaptureController) error {
				return controller.SetModalityMode(modality, mode)
			})
		},
	}
}

func newDraftAttachCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "attach <audio|image> <file>",
		Short: "Attach an uploaded file to a modality",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			modality, err := domain.ParseCaptureModality(args[0])
			if err != nil {
				return err
			}

			return updateDraft(cmd, app, func(controller *application.CaptureController) error {
				return attachUpload(controller, modality, args[1])
			})
		},
	}
}

func newDraftRecordCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "record <duration>",
		Short: "Record audio from the microphone into the draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			duration, err := time.ParseDuration(args[0])
			if err != nil {
				return fmt.Errorf("parse duration: %w", err)
			}
			if duration <= 0 {
				return fmt.Errorf("duration must be positive, got %s", duration)
			}

			return updateDraft(cmd, app, func(controller *application.CaptureController) error {
				return captureLive(cmd.Context(), app, controller, liveCapture{record: duration}, cmd.ErrOrStderr())
			})
		},
	}
}

func newDraftSnapCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "snap",
		Short: "Capture a camera photo into the draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return updateDraft(cmd, app, func(controller *application.CaptureController) error {
				return captureLive(cmd.Context(), app, controller, liveCapture{snap: true}, cmd.ErrOrStderr())
			})
		},
	}
}

func newDraftClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop the draft inputs, keeping the chosen modes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.drafts.Discard(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Draft cleared.")
			return err
		},
	}
}

func newDraftResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove the draft entirely, modes included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.drafts.Purge(cmd.Context()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Draft reset.")
			return err
		},
	}
}

func updateDraft(cmd *cobra.Command, app *app, change func(*application.CaptureController) error) error {
	controller, err := app.drafts.Open(cmd.Context())
	if err != nil {
		return err
	}
	if err := change(controller); err != nil {
		return err
	}
	if err := app.drafts.Save(cmd.Context(), controller); err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), "Draft saved.")
	return err
}

func slotOutput(mode domain.ModalityMode, ref *domain.ArtifactRef) draftSlotOutput {
	return draftSlotOutput{
		Mode:     mode,
		Artifact: ref,
		Mismatch: ref.MismatchedWith(mode),
	}
}

func refHasData(ref *domain.ArtifactRef) bool {
	return ref != nil && ref.Size > 0
}

func writeDraft(w io.Writer, out draftOutput) error {
	text := out.Text
	if text == "" {
		text = "(none)"
	}

	lines := []string{
		fmt.Sprintf("text: %s", text),
		fmt.Sprintf("audio: %s", slotLine(out.Audio)),
		fmt.Sprintf("image: %s", slotLine(out.Image)),
		fmt.Sprintf("submittable: %t", out.Submittable),
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func slotLine(slot draftSlotOutput) string {
	if slot.Artifact == nil {
		return fmt.Sprintf("%s, nothing attached", slot.Mode)
	}

	line := fmt.Sprintf("%s, %s (%s, %d bytes, %s)", slot.Mode, slot.Artifact.Filename, slot.Artifact.MediaType, slot.Artifact.Size, slot.Artifact.Source)
	if slot.Mismatch {
		line += " [captured in another mode]"
	}

	return line
}
