package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ARPaule28/fynd-app/internal/client/flow"
	"github.com/ARPaule28/fynd-app/internal/client/media"
	"github.com/ARPaule28/fynd-app/internal/client/models"
	"github.com/ARPaule28/fynd-app/internal/client/session"
)

// HighlightVideo runs the highlight-video screen: prompt for a local file,
// validate it, and upload it as the student's highlight video.
func (a *App) HighlightVideo(ctx context.Context) error {
	return a.upload(ctx, flow.StepHighlightVideo, models.MediaKindHighlightVideo,
		"Path to highlight video (mp4)")
}

// ProfileImage runs the profile-image screen, the last onboarding step.
func (a *App) ProfileImage(ctx context.Context) error {
	return a.upload(ctx, flow.StepProfileImage, models.MediaKindProfileImage,
		"Path to profile image (jpg)")
}

func (a *App) upload(ctx context.Context, step flow.Step, kind models.MediaKind, prompt string) error {
	path, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}

	ref, err := media.ResolveFile(path, kind)
	if err != nil {
		if errors.Is(err, media.ErrNoMediaSelected) {
			fmt.Println("No usable file selected, nothing was uploaded")
		} else {
			fmt.Println("Cannot access file:", err)
		}
		return err
	}

	err = a.flow.Submit(ctx, step, func(ctx context.Context, sess session.Session) error {
		return a.media.Upload(ctx, sess, ref)
	})
	if err != nil {
		fmt.Println("Upload failed:", err)
		return err
	}
	fmt.Println("Upload complete")
	return nil
}
