package services

import (
	"context"

	"github.com/ARPaule28/fynd-app/internal/client/api"
	"github.com/ARPaule28/fynd-app/internal/client/media"
	"github.com/ARPaule28/fynd-app/internal/client/models"
	"github.com/ARPaule28/fynd-app/internal/client/session"
)

// MediaService uploads a picked media file to its dedicated endpoint. A
// reference must exist before upload; otherwise the attempt fails with
// media.ErrNoMediaSelected and no request is made.
type MediaService interface {
	Upload(ctx context.Context, sess session.Session, ref models.MediaRef) error
}

type mediaService struct {
	client api.Client
}

func NewMediaService(client api.Client) MediaService {
	return &mediaService{client: client}
}

func (m *mediaService) Upload(ctx context.Context, sess session.Session, ref models.MediaRef) error {
	f, err := media.Open(ref)
	if err != nil {
		return err
	}
	defer f.Close()

	name := ref.Kind.UploadName(sess.StudentID)
	return m.client.UploadMedia(ctx, sess.AccessToken, ref.Kind, name, f)
}
