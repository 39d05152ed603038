package api

import (
	"context"
	"io"

	"github.com/ARPaule28/fynd-app/internal/client/models"
)

// Client is the backend surface the app consumes. Authenticated operations
// take the bearer token explicitly so the transport stays stateless and the
// session remains owned by its store.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Student, error)
	ListStudents(ctx context.Context, token string) ([]models.Student, error)
	GetStudent(ctx context.Context, token, id string) (*models.Student, error)

	// UpdateStudent PUTs one step's serialized fragment; the server merges it
	// into the authoritative profile record.
	UpdateStudent(ctx context.Context, token, id string, fragment any) error

	// UploadMedia POSTs the file as a single multipart request with the
	// fixed field name "file". Non-resumable: an interrupted upload fails
	// wholesale and is restarted by the user.
	UploadMedia(ctx context.Context, token string, kind models.MediaKind, name string, r io.Reader) error
}
