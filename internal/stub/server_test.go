package stub

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ARPaule28/fynd-app/internal/client/api"
	"github.com/ARPaule28/fynd-app/internal/client/models"
	"github.com/ARPaule28/fynd-app/internal/logging"
)

// newTestBackend spins up the stub behind httptest and returns a real API
// client pointed at it, exercising the full HTTP path end to end.
func newTestBackend(t *testing.T) (*api.HTTPClient, *Server) {
	t.Helper()
	log := logging.NewDefault()

	srv, err := NewServer([]byte("test-secret"), time.Hour, filepath.Join(t.TempDir(), "uploads"), log)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return api.NewHTTPClient(ts.URL, 5*time.Second, log), srv
}

func register(t *testing.T, client *api.HTTPClient, email string) *models.Student {
	t.Helper()
	student, err := client.Register(context.Background(), models.RegisterRequest{
		Name:        "Ada Lovelace",
		Username:    "ada",
		Email:       email,
		Password:    "s3cret",
		AccountType: "Student",
	})
	require.NoError(t, err)
	require.NotEmpty(t, student.ID)
	return student
}

func TestRegisterAndLogin(t *testing.T) {
	client, _ := newTestBackend(t)
	student := register(t, client, "ada@x.io")

	resp, err := client.Login(context.Background(), "ada@x.io", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.False(t, resp.HasAdditionalInfo)
	require.Equal(t, student.ID, resp.User.Student.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	client, _ := newTestBackend(t)
	register(t, client, "ada@x.io")

	_, err := client.Login(context.Background(), "ada@x.io", "wrong")
	require.ErrorIs(t, err, api.ErrUnauthenticated)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	client, _ := newTestBackend(t)
	register(t, client, "ada@x.io")

	_, err := client.Register(context.Background(), models.RegisterRequest{
		Name: "Other", Username: "other", Email: "ada@x.io", Password: "pw",
	})
	require.ErrorIs(t, err, api.ErrServer)
}

func TestUpdate_MergesFragmentsAcrossSteps(t *testing.T) {
	client, _ := newTestBackend(t)
	student := register(t, client, "ada@x.io")

	resp, err := client.Login(context.Background(), "ada@x.io", "s3cret")
	require.NoError(t, err)
	token := resp.AccessToken

	ctx := context.Background()
	require.NoError(t, client.UpdateStudent(ctx, token, student.ID, models.InfoFragment{
		Address:     "1 Main St, , Springfield, IL, 62701",
		PhoneNumber: "555-0100",
		Sex:         "Female",
	}))
	require.NoError(t, client.UpdateStudent(ctx, token, student.ID, models.SkillsFragment{
		Skills: "Communication, Teamwork",
	}))
	require.NoError(t, client.UpdateStudent(ctx, token, student.ID, models.CareersFragment{
		Careers: "Finance: Banking Services, Insurance",
	}))

	got, err := client.GetStudent(ctx, token, student.ID)
	require.NoError(t, err)
	require.Equal(t, "1 Main St, , Springfield, IL, 62701", got.Address)
	require.Equal(t, "555-0100", got.Phone)
	require.Equal(t, "Female", got.Sex)
	require.Equal(t, "Communication, Teamwork", got.Skills)
	require.Equal(t, "Finance: Banking Services, Insurance", got.Careers)

	// A later fragment must not erase earlier ones.
	require.NotEmpty(t, got.Address)

	// Completed additional info flips the login flag.
	resp, err = client.Login(context.Background(), "ada@x.io", "s3cret")
	require.NoError(t, err)
	require.True(t, resp.HasAdditionalInfo)
}

func TestUpdate_OtherStudentForbidden(t *testing.T) {
	client, _ := newTestBackend(t)
	register(t, client, "ada@x.io")
	other, err := client.Register(context.Background(), models.RegisterRequest{
		Name: "Grace", Username: "grace", Email: "grace@x.io", Password: "pw",
	})
	require.NoError(t, err)

	resp, err := client.Login(context.Background(), "ada@x.io", "s3cret")
	require.NoError(t, err)

	err = client.UpdateStudent(context.Background(), resp.AccessToken, other.ID, models.EmailFragment{Email: "x@x.io"})
	require.ErrorIs(t, err, api.ErrUnauthenticated)
}

func TestList_RequiresToken(t *testing.T) {
	client, _ := newTestBackend(t)
	register(t, client, "ada@x.io")

	_, err := client.ListStudents(context.Background(), "not-a-token")
	require.ErrorIs(t, err, api.ErrUnauthenticated)

	resp, err := client.Login(context.Background(), "ada@x.io", "s3cret")
	require.NoError(t, err)

	students, err := client.ListStudents(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	require.Len(t, students, 1)
	require.Equal(t, "Ada Lovelace", students[0].Name)
}

func TestUpload_SetsProfileFields(t *testing.T) {
	client, _ := newTestBackend(t)
	student := register(t, client, "ada@x.io")

	resp, err := client.Login(context.Background(), "ada@x.io", "s3cret")
	require.NoError(t, err)
	token := resp.AccessToken
	ctx := context.Background()

	video := models.MediaKindHighlightVideo
	require.NoError(t, client.UploadMedia(ctx, token, video,
		video.UploadName(student.ID), bytes.NewReader([]byte("movie-bytes"))))

	image := models.MediaKindProfileImage
	require.NoError(t, client.UploadMedia(ctx, token, image,
		image.UploadName(student.ID), bytes.NewReader([]byte("jpeg-bytes"))))

	got, err := client.GetStudent(ctx, token, student.ID)
	require.NoError(t, err)
	require.Equal(t, "/uploads/highlight_"+student.ID+".mp4", got.VideoHighlight)
	require.Equal(t, "/uploads/profile_image.jpg", got.ProfileImage)
}
