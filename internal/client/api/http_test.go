package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ARPaule28/fynd-app/internal/client/models"
	"github.com/ARPaule28/fynd-app/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, logging.NewDefault()), srv
}

func TestLogin_SendsCredentialsAndDecodes(t *testing.T) {
	var gotBody models.LoginRequest
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))
		require.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"accessToken":       "tok-123",
			"hasAdditionalInfo": false,
			"user":              map[string]any{"student": map[string]any{"id": "stu-1", "email": "a@b.c"}},
		})
	}))

	resp, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.LoginRequest{Email: "a@b.c", Password: "secret"}, gotBody)
	assert.Equal(t, "tok-123", resp.AccessToken)
	assert.False(t, resp.HasAdditionalInfo)
	assert.Equal(t, "stu-1", resp.User.Student.ID)
}

func TestListStudents_CarriesBearerToken(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]models.Student{{ID: "1", Name: "Ana"}, {ID: "2", Name: "Ben"}})
	}))

	students, err := c.ListStudents(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Ana", students[0].Name)
}

func TestUpdateStudent_PutsFragment(t *testing.T) {
	var body map[string]string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/students/stu-1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))

	err := c.UpdateStudent(context.Background(), "tok", "stu-1", models.SkillsFragment{Skills: "SEO"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"skills": "SEO"}, body)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthenticated},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrUnauthenticated},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrServer},
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			_, err := c.GetStudent(context.Background(), "tok", "stu-1")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransportFailure_IsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // no listener anymore

	c := NewHTTPClient(srv.URL, time.Second, logging.NewDefault())
	_, err := c.ListStudents(context.Background(), "tok")
	require.ErrorIs(t, err, ErrNetwork)
}

func TestTransportFailure_CancellationStaysMatchable(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.ListStudents(ctx, "tok")
		done <- err
	}()
	cancel()

	err := <-done
	require.ErrorIs(t, err, ErrNetwork)
	require.ErrorIs(t, err, context.Canceled)
}

func TestUploadMedia_MultipartShape(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/students/upload-video-highlight", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "highlight_stu-1.mp4", header.Filename)
		assert.Equal(t, "video/mp4", header.Header.Get("Content-Type"))

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake-video-bytes", string(data))
		w.WriteHeader(http.StatusCreated)
	}))

	err := c.UploadMedia(context.Background(), "tok",
		models.MediaKindHighlightVideo, "highlight_stu-1.mp4",
		strings.NewReader("fake-video-bytes"))
	require.NoError(t, err)
}

func TestUploadMedia_UnknownKind(t *testing.T) {
	c, _ := newTestClient(t, http.NotFoundHandler())
	err := c.UploadMedia(context.Background(), "tok", models.MediaKind("gif"), "x.gif", strings.NewReader("x"))
	require.Error(t, err)
}
