package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/ARPaule28/fynd-app/internal/client/models"
	"github.com/ARPaule28/fynd-app/internal/logging"
	"github.com/google/uuid"
)

// Upload endpoints per media kind.
var uploadPaths = map[models.MediaKind]string{
	models.MediaKindHighlightVideo: "/students/upload-video-highlight",
	models.MediaKindProfileImage:   "/students/upload-profile-image",
}

// HTTPClient talks to the Fynd REST backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the given base URL. A zero timeout means
// no client-side deadline; callers bound individual calls via context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "err", err)
		// Keep the cause in the chain so callers can still match
		// context.Canceled from an abandoned submission.
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %s %s returned %d", ErrUnauthenticated, method, path, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn(ctx, "server rejected request", "method", method, "path", path, "request_id", reqID, "status", resp.StatusCode)
		return fmt.Errorf("%w: %s %s returned %d", ErrServer, method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, token, body, contentType, out)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.Student, error) {
	var created models.Student
	if err := c.doJSON(ctx, http.MethodPost, "/students/", "", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) ListStudents(ctx context.Context, token string) ([]models.Student, error) {
	var students []models.Student
	if err := c.doJSON(ctx, http.MethodGet, "/students", token, nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *HTTPClient) GetStudent(ctx context.Context, token, id string) (*models.Student, error) {
	var student models.Student
	if err := c.doJSON(ctx, http.MethodGet, "/students/"+id, token, nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (c *HTTPClient) UpdateStudent(ctx context.Context, token, id string, fragment any) error {
	return c.doJSON(ctx, http.MethodPut, "/students/"+id, token, fragment, nil)
}

// UploadMedia streams the file into a single multipart request. The whole
// body is buffered first; profile media is small enough that this beats
// pipe plumbing.
func (c *HTTPClient) UploadMedia(ctx context.Context, token string, kind models.MediaKind, name string, r io.Reader) error {
	path, ok := uploadPaths[kind]
	if !ok {
		return fmt.Errorf("unknown media kind %q", kind)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	h.Set("Content-Type", kind.ContentType())

	part, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("read media: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finish multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, token, &buf, mw.FormDataContentType(), nil)
}
