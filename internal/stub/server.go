package stub

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ARPaule28/fynd-app/internal/client/models"
	"github.com/ARPaule28/fynd-app/internal/filex"
	"github.com/ARPaule28/fynd-app/internal/logging"
)

// record is one stored account: the public profile plus the bcrypt hash the
// profile never exposes.
type record struct {
	student      models.Student
	passwordHash []byte
}

// Server holds the in-memory state and the HTTP handler over it.
type Server struct {
	mu         sync.Mutex
	students   map[string]*record
	byEmail    map[string]string
	secret     []byte
	validity   time.Duration
	uploadsDir string
	log        logging.Logger
	router     chi.Router
}

// NewServer builds a stub backend. Tokens are signed with secret and expire
// after validity; uploaded files land in uploadsDir, which is created if
// missing.
func NewServer(secret []byte, validity time.Duration, uploadsDir string, log logging.Logger) (*Server, error) {
	dir, err := filex.EnsureDir(uploadsDir)
	if err != nil {
		return nil, err
	}

	s := &Server{
		students:   make(map[string]*record),
		byEmail:    make(map[string]string),
		secret:     secret,
		validity:   validity,
		uploadsDir: dir,
		log:        log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/auth/login", s.handleLogin)
	r.Post("/students/", s.handleRegister)

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/students", s.handleList)
		r.Get("/students/{id}", s.handleGet)
		r.Put("/students/{id}", s.handleUpdate)
		r.Post("/students/upload-video-highlight", s.handleUpload(models.MediaKindHighlightVideo))
		r.Post("/students/upload-profile-image", s.handleUpload(models.MediaKindProfileImage))
	})

	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(dir))))

	s.router = r
	return s, nil
}

// Router returns the HTTP handler; hand it to http.Server or httptest.
func (s *Server) Router() http.Handler { return s.router }
