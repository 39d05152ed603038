package stub

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ARPaule28/fynd-app/internal/client/models"
)

type ctxKey int

const ctxKeyStudentID ctxKey = iota

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		id, err := studentIDFromToken(token, s.secret)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), ctxKeyStudentID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[strings.ToLower(req.Email)]
	if !ok {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	rec := s.students[id]
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(req.Password)); err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := generateToken(id, s.secret, s.validity)
	if err != nil {
		s.log.Error(r.Context(), "failed to sign token", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := models.LoginResponse{
		AccessToken:       token,
		HasAdditionalInfo: rec.student.Address != "",
	}
	resp.User.Student = rec.student
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "missing required fields", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(req.Email)
	if _, exists := s.byEmail[email]; exists {
		http.Error(w, "email already registered", http.StatusConflict)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	rec := &record{
		student: models.Student{
			ID:               uuid.NewString(),
			Name:             req.Name,
			Username:         req.Username,
			Email:            req.Email,
			RegistrationDate: time.Now().UTC().Format(time.RFC3339),
		},
		passwordHash: hash,
	}
	s.students[rec.student.ID] = rec
	s.byEmail[email] = rec.student.ID

	writeJSON(w, http.StatusCreated, rec.student)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Student, 0, len(s.students))
	for _, rec := range s.students {
		out = append(out, rec.student)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.students[id]
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rec.student)
}

// handleUpdate merges one fragment into the stored profile. Only keys present
// in the body change; a student can only update their own record.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if caller, _ := r.Context().Value(ctxKeyStudentID).(string); caller != id {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var fragment map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fragment); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.students[id]
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	str := func(key string) (string, bool) {
		v, present := fragment[key]
		if !present {
			return "", false
		}
		out, isStr := v.(string)
		return out, isStr
	}

	if v, ok := str("address"); ok {
		rec.student.Address = v
	}
	if v, ok := str("phoneNumber"); ok {
		rec.student.Phone = v
	}
	if v, ok := str("sex"); ok {
		rec.student.Sex = v
	}
	if v, ok := str("race"); ok {
		rec.student.Race = v
	}
	if v, ok := str("interest"); ok {
		rec.student.Interest = v
	}
	if v, ok := str("birth_date"); ok {
		rec.student.BirthDate = v
	}
	if v, ok := str("skills"); ok {
		rec.student.Skills = v
	}
	if v, ok := str("careers"); ok {
		rec.student.Careers = v
	}
	if v, ok := str("email"); ok && v != "" {
		delete(s.byEmail, strings.ToLower(rec.student.Email))
		rec.student.Email = v
		s.byEmail[strings.ToLower(v)] = id
	}
	if v, ok := str("password"); ok && v != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(v), bcrypt.DefaultCost)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		rec.passwordHash = hash
	}

	writeJSON(w, http.StatusOK, rec.student)
}

// handleUpload stores the multipart "file" part on disk and points the
// matching profile field at its /uploads/ URL.
func (s *Server) handleUpload(kind models.MediaKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := r.Context().Value(ctxKeyStudentID).(string)

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file part", http.StatusBadRequest)
			return
		}
		defer file.Close()

		name := filepath.Base(header.Filename)
		dst, err := os.Create(filepath.Join(s.uploadsDir, name))
		if err != nil {
			s.log.Error(r.Context(), "failed to store upload", "err", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		defer dst.Close()
		if _, err := io.Copy(dst, file); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		rec, ok := s.students[id]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		url := "/uploads/" + name
		if kind == models.MediaKindHighlightVideo {
			rec.student.VideoHighlight = url
		} else {
			rec.student.ProfileImage = url
		}

		writeJSON(w, http.StatusOK, map[string]string{"path": url})
	}
}
