package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ARPaule28/fynd-app/internal/client/api"
	"github.com/ARPaule28/fynd-app/internal/client/flow"
	"github.com/ARPaule28/fynd-app/internal/client/forms"
	"github.com/ARPaule28/fynd-app/internal/client/models"
	"github.com/ARPaule28/fynd-app/internal/client/session"
)

// ProfileService submits onboarding fragments and reads profiles. Every
// write is a single PUT of one step's serialized slice; the server merges
// fragments into the authoritative record.
type ProfileService interface {
	SubmitInfo(ctx context.Context, sess session.Session, info models.InfoFragment) error
	SubmitSkills(ctx context.Context, sess session.Session, form *forms.SkillsForm) error
	SubmitCareers(ctx context.Context, sess session.Session, form *forms.PathwayForm) error
	UpdateEmail(ctx context.Context, sess session.Session, email string) error
	UpdatePassword(ctx context.Context, sess session.Session, current, updated string) error
	Current(ctx context.Context, sess session.Session) (*models.Student, error)
	Directory(ctx context.Context, sess session.Session) ([]models.Student, error)
	Student(ctx context.Context, sess session.Session, id string) (*models.Student, error)
}

type profileService struct {
	client api.Client
}

func NewProfileService(client api.Client) ProfileService {
	return &profileService{client: client}
}

func (p *profileService) SubmitInfo(ctx context.Context, sess session.Session, info models.InfoFragment) error {
	if strings.TrimSpace(info.Address) == "" {
		return fmt.Errorf("%w: address is required", flow.ErrValidation)
	}
	return p.client.UpdateStudent(ctx, sess.AccessToken, sess.StudentID, info)
}

func (p *profileService) SubmitSkills(ctx context.Context, sess session.Session, form *forms.SkillsForm) error {
	fragment := models.SkillsFragment{Skills: form.Serialize()}
	return p.client.UpdateStudent(ctx, sess.AccessToken, sess.StudentID, fragment)
}

func (p *profileService) SubmitCareers(ctx context.Context, sess session.Session, form *forms.PathwayForm) error {
	fragment := models.CareersFragment{Careers: form.Serialize()}
	return p.client.UpdateStudent(ctx, sess.AccessToken, sess.StudentID, fragment)
}

func (p *profileService) UpdateEmail(ctx context.Context, sess session.Session, email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", flow.ErrValidation)
	}
	return p.client.UpdateStudent(ctx, sess.AccessToken, sess.StudentID, models.EmailFragment{Email: email})
}

// UpdatePassword requires both fields filled before any call is made.
func (p *profileService) UpdatePassword(ctx context.Context, sess session.Session, current, updated string) error {
	if current == "" || updated == "" {
		return fmt.Errorf("%w: both password fields are required", flow.ErrValidation)
	}
	return p.client.UpdateStudent(ctx, sess.AccessToken, sess.StudentID, models.PasswordFragment{Password: updated})
}

func (p *profileService) Current(ctx context.Context, sess session.Session) (*models.Student, error) {
	return p.client.GetStudent(ctx, sess.AccessToken, sess.StudentID)
}

func (p *profileService) Directory(ctx context.Context, sess session.Session) ([]models.Student, error) {
	return p.client.ListStudents(ctx, sess.AccessToken)
}

func (p *profileService) Student(ctx context.Context, sess session.Session, id string) (*models.Student, error) {
	return p.client.GetStudent(ctx, sess.AccessToken, id)
}
