package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ARPaule28/fynd-app/internal/client/api"
	"github.com/ARPaule28/fynd-app/internal/client/models"
)

// printStudent renders one profile the way the Home screen shows it.
func printStudent(s *models.Student) {
	fmt.Printf("%s (@%s)\n", s.Name, s.Username)
	fmt.Printf("  id:        %s\n", s.ID)
	fmt.Printf("  email:     %s\n", s.Email)
	if s.Address != "" {
		fmt.Printf("  address:   %s\n", s.Address)
	}
	if s.Phone != "" {
		fmt.Printf("  phone:     %s\n", s.Phone)
	}
	if s.Skills != "" {
		fmt.Printf("  skills:    %s\n", s.Skills)
	}
	if s.Careers != "" {
		fmt.Printf("  careers:   %s\n", s.Careers)
	}
	if s.Interest != "" {
		fmt.Printf("  interest:  %s\n", s.Interest)
	}
	if s.VideoHighlight != "" {
		fmt.Printf("  highlight: %s\n", s.VideoHighlight)
	}
	if s.ProfileImage != "" {
		fmt.Printf("  image:     %s\n", s.ProfileImage)
	}
}

// Profile shows the logged-in student's own record.
func (a *App) Profile(ctx context.Context) error {
	sess, err := a.flow.Gate(ctx)
	if err != nil {
		return err
	}
	student, err := a.profiles.Current(ctx, sess)
	if err != nil {
		return a.reportAuthAware(ctx, "Could not load profile", err)
	}
	printStudent(student)
	return nil
}

// Directory lists all students, the Home screen's main view.
func (a *App) Directory(ctx context.Context) error {
	sess, err := a.flow.Gate(ctx)
	if err != nil {
		return err
	}
	students, err := a.profiles.Directory(ctx, sess)
	if err != nil {
		return a.reportAuthAware(ctx, "Could not load directory", err)
	}
	if len(students) == 0 {
		fmt.Println("No students yet")
		return nil
	}
	for _, s := range students {
		fmt.Printf("%-8s %s (@%s)\n", s.ID, s.Name, s.Username)
	}
	return nil
}

// View prompts for a student id and shows that profile.
func (a *App) View(ctx context.Context) error {
	sess, err := a.flow.Gate(ctx)
	if err != nil {
		return err
	}
	id, err := getSimpleText(a.reader, "Student id", os.Stdout)
	if err != nil {
		return err
	}
	student, err := a.profiles.Student(ctx, sess, id)
	if err != nil {
		return a.reportAuthAware(ctx, "Could not load student", err)
	}
	printStudent(student)
	return nil
}

// UpdateEmail changes the account email from the account-settings screen.
func (a *App) UpdateEmail(ctx context.Context) error {
	sess, err := a.flow.Gate(ctx)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "New email", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.profiles.UpdateEmail(ctx, sess, email); err != nil {
		return a.reportAuthAware(ctx, "Could not update email", err)
	}
	fmt.Println("Email updated")
	return nil
}

// UpdatePassword changes the account password from the account-settings
// screen. The current password is collected to mirror the form, the backend
// stores only the new one.
func (a *App) UpdatePassword(ctx context.Context) error {
	sess, err := a.flow.Gate(ctx)
	if err != nil {
		return err
	}
	current, err := getPassword("Current password", os.Stdout)
	if err != nil {
		return err
	}
	updated, err := getPassword("New password", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.profiles.UpdatePassword(ctx, sess, string(current), string(updated)); err != nil {
		return a.reportAuthAware(ctx, "Could not update password", err)
	}
	fmt.Println("Password updated")
	return nil
}

// reportAuthAware prints the failure and, on a confirmed 401/403, drops the
// stale session and returns the user to the login screen.
func (a *App) reportAuthAware(ctx context.Context, msg string, err error) error {
	if errors.Is(err, api.ErrUnauthenticated) {
		fmt.Println("Session expired, please log in again")
		if logoutErr := a.flow.Logout(ctx); logoutErr != nil {
			a.log.Error(ctx, "failed to clear stale session", "err", logoutErr)
		}
		a.userName = ""
		return err
	}
	fmt.Println(msg+":", err)
	return err
}
