package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ARPaule28/fynd-app/internal/client/models"
	"github.com/ARPaule28/fynd-app/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and attempts to create a new
// student account via the AuthService.
//
// On success it prints "Success!" and suggests logging in. Any I/O or service
// error is logged and returned unchanged.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	req := models.RegisterRequest{
		Name:     name,
		Username: username,
		Email:    email,
		Password: string(password),
	}
	if _, err := a.auth.Register(ctx, req, string(confirm)); err != nil {
		a.log.Warn(ctx, "registration failed", "err", err)
		fmt.Println("Registration failed:", err)
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

// Login prompts for credentials and authenticates. On success the session is
// persisted and the flow controller picks the first screen: Home when the
// profile already carries its additional info, the additional-info screen
// otherwise.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		a.log.Warn(ctx, "login failed", "err", err)
		fmt.Println("Login failed:", err)
		return err
	}

	sess := session.Session{
		AccessToken: resp.AccessToken,
		StudentID:   resp.User.Student.ID,
	}
	if err := a.flow.CompleteLogin(ctx, sess, resp.HasAdditionalInfo); err != nil {
		return err
	}

	a.userName = resp.User.Student.Name
	fmt.Println("Login successful")
	return nil
}

// Logout clears the persisted session and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.flow.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	fmt.Println("Logged out")
	return nil
}
