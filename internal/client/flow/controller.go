package flow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ARPaule28/fynd-app/internal/client/api"
	"github.com/ARPaule28/fynd-app/internal/client/session"
	"github.com/ARPaule28/fynd-app/internal/logging"
)

// Params is optional navigation context forwarded with a route change.
type Params map[string]string

// Navigator is the external routing collaborator. Implementations render the
// named route; the controller only decides where to go.
type Navigator interface {
	Navigate(route string, params Params)
}

// SubmitFunc is one step's single network call. It receives the gated
// session and must issue exactly one request.
type SubmitFunc func(ctx context.Context, sess session.Session) error

// Controller sequences the onboarding pipeline. Every step runs through
// Submit, which enforces the shared contract: gate the session, run the
// step's one call, then either advance or stay put.
//
// Not safe for concurrent use; the interactive loop is single-threaded by
// construction.
type Controller struct {
	sessions session.Store
	nav      Navigator
	log      logging.Logger

	current Step

	// cancelInFlight aborts a pending submission when the user navigates
	// away before it completes.
	cancelInFlight context.CancelFunc
}

func NewController(sessions session.Store, nav Navigator, log logging.Logger) *Controller {
	return &Controller{
		sessions: sessions,
		nav:      nav,
		log:      log,
		current:  StepLogin,
	}
}

// Current returns the pipeline position.
func (c *Controller) Current() Step { return c.current }

// Gate loads the stored session and verifies it can back an authenticated
// call: both values present and the token not locally expired. On failure it
// routes to Login and returns api.ErrUnauthenticated. Nothing is cleared
// here — only a confirmed 401/403 wipes the stored session.
func (c *Controller) Gate(ctx context.Context) (session.Session, error) {
	sess, err := c.sessions.Load(ctx)
	if err != nil {
		return session.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !sess.Valid() || session.TokenExpired(sess.AccessToken, time.Now()) {
		c.log.Warn(ctx, "session gate failed", "step", c.current)
		c.NavigateTo(RouteLogin, nil)
		return session.Session{}, api.ErrUnauthenticated
	}
	return sess, nil
}

// Submit runs one step through the shared contract.
//
// Preconditions: a valid session (otherwise the submission is discarded and
// the user lands on Login having made zero network calls). On success the
// controller advances to the next step's route, forwarding the student id.
// On failure the pipeline position is unchanged: the caller keeps its form
// state and may resubmit the identical payload.
func (c *Controller) Submit(ctx context.Context, step Step, send SubmitFunc) error {
	sess, err := c.Gate(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	c.cancelInFlight = cancel
	defer func() {
		cancel()
		c.cancelInFlight = nil
	}()

	if err := send(ctx, sess); err != nil {
		if errors.Is(err, api.ErrUnauthenticated) {
			c.expireSession(ctx)
			return err
		}
		c.log.Warn(ctx, "step submission failed", "step", step, "err", err)
		return err
	}

	next := step.Next()
	c.current = next
	c.log.Info(ctx, "step completed", "step", step, "next", next)
	c.nav.Navigate(next.Route(), Params{"studentId": sess.StudentID})
	return nil
}

// CompleteLogin stores the fresh session and picks the first route: students
// whose profile already has the additional info go straight to Home, fresh
// accounts enter the onboarding pipeline.
func (c *Controller) CompleteLogin(ctx context.Context, sess session.Session, hasAdditionalInfo bool) error {
	if err := c.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	next := StepAdditionalInfo
	if hasAdditionalInfo {
		next = StepHome
	}
	c.current = next
	c.nav.Navigate(next.Route(), Params{"studentId": sess.StudentID})
	return nil
}

// Logout clears the stored session and returns to Login.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	c.current = StepLogin
	c.nav.Navigate(RouteLogin, nil)
	return nil
}

// NavigateTo cancels any in-flight submission, then routes. Abandoning a
// pending submit aborts its request rather than leaving it racing.
func (c *Controller) NavigateTo(route string, params Params) {
	if c.cancelInFlight != nil {
		c.cancelInFlight()
		c.cancelInFlight = nil
	}
	c.nav.Navigate(route, params)
}

// expireSession handles a confirmed 401/403: the stored credentials are
// stale, so they are wiped before the forced Login transition.
func (c *Controller) expireSession(ctx context.Context) {
	if err := c.sessions.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear expired session", "err", err)
	}
	c.current = StepLogin
	c.nav.Navigate(RouteLogin, nil)
}
