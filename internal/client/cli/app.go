package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/ARPaule28/fynd-app/internal/client/api"
	"github.com/ARPaule28/fynd-app/internal/client/config"
	"github.com/ARPaule28/fynd-app/internal/client/flow"
	"github.com/ARPaule28/fynd-app/internal/client/services"
	"github.com/ARPaule28/fynd-app/internal/client/session"
	"github.com/ARPaule28/fynd-app/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive client: services, the flow controller, and the
// reader the prompts consume. It doubles as the flow.Navigator, printing
// route changes so the user always knows which screen they are on.
type App struct {
	config   *config.Config
	auth     services.AuthService
	profiles services.ProfileService
	media    services.MediaService
	flow     *flow.Controller
	sessions session.Store
	log      logging.Logger
	reader   *bufio.Reader
	userName string
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewDefault()

	db, err := session.InitDatabase(ctx, c.DataFile)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	store := session.NewSQLiteStore(db)
	apiClient := api.NewHTTPClient(c.BaseURL, c.RequestTimeout, log)

	app := &App{
		config:   c,
		auth:     services.NewAuthService(apiClient),
		profiles: services.NewProfileService(apiClient),
		media:    services.NewMediaService(apiClient),
		sessions: store,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}
	app.flow = flow.NewController(store, app, log)
	return app, nil
}

// Navigate implements flow.Navigator. The terminal has no screens to render,
// so a route change is announced as a line of output.
func (a *App) Navigate(route string, params flow.Params) {
	fmt.Printf("-> %s\n", route)
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	sess, err := a.sessions.Load(ctx)
	return err == nil && sess.Valid()
}
