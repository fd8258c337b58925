package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	pgacronymrepo "github.com/tilhub/acronyms/acronyms/repopg"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/categories"
	pgcategoryrepo "github.com/tilhub/acronyms/categories/repopg"
	"github.com/tilhub/acronyms/csrf"
	"github.com/tilhub/acronyms/internal/config"
	"github.com/tilhub/acronyms/internal/postgres"
	"github.com/tilhub/acronyms/mail"
	"github.com/tilhub/acronyms/oauthlogin"
	"github.com/tilhub/acronyms/resetpw"
	pgresetrepo "github.com/tilhub/acronyms/resetpw/repopg"
	"github.com/tilhub/acronyms/server"
	"github.com/tilhub/acronyms/sessions"
	"github.com/tilhub/acronyms/token"
	pgtokenrepo "github.com/tilhub/acronyms/token/repopg"
	pgurepo "github.com/tilhub/acronyms/users/repopg"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	for {
		if err := run(log); err != nil {
			log.Error().Err(err).Msg("server exited")
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Info().Msg("server stopped")
}

func run(log zerolog.Logger) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	ctx := context.Background()
	db, err := postgres.Open(ctx, c.GetDatabaseDSN())
	if err != nil {
		return errors.Wrap(err, "open database")
	}
	defer db.Close()
	if err := postgres.RunMigrations(ctx, db); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	categoryRepo := pgcategoryrepo.NewPostgresCategoryRepo(db)
	repos := server.Repos{
		Users:      pgurepo.NewPostgresUserRepo(db),
		Acronyms:   pgacronymrepo.NewPostgresAcronymRepo(db),
		Categories: categoryRepo,
		Pivot:      categoryRepo,
	}

	services, err := buildServices(ctx, c, db, repos, categoryRepo, log)
	if err != nil {
		return errors.Wrap(err, "build services")
	}

	srv, err := server.New(c, repos, services, log)
	if err != nil {
		return errors.Wrap(err, "build server")
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer, log)
	waitForStopSignal()
	return shutdown(httpServer)
}

func buildServices(ctx context.Context, c config.Config, db *sql.DB, repos server.Repos, categoryRepo *pgcategoryrepo.PostgresCategoryRepo, log zerolog.Logger) (server.Services, error) {
	sessionManager := sessions.NewManager(sessions.NewInMemoryStore(), repos.Users)
	credentials := auth.NewService(repos.Users)

	providers, err := buildProviders(ctx, c)
	if err != nil {
		return server.Services{}, err
	}

	mailer := mail.NewLogDispatcher(log)
	return server.Services{
		Credentials: credentials,
		Tokens:      token.New(pgtokenrepo.NewPostgresTokenRepo(db), repos.Users),
		Sessions:    sessionManager,
		CSRF:        csrf.NewGuard(sessionManager),
		OAuth:       oauthlogin.NewBridge(repos.Users, sessionManager, log, providers...),
		Reset:       resetpw.NewFlow(repos.Users, pgresetrepo.NewPostgresResetRepo(db), credentials, sessionManager, mailer, c.GetBaseURL(), log),
		Sync:        categories.NewSynchronizer(categoryRepo, categoryRepo),
	}, nil
}

// buildProviders wires whichever delegated login providers have credentials
// configured. An unconfigured provider is simply absent from the login page's
// point of view; its routes 404.
func buildProviders(ctx context.Context, c config.Config) ([]oauthlogin.Provider, error) {
	var providers []oauthlogin.Provider
	baseURL := c.GetBaseURL()

	if c.GetGoogleClientID() != "" {
		google, err := oauthlogin.NewGoogle(ctx, c.GetGoogleClientID(), c.GetGoogleClientSecret(), baseURL+"/google-callback")
		if err != nil {
			return nil, errors.Wrap(err, "google provider")
		}
		providers = append(providers, google)
	}
	if c.GetGitHubClientID() != "" {
		providers = append(providers, oauthlogin.NewGitHub(c.GetGitHubClientID(), c.GetGitHubClientSecret(), baseURL+"/github-callback"))
	}
	return providers, nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

func listenAndServe(httpServer *http.Server, log zerolog.Logger) {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("listen and serve")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server shutdown")
	}
	return nil
}
