// Package server is the HTTP boundary: routing, middleware and handlers for
// both the browser site and the JSON API.
package server

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tilhub/acronyms/acronyms"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/categories"
	"github.com/tilhub/acronyms/csrf"
	"github.com/tilhub/acronyms/internal/config"
	"github.com/tilhub/acronyms/oauthlogin"
	"github.com/tilhub/acronyms/resetpw"
	"github.com/tilhub/acronyms/sessions"
	"github.com/tilhub/acronyms/token"
	"github.com/tilhub/acronyms/users"
)

// Repos holds the persistence ports the handlers read from directly.
type Repos struct {
	Users      users.Repo
	Acronyms   acronyms.Repo
	Categories categories.Repo
	Pivot      categories.PivotRepo
}

// Services holds the domain services behind the routes.
type Services struct {
	Credentials *auth.Service
	Tokens      *token.Manager
	Sessions    *sessions.Manager
	CSRF        *csrf.Guard
	OAuth       *oauthlogin.Bridge
	Reset       *resetpw.Flow
	Sync        *categories.Synchronizer
}

type Server struct {
	env      string
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	repos    Repos
	services Services
	render   Renderer
	log      zerolog.Logger
}

func New(cfg config.Config, repos Repos, services Services, log zerolog.Logger) (*Server, error) {
	render, err := NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	s := &Server{
		env:      cfg.GetEnv(),
		mux:      http.NewServeMux(),
		config:   cfg,
		repos:    repos,
		services: services,
		render:   render,
		log:      log,
	}

	s.initRoutes()
	s.logRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)
		if len(parts) > 1 {
			s.logRoute(parts[0], parts[1])
		} else {
			s.logRoute("", parts[0])
		}
	}
}

func (s *Server) logRoute(method, path string) {
	display := Gray + method + ResetColor
	if colour, ok := methodColors[method]; ok {
		display = colour + method + ResetColor
	}
	s.log.Info().Str("method", display).Str("path", path).Msg("route")
}
