// Package dashboard serves the page visible only to signed-in visitors.
package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/loginkit/handler"
	"github.com/dmitrymomot/loginkit/pkg/auth"
	"github.com/dmitrymomot/loginkit/views"
)

// Service renders the dashboard behind the login guard.
type Service struct {
	auth         *auth.Service
	loginPath    string
	logoutPath   string
	errorHandler handler.ErrorHandler[handler.Context]
}

func NewService(authSvc *auth.Service, errorHandler handler.ErrorHandler[handler.Context]) *Service {
	return &Service{
		auth:         authSvc,
		loginPath:    "/login",
		logoutPath:   "/logout",
		errorHandler: errorHandler,
	}
}

// Handle returns the module router; mount it at /dashboard.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(s.auth.RequireLogin(s.loginPath))
	r.Get("/", handler.Wrap(s.show,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	return r
}

func (s *Service) show(ctx handler.Context, _ struct{}) handler.Response {
	cred, ok := auth.CredentialFromContext(ctx)
	if !ok {
		return handler.Error(handler.ErrUnauthorized)
	}
	return handler.Templ(views.DashboardPage(views.DashboardParams{
		Identifier: cred.Identifier,
		LogoutURL:  s.logoutPath,
	}))
}
