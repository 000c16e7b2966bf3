package login

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/loginkit/binder"
	"github.com/dmitrymomot/loginkit/handler"
	"github.com/dmitrymomot/loginkit/pkg/auth"
	"github.com/dmitrymomot/loginkit/pkg/clientip"
	"github.com/dmitrymomot/loginkit/pkg/cookie"
	"github.com/dmitrymomot/loginkit/pkg/form"
	"github.com/dmitrymomot/loginkit/pkg/logger"
	"github.com/dmitrymomot/loginkit/pkg/ratelimiter"
	"github.com/dmitrymomot/loginkit/pkg/surface"
	"github.com/dmitrymomot/loginkit/pkg/validator"
	"github.com/dmitrymomot/loginkit/views"
)

// Messages shown in the form alert and the sign-out toast.
const (
	AlertInvalidCredentials = "Invalid email or password"
	AlertTooManyAttempts    = "Too many attempts, try again later"
	NoticeSignedOut         = "You have been signed out."
)

const (
	loginPath    = "/login"
	validatePath = "/login/validate"
	logoutPath   = "/logout"
	flashKey     = "notice"
)

// ErrMissingField is returned when a form definition lacks the credential inputs.
var ErrMissingField = errors.New("login: definition must declare email and password fields")

// Service serves the sign-in page, its live validation and the JSON validation API.
type Service struct {
	cfg          Config
	def          *form.Definition
	auth         *auth.Service
	jar          *cookie.Jar
	limiter      *ratelimiter.Bucket
	engine       *validator.Engine
	logger       *slog.Logger
	errorHandler handler.ErrorHandler[handler.Context]
}

type Option func(*Service)

// WithDefinition replaces the embedded login form layout.
func WithDefinition(def *form.Definition) Option {
	return func(s *Service) {
		if def != nil {
			s.def = def
		}
	}
}

func WithEngine(e *validator.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// NewService wires the login flow. The limiter throttles credential checks per client IP.
func NewService(cfg Config, authSvc *auth.Service, jar *cookie.Jar, limiter *ratelimiter.Bucket, opts ...Option) (*Service, error) {
	s := &Service{
		cfg:     cfg,
		def:     Definition(),
		auth:    authSvc,
		jar:     jar,
		limiter: limiter,
		engine:  validator.NewEngine(validator.DefaultLibrary()),
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger, handler.ErrorHandlerConfig{
			ErrorPage:  views.ErrorPage,
			ErrorToast: views.ErrorToast,
		})
	}

	if _, ok := s.def.Field(identifierField); !ok {
		return nil, ErrMissingField
	}
	if _, ok := s.def.Field(secretField); !ok {
		return nil, ErrMissingField
	}
	return s, nil
}

// Handle returns the module router. Mount it at the site root; "/" redirects to the login page.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
	})

	r.With(s.auth.RedirectAuthenticated(s.cfg.SuccessRedirect)).
		Get(loginPath, handler.Wrap(s.show,
			handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		))

	r.Post(loginPath, handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, submitRequest](
			binder.Signals(), // Datastar actions
			binder.Form(),    // plain posts without JavaScript
		),
		handler.WithErrorHandler[handler.Context, submitRequest](s.submitError),
	))

	r.Post(validatePath, handler.Wrap(s.validate,
		handler.WithBinders[handler.Context, validateRequest](
			binder.Query(),
			binder.Signals(),
		),
		handler.WithErrorHandler[handler.Context, validateRequest](s.errorHandler),
	))

	r.Post(logoutPath, handler.Wrap(s.logout,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Post("/api/validate", handler.Wrap(s.apiValidate,
		handler.WithBinders[handler.Context, apiValidateRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, apiValidateRequest](handler.JSONErrorHandler),
	))

	return r
}

// formSignals is the client-side state of the login form.
type formSignals struct {
	Fields  map[string]any  `json:"fields" form:"-" query:"-"`
	Touched map[string]bool `json:"touched" form:"-" query:"-"`
}

type submitRequest struct {
	formSignals
	Email    string `form:"email" json:"-"`
	Password string `form:"password" json:"-"`
}

// values prefers Datastar signals and falls back to the posted form fields.
func (r submitRequest) values() map[string]any {
	if r.Fields != nil {
		return r.Fields
	}
	return map[string]any{identifierField: r.Email, secretField: r.Password}
}

type validateRequest struct {
	formSignals
	Field string `query:"field" json:"-"`
}

func (s *Service) show(ctx handler.Context, _ struct{}) handler.Response {
	var flash string
	if err := s.jar.PopFlash(ctx.ResponseWriter(), ctx.Request(), flashKey, &flash); err != nil && !errors.Is(err, cookie.ErrNotFound) {
		s.logger.WarnContext(ctx, "dropping unreadable flash",
			logger.Component("login"),
			logger.Error(err),
		)
	}

	return handler.Templ(views.LoginPage(views.LoginPageParams{
		LoginFormParams: s.formParams(form.New(s.def, form.WithEngine(s.engine)), ""),
		Flash:           flash,
	}))
}

// validate runs on field blur: it marks the field touched and patches its error surface.
func (s *Service) validate(ctx handler.Context, req validateRequest) handler.Response {
	f := form.New(s.def, form.WithEngine(s.engine))
	f.Restore(req.Fields, req.Touched)

	field, err := f.Field(req.Field)
	if err != nil {
		return handler.Error(errors.Join(handler.NewHTTPError(http.StatusBadRequest, "unknown_field"), err))
	}
	if _, err := f.Blur(req.Field); err != nil {
		return handler.Error(err)
	}

	return handler.Templ(surface.Component(field.Surface()))
}

func (s *Service) submit(ctx handler.Context, req submitRequest) handler.Response {
	f := form.New(s.def, form.WithEngine(s.engine))
	f.Restore(req.values(), req.Touched)
	if !f.Submit() {
		err := f.Errors()
		s.logger.InfoContext(ctx, "login form rejected",
			logger.Component("login"),
			logger.Event("login_invalid"),
			logger.Error(err),
		)
		if handler.WantsJSON(ctx.Request()) {
			return handler.Error(err)
		}
		return s.rerender(ctx, f, "", http.StatusUnprocessableEntity)
	}

	key := limiterKey(ctx)
	res, err := s.limiter.Allow(ctx, key)
	if err != nil {
		return handler.Error(errors.Join(handler.ErrServiceUnavailable, err))
	}
	if !res.Allowed() {
		s.logger.WarnContext(ctx, "login throttled",
			logger.Component("login"),
			logger.Event("login_throttled"),
		)
		ctx.ResponseWriter().Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter().Seconds())+1))
		if handler.WantsJSON(ctx.Request()) {
			return handler.Error(handler.ErrTooManyRequests)
		}
		return s.rerender(ctx, f, AlertTooManyAttempts, http.StatusTooManyRequests)
	}

	identifier, _ := f.Field(identifierField)
	secret, _ := f.Field(secretField)
	_, err = s.auth.Login(ctx, ctx.ResponseWriter(), ctx.Request(), identifier.String(), secret.String())
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		if handler.WantsJSON(ctx.Request()) {
			return handler.Error(handler.ErrUnauthorized)
		}
		return s.rerender(ctx, f, AlertInvalidCredentials, http.StatusUnauthorized)
	case err != nil:
		return handler.Error(err)
	}

	if err := s.limiter.Reset(ctx, key); err != nil {
		s.logger.WarnContext(ctx, "failed to reset login limiter",
			logger.Component("login"),
			logger.Error(err),
		)
	}
	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(submitResponse{Redirect: s.cfg.SuccessRedirect})
	}
	return handler.Redirect(s.cfg.SuccessRedirect)
}

type submitResponse struct {
	Redirect string `json:"redirect"`
}

// submitError answers API callers in the JSON envelope and browsers with the error page.
func (s *Service) submitError(ctx handler.Context, err error) {
	if handler.WantsJSON(ctx.Request()) {
		handler.JSONErrorHandler(ctx, err)
		return
	}
	s.errorHandler(ctx, err)
}

func (s *Service) logout(ctx handler.Context, _ struct{}) handler.Response {
	if err := s.auth.Logout(ctx, ctx.ResponseWriter(), ctx.Request()); err != nil {
		return handler.Error(err)
	}
	if err := s.jar.SetFlash(ctx.ResponseWriter(), flashKey, NoticeSignedOut); err != nil {
		s.logger.WarnContext(ctx, "failed to set sign-out notice",
			logger.Component("login"),
			logger.Error(err),
		)
	}
	return handler.Redirect(loginPath)
}

// rerender answers a rejected submit. Datastar gets the alert and every error
// surface patched in place so typed values survive; plain posts get the page.
func (s *Service) rerender(ctx handler.Context, f *form.Form, alert string, status int) handler.Response {
	if handler.IsDataStar(ctx.Request()) {
		patches := []handler.TemplPatch{handler.Patch(views.Alert(alert))}
		for _, field := range f.Fields() {
			patches = append(patches, handler.Patch(surface.Component(field.Surface())))
		}
		return handler.TemplMulti(patches...)
	}
	return handler.WithStatus(status, handler.Templ(views.LoginPage(views.LoginPageParams{
		LoginFormParams: s.formParams(f, alert),
	})))
}

func (s *Service) formParams(f *form.Form, alert string) views.LoginFormParams {
	return views.LoginFormParams{Form: f, Alert: alert, ValidateURL: validatePath}
}

func limiterKey(ctx context.Context) string {
	ip := clientip.FromContext(ctx)
	if ip == "" {
		ip = "unknown"
	}
	return fmt.Sprintf("login:%s", ip)
}
