// Command server runs the login demo.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/loginkit/handler"
	"github.com/dmitrymomot/loginkit/modules/dashboard"
	"github.com/dmitrymomot/loginkit/modules/login"
	"github.com/dmitrymomot/loginkit/pkg/auth"
	"github.com/dmitrymomot/loginkit/pkg/clientip"
	"github.com/dmitrymomot/loginkit/pkg/config"
	"github.com/dmitrymomot/loginkit/pkg/cookie"
	"github.com/dmitrymomot/loginkit/pkg/environment"
	"github.com/dmitrymomot/loginkit/pkg/httpserver"
	"github.com/dmitrymomot/loginkit/pkg/logger"
	"github.com/dmitrymomot/loginkit/pkg/ratelimiter"
	"github.com/dmitrymomot/loginkit/pkg/redis"
	"github.com/dmitrymomot/loginkit/pkg/requestid"
	"github.com/dmitrymomot/loginkit/pkg/session"
	"github.com/dmitrymomot/loginkit/views"
)

type appConfig struct {
	Env            string        `env:"APP_ENV" envDefault:"development"`
	Name           string        `env:"APP_NAME" envDefault:"loginkit"`
	RequestTimeout time.Duration `env:"APP_REQUEST_TIMEOUT" envDefault:"30s"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg     appConfig
		httpCfg    httpserver.Config
		sessionCfg session.Config
		cookieCfg  cookie.Config
		redisCfg   redis.Config
		authCfg    auth.Config
		loginCfg   login.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&appCfg) },
		func() error { return config.Load(&httpCfg) },
		func() error { return config.Load(&sessionCfg) },
		func() error { return config.Load(&cookieCfg) },
		func() error { return config.Load(&redisCfg) },
		func() error { return config.Load(&authCfg) },
		func() error { return config.Load(&loginCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	env := environment.Parse(appCfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, appCfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			session.LoggerExtractor(),
		),
	)
	slog.SetDefault(log)

	var shutdownHooks []httpserver.Option
	var readiness []func(context.Context) error

	var sessionStore session.Store
	var limitStore ratelimiter.Store
	switch sessionCfg.Store {
	case session.StoreRedis:
		client, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		shutdownHooks = append(shutdownHooks, httpserver.WithShutdownHook(closeRedis(client)))
		readiness = append(readiness, redis.Healthcheck(client))
		sessionStore = session.NewRedisStore(client, sessionCfg.RedisPrefix)
		limitStore = ratelimiter.NewRedisStore(client, "ratelimit:")
	case session.StoreMemory, "":
		mem := session.NewMemoryStore(sessionCfg.CleanupInterval)
		limits := ratelimiter.NewMemoryStore()
		shutdownHooks = append(shutdownHooks, httpserver.WithShutdownHook(func(context.Context) error {
			limits.Close()
			return mem.Close()
		}))
		sessionStore = mem
		limitStore = limits
	default:
		return errors.New("unknown SESSION_STORE: " + sessionCfg.Store)
	}

	jar, err := cookie.NewFromConfig(cookieCfg)
	if err != nil {
		return err
	}
	sessions := session.NewFromConfig(sessionCfg,
		session.WithStore(sessionStore),
		session.WithCookieJar(jar),
	)

	creds, err := auth.NewDemoStore(authCfg)
	if err != nil {
		return err
	}
	authSvc := auth.NewService(creds, sessions, auth.WithLogger(log))

	bucket, err := ratelimiter.NewBucket(limitStore, loginCfg.RateLimit())
	if err != nil {
		return err
	}

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage:  views.ErrorPage,
		ErrorToast: views.ErrorToast,
	})

	loginSvc, err := login.NewService(loginCfg, authSvc, jar, bucket,
		login.WithLogger(log),
		login.WithErrorHandler(errorHandler),
	)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.NewResolver().Middleware,
		environment.Middleware(env),
		middleware.Timeout(appCfg.RequestTimeout),
		sessions.Middleware,
	)

	r.Get("/health", httpserver.HealthCheckHandler(log, readiness...))
	r.Mount("/dashboard", dashboard.NewService(authSvc, errorHandler).Handle())
	r.Mount("/", loginSvc.Handle())

	server := httpserver.New(httpCfg, append(shutdownHooks, httpserver.WithLogger(log))...)
	return server.Run(ctx, r)
}

func closeRedis(client *goredis.Client) func(context.Context) error {
	return func(context.Context) error { return client.Close() }
}
