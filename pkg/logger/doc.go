// Package logger builds log/slog loggers with environment presets and
// context-derived attributes.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(os.Getenv("APP_ENV")), "loginkit"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "login succeeded", logger.Component("auth"), logger.UserID(id))
//
// Attribute helpers return an empty slog.Attr for missing values so call sites
// never need nil checks.
package logger
