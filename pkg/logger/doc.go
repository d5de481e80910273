// Package logger builds the service's *slog.Logger.
//
// New takes functional options for level, format, output and static
// attributes. WithEnvironment picks text output at debug level for
// development and JSON at info level elsewhere. Every logger is wrapped in
// LogHandlerDecorator, which runs the registered ContextExtractor functions
// on each record so request-scoped values like the request id appear without
// being passed around:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "postapi"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(r.Context(), "post created", logger.Component("post"))
//
// The attribute helpers in attr.go keep key names consistent. Helpers that
// take optional values return an empty slog.Attr, which slog drops, so
// callers need no nil checks.
package logger
