// Package logger provides structured logging with context extraction.
//
// It extends log/slog with automatic context-based attribute injection:
// request-scoped values such as the negotiated locale are pulled out of
// the context on every log call, so handlers never thread them through
// by hand.
//
// Create a logger with extractors:
//
//	log := logger.New(middlewares.LocaleExtractor())
//
//	// "locale" is injected automatically when present in the context
//	log.InfoContext(ctx, "bundle loaded", slog.Int("messages", n))
//	// {"level":"INFO","msg":"bundle loaded","messages":42,"locale":"pt-BR"}
//
// A ContextExtractor is a function extracting one attribute:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Return false to skip the attribute for that entry. Extractors run per
// log call, ensuring fresh values for request-scoped data.
//
// LogHandlerDecorator wraps any slog.Handler, so extraction composes
// with custom handlers:
//
//	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
//	log := slog.New(logger.NewLogHandlerDecorator(h, extractors...))
//
// NewNope returns a discard logger for use as a nil-safe default.
package logger
