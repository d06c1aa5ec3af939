// Package logger builds configured log/slog loggers with sane defaults.
//
// Defaults are production-safe (JSON handler, INFO level, stdout). Options
// adjust level, format, output, and static attributes; WithDevelopment and
// WithProduction bundle the usual per-environment settings.
//
// # Usage
//
// import "github.com/dmitrymomot/authkit/pkg/logger"
//
// log := logger.New(
//     logger.WithProduction("authkit"),
//     logger.WithAttr(slog.String("version", version)),
// )
// logger.SetAsDefault(log)
//
// attr.go provides small attribute constructors (Error, Component, Username)
// so log call sites stay consistent across packages.
package logger
