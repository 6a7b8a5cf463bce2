// Package logger provides structured logging utilities built on Go's standard
// slog package: a small factory with functional options and a set of nil-safe
// attribute helpers for routing and tooling logs.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("routematch"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("route table loaded",
//		logger.Component("routetable"),
//		logger.Source("routes.yaml"),
//		logger.Count("routes", 12),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops:
//
//	log.Warn("route rejected",
//		logger.Method("GET"),
//		logger.Pattern("/api/*/users"),
//		logger.Error(err), // no attribute when err is nil
//	)
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
