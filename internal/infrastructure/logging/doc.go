// Package logging provides structured logging using uber/zap.
//
// Two modes cover the backend's needs:
//   - Production (NewDefault): JSON output for machine parsing
//   - Development (NewDevelopment): colored console output
//
// NewNop returns a no-op logger for tests; components never check for a
// nil logger, they take one and log through it.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("attach flow started", zap.String("target_id", id))
//	logger.Warn("event stream reconnecting", zap.Error(err))
package logging
