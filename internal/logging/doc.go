// Package logging builds the zap loggers used across audio-studio.
//
//	logger, err := logging.New(logging.Options{Level: "debug"})
//	if err != nil {
//		return err
//	}
//	defer logger.Sync()
//
// Use Nop in tests and wherever logging is optional.
package logging
