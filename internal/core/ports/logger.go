package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message with optional key/value attributes.
	Info(msg string, args ...any)
	// Warn logs a warning with optional key/value attributes.
	Warn(msg string, args ...any)
	// Error logs an error together with the metadata attached along its chain.
	Error(err error)
}
