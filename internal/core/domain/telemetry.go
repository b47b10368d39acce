package domain

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ExtractionOutcome is how a classpath resolution ended.
type ExtractionOutcome string

const (
	// OutcomeCached means a valid cache entry was reused.
	OutcomeCached ExtractionOutcome = "cached"
	// OutcomeExtracted means the external tool produced a fresh entry.
	OutcomeExtracted ExtractionOutcome = "extracted"
	// OutcomeFailed means the extraction did not produce a usable entry.
	OutcomeFailed ExtractionOutcome = "failed"
)
