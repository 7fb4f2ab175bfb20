package utils

import (
	"log"
	"os"
)

// LoggerConfig controls output formatting for the app logger.
type LoggerConfig struct {
	// Log format (text/json)
	Format string
	// Output stream (os.Stdout, a file, etc.)
	Output *os.File
	// Toggle ANSI colors for the console
	EnableColors bool
}

// InitLogger builds the shared logger.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[TubularTutor] "

	var logger *log.Logger
	if cfg.Format == "json" {
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
	} else {
		if cfg.EnableColors {
			prefix = "\033[36m" + prefix + "\033[0m"
		}
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.Lshortfile|log.LUTC)
	}

	return logger
}

// StatusColor returns the ANSI color for an HTTP status code.
func StatusColor(status int) string {
	switch {
	case status >= 500:
		return "\033[31m"
	case status >= 400:
		return "\033[33m"
	case status >= 300:
		return "\033[36m"
	case status >= 200:
		return "\033[32m"
	default:
		return "\033[37m"
	}
}

// MethodColor returns the ANSI color for an HTTP method.
func MethodColor(method string) string {
	switch method {
	case "GET":
		return "\033[34m"
	case "POST":
		return "\033[33m"
	case "PUT":
		return "\033[36m"
	case "DELETE":
		return "\033[31m"
	case "PATCH":
		return "\033[32m"
	default:
		return "\033[37m"
	}
}
