package observability

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns the process-wide zerolog Logger, stamped with the
// service name so the api and seeder logs are distinguishable in a
// shared sink. APP_ENV=dev (or development) uses a human-friendly
// console writer.
func NewLogger(env string) zerolog.Logger {
	l := zerolog.New(os.Stdout).With().Timestamp().Str("service", serviceName()).Logger()
	if env == "dev" || env == "development" {
		l = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Str("service", serviceName()).Logger()
	}
	return l
}

func serviceName() string {
	return filepath.Base(os.Args[0])
}
