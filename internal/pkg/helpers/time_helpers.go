package helpers

import (
	"strings"
	"time"

	"github.com/interconnect/backend/internal/pkg/logger"
)

// ParseDuration parses a configured duration. An empty value yields fallback
// silently; an unparsable one yields fallback with a warning.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Err(err).Str("value", value).Dur("fallback", fallback).Msg("Invalid duration, using fallback")
		return fallback
	}
	return d
}
