package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Second, ParseDuration("1m30s", time.Hour))
	assert.Equal(t, time.Duration(0), ParseDuration("0s", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("  ", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("soon", time.Hour))
}
