package logging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLogger(t *testing.T) {
	logger := GetLogger("scanner")
	// The component field is baked into the logger context; a disabled
	// logger still carries it, so this only checks construction.
	assert.NotNil(t, logger)
}

func TestLogFilePath(t *testing.T) {
	path := LogFilePath()
	assert.True(t, strings.HasSuffix(path, "ecstasy.log"), "got %q", path)
	assert.Contains(t, path, "ecstasy")
}
