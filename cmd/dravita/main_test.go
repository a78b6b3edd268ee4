package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MikeSquared-Agency/Dravita/internal/config"
)

func TestNewLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Logging: config.LoggingConfig{Level: "info", Format: "json"}}
	newLogger(&buf, cfg).Info("hello", "k", "v")
	assert.True(t, strings.HasPrefix(buf.String(), "{"), buf.String())

	buf.Reset()
	cfg.Logging.Format = "TEXT"
	newLogger(&buf, cfg).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Logging: config.LoggingConfig{Level: "warn"}}
	logger := newLogger(&buf, cfg)

	logger.Info("dropped")
	assert.Empty(t, buf.String())
	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
