// Cinegraph - Film Catalog Explorer for Semantic Knowledge Bases
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

	logger.Info("service started", "service", "http-server", "attempt", 2)

	output := buf.String()
	for _, want := range []string{`"message":"service started"`, `"service":"http-server"`, `"attempt":2`, `"level":"info"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandlerWithLogger(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected error to be enabled at warn level")
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var h slog.Handler = NewSlogHandlerWithLogger(zerolog.New(&buf))
	h = h.WithAttrs([]slog.Attr{slog.String("tree", "root")})
	h = h.WithGroup("svc")

	slog.New(h).Warn("restart", "name", "api")

	output := buf.String()
	if !strings.Contains(output, `"svc.tree":"root"`) {
		t.Errorf("expected grouped pre-set attr, got: %s", output)
	}
	if !strings.Contains(output, `"svc.name":"api"`) {
		t.Errorf("expected grouped record attr, got: %s", output)
	}

	if NewSlogHandler().WithGroup("") == nil {
		t.Error("expected empty group to return a handler")
	}
}

func TestAddAttr_AllTypes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(zerolog.New(&buf)))

	logger.Info("types",
		slog.Bool("ok", true),
		slog.Float64("ratio", 0.5),
		slog.Uint64("count", 7),
		slog.Duration("elapsed", time.Second),
		slog.Time("at", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)),
		slog.Group("http", slog.Int("status", 200)),
		slog.Any("list", []string{"a"}),
	)

	output := buf.String()
	for _, want := range []string{`"ok":true`, `"ratio":0.5`, `"count":7`, `"elapsed":`, `"at":`, `"http.status":200`, `"list":["a"]`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level slog.Level
		want  zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		if got := slogToZerologLevel(tt.level); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
