// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package cablelog provides a colorized, non-blocking slog.Handler for
// console output, the way a client binary embedding a Cable session wants
// its packet trace and reconnect log to read during development.
package cablelog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/fatih/color"
)

// AsyncHandler writes formatted log lines to an underlying io.Writer from a
// single background goroutine, so a slow writer (a file, a piped console)
// does not block the caller of slog.Logger until 1024 lines are queued.
type AsyncHandler struct {
	ch     chan []byte
	writer io.Writer
	attrs  []slog.Attr
	group  string
	level  slog.Level
	wg     *sync.WaitGroup
}

// NewConsoleHandler returns an AsyncHandler writing to w at level and
// above.
func NewConsoleHandler(w io.Writer, level slog.Level) *AsyncHandler {
	h := &AsyncHandler{
		ch:     make(chan []byte, 1024),
		writer: w,
		level:  level,
		wg:     &sync.WaitGroup{},
	}
	h.wg.Add(1)
	go h.run()
	return h
}

func (h *AsyncHandler) run() {
	defer h.wg.Done()
	for line := range h.ch {
		_, _ = h.writer.Write(line)
	}
}

func (h *AsyncHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *AsyncHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String()
	switch {
	case r.Level < slog.LevelInfo:
		level = color.MagentaString(level)
	case r.Level < slog.LevelWarn:
		level = color.BlueString(level)
	case r.Level < slog.LevelError:
		level = color.YellowString(level)
	default:
		level = color.RedString(level)
	}

	line := fmt.Sprintf("%s | %-5s | %s",
		color.GreenString(r.Time.Format("2006-01-02T15:04:05.000")),
		level,
		r.Message,
	)

	for _, attr := range h.attrs {
		line += formatAttr(h.group, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		line += formatAttr(h.group, attr)
		return true
	})
	line += "\n"

	h.write([]byte(line))
	return nil
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return color.CyanString(fmt.Sprintf(" %s=%v", key, attr.Value))
}

func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &AsyncHandler{ch: h.ch, writer: h.writer, attrs: merged, group: h.group, level: h.level, wg: h.wg}
}

func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return &AsyncHandler{ch: h.ch, writer: h.writer, attrs: h.attrs, group: name, level: h.level, wg: h.wg}
}

func (h *AsyncHandler) write(p []byte) {
	h.ch <- p
}

// Close stops the background writer once every queued line has been
// flushed. The handler must not be used afterward.
func (h *AsyncHandler) Close() error {
	close(h.ch)
	h.wg.Wait()
	return nil
}
