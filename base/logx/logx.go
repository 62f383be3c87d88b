// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user verbosity level and a default
// [slog] logger that shows colored level names on terminals.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default is
// [slog.LevelInfo], or [slog.LevelDebug] with the debug build tag
// and [slog.LevelWarn] with the release build tag.
var UserLevel = defaultUserLevel

// Output is the terminal output used for rendering colored level names.
var Output = termenv.NewOutput(os.Stderr)

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelColor returns the ANSI color used for the given level.
func LevelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "1" // red
	case level >= slog.LevelWarn:
		return "3" // yellow
	case level >= slog.LevelInfo:
		return "4" // blue
	default:
		return "5" // magenta
	}
}

// ColorLevel returns the name of the given level, colored with
// [LevelColor] if [Output] supports color.
func ColorLevel(level slog.Level) string {
	return Output.String(level.String()).Foreground(Output.Color(LevelColor(level))).String()
}

// userLeveler reads [UserLevel] each time so that changes to it
// apply to handlers that have already been created.
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// NewHandler returns a new text handler writing to w that filters
// records below [UserLevel] and colors the level names.
func NewHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			if level, ok := a.Value.Any().(slog.Level); ok {
				a.Value = slog.StringValue(ColorLevel(level))
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default logger to one that writes
// to stderr using [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
