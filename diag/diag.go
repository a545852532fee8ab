// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package diag implements structured diagnostics for non-fatal conditions
package diag

import (
	"io"
	"time"

	"github.com/cpmech/gopen/pen"
	"github.com/rs/zerolog"
)

// Logger receives all diagnostics. It discards everything until Setup is called.
var Logger = zerolog.Nop()

// Setup directs diagnostics to w at the given level; e.g. "debug", "info", "warn".
// Console selects the human-readable writer.
func Setup(w io.Writer, level string, console bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	Logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return nil
}

// Penetration logs each warning of a penetration result
func Penetration(tag string, res pen.Result) {
	for _, w := range res.Warnings() {
		Logger.Warn().
			Str("tag", tag).
			Str("kind", w.String()).
			Float64("depth", res.Depth).
			Float64("ceiling", res.Ceiling).
			Float64("angle", res.Angle).
			Float64("lethalEnergy", res.LethalEnergy).
			Msg("degenerate geometry")
	}
}

// Traverse logs a turret order. Rejected orders are warnings; the braked branch is debug.
func Traverse(name string, az, el, t float64, ok, braked bool) {
	if !ok {
		Logger.Warn().Str("hull", name).Float64("az", az).Float64("el", el).Msg("turret order out of elevation envelope")
		return
	}
	if braked {
		Logger.Debug().Str("hull", name).Float64("az", az).Float64("time", t).Msg("turret accel braked")
	}
}

// Event logs an informative message with key-value pairs
func Event(msg string, keysAndValues ...any) {
	Logger.Info().Fields(toFields(keysAndValues)).Msg(msg)
}

// toFields converts key-value pairs to a map for zerolog
func toFields(keysAndValues []any) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return fields
}
