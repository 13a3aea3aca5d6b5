// Package report delivers solver results to their destination.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Reporter accepts a single integer result.
type Reporter interface {
	Report(value int) error
}

// Text writes the bare value followed by a newline.
type Text struct {
	W io.Writer
}

// Report writes value to W.
func (r Text) Report(value int) error {
	if _, err := fmt.Fprintln(r.W, value); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// JSON writes one object per result, tagged with the run mode.
type JSON struct {
	W    io.Writer
	Mode string
}

type jsonResult struct {
	Mode  string `json:"mode"`
	Value int    `json:"value"`
}

// Report encodes value as {"mode": ..., "value": ...}.
func (r JSON) Report(value int) error {
	if err := json.NewEncoder(r.W).Encode(jsonResult{Mode: r.Mode, Value: value}); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// Log emits the result as an info entry.
type Log struct {
	L    *zap.Logger
	Mode string
}

// Report logs value and never fails.
func (r Log) Report(value int) error {
	r.L.Info("result", zap.String("mode", r.Mode), zap.Int("value", value))
	return nil
}

// Multi fans a result out to several reporters, stopping at the first error.
type Multi []Reporter

// Report forwards value to every reporter in order.
func (m Multi) Report(value int) error {
	for _, r := range m {
		if err := r.Report(value); err != nil {
			return err
		}
	}
	return nil
}

// New returns the reporter for format ("text" or "json").
func New(format, mode string, w io.Writer) (Reporter, error) {
	switch format {
	case "", "text":
		return Text{W: w}, nil
	case "json":
		return JSON{W: w, Mode: mode}, nil
	default:
		return nil, fmt.Errorf("report: unknown format %q", format)
	}
}
