package harness

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/caio/go-bigo"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q: %w", s, bigo.ErrInvalidInput)
}

// WriteReport encodes the measurements to w.
func WriteReport(w io.Writer, format Format, measurements []Measurement) error {
	switch format {
	case FormatText:
		return writeText(w, measurements)
	case FormatJSON:
		return writeJSON(w, measurements)
	}
	return fmt.Errorf("unknown report format %q: %w", format, bigo.ErrInvalidInput)
}

func writeText(w io.Writer, measurements []Measurement) error {
	for _, m := range measurements {
		var err error
		switch {
		case !m.Executed:
			_, err = fmt.Fprintf(w, "%-12s(%d items): (Not executed)\n", m.Class, m.Items)
		case m.Runs > 1:
			_, err = fmt.Fprintf(w, "%-12s(%d items): %.6fs ±%.6fs (%d runs)\n",
				m.Class, m.Items, m.CPU.Seconds(), m.CPUStdDev.Seconds(), m.Runs)
		default:
			_, err = fmt.Fprintf(w, "%-12s(%d items): %.6fs\n", m.Class, m.Items, m.CPU.Seconds())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type jsonMeasurement struct {
	Class            string   `json:"class"`
	Items            int      `json:"items"`
	Executed         bool     `json:"executed"`
	Runs             int      `json:"runs,omitempty"`
	CPUSeconds       *float64 `json:"cpu_seconds,omitempty"`
	CPUStdDevSeconds *float64 `json:"cpu_stddev_seconds,omitempty"`
	WallSeconds      *float64 `json:"wall_seconds,omitempty"`
	Verified         bool     `json:"verified"`
}

func writeJSON(w io.Writer, measurements []Measurement) error {
	out := make([]jsonMeasurement, len(measurements))
	for i, m := range measurements {
		out[i] = jsonMeasurement{
			Class:    m.Class.String(),
			Items:    m.Items,
			Executed: m.Executed,
			Runs:     m.Runs,
			Verified: m.Verified,
		}
		if m.Executed {
			cpu, dev, wall := m.CPU.Seconds(), m.CPUStdDev.Seconds(), m.Wall.Seconds()
			out[i].CPUSeconds = &cpu
			out[i].CPUStdDevSeconds = &dev
			out[i].WallSeconds = &wall
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
