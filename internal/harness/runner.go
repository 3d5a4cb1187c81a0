package harness

import (
	"context"
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/caio/go-bigo"
)

// Measurement is the timing of one trial over all its repetitions.
type Measurement struct {
	Class    bigo.Class
	Items    int
	Executed bool
	Runs     int
	// CPU and Wall are means over Runs. The deviations are zero for a
	// single run.
	CPU       time.Duration
	CPUStdDev time.Duration
	Wall      time.Duration
	Verified  bool
}

// Runner times trials one after the other.
type Runner struct {
	// Repeat is the number of timed runs per trial. Values below 1 mean 1.
	Repeat int
	// Verify checks every run against the trial's reference.
	Verify bool
	Clock  Clock
	Logger *slog.Logger
}

// Run executes every executable trial and returns their measurements
// in trial order. The context is only consulted between runs; a run in
// progress always completes.
func (r *Runner) Run(ctx context.Context, trials []Trial) ([]Measurement, error) {
	clock := r.Clock
	if clock == nil {
		clock = ProcessClock()
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	repeat := max(r.Repeat, 1)

	measurements := make([]Measurement, 0, len(trials))
	for _, trial := range trials {
		m := Measurement{Class: trial.Class(), Items: trial.Items()}
		if !trial.Executable() {
			logger.Debug("skipping trial", "class", m.Class.String(), "items", m.Items)
			measurements = append(measurements, m)
			continue
		}

		cpu := make([]float64, 0, repeat)
		wall := make([]float64, 0, repeat)
		for i := 0; i < repeat; i++ {
			if err := ctx.Err(); err != nil {
				return measurements, err
			}

			trial.Prepare()
			begin := clock.CPUTime()
			start := time.Now()
			trial.Run()
			elapsed := time.Since(start)
			used := clock.CPUTime() - begin

			cpu = append(cpu, used.Seconds())
			wall = append(wall, elapsed.Seconds())

			if r.Verify {
				if err := trial.Check(); err != nil {
					logger.Error("trial check failed", "class", m.Class.String(), "run", i, "error", err)
					return measurements, err
				}
			}
		}

		m.Executed = true
		m.Runs = repeat
		m.Verified = r.Verify
		m.CPU = seconds(stat.Mean(cpu, nil))
		m.Wall = seconds(stat.Mean(wall, nil))
		if dev := stat.StdDev(cpu, nil); repeat > 1 && !math.IsNaN(dev) {
			m.CPUStdDev = seconds(dev)
		}

		logger.Info("trial finished",
			"class", m.Class.String(),
			"items", m.Items,
			"runs", m.Runs,
			"cpu", m.CPU,
			"wall", m.Wall,
			"verified", m.Verified)
		measurements = append(measurements, m)
	}

	return measurements, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
