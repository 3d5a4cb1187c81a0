package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/caio/go-bigo/internal/config"
	"github.com/caio/go-bigo/internal/harness"
	"github.com/caio/go-bigo/internal/logging"
)

type rootFlags struct {
	configPath string
	seed       int64
	minValue   int64
	maxValue   int64
	hanoiDisks int
	repeat     int
	verify     bool
	format     string
	logLevel   string
	logJSON    bool
}

// newRootCommand builds the command for the given arguments, excluding
// the program name.
func newRootCommand(stdout, stderr io.Writer, args []string) *cobra.Command {
	var flags rootFlags
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "bigo <number of items>",
		Short: "Time one algorithm per complexity class",
		Long: `bigo generates random integer sequences of the given size and times a
textbook algorithm for each complexity class from O(1) to O(n^n):
first element, binary search, square root range sums, linear search,
quicksort, quadratic maximum subarray and the Tower of Hanoi.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &flags, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(append([]string{}, args...))

	// A negative size such as -3 looks like a shorthand flag to the
	// parser but is still a bad size, not a bad flag.
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if hasNegativeNumber(args) {
			return usage(cmd, stdout)
		}
		return err
	})

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "YAML file with run settings")
	f.Int64Var(&flags.seed, "seed", defaults.Seed, "seed for data generation, 0 picks one from the clock")
	f.Int64Var(&flags.minValue, "min", defaults.MinValue, "smallest generated value")
	f.Int64Var(&flags.maxValue, "max", defaults.MaxValue, "largest generated value")
	f.IntVar(&flags.hanoiDisks, "hanoi-disks", defaults.HanoiDisks, "largest Tower of Hanoi, 0 skips it")
	f.IntVar(&flags.repeat, "repeat", defaults.Repeat, "timed runs per algorithm")
	f.BoolVar(&flags.verify, "verify", defaults.Verify, "check every result against a reference implementation")
	f.StringVar(&flags.format, "format", defaults.Format, "report format: text or json")
	f.StringVar(&flags.logLevel, "log-level", defaults.Log.Level, "log level: debug, info, warn or error")
	f.BoolVar(&flags.logJSON, "log-json", defaults.Log.JSON, "log JSON lines instead of text")

	return cmd
}

func run(cmd *cobra.Command, args []string, flags *rootFlags, stdout, stderr io.Writer) error {
	cfg := config.Default()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return err
		}
	}
	flags.apply(cmd, &cfg)

	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return usage(cmd, stdout)
		}
		cfg.Items = n
	}
	if cfg.Items <= 0 {
		return usage(cmd, stdout)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := logging.ParseLevel(cfg.Log.Level)
	format, _ := harness.ParseFormat(cfg.Format)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := logging.New(stderr, logging.Config{
		Level:   level,
		JSON:    cfg.Log.JSON,
		Service: "bigo",
	}).With("run_id", uuid.NewString())

	logger.Info("building trials", "items", cfg.Items, "seed", seed, "hanoi_disks", cfg.HanoiDisks)
	trials, err := harness.Build(cfg.Items, cfg.Options(seed)...)
	if err != nil {
		return err
	}

	runner := harness.Runner{
		Repeat: cfg.Repeat,
		Verify: cfg.Verify,
		Logger: logger,
	}
	measurements, err := runner.Run(cmd.Context(), trials)
	if err != nil {
		return err
	}

	return harness.WriteReport(stdout, format, measurements)
}

// apply copies explicitly set flags over cfg so that a config file is
// only overridden where the user asked for it.
func (f *rootFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("min") {
		cfg.MinValue = f.minValue
	}
	if changed("max") {
		cfg.MaxValue = f.maxValue
	}
	if changed("hanoi-disks") {
		cfg.HanoiDisks = f.hanoiDisks
	}
	if changed("repeat") {
		cfg.Repeat = f.repeat
	}
	if changed("verify") {
		cfg.Verify = f.verify
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-json") {
		cfg.Log.JSON = f.logJSON
	}
}

func hasNegativeNumber(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			break
		}
		if strings.HasPrefix(arg, "-") {
			if _, err := strconv.Atoi(arg); err == nil {
				return true
			}
		}
	}
	return false
}

func usage(cmd *cobra.Command, w io.Writer) error {
	_, err := fmt.Fprintf(w, "Usage: %s <number of items>\n", cmd.Name())
	return err
}
