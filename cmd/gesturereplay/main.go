// Command gesturereplay replays gesture scripts and validates controller
// configuration files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/gogpu/gesture"
)

const (
	checkmark = "✓"
	crossmark = "✗"
)

func main() {
	app := kingpin.New("gesturereplay", "Replay multi-touch gesture scripts")
	app.HelpFlag.Short('h')
	verbose := app.Flag("verbose", "Log controller decisions to stderr").Short('v').Bool()

	replay := app.Command("replay", "Replay a gesture script and print the displayed transforms").Default()
	var (
		scriptPath = replay.Arg("script", "Gesture script (YAML)").Required().ExistingFile()
		framesDir  = replay.Flag("frames-dir", "Write PNG frames to this directory").Short('o').String()
		samples    = replay.Flag("samples", "Number of frames to print and export, 0 for all").Short('n').Default("0").Int()
		jobs       = replay.Flag("jobs", "Parallel frame exports").Short('j').Default("4").Int()
	)

	check := app.Command("check-config", "Validate a controller configuration file")
	configPath := check.Arg("file", "Configuration file (YAML)").Required().ExistingFile()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	setupLogging(*verbose)

	var err error
	switch command {
	case replay.FullCommand():
		err = doReplay(*scriptPath, *framesDir, *samples, *jobs)
	case check.FullCommand():
		err = doCheckConfig(*configPath)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	gesture.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func doCheckConfig(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, err := gesture.LoadConfig(f)
	if err != nil {
		fmt.Printf("%v %s\n", crossmark, path)
		return err
	}
	fmt.Printf("%v %s\n", checkmark, path)
	fmt.Printf("  rotate=%v boundaries=%v minScale=%s maxScale=%s\n",
		cfg.Rotate, cfg.Boundaries, scaleString(cfg.MinScale), scaleString(cfg.MaxScale))
	fmt.Printf("  animation=%v grace=%v doubleTap=%v\n",
		cfg.AnimationDuration, cfg.GracePeriod, cfg.DoubleTapWindow)
	return nil
}

func scaleString(v *float64) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("%g", *v)
}
