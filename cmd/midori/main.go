// Command midori is the process entry point: it parses flags, loads and
// validates the configuration file, and runs the router until the process
// is killed. Its flag surface is small since MIDI port I/O itself is out
// of core scope.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/moustacheful/midori/internal/config"
	"github.com/moustacheful/midori/internal/driver"
	"github.com/moustacheful/midori/internal/midilog"
	"github.com/moustacheful/midori/internal/router"
	"github.com/moustacheful/midori/internal/transform"
)

func main() {
	configPath := pflag.StringP("config", "c", "midori.yaml", "Configuration file name.")
	logLevel := pflag.StringP("log-level", "l", "info", "Log level: debug, info, warn, error.")
	listDevices := pflag.Bool("list-devices", false, "Print the input/output device aliases configured in the config file and exit.")
	printSchema := pflag.Bool("print-schema", false, "Print the configuration schema of every transform type and exit.")
	help := pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "midori - a programmable real-time MIDI router.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: midori [options]\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *printSchema {
		printTransformSchemas()
		os.Exit(0)
	}

	if !midilog.Configure(*logLevel) {
		midilog.Fatal("unrecognised log level", "level", *logLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		midilog.Fatal("failed to load configuration", "path", *configPath, "error", err)
	}

	if err := cfg.Validate(); err != nil {
		midilog.Fatal("invalid configuration", "error", err)
	}

	if *listDevices {
		printConfiguredDevices(cfg)
		os.Exit(0)
	}

	// The MIDI driver itself (opening OS ports, subscribing to hardware
	// callbacks) is out of core scope: this module is wired against the
	// driver.Driver interface only. driver.Fake stands in as the runtime
	// implementation until a real backend is supplied in its place.
	devices := make([]string, 0, len(cfg.InputDevices)+len(cfg.OutputDevices))
	for _, name := range cfg.InputDevices {
		devices = append(devices, name)
	}
	for _, name := range cfg.OutputDevices {
		devices = append(devices, name)
	}
	drv := driver.NewFake(devices...)

	r, err := router.New(drv, cfg)
	if err != nil {
		midilog.Fatal("failed to build router", "error", err)
	}

	midilog.L.Info("midori started", "pipelines", len(cfg.Pipelines))

	if err := r.Run(); err != nil {
		midilog.Fatal("router exited", "error", err)
	}
}

func printConfiguredDevices(cfg *config.Config) {
	fmt.Println("input devices:")
	for alias, name := range cfg.InputDevices {
		fmt.Printf("  %s -> %s\n", alias, name)
	}
	fmt.Println("output devices:")
	for alias, name := range cfg.OutputDevices {
		fmt.Printf("  %s -> %s\n", alias, name)
	}
}

func printTransformSchemas() {
	catalog := map[string]transform.Schematic{
		"Filter":     &transform.Filter{},
		"Map":        &transform.Map{},
		"Distribute": &transform.Distribute{},
		"Arpeggio":   &transform.Arpeggio{},
		"Mirror":     &transform.Mirror{},
		"Inspect":    &transform.Inspect{},
		"Output":     &transform.Output{},
		"Wasm":       &transform.Wasm{},
	}

	schemas := make(map[string]map[string]any, len(catalog))
	for name, t := range catalog {
		schemas[name] = t.Schema()
	}

	out, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		midilog.Fatal("failed to marshal schema", "error", err)
	}
	fmt.Println(string(out))
}
