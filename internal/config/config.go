// Package config defines the YAML configuration shape consumed by the
// router, clock, and pipelines, and validates it eagerly at startup,
// loading into concrete tagged structs rather than a generic
// map[string]interface{} since the schema is known ahead of time.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default clock settings when the config omits a clock section.
const (
	DefaultBPM  = 60
	DefaultPPQN = 48
)

// ClockConfig configures the tempo subsystem. Exactly one of BPM or From
// must be set (an internal clock ticks on its own bpm; an external clock
// is driven by TimingClock bytes from the device named by From). PPQN is
// always required.
type ClockConfig struct {
	BPM  *int     `yaml:"bpm,omitempty"`
	PPQN *int     `yaml:"ppqn,omitempty"`
	From string   `yaml:"from,omitempty"`
	To   []string `yaml:"to,omitempty"`
}

// TransformConfig is the tagged configuration form of a pipeline stage.
// Type selects which fields below are meaningful; Build interprets it.
type TransformConfig struct {
	Type string `yaml:"type"`

	// Filter
	Devices  []string `yaml:"devices,omitempty"`
	Channels []uint8  `yaml:"channels,omitempty"`
	Kinds    []string `yaml:"kinds,omitempty"`

	// Map
	ChannelMap    map[uint8]uint8 `yaml:"channel_map,omitempty"`
	ControllerMap map[uint8]uint8 `yaml:"controller_map,omitempty"`

	// Distribute
	Between []uint8 `yaml:"between,omitempty"`

	// Arpeggio
	Subdivision    float64 `yaml:"subdivision,omitempty"`
	Direction      string  `yaml:"direction,omitempty"`
	Repeat         int     `yaml:"repeat,omitempty"`
	NoteDurationMs int     `yaml:"note_duration_ms,omitempty"`

	// Inspect
	TimestampFormat string `yaml:"timestamp_format,omitempty"`

	// Output
	Device string `yaml:"device,omitempty"`

	// Wasm
	ModulePath string `yaml:"module_path,omitempty"`
}

// PipelineConfig is one configured processing chain.
type PipelineConfig struct {
	Name       string            `yaml:"name"`
	Transforms []TransformConfig `yaml:"transforms"`
}

// Config is the top-level parsed configuration file.
type Config struct {
	InputDevices  map[string]string `yaml:"input_devices"`
	OutputDevices map[string]string `yaml:"output_devices"`
	Clock         *ClockConfig      `yaml:"clock,omitempty"`
	Pipelines     []PipelineConfig  `yaml:"pipelines"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &c, nil
}

// Validate checks the configuration eagerly so failures surface as a
// single fatal error at startup rather than partway through a run.
func (c *Config) Validate() error {
	if c.Clock == nil {
		bpm := DefaultBPM
		ppqn := DefaultPPQN
		c.Clock = &ClockConfig{BPM: &bpm, PPQN: &ppqn}
	} else if err := c.Clock.validate(); err != nil {
		return err
	}

	if len(c.Pipelines) == 0 {
		return fmt.Errorf("config: at least one pipeline is required")
	}

	for _, p := range c.Pipelines {
		if len(p.Transforms) == 0 {
			return fmt.Errorf("config: pipeline %q: transform list must not be empty", p.Name)
		}
		for _, tc := range p.Transforms {
			if err := tc.validate(); err != nil {
				return fmt.Errorf("config: pipeline %q: %w", p.Name, err)
			}
			if tc.Type == "Output" {
				if _, ok := c.OutputDevices[tc.Device]; !ok {
					return fmt.Errorf("config: pipeline %q: Output references unknown device alias %q", p.Name, tc.Device)
				}
			}
		}
	}

	return nil
}

func (cc *ClockConfig) validate() error {
	bpmSet := cc.BPM != nil
	fromSet := cc.From != ""

	if bpmSet == fromSet {
		return fmt.Errorf("config: clock requires exactly one of bpm or from, got bpm=%v from=%q", bpmSet, cc.From)
	}
	if cc.PPQN == nil {
		return fmt.Errorf("config: clock requires ppqn")
	}
	return nil
}

func (tc *TransformConfig) validate() error {
	switch tc.Type {
	case "Map", "Mirror", "Inspect", "Wasm":
		return nil
	case "Filter":
		for _, name := range tc.Kinds {
			if _, ok := kindNames[name]; !ok {
				return fmt.Errorf("Filter: unknown kind %q", name)
			}
		}
		return nil
	case "Distribute":
		if len(tc.Between) == 0 {
			return fmt.Errorf("Distribute requires a non-empty between list")
		}
		return nil
	case "Arpeggio":
		switch tc.Direction {
		case "", "Forward", "Backward", "PingPong":
			return nil
		default:
			return fmt.Errorf("Arpeggio: unknown direction %q", tc.Direction)
		}
	case "Output":
		if tc.Device == "" {
			return fmt.Errorf("Output requires a device alias")
		}
		return nil
	case "":
		return fmt.Errorf("transform entry missing type")
	default:
		return fmt.Errorf("unknown transform type %q", tc.Type)
	}
}
