// Package profile loads and saves dispatcher configuration as YAML or JSON
// files. A profile names the capacities, safety mode, pump pacing, and a
// symbolic code table, and converts into the option slices the eventx and
// pump constructors take.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comalice/eventx"
	"github.com/comalice/eventx/pump"
)

// Profile defines a complete dispatcher configuration.
type Profile struct {
	Name             string         `json:"name,omitempty" yaml:"name,omitempty"`
	Safety           string         `json:"safety,omitempty" yaml:"safety,omitempty"`
	QueueCapacity    int            `json:"queue_capacity,omitempty" yaml:"queue_capacity,omitempty"`
	ListenerCapacity int            `json:"listener_capacity,omitempty" yaml:"listener_capacity,omitempty"`
	Codes            map[string]int `json:"codes,omitempty" yaml:"codes,omitempty"`
	Pump             PumpProfile    `json:"pump,omitempty" yaml:"pump,omitempty"`
}

// PumpProfile configures the consumer loop. Interval uses Go duration
// syntax ("10ms"); Mode is "drain" or "single".
type PumpProfile struct {
	Interval string `json:"interval,omitempty" yaml:"interval,omitempty"`
	Mode     string `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// Default returns the configuration a zero-option dispatcher and pump
// would use.
func Default() Profile {
	return Profile{
		Name:             "default",
		Safety:           eventx.InterruptSafe.String(),
		QueueCapacity:    eventx.DefaultQueueCapacity,
		ListenerCapacity: eventx.DefaultListenerCapacity,
		Pump: PumpProfile{
			Interval: pump.DefaultInterval.String(),
			Mode:     pump.ModeDrain.String(),
		},
	}
}

// Validate validates the profile:
// - Safety is empty or a known mode name
// - Capacities are non-negative (zero means default)
// - Code names are non-empty
// - Pump mode is empty or a known mode name
// - Pump interval is empty or a positive Go duration
func (p *Profile) Validate() error {
	if _, err := parseSafety(p.Safety); err != nil {
		return err
	}
	if p.QueueCapacity < 0 {
		return errors.New("queue capacity cannot be negative")
	}
	if p.ListenerCapacity < 0 {
		return errors.New("listener capacity cannot be negative")
	}
	for name := range p.Codes {
		if name == "" {
			return errors.New("code name cannot be empty")
		}
	}
	if _, err := parseMode(p.Pump.Mode); err != nil {
		return err
	}
	if p.Pump.Interval != "" {
		d, err := time.ParseDuration(p.Pump.Interval)
		if err != nil {
			return fmt.Errorf("pump interval: %w", err)
		}
		if d <= 0 {
			return errors.New("pump interval must be positive")
		}
	}
	return nil
}

// Code resolves a symbolic code name from the profile's code table.
func (p *Profile) Code(name string) (int, bool) {
	code, ok := p.Codes[name]
	return code, ok
}

// Options converts the profile into dispatcher options. The profile must
// validate; fields the profile leaves at zero are omitted so the
// dispatcher defaults apply.
func (p *Profile) Options() []eventx.Option {
	var opts []eventx.Option
	if mode, err := parseSafety(p.Safety); err == nil {
		opts = append(opts, eventx.WithSafetyMode(mode))
	}
	if p.QueueCapacity > 0 {
		opts = append(opts, eventx.WithQueueCapacity(p.QueueCapacity))
	}
	if p.ListenerCapacity > 0 {
		opts = append(opts, eventx.WithListenerCapacity(p.ListenerCapacity))
	}
	return opts
}

// PumpOptions converts the pump section into pump options. The profile
// must validate; unset fields are omitted so the pump defaults apply.
func (p *Profile) PumpOptions() []pump.Option {
	var opts []pump.Option
	if p.Pump.Interval != "" {
		if d, err := time.ParseDuration(p.Pump.Interval); err == nil && d > 0 {
			opts = append(opts, pump.WithInterval(d))
		}
	}
	if mode, err := parseMode(p.Pump.Mode); err == nil {
		opts = append(opts, pump.WithMode(mode))
	}
	return opts
}

// Load reads a profile from path and validates it. Files ending in .json
// decode as JSON, everything else as YAML.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Profile{}, fmt.Errorf("profile %q: %w", path, os.ErrNotExist)
		}
		return Profile{}, fmt.Errorf("read %s: %w", path, err)
	}

	var p Profile
	if isJSON(path) {
		if err := json.Unmarshal(data, &p); err != nil {
			return Profile{}, fmt.Errorf("json unmarshal: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &p); err != nil {
			return Profile{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("profile validation after load: %w", err)
	}
	return p, nil
}

// Save validates the profile and writes it to path, choosing the encoding
// the same way Load does.
func (p *Profile) Save(path string) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("profile validation before save: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(p, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
	} else {
		data, err = yaml.Marshal(p)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func isJSON(path string) bool {
	return filepath.Ext(path) == ".json"
}

func parseSafety(s string) (eventx.SafetyMode, error) {
	switch s {
	case "", "interrupt-safe":
		return eventx.InterruptSafe, nil
	case "not-interrupt-safe":
		return eventx.NotInterruptSafe, nil
	default:
		return 0, fmt.Errorf("unknown safety mode %q", s)
	}
}

func parseMode(s string) (pump.Mode, error) {
	switch s {
	case "", "drain":
		return pump.ModeDrain, nil
	case "single":
		return pump.ModeSingle, nil
	default:
		return 0, fmt.Errorf("unknown pump mode %q", s)
	}
}
