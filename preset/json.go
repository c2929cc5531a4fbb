// Package preset loads and saves JSON engine presets: engine options plus
// per-channel control values keyed by channel name or index.
package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mahendrafhrz/eldig-sps/sim"
	"github.com/mahendrafhrz/eldig-sps/sim/model"
)

// File is the JSON schema for engine presets.
type File struct {
	Timestep       *float64           `json:"timestep,omitempty"`
	NoiseAmplitude *float64           `json:"noise_amplitude,omitempty"`
	FilterAlpha    *float64           `json:"filter_alpha,omitempty"`
	Seed           *int64             `json:"seed,omitempty"`
	Controls       map[string]float64 `json:"controls,omitempty"`
}

// Parse decodes and validates a preset.
func Parse(b []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("preset decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadJSON reads and parses a preset file.
func LoadJSON(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Validate checks field ranges and resolves every control key.
func (f *File) Validate() error {
	if f.Timestep != nil && !(*f.Timestep > 0) {
		return fmt.Errorf("timestep must be > 0")
	}
	if f.NoiseAmplitude != nil && !(*f.NoiseAmplitude >= 0) {
		return fmt.Errorf("noise_amplitude must be >= 0")
	}
	if f.FilterAlpha != nil && !(*f.FilterAlpha > 0 && *f.FilterAlpha <= 1) {
		return fmt.Errorf("filter_alpha must be in (0,1]")
	}
	for k, v := range f.Controls {
		if _, err := ChannelIndex(k); err != nil {
			return err
		}
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("controls[%q] must be in [0,1]", k)
		}
	}
	return nil
}

// Options returns the engine options the preset sets.
func (f *File) Options() []sim.Option {
	if f == nil {
		return nil
	}
	var opts []sim.Option
	if f.Timestep != nil {
		opts = append(opts, sim.WithTimestep(*f.Timestep))
	}
	if f.NoiseAmplitude != nil {
		opts = append(opts, sim.WithNoiseAmplitude(*f.NoiseAmplitude))
	}
	if f.FilterAlpha != nil {
		opts = append(opts, sim.WithFilterAlpha(*f.FilterAlpha))
	}
	if f.Seed != nil {
		opts = append(opts, sim.WithSeed(*f.Seed))
	}
	return opts
}

// Apply writes the preset control values onto e in channel order.
func Apply(e *sim.Engine, f *File) error {
	if e == nil {
		return fmt.Errorf("nil destination engine")
	}
	if f == nil {
		return nil
	}

	keys := make([]string, 0, len(f.Controls))
	for k := range f.Controls {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		idx, err := ChannelIndex(k)
		if err != nil {
			return err
		}
		if err := e.SetControlParameter(idx, f.Controls[k]); err != nil {
			return fmt.Errorf("controls[%q]: %w", k, err)
		}
	}
	return nil
}

// FromEngine captures the control values of e, keyed by channel name.
func FromEngine(e *sim.Engine) (*File, error) {
	f := &File{Controls: make(map[string]float64, model.Count)}
	for i := range model.Count {
		c, err := e.ControlParameter(i)
		if err != nil {
			return nil, err
		}
		d, _ := model.Describe(i)
		f.Controls[d.Name] = c
	}
	return f, nil
}

// Marshal encodes f as indented JSON.
func Marshal(f *File) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}

// ChannelIndex resolves a control key: a display name (case-insensitive)
// or a decimal index.
func ChannelIndex(key string) (int, error) {
	k := strings.TrimSpace(key)
	if idx, err := strconv.Atoi(k); err == nil {
		if idx < 0 || idx >= model.Count {
			return 0, fmt.Errorf("invalid channel key %q (expected 0..%d)", key, model.Count-1)
		}
		return idx, nil
	}
	for i := range model.Count {
		d, _ := model.Describe(i)
		if strings.EqualFold(d.Name, k) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown channel key %q", key)
}
