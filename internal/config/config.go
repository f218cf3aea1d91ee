package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	goyaml "gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gomohr/internal/stress"
)

// Scenario is a stress analysis scenario loaded from a YAML file, with
// environment variable overrides (prefix `GOMOHR__`, delimiter `__`, e.g.
// GOMOHR__STRESS__SIGMA_X=-89).
type Scenario struct {
	Name string `koanf:"name" yaml:"name"`

	Stress struct {
		SigmaX float64 `koanf:"sigma_x" yaml:"sigma_x"`
		SigmaY float64 `koanf:"sigma_y" yaml:"sigma_y"`
		TauXY  float64 `koanf:"tau_xy" yaml:"tau_xy"`
	} `koanf:"stress" yaml:"stress"`

	Rotation struct {
		Theta float64 `koanf:"theta" yaml:"theta"` // degrees, clamped to [0, 180]
	} `koanf:"rotation" yaml:"rotation"`

	Plot struct {
		Samples   int     `koanf:"samples" yaml:"samples"`
		Start     float64 `koanf:"start" yaml:"start"`
		End       float64 `koanf:"end" yaml:"end"`
		CurveFile string  `koanf:"curve_file" yaml:"curve_file,omitempty"`
		MohrFile  string  `koanf:"mohr_file" yaml:"mohr_file,omitempty"`
	} `koanf:"plot" yaml:"plot"`
}

// State returns the scenario's stress state.
func (sc Scenario) State() stress.State {
	return stress.State{
		SigmaX: sc.Stress.SigmaX,
		SigmaY: sc.Stress.SigmaY,
		TauXY:  sc.Stress.TauXY,
	}
}

const envPrefix = "GOMOHR__"

// Load reads a scenario YAML file, merges environment overrides, applies
// defaults and validates. A missing file is tolerated so a scenario can be
// supplied entirely through env vars; any other read or parse failure is
// reported.
func Load(path string) (Scenario, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Scenario{}, fmt.Errorf("loading scenario %s: %w", path, err)
		}
	}

	_ = k.Load(env.Provider(envPrefix, "__", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)

	var sc Scenario
	if err := k.Unmarshal("", &sc); err != nil {
		return sc, fmt.Errorf("parsing scenario: %w", err)
	}

	applyDefaults(&sc)

	if !sc.State().IsFinite() {
		return sc, fmt.Errorf("scenario %s: stress components must be finite numbers", path)
	}
	return sc, nil
}

func applyDefaults(sc *Scenario) {
	if sc.Plot.Samples < 2 {
		sc.Plot.Samples = stress.DefaultSamples
	}
	if sc.Plot.Start == 0 && sc.Plot.End == 0 {
		sc.Plot.Start = stress.DomainStartDeg
		sc.Plot.End = stress.DomainEndDeg
	}

	// Slider-style clamp; the math itself accepts any angle.
	if sc.Rotation.Theta < 0 {
		sc.Rotation.Theta = 0
	}
	if sc.Rotation.Theta > 180 {
		sc.Rotation.Theta = 180
	}
}

// WriteTemplate writes a starter scenario file using the reference example
// state (σx=-89, σy=20, τxy=40 at θ=67°). Refuses to overwrite unless force
// is set.
func WriteTemplate(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	var sc Scenario
	sc.Name = "example"
	sc.Stress.SigmaX = -89
	sc.Stress.SigmaY = 20
	sc.Stress.TauXY = 40
	sc.Rotation.Theta = 67
	sc.Plot.Samples = stress.DefaultSamples
	sc.Plot.Start = stress.DomainStartDeg
	sc.Plot.End = stress.DomainEndDeg
	sc.Plot.CurveFile = "transformation.png"
	sc.Plot.MohrFile = "mohr.png"

	out, err := goyaml.Marshal(sc)
	if err != nil {
		return err
	}

	header := "# gomohr scenario file\n" +
		"# Stresses share one unit (e.g. MPa); angles are in degrees.\n" +
		"# Any value can be overridden via env, e.g. GOMOHR__STRESS__SIGMA_X=-89\n"
	return os.WriteFile(path, []byte(header+string(out)), 0644)
}
