// Package scene assembles a collision scene from a declarative YAML
// description: bodies and their shapes, rule overrides and movers.
package scene

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Shape kinds accepted in ShapeConfig.Kind
const (
	KindSphere  = "sphere"
	KindBox     = "box"
	KindCapsule = "capsule"
)

type Config struct {
	Log    LogConfig     `yaml:"log"`
	Bodies []BodyConfig  `yaml:"bodies"`
	Rules  RulesConfig   `yaml:"rules"`
	Movers []MoverConfig `yaml:"movers"`
}

type LogConfig struct {
	// Level is a zap level name, "info" when empty
	Level string `yaml:"level"`
	// Lines is the capacity of the debug event log
	Lines int `yaml:"lines"`
}

type BodyConfig struct {
	Id       string      `yaml:"id"`
	Type     string      `yaml:"type"`
	Position []float64   `yaml:"position"`
	Shape    ShapeConfig `yaml:"shape"`
}

type ShapeConfig struct {
	Kind        string    `yaml:"kind"`
	Radius      float64   `yaml:"radius,omitempty"`
	HalfHeight  float64   `yaml:"halfHeight,omitempty"`
	HalfExtents []float64 `yaml:"halfExtents,omitempty"`
	Offset      []float64 `yaml:"offset,omitempty"`
	Up          []float64 `yaml:"up,omitempty"`
}

type RulesConfig struct {
	ObjectPairs []RuleConfig `yaml:"objectPairs"`
	ObjectTypes []RuleConfig `yaml:"objectTypes"`
	TypePairs   []RuleConfig `yaml:"typePairs"`
}

// RuleConfig is one override. For object-type rules Left is the body id
// and Right the type.
type RuleConfig struct {
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	CanCollide bool   `yaml:"canCollide"`
}

// MoverConfig drives a body. With Held actions the body moves constantly,
// otherwise it follows the square pattern with Segment seconds per leg.
type MoverConfig struct {
	Target        string   `yaml:"target"`
	Segment       float64  `yaml:"segment,omitempty"`
	Held          []string `yaml:"held,omitempty"`
	Speed         float64  `yaml:"speed,omitempty"`
	RunMultiplier float64  `yaml:"runMultiplier,omitempty"`
}

// LoadYAML loads config from YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &c, nil
}

// LoadFile loads config from a YAML file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadYAML(f)
}

// toVector converts a YAML triple, fallback is used when values is empty
func toVector(values []float64, fallback mgl64.Vec3) (mgl64.Vec3, error) {
	switch len(values) {
	case 0:
		return fallback, nil
	case 3:
		return mgl64.Vec3{values[0], values[1], values[2]}, nil
	}

	return mgl64.Vec3{}, fmt.Errorf("%w, got %d", ErrInvalidVector, len(values))
}
