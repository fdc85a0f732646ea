package config

import (
	"errors"
	"fmt"
)

// Map object tags understood by the stage loader
const (
	TagPlayer = "player"
	TagCoin   = "coin"
)

// StageConfig is the root config for stages/<name>.yaml.
// Objects is the tagged object layer; Solids is the untagged physics layer.
type StageConfig struct {
	ID         string         `json:"id" yaml:"id"`
	Name       string         `json:"name" yaml:"name"`
	TileSize   int            `json:"tileSize" yaml:"tileSize"`
	Width      int            `json:"width" yaml:"width"`   // tiles
	Height     int            `json:"height" yaml:"height"` // tiles
	Background string         `json:"background,omitempty" yaml:"background,omitempty"`
	Objects    []ObjectConfig `json:"objects" yaml:"objects"`
	Solids     []RectConfig   `json:"solids" yaml:"solids"`
}

// ObjectConfig is a tagged rectangle in world pixels
type ObjectConfig struct {
	Tag        string `json:"tag" yaml:"tag"`
	RectConfig `yaml:",inline"`
}

// RectConfig is a rectangle in world pixels
type RectConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"w" yaml:"w"`
	H float64 `json:"h" yaml:"h"`
}

// PixelWidth returns the map width in pixels
func (s *StageConfig) PixelWidth() float64 {
	return float64(s.Width * s.TileSize)
}

// PixelHeight returns the map height in pixels
func (s *StageConfig) PixelHeight() float64 {
	return float64(s.Height * s.TileSize)
}

// Validate checks the map dimensions and solid rectangles
func (s *StageConfig) Validate() error {
	var errs []error
	if s.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tileSize must be positive, got %d", s.TileSize))
	}
	if s.Width <= 0 || s.Height <= 0 {
		errs = append(errs, fmt.Errorf("map size must be positive, got %dx%d", s.Width, s.Height))
	}
	for i, r := range s.Solids {
		if r.W <= 0 || r.H <= 0 {
			errs = append(errs, fmt.Errorf("solid %d has non-positive size %gx%g", i, r.W, r.H))
		}
	}
	return errors.Join(errs...)
}
