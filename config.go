package contour

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// maxConfigSize caps the size of a parameter file.
const maxConfigSize = 1 << 20

// Config is a partial set of Processor parameters read from JSON. Fields
// left out of the file are nil and keep the Processor's current value.
type Config struct {
	Width  *int `json:"width,omitempty"`
	Height *int `json:"height,omitempty"`

	LayerCount *int     `json:"layer_count,omitempty"`
	EdgeLow    *float64 `json:"edge_low,omitempty"`
	EdgeHigh   *float64 `json:"edge_high,omitempty"`

	Inset       *float64 `json:"inset,omitempty"`
	FixedAspect *bool    `json:"fixed_aspect,omitempty"`

	Mask     *bool    `json:"mask,omitempty"`
	Rounding *float64 `json:"rounding,omitempty"`
	Easing   *float64 `json:"easing,omitempty"`

	NoiseScaleX  *float64 `json:"noise_scale_x,omitempty"`
	NoiseScaleY  *float64 `json:"noise_scale_y,omitempty"`
	NoiseVariant *float64 `json:"noise_variant,omitempty"`
	Seed         *int64   `json:"seed,omitempty"`
	Blur         *int     `json:"blur,omitempty"`

	Resolution    *int     `json:"resolution,omitempty"`
	Interpolate   *bool    `json:"interpolate,omitempty"`
	EvenSpacing   *bool    `json:"even_spacing,omitempty"`
	SplineTension *float64 `json:"spline_tension,omitempty"`
	LineWidth     *float64 `json:"line_width,omitempty"`
	GridLayer     *bool    `json:"grid_layer,omitempty"`
}

// LoadConfig reads a Config from a .json file of at most 1 MB.
func LoadConfig(path string) (*Config, error) {
	path = filepath.Clean(path)
	if ext := filepath.Ext(path); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fi.Size() > maxConfigSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fi.Size(), maxConfigSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate rejects values no drawing can be generated from.
func (c *Config) Validate() error {
	if c.Width != nil && *c.Width <= 0 {
		return fmt.Errorf("%w: width %d", ErrSize, *c.Width)
	}
	if c.Height != nil && *c.Height <= 0 {
		return fmt.Errorf("%w: height %d", ErrSize, *c.Height)
	}
	if c.LayerCount != nil && *c.LayerCount < 1 {
		return fmt.Errorf("%w: got %d", ErrLayerCount, *c.LayerCount)
	}
	if c.Resolution != nil && *c.Resolution < 1 {
		return fmt.Errorf("%w: got %d", ErrResolution, *c.Resolution)
	}
	for _, b := range []*float64{c.EdgeLow, c.EdgeHigh} {
		if b != nil && (math.IsNaN(*b) || math.IsInf(*b, 0)) {
			return fmt.Errorf("%w: got %g", ErrBounds, *b)
		}
	}
	if c.Inset != nil && (*c.Inset < 0 || *c.Inset >= 0.5) {
		return fmt.Errorf("inset must be in [0, 0.5), got %g", *c.Inset)
	}
	if c.Blur != nil && *c.Blur < 0 {
		return fmt.Errorf("blur must be non-negative, got %d", *c.Blur)
	}
	return nil
}

// Apply copies every set field onto p.
func (c *Config) Apply(p *Processor) {
	setInt(&p.Width, c.Width)
	setInt(&p.Height, c.Height)
	setInt(&p.LayerCount, c.LayerCount)
	setFloat(&p.EdgeLow, c.EdgeLow)
	setFloat(&p.EdgeHigh, c.EdgeHigh)
	setFloat(&p.Inset, c.Inset)
	setBool(&p.FixedAspect, c.FixedAspect)
	setBool(&p.Mask, c.Mask)
	setFloat(&p.Rounding, c.Rounding)
	setFloat(&p.Easing, c.Easing)
	setFloat(&p.NoiseScaleX, c.NoiseScaleX)
	setFloat(&p.NoiseScaleY, c.NoiseScaleY)
	setFloat(&p.NoiseVariant, c.NoiseVariant)
	if c.Seed != nil {
		p.Seed = *c.Seed
	}
	setInt(&p.Blur, c.Blur)
	setInt(&p.Resolution, c.Resolution)
	setBool(&p.Interpolate, c.Interpolate)
	setBool(&p.EvenSpacing, c.EvenSpacing)
	setFloat(&p.SplineTension, c.SplineTension)
	setFloat(&p.LineWidth, c.LineWidth)
	setBool(&p.GridLayer, c.GridLayer)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
