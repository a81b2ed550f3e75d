package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a color written as "#rrggbb" or "#rrggbbaa".
type Color struct {
	color.Color
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseColor parses a hex color with an optional leading '#'.
func ParseColor(v string) (color.Color, error) {
	s := strings.TrimPrefix(v, "#")

	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid color format: %s", v)
		}
		return uint8(n), nil
	}

	r, err := parse(0)
	if err != nil {
		return nil, err
	}
	g, err := parse(2)
	if err != nil {
		return nil, err
	}
	b, err := parse(4)
	if err != nil {
		return nil, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
