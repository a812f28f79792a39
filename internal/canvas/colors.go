package canvas

import (
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]color.NRGBA{
	"white":  {0xff, 0xff, 0xff, 0xff},
	"black":  {0x00, 0x00, 0x00, 0xff},
	"red":    {0xff, 0x00, 0x00, 0xff},
	"yellow": {0xff, 0xff, 0x00, 0xff},
	"gold":   {0xff, 0xd7, 0x00, 0xff},
}

// ParseColor understands #rgb, #rrggbb, #rrggbbaa and a small set of CSS
// color names. Anything else yields the fallback; element colors come from
// user input and a bad value must not fail a render.
func ParseColor(s string, fallback color.NRGBA) color.NRGBA {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return fallback
	}

	if c, ok := namedColors[s]; ok {
		return c
	}

	if !strings.HasPrefix(s, "#") {
		return fallback
	}
	hex := s[1:]

	switch len(hex) {
	case 3:
		r, okR := hexNibble(hex[0])
		g, okG := hexNibble(hex[1])
		b, okB := hexNibble(hex[2])
		if !okR || !okG || !okB {
			return fallback
		}
		return color.NRGBA{r * 17, g * 17, b * 17, 0xff}
	case 6, 8:
		v, err := strconv.ParseUint(hex, 16, 64)
		if err != nil {
			return fallback
		}
		if len(hex) == 6 {
			return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
		}
		return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}
	default:
		return fallback
	}
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	default:
		return 0, false
	}
}
