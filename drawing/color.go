package drawing

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
)

// RGB is a drawing color. It travels on the wire as a "#RRGGBB" string, the
// format the canvas clients exchange.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c RGB) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Hex() + `"`), nil
}

func (c *RGB) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: bad color %s", ErrInvalidOperation, data)
	}
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("%w: bad color %q", ErrInvalidOperation, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return fmt.Errorf("%w: bad color %q", ErrInvalidOperation, s)
	}
	*c = RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
	return nil
}
