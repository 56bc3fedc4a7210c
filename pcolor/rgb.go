package pcolor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"message-info/ds"
)

// FromHexStr reads either "RRGGBB" or "#RRGGBB".
func FromHexStr(s string) (RGB, bool) {
	s = strings.TrimPrefix(s, HexPrefix)
	if len(s) != HexLength {
		return RGB{}, false
	}

	channels := make([]uint8, 0, 3)
	for _, pair := range ds.MakeChunks([]byte(s), 2) {
		value, err := strconv.ParseUint(string(pair), 16, 8)
		if err != nil {
			return RGB{}, false
		}
		channels = append(channels, uint8(value))
	}

	return RGB{Red: channels[0], Green: channels[1], Blue: channels[2]}, true
}

func (c RGB) ToHexStr(prependHashtag bool) string {
	return fmt.Sprintf(
		"%s%02X%02X%02X",
		lo.Ternary(prependHashtag, HexPrefix, ""),
		c.Red, c.Green, c.Blue,
	)
}

func (c RGB) String() string {
	return c.ToHexStr(true)
}

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.ToHexStr(true)), nil
}

func (c *RGB) UnmarshalText(text []byte) error {
	rgb, ok := FromHexStr(string(text))
	if !ok {
		return fmt.Errorf(`RGB.UnmarshalText got invalid hex color "%s"`, string(text))
	}
	*c = rgb
	return nil
}
