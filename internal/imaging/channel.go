package imaging

import (
	"fmt"
	"strconv"
	"strings"
)

// Channel selects what a render shows: the full colour image or one isolated
// colour component.
type Channel int

const (
	ChannelAll Channel = iota
	ChannelRed
	ChannelGreen
	ChannelBlue
)

var channelNames = [...]string{"all", "red", "green", "blue"}

func (c Channel) String() string {
	if c < ChannelAll || c > ChannelBlue {
		return "Channel(" + strconv.Itoa(int(c)) + ")"
	}
	return channelNames[c]
}

// Valid reports whether c is one of the four defined selectors.
func (c Channel) Valid() bool {
	return c >= ChannelAll && c <= ChannelBlue
}

// ParseChannel accepts a selector name ("all", "red", "green", "blue", case
// insensitive) or its list index ("0" through "3").
func ParseChannel(s string) (Channel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range channelNames {
		if s == name {
			return Channel(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Channel(n).Valid() {
		return Channel(n), nil
	}
	return ChannelAll, fmt.Errorf("unknown channel %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Channel) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid channel %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Channel) UnmarshalText(text []byte) error {
	ch, err := ParseChannel(string(text))
	if err != nil {
		return err
	}
	*c = ch
	return nil
}

// IsolateChannel returns a new buffer of the same size that keeps only the
// selected channel; the other two are zero at every pixel. ChannelAll (and any
// undefined selector) returns a plain copy. The source is never modified.
func IsolateChannel(src *Buffer, ch Channel) *Buffer {
	if ch == ChannelAll || !ch.Valid() {
		return src.Clone()
	}

	keep := int(ch) - int(ChannelRed)
	out := &Buffer{Width: src.Width, Height: src.Height, Pix: make([]uint8, len(src.Pix))}
	for i := keep; i < len(src.Pix); i += 3 {
		out.Pix[i] = src.Pix[i]
	}
	return out
}
