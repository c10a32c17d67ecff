package imaging

import (
	"testing"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in      string
		want    Channel
		wantErr bool
	}{
		{"all", ChannelAll, false},
		{"Red", ChannelRed, false},
		{" GREEN ", ChannelGreen, false},
		{"blue", ChannelBlue, false},
		{"0", ChannelAll, false},
		{"3", ChannelBlue, false},
		{"4", ChannelAll, true},
		{"-1", ChannelAll, true},
		{"alpha", ChannelAll, true},
		{"", ChannelAll, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseChannel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChannel_TextRoundTrip(t *testing.T) {
	for _, ch := range []Channel{ChannelAll, ChannelRed, ChannelGreen, ChannelBlue} {
		text, err := ch.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", ch, err)
		}
		var back Channel
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != ch {
			t.Errorf("round trip: got %v, want %v", back, ch)
		}
	}

	if _, err := Channel(9).MarshalText(); err == nil {
		t.Error("MarshalText should reject an undefined channel")
	}
}

func TestIsolateChannel(t *testing.T) {
	src := createPatternBuffer(t, 8, 8)
	for i := range src.Pix {
		// Give every pixel distinct, nonzero channels.
		src.Pix[i] = uint8(i%251) + 1
	}

	tests := []struct {
		ch   Channel
		keep int
	}{
		{ChannelRed, 0},
		{ChannelGreen, 1},
		{ChannelBlue, 2},
	}

	for _, tt := range tests {
		t.Run(tt.ch.String(), func(t *testing.T) {
			out := IsolateChannel(src, tt.ch)
			if out.Width != src.Width || out.Height != src.Height {
				t.Fatalf("dimensions: got %dx%d", out.Width, out.Height)
			}
			for i := 0; i < len(out.Pix); i += 3 {
				for c := 0; c < 3; c++ {
					want := uint8(0)
					if c == tt.keep {
						want = src.Pix[i+c]
					}
					if out.Pix[i+c] != want {
						t.Fatalf("pixel %d channel %d: got %d, want %d", i/3, c, out.Pix[i+c], want)
					}
				}
			}
		})
	}
}

func TestIsolateChannel_AllIsCopy(t *testing.T) {
	src := createPatternBuffer(t, 6, 4)
	out := IsolateChannel(src, ChannelAll)

	if !out.Equal(src) {
		t.Fatal("ChannelAll should reproduce the source")
	}
	out.Pix[0] ^= 0xFF
	if out.Equal(src) {
		t.Error("ChannelAll output aliases the source")
	}
}
