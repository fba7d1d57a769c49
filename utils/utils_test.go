package utils

import (
	"bytes"
	"image/color"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestMath_MinMax(t *testing.T) {
	if v := Min(3, 7); v != 3 {
		t.Errorf("Min expected to be %v. Got %v", 3, v)
	}
	if v := Min(7.5, 3.5); v != 3.5 {
		t.Errorf("Min expected to be %v. Got %v", 3.5, v)
	}
	if v := Max(3, 7); v != 7 {
		t.Errorf("Max expected to be %v. Got %v", 7, v)
	}
}

func TestMath_Clamp(t *testing.T) {
	cases := []struct {
		x, lo, hi, want int
	}{
		{50, 0, 100, 50},
		{-10, 0, 100, 0},
		{150, 0, 100, 100},
		{5, 0, -1, 0},
	}
	for _, c := range cases {
		if got := Clamp(c.x, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%d, %d, %d) expected to be %v. Got %v", c.x, c.lo, c.hi, c.want, got)
		}
	}
}

func TestColor_HexToRGBA(t *testing.T) {
	cases := map[string]color.NRGBA{
		"#0000ff":   {R: 0, G: 0, B: 0xff, A: 0xff},
		"d3d3d3":    {R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff},
		"#fff":      {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		"#ff000080": {R: 0xff, G: 0, B: 0, A: 0x80},
	}
	for in, want := range cases {
		got, err := HexToRGBA(in)
		if err != nil {
			t.Fatalf("could not parse %q: %v", in, err)
		}
		if got != want {
			t.Errorf("HexToRGBA(%q) expected to be %v. Got %v", in, want, got)
		}
	}

	for _, in := range []string{"", "#12", "#zzzzzz"} {
		if _, err := HexToRGBA(in); err == nil {
			t.Errorf("HexToRGBA(%q) should have failed", in)
		}
	}
}

func TestFormat_FormatTime(t *testing.T) {
	if s := FormatTime(1500 * time.Millisecond); s != "1.50s" {
		t.Errorf("FormatTime expected to be %v. Got %v", "1.50s", s)
	}
	if s := FormatTime(90 * time.Second); s != "1m 30.00s" {
		t.Errorf("FormatTime expected to be %v. Got %v", "1m 30.00s", s)
	}
	if s := FormatTime(time.Hour + 2*time.Minute + 1500*time.Millisecond); s != "1h 2m 1.50s" {
		t.Errorf("FormatTime expected to be %v. Got %v", "1h 2m 1.50s", s)
	}
	if s := FormatTime(26*time.Hour + 3*time.Minute + 4*time.Second); s != "1d 2h 3m 4.00s" {
		t.Errorf("FormatTime expected to be %v. Got %v", "1d 2h 3m 4.00s", s)
	}
}

func TestFormat_DecorateText(t *testing.T) {
	s := DecorateText("done", SuccessMessage)
	if s != SuccessColor+"done"+DefaultColor {
		t.Errorf("Unexpected decorated text: %q", s)
	}
	if s := DecorateText("plain", MessageType(42)); s != "plain" {
		t.Errorf("Unknown message types expected to be left unchanged. Got %q", s)
	}
}

func TestFormat_StatusLinesShouldCarryThePrefix(t *testing.T) {
	cases := map[string]struct {
		line, color string
	}{
		"status":  {StatusMsg("rendering"), DefaultColor + "⇢ rendering"},
		"success": {SuccessMsg("saved"), SuccessColor + "saved"},
		"error":   {ErrorMsg("failed"), ErrorColor + "✘\n"},
	}
	for name, c := range cases {
		if !strings.HasPrefix(c.line, StatusColor+Prefix+DefaultColor+" ") {
			t.Errorf("%s: line expected to start with the colored prefix. Got %q", name, c.line)
		}
		if !strings.Contains(c.line, c.color) {
			t.Errorf("%s: line expected to contain %q. Got %q", name, c.color, c.line)
		}
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_ShouldNotWriteAfterStop(t *testing.T) {
	out := &syncBuffer{}
	s := NewSpinner("working", time.Millisecond, false)
	s.SetWriter(out)
	s.StopMsg = "finished"

	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.Stop()

	n := out.Len()
	time.Sleep(10 * time.Millisecond)
	if out.Len() != n {
		t.Errorf("The spinner expected to be silent after Stop. Got %q", out.String()[n:])
	}
	if !strings.HasSuffix(out.String(), "finished") {
		t.Errorf("The stop message expected to be printed last. Got %q", out.String())
	}

	// A stopped spinner can be stopped again and restarted.
	s.Stop()
	s.StopMsg = ""
	s.Start()
	s.Stop()
}
