package job

import (
	"errors"
	"testing"
)

func TestParseComplex(t *testing.T) {
	tests := []struct {
		in   string
		want complex128
	}{
		{"-2.0+1.2i", complex(-2.0, 1.2)},
		{"1.2-1.2i", complex(1.2, -1.2)},
		{"(0.3-0.5i)", complex(0.3, -0.5)},
		{" -0.8 + 0.156i ", complex(-0.8, 0.156)},
		{"1.5i", complex(0, 1.5)},
		{"-0.75", complex(-0.75, 0)},
		{"1e-3+2e1i", complex(0.001, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseComplex(tt.in)
			if err != nil {
				t.Fatalf("ParseComplex(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseComplex(%q): got %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseComplex_Malformed(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "1+2j", "1++2i", "NaN", "Inf+1i", "1,2"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseComplex(in)
			var jerr *Error
			if !errors.As(err, &jerr) {
				t.Fatalf("ParseComplex(%q): got %v, want *Error", in, err)
			}
			if jerr.Kind != KindMalformedComplex {
				t.Errorf("Kind: got %v, want %v", jerr.Kind, KindMalformedComplex)
			}
			if jerr.Raw != in {
				t.Errorf("Raw: got %q, want %q", jerr.Raw, in)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in           string
		wantW, wantH int
	}{
		{"1024x768", 1024, 768},
		{"512X384", 512, 384},
		{" 2 x 2 ", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := ParseSize(tt.in)
			if err != nil {
				t.Fatalf("ParseSize(%q) failed: %v", tt.in, err)
			}
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("ParseSize(%q): got %dx%d, want %dx%d", tt.in, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestParseSize_Errors(t *testing.T) {
	tests := []struct {
		in   string
		kind ErrorKind
	}{
		{"1024", KindMalformedSize},
		{"1024*768", KindMalformedSize},
		{"ax768", KindMalformedSize},
		{"1024xb", KindMalformedSize},
		{"1024x768x2", KindMalformedSize},
		{"1x768", KindInvalidValue},
		{"1024x1", KindInvalidValue},
		{"0x0", KindInvalidValue},
		{"-5x10", KindInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, _, err := ParseSize(tt.in)
			var jerr *Error
			if !errors.As(err, &jerr) {
				t.Fatalf("ParseSize(%q): got %v, want *Error", tt.in, err)
			}
			if jerr.Kind != tt.kind {
				t.Errorf("Kind: got %v, want %v", jerr.Kind, tt.kind)
			}
		})
	}
}

func TestParseFractalKind(t *testing.T) {
	for _, name := range []string{"burning_ship", "BurningShip", "burning-ship", "Burning Ship"} {
		if _, err := ParseFractalKind(name); err != nil {
			t.Errorf("ParseFractalKind(%q) failed: %v", name, err)
		}
	}

	_, err := ParseFractalKind("newton")
	var jerr *Error
	if !errors.As(err, &jerr) || jerr.Kind != KindUnknownFractal || jerr.Raw != "newton" {
		t.Errorf("ParseFractalKind(newton): got %v", err)
	}
}

func TestParseSchemeKind(t *testing.T) {
	for _, name := range []string{"black_on_white", "BlackOnWhite", "warp-pov-green", "Grey", "RANDOM"} {
		if _, err := ParseSchemeKind(name); err != nil {
			t.Errorf("ParseSchemeKind(%q) failed: %v", name, err)
		}
	}

	_, err := ParseSchemeKind("sepia")
	var jerr *Error
	if !errors.As(err, &jerr) || jerr.Kind != KindUnknownScheme || jerr.Raw != "sepia" {
		t.Errorf("ParseSchemeKind(sepia): got %v", err)
	}
}
