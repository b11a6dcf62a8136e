package card

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func TestFormatRealExact(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{144.0, "  1.44000E+02"},
		{-0.4826, " -4.82600E-01"},
		{0, "  0.00000E+00"},
		{0.1778, "  1.77800E-01"},
		{0.0016, "  1.60000E-03"},
		{1.0, "  1.00000E+00"},
		{270, "  2.70000E+02"},
		{-1234567.0, " -1.23457E+06"},
	}

	for _, tc := range cases {
		got := FormatReal(tc.in)
		if got != tc.want {
			t.Errorf("FormatReal(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatRealWidthAndRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		mantissa := rng.Float64()*2 - 1
		exp := rng.Intn(61) - 30
		x := mantissa * math.Pow10(exp)

		got := FormatReal(x)
		if len(got) != RealWidth {
			t.Fatalf("FormatReal(%v) = %q has width %d, want %d", x, got, len(got), RealWidth)
		}

		parsed, err := strconv.ParseFloat(strings.TrimSpace(got), 64)
		if err != nil {
			t.Fatalf("FormatReal(%v) = %q does not reparse: %v", x, got, err)
		}
		if math.Abs(parsed-x) > 6e-6*math.Abs(x) {
			t.Fatalf("FormatReal(%v) = %q reparses as %v", x, got, parsed)
		}
	}
}

func TestFormatInt(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{FormatInt(0), "     0"},
		{FormatInt(15), "    15"},
		{FormatInt(123456), "123456"},
		{FormatInt(-42), "   -42"},
		{FormatInt(40.9), "    40"},
		{FormatInt(39.999999), "    39"},
		{FormatInt(-3.7), "    -3"},
		{FormatInt(uint8(7)), "     7"},
	}

	for i, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("case %d: got %q, want %q", i, tc.got, tc.want)
		}
	}
}

func TestFormatIntWidthAndRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, -1, 9, 10, 99, 999, 9999, 99999, -99999, 314159} {
		got := FormatInt(n)
		if len(got) != IntWidth {
			t.Fatalf("FormatInt(%d) = %q has width %d, want %d", n, got, len(got), IntWidth)
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(got))
		if err != nil || parsed != n {
			t.Fatalf("FormatInt(%d) = %q reparses as %d (%v)", n, got, parsed, err)
		}
	}
}
