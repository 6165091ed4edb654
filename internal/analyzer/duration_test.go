package analyzer

import "testing"

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"PT1H30M45S", 5445},
		{"PT45S", 45},
		{"PT4M13S", 253},
		{"PT0S", 0},
		{"P1W", 7 * 86400},
		{"P1DT2H", 86400 + 2*3600},
		{"P1Y2M3DT4H5M6S", 365*86400 + 2*30*86400 + 3*86400 + 4*3600 + 5*60 + 6},
		{"", 0},
		{"garbage", 0},
		{"1H30M", 0},
		{"PT1H30M45Sjunk", 0},
	}

	for _, c := range cases {
		got := ParseISODuration(c.in)
		if got != c.want {
			t.Errorf("ParseISODuration(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseISODurationNeverNegative(t *testing.T) {
	for _, in := range []string{"PT10S", "P100Y", "", "PT"} {
		if got := ParseISODuration(in); got < 0 {
			t.Errorf("ParseISODuration(%q) = %d, want >= 0", in, got)
		}
	}
}
