package ticks

import (
	"testing"
	"time"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
)

func TestNumberFormatter(t *testing.T) {
	type testcase struct {
		in       float64
		expected string
	}
	for _, tc := range []testcase{
		{in: 0, expected: "0"},
		{in: 10, expected: "10"},
		{in: -3, expected: "-3"},
		{in: 2.5, expected: "2.5"},
		{in: 0.26, expected: "0.3"},
		{in: 3.96, expected: "4.0"},
		{in: 4.000000000001, expected: "4"},
		{in: -1e-12, expected: "0"},
	} {
		if got := NumberFormatter(tc.in); got != tc.expected {
			t.Errorf("format(%v): expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}

func TestTimeFormatter(t *testing.T) {
	const ts = 1638265200 // 2021-11-30 09:40:00 UTC
	type testcase struct {
		mode     chartdata.GraphMode
		expected string
	}
	for _, tc := range []testcase{
		{mode: chartdata.Day, expected: "09:40"},
		{mode: chartdata.Week, expected: "11/30"},
		{mode: chartdata.Month, expected: "11/30"},
		{mode: chartdata.Quarter, expected: "2021/11"},
	} {
		t.Run(tc.mode.String(), func(t *testing.T) {
			if got := TimeFormatter(tc.mode, time.UTC)(ts); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
	seoul := time.FixedZone("KST", 9*60*60)
	if got := TimeFormatter(chartdata.Day, seoul)(ts); got != "18:40" {
		t.Errorf("expected location to be honoured, got %q", got)
	}
}
