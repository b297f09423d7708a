package dimen

import (
	"testing"

	"gioui.org/unit"
)

func TestConversions(t *testing.T) {
	type testcase struct {
		name   string
		metric unit.Metric
		dp     unit.Dp
		px     Px
	}
	for _, tc := range []testcase{
		{name: "unit density", metric: unit.Metric{PxPerDp: 1, PxPerSp: 1}, dp: 32, px: 32},
		{name: "high density", metric: unit.Metric{PxPerDp: 2.5, PxPerSp: 2.5}, dp: 32, px: 80},
		{name: "zero metric", metric: unit.Metric{}, dp: 8, px: 8},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromDp(tc.metric, tc.dp); got != tc.px {
				t.Errorf("expected %v px, got %v", tc.px, got)
			}
			if got := ToSp(tc.metric, FromSp(tc.metric, unit.Sp(tc.dp))); got != unit.Sp(tc.dp) {
				t.Errorf("expected sp round trip to return %v, got %v", tc.dp, got)
			}
		})
	}
}
