package ticks

import (
	"math"
	"strconv"
	"time"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
)

// NumberFormatter prints integral values without a fractional part and
// everything else with one decimal place.
func NumberFormatter(v float64) string {
	if r := math.Round(v); math.Abs(v-r) <= 1e-9*max(1, math.Abs(v)) {
		if r == 0 {
			// Avoid printing negative zero.
			return "0"
		}
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func timeLayout(mode chartdata.GraphMode) string {
	switch mode {
	case chartdata.Week, chartdata.Month:
		return "01/02"
	case chartdata.Quarter:
		return "2006/01"
	default:
		return "15:04"
	}
}

// TimeFormatter formats Unix timestamps in seconds at the granularity of
// mode, in loc. A nil loc means local time.
func TimeFormatter(mode chartdata.GraphMode, loc *time.Location) Formatter {
	if loc == nil {
		loc = time.Local
	}
	layout := timeLayout(mode)
	return func(v float64) string {
		sec, frac := math.Modf(v)
		return time.Unix(int64(sec), int64(frac*1e9)).In(loc).Format(layout)
	}
}
