package backend

import (
	"bufio"
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
)

// completeLines only yields newline-terminated lines. A trailing partial
// line is held back until the rest of it arrives, so a CSV file that is
// still being appended to never produces a half-written record.
type completeLines struct {
	r       *bufio.Reader
	pending []byte
}

var _ io.Reader = (*completeLines)(nil)

func newCompleteLines(r io.Reader) *completeLines {
	return &completeLines{r: bufio.NewReader(r)}
}

func (l *completeLines) Read(b []byte) (int, error) {
	if len(l.pending) == 0 || l.pending[len(l.pending)-1] != '\n' {
		data, err := l.r.ReadBytes('\n')
		l.pending = append(l.pending, data...)
		if err != nil {
			return 0, err
		}
	}
	n := copy(b, l.pending)
	l.pending = l.pending[:copy(l.pending, l.pending[n:])]
	return n, nil
}

// DecodeCSV reads x,y[,valid] records. A first row that does not start
// with a number is a header naming the axes. Points are sorted by x and
// only the first point at each x is kept. Both axes are shown.
func DecodeCSV(r io.Reader) (*chartdata.Dataset, error) {
	cr := csv.NewReader(newCompleteLines(r))
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	ds := &chartdata.Dataset{ShowXAxis: true, ShowYAxis: true}
	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed reading CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < 2 {
			return nil, fmt.Errorf("line %d: expected x and y columns, got %d", line, len(rec))
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			if first {
				ds.XLabel = strings.TrimSpace(rec[0])
				ds.YLabel = strings.TrimSpace(rec[1])
				continue
			}
			return nil, fmt.Errorf("line %d: invalid x: %w", line, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid y: %w", line, err)
		}
		valid := true
		if len(rec) > 2 {
			if cell := strings.TrimSpace(rec[2]); cell != "" {
				valid, err = strconv.ParseBool(cell)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid validity flag: %w", line, err)
				}
			}
		}
		insert(ds, chartdata.Point{X: x, Y: y, Valid: valid})
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// insert adds p in x order. It reports false if a point already exists at
// p.X.
func insert(ds *chartdata.Dataset, p chartdata.Point) bool {
	index, found := slices.BinarySearchFunc(ds.Data, p.X, func(q chartdata.Point, x float64) int {
		return cmp.Compare(q.X, x)
	})
	if found {
		return false
	}
	ds.Data = slices.Insert(ds.Data, index, p)
	return true
}
