package main

import (
	"image/color"
	"strconv"
	"time"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget/material"
	"gioui.org/x/component"

	"git.sr.ht/~whereswaldon/materialchart/chartdata"
	"git.sr.ht/~whereswaldon/materialchart/ticks"
)

const (
	indexCol = iota
	timeCol
	xCol
	yCol
	validCol
	numCols
)

// DataTable lists the points of a dataset followed by its grid lines.
type DataTable struct {
	Dataset  *chartdata.Dataset
	Location *time.Location
	grid     component.GridState
}

// cell returns the text and alignment of one table cell.
func (t *DataTable) cell(row, col int) (string, text.Alignment) {
	ds := t.Dataset
	if row >= len(ds.Data) {
		g := ds.GridLines[row-len(ds.Data)]
		switch col {
		case timeCol:
			return g.Name, text.Start
		case yCol:
			return ticks.NumberFormatter(g.Value), text.End
		case validCol:
			return "grid line", text.Middle
		}
		return "", text.Start
	}
	p := ds.Data[row]
	switch col {
	case indexCol:
		return strconv.Itoa(row), text.End
	case timeCol:
		return ticks.TimeFormatter(ds.GraphMode, t.Location)(p.X), text.Start
	case xCol:
		return ticks.NumberFormatter(p.X), text.End
	case yCol:
		return ticks.NumberFormatter(p.Y), text.End
	case validCol:
		if p.Valid {
			return "yes", text.Middle
		}
		return "no", text.Middle
	}
	return "???", text.Start
}

func (t *DataTable) Layout(gtx C, th *material.Theme) D {
	if t.Dataset == nil {
		return D{Size: gtx.Constraints.Max}
	}
	table := component.Table(th, &t.grid)
	table.HScrollbarStyle.Indicator.MinorWidth = 0
	table.HScrollbarStyle.Track.MinorPadding = 0
	indexColWidth := gtx.Dp(50)
	numberColWidth := gtx.Dp(120)
	validColWidth := gtx.Dp(80)
	timeColWidth := max(gtx.Constraints.Max.X-indexColWidth-2*numberColWidth-validColWidth-gtx.Dp(table.VScrollbarStyle.Width()), gtx.Dp(120))
	rowHeight := gtx.Sp(20)
	rows := len(t.Dataset.Data) + len(t.Dataset.GridLines)
	return table.Layout(gtx, rows, numCols,
		func(axis layout.Axis, index, constraint int) int {
			if axis == layout.Vertical {
				return min(constraint, rowHeight)
			}
			var size int
			switch index {
			case indexCol:
				size = indexColWidth
			case timeCol:
				size = timeColWidth
			case xCol, yCol:
				size = numberColWidth
			case validCol:
				size = validColWidth
			}
			return min(size, constraint)
		},
		func(gtx C, index int) D {
			var l material.LabelStyle
			switch index {
			case indexCol:
				l = material.Body1(th, "#")
				l.Alignment = text.End
			case timeCol:
				l = material.Body1(th, "Time")
			case xCol:
				l = material.Body1(th, "X")
				l.Alignment = text.End
			case yCol:
				l = material.Body1(th, "Y")
				l.Alignment = text.End
			case validCol:
				l = material.Body1(th, "Valid")
				l.Alignment = text.Middle
			default:
				l = material.Body1(th, "???")
			}
			l.Color = th.ContrastFg
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					paint.FillShape(gtx.Ops, th.ContrastBg, clip.Rect{Max: gtx.Constraints.Max}.Op())
					return D{Size: gtx.Constraints.Min}
				}, l.Layout,
			)
		},
		func(gtx C, row, col int) (dims D) {
			defer func() {
				dims.Size = gtx.Constraints.Constrain(dims.Size)
			}()
			return layout.UniformInset(2).Layout(gtx, func(gtx C) D {
				s, align := t.cell(row, col)
				l := material.Body2(th, s)
				l.Alignment = align
				l.MaxLines = 1
				if row < len(t.Dataset.Data) && !t.Dataset.Data[row].Valid {
					l.Color = color.NRGBA{R: 150, A: 255}
				}
				return l.Layout(gtx)
			})
		},
	)
}
