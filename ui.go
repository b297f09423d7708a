package main

import (
	"errors"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~whereswaldon/materialchart/backend"
	"git.sr.ht/~whereswaldon/materialchart/giochart"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

const (
	tabChart = "chart"
	tabData  = "data"
)

var openIcon = func() *widget.Icon {
	ic, _ := widget.NewIcon(icons.FileFolderOpen)
	return ic
}()

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	ws     backend.WindowState
	expl   *explorer.Explorer
	th     *material.Theme
	logger *slog.Logger

	chart *giochart.Chart
	table DataTable

	tab         widget.Enum
	explorerBtn widget.Clickable
	startBtn    widget.Clickable
	showX       widget.Bool
	showY       widget.Bool
	interactive widget.Bool

	updates *stream.Stream[backend.Update]
	update  backend.Update
	// seen is the generation of the last update applied to the chart.
	seen    int
	loadErr string
}

func NewUI(ws backend.WindowState, expl *explorer.Explorer, logger *slog.Logger) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	ui := &UI{
		ws:      ws,
		th:      th,
		expl:    expl,
		logger:  logger,
		tab:     widget.Enum{Value: tabChart},
		chart:   giochart.NewChart(nil),
		updates: stream.New(ws.Controller, ws.Bundle.Source.Updates),
	}
	ui.chart.Logger = logger
	return ui
}

// Update the state of the UI from the backend and from user input.
func (ui *UI) Update(gtx C) {
	ui.updates.ReadInto(gtx, &ui.update, backend.Update{})
	if ui.update.Generation != ui.seen {
		ui.seen = ui.update.Generation
		ui.loadErr = ""
		if ui.update.Err != nil {
			ui.loadErr = ui.update.Err.Error()
		}
		if ds := ui.update.Dataset; ds != nil {
			ui.showX.Value = ds.ShowXAxis
			ui.showY.Value = ds.ShowYAxis
			ui.interactive.Value = ds.IsInteractive
		}
		ui.chart.Dataset = ui.update.Dataset
		ui.table.Dataset = ui.update.Dataset
		ui.table.Location = ui.chart.Location
	}
	ui.tab.Update(gtx)
	toggled := ui.showX.Update(gtx)
	toggled = ui.showY.Update(gtx) || toggled
	toggled = ui.interactive.Update(gtx) || toggled
	if toggled && ui.update.Dataset != nil {
		// Published datasets are shared, so toggles apply to a copy.
		ds := *ui.update.Dataset
		ds.ShowXAxis = ui.showX.Value
		ds.ShowYAxis = ui.showY.Value
		ds.IsInteractive = ui.interactive.Value
		ui.chart.Dataset = &ds
	}
	if ui.explorerBtn.Clicked(gtx) || ui.startBtn.Clicked(gtx) {
		go ui.chooseFile()
	}
}

func (ui *UI) chooseFile() {
	err := ui.ws.Bundle.Source.LoadFromExplorer(ui.expl)
	if err != nil && !errors.Is(err, explorer.ErrUserDecline) {
		ui.logger.Error("failed opening dataset", "error", err)
	}
}

type TabStyle struct {
	state  *widget.Enum
	label  material.LabelStyle
	border widget.Border
	inset  layout.Inset
	value  string
	fill   color.NRGBA
}

func Tab(th *material.Theme, state *widget.Enum, value, display string) TabStyle {
	selected := state.Value == value
	ts := TabStyle{
		state: state,
		label: material.Body1(th, display),
		inset: layout.UniformInset(2),
		border: widget.Border{
			Width: 2,
			Color: th.ContrastBg,
		},
		value: value,
	}
	ts.label.Alignment = text.Middle
	if selected {
		ts.label.Color = th.ContrastFg
		ts.fill = th.ContrastBg
	}
	return ts
}

func (t TabStyle) Layout(gtx C) D {
	return t.inset.Layout(gtx, func(gtx C) D {
		return t.border.Layout(gtx, func(gtx C) D {
			return t.inset.Layout(gtx, func(gtx C) D {
				return t.state.Layout(gtx, t.value, func(gtx C) D {
					return layout.Background{}.Layout(gtx, func(gtx C) D {
						paint.FillShape(gtx.Ops, t.fill, clip.Rect{Max: gtx.Constraints.Min}.Op())
						return D{Size: gtx.Constraints.Min}
					}, t.label.Layout)
				})
			})
		})
	})
}

func (ui *UI) layoutToolbar(gtx C) D {
	title := "Untitled dataset"
	if ui.update.Path != "" {
		title = filepath.Base(ui.update.Path)
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Rigid(material.IconButton(ui.th, &ui.explorerBtn, openIcon, "Open dataset").Layout),
		layout.Flexed(1, func(gtx C) D {
			return layout.UniformInset(8).Layout(gtx, material.H6(ui.th, title).Layout)
		}),
		layout.Rigid(material.CheckBox(ui.th, &ui.showX, "X axis").Layout),
		layout.Rigid(material.CheckBox(ui.th, &ui.showY, "Y axis").Layout),
		layout.Rigid(material.CheckBox(ui.th, &ui.interactive, "Crosshair").Layout),
	)
}

func (ui *UI) layoutMainArea(gtx C) D {
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		layout.Rigid(ui.layoutToolbar),
		layout.Rigid(func(gtx C) D {
			return layout.Flex{}.Layout(gtx,
				layout.Flexed(1, Tab(ui.th, &ui.tab, tabChart, "Chart").Layout),
				layout.Flexed(1, Tab(ui.th, &ui.tab, tabData, "Data").Layout),
			)
		}),
		layout.Rigid(ui.layoutError),
		layout.Flexed(1, func(gtx C) D {
			if ui.tab.Value == tabData {
				return ui.table.Layout(gtx, ui.th)
			}
			return ui.chart.Layout(gtx, ui.th)
		}),
	)
}

func (ui *UI) layoutError(gtx C) D {
	if len(ui.loadErr) == 0 {
		return D{}
	}
	l := material.Body1(ui.th, ui.loadErr)
	l.Color = color.NRGBA{R: 150, A: 255}
	return l.Layout(gtx)
}

func (ui *UI) layoutStartScreen(gtx C) D {
	return layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Middle,
		Spacing:   layout.SpaceAround,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Body1(ui.th, "No dataset loaded.").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Button(ui.th, &ui.startBtn, "Open Dataset").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return ui.layoutError(gtx)
		}),
	)
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	if ui.update.Dataset != nil {
		return ui.layoutMainArea(gtx)
	}
	return ui.layoutStartScreen(gtx)
}

