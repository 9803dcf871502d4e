package ui

import (
	"fmt"
	"image/color"

	"text-splitter/services"
	"text-splitter/ui/state"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/sirupsen/logrus"
)

type MainWindow struct {
	window       *app.Window
	theme        *material.Theme
	ops          op.Ops
	exp          *explorer.Explorer
	textService  *services.TextService
	logger       logrus.FieldLogger
	linesPerFile int

	state   state.State
	outcome services.Outcome
	// events carries the worker's reports in the order they happened.
	events chan state.Event
	status string

	browseButton widget.Clickable
	okButton     widget.Clickable
}

func NewMainWindow(textService *services.TextService, logger logrus.FieldLogger, linesPerFile int) *MainWindow {
	window := new(app.Window)
	window.Option(app.Title("Text File Splitter"), app.Size(unit.Dp(480), unit.Dp(200)))
	theme := material.NewTheme()
	exp := explorer.NewExplorer(window)
	mainWindow := &MainWindow{
		window:       window,
		theme:        theme,
		exp:          exp,
		textService:  textService,
		logger:       logger,
		linesPerFile: linesPerFile,
		events:       make(chan state.Event, 64),
	}
	textService.RegisterStatusCallback("MainWindow", func(status string) {
		// progress may be dropped when the frame loop falls behind
		select {
		case mainWindow.events <- state.Event{Kind: state.Progress, Status: status}:
		default:
		}
		mainWindow.window.Invalidate()
	})
	return mainWindow
}

func (mainWindow *MainWindow) Run() error {
	for {
		e := mainWindow.window.Event()
		mainWindow.exp.ListenEvents(e)
		switch e := e.(type) {
		case app.DestroyEvent:
			mainWindow.apply(state.Event{Kind: state.Destroy})
			return e.Err
		case app.FrameEvent:
			ctx := app.NewContext(&mainWindow.ops, e)
			mainWindow.collect()
			mainWindow.handleEvents(ctx)
			mainWindow.draw(ctx)
			e.Frame(ctx.Ops)
		}
	}
}

// collect applies whatever the interaction goroutine has reported since the
// last frame.
func (mainWindow *MainWindow) collect() {
	for {
		select {
		case event := <-mainWindow.events:
			mainWindow.apply(event)
		default:
			return
		}
	}
}

func (mainWindow *MainWindow) apply(event state.Event) {
	next := state.Next(mainWindow.state, event)
	switch {
	case event.Kind == state.FileChosen && next == state.Splitting:
		mainWindow.status = fmt.Sprintf("Splitting %s", event.Path)
	case event.Kind == state.Progress && next == state.Splitting:
		mainWindow.status = event.Status
	case event.Kind == state.Done && next.Finished():
		mainWindow.outcome = event.Outcome
	}
	mainWindow.state = next
}

func (mainWindow *MainWindow) handleEvents(ctx layout.Context) {
	if mainWindow.state == state.Idle && mainWindow.browseButton.Clicked(ctx) {
		mainWindow.apply(state.Event{Kind: state.Browse})
		mainWindow.status = "Waiting for a file"
		go mainWindow.browseAndSplit()
	}
	if mainWindow.state.Finished() && mainWindow.okButton.Clicked(ctx) {
		mainWindow.apply(state.Event{Kind: state.Dismiss})
		mainWindow.window.Perform(system.ActionClose)
	}
}

func (mainWindow *MainWindow) browseAndSplit() {
	outcome := services.Interaction{
		Choose:       fileChooser(mainWindow.exp),
		Service:      mainWindow.textService,
		LinesPerFile: mainWindow.linesPerFile,
		OnSplitting: func(path string) {
			mainWindow.events <- state.Event{Kind: state.FileChosen, Path: path}
			mainWindow.window.Invalidate()
		},
	}.Run()
	log := mainWindow.logger.WithField("outcome", outcome.Kind)
	if outcome.Err != nil {
		log.WithError(outcome.Err).Error(outcome.Title)
	} else {
		log.Info(outcome.Title)
	}
	mainWindow.events <- state.Event{Kind: state.Done, Outcome: outcome}
	mainWindow.window.Invalidate()
}

func (mainWindow *MainWindow) draw(ctx layout.Context) {
	if mainWindow.state.Finished() {
		mainWindow.drawOutcome(ctx)
		return
	}
	if mainWindow.state != state.Idle {
		ctx = ctx.Disabled()
	}
	layout.UniformInset(unit.Dp(20)).Layout(
		ctx,
		func(ctx layout.Context) layout.Dimensions {
			return layout.Flex{
				Axis:    layout.Vertical,
				Spacing: layout.SpaceBetween,
			}.Layout(
				ctx,
				layout.Rigid(material.Button(mainWindow.theme, &mainWindow.browseButton, "Browse for a File to Split").Layout),
				layout.Rigid(material.Label(mainWindow.theme, unit.Sp(14), mainWindow.status).Layout),
			)
		},
	)
}

func (mainWindow *MainWindow) drawOutcome(ctx layout.Context) {
	title := material.H6(mainWindow.theme, mainWindow.outcome.Title)
	if mainWindow.state == state.Failed {
		title.Color = color.NRGBA{A: 0xff, R: 0xcc, G: 0x33, B: 0x33}
	}
	layout.UniformInset(unit.Dp(20)).Layout(
		ctx,
		func(ctx layout.Context) layout.Dimensions {
			return layout.Flex{
				Axis:    layout.Vertical,
				Spacing: layout.SpaceBetween,
			}.Layout(
				ctx,
				layout.Rigid(title.Layout),
				layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
				layout.Rigid(material.Body1(mainWindow.theme, mainWindow.outcome.Message).Layout),
				layout.Rigid(layout.Spacer{Height: unit.Dp(10)}.Layout),
				layout.Rigid(material.Button(mainWindow.theme, &mainWindow.okButton, "OK").Layout),
			)
		},
	)
}
