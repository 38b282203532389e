package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"yplus-tool/internal/config"
)

// Title is the main window title.
const Title = "Y+ tool"

// BuildMainWindow creates and configures the main application window.
func BuildMainWindow(app fyne.App, cfg config.Config, logger *log.Logger) fyne.Window {
	app.SetIcon(AppIcon)

	win := app.NewWindow(Title)
	win.Resize(NewWindowSize(cfg.WindowWidth, cfg.WindowHeight))

	inputForm := NewInputForm(cfg.Defaults)
	resultView := NewResultView()
	controls := NewControls(inputForm, resultView, cfg.Defaults, logger)

	heading := widget.NewLabelWithStyle("Calculate Y+", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	win.SetContent(container.NewVBox(
		heading,
		inputForm.Container(),
		controls.Container(),
		widget.NewSeparator(),
		resultView.Container(),
	))

	win.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Help",
			fyne.NewMenuItem("About", func() { showAbout(win) }),
		),
	))

	win.Canvas().Focus(inputForm.velocityEntry)

	return win
}

func showAbout(win fyne.Window) {
	dialog.ShowInformation(
		"About "+Title,
		"First layer height for a target Y+\n\n"+
			"Re = rho U L / mu\n"+
			"Cf = 0.058 Re^-0.2\n"+
			"tau_w = 0.5 Cf rho U^2\n"+
			"u_tau = sqrt(tau_w / rho)\n"+
			"y1 = y+ mu / (u_tau rho)",
		win,
	)
}
