package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"yplus-tool/internal/yplus"
)

// Controls owns the Calculate and Reset buttons and runs the calculation.
type Controls struct {
	calculateBtn *StyledButton
	resetBtn     *widget.Button

	inputForm  *InputForm
	resultView *ResultView
	defaults   yplus.Fields
	log        *log.Logger

	last yplus.Result

	container *fyne.Container
}

// NewControls creates the buttons wired to the given views. Enter in any
// input field triggers the calculation as well.
func NewControls(form *InputForm, rv *ResultView, defaults yplus.Fields, logger *log.Logger) *Controls {
	c := &Controls{
		inputForm:  form,
		resultView: rv,
		defaults:   defaults,
		log:        logger,
	}

	c.calculateBtn = NewStyledButton("Calculate", c.Calculate, CalculateBg, CalculateTxt)
	c.resetBtn = widget.NewButton("Reset", c.Reset)

	form.OnSubmit(c.Calculate)

	c.container = container.NewHBox(layout.NewSpacer(), c.calculateBtn, c.resetBtn, layout.NewSpacer())
	return c
}

// Container returns the controls container.
func (c *Controls) Container() *fyne.Container {
	return c.container
}

// Calculate reads the form, computes, and shows the result.
func (c *Controls) Calculate() {
	in := c.inputForm.Fields().Parse()
	c.last = yplus.Compute(in)
	c.resultView.Show(c.last)

	entry := c.log.WithFields(log.Fields{
		"velocity":  in.Velocity,
		"density":   in.Density,
		"viscosity": in.Viscosity,
		"length":    in.Length,
		"yplus":     in.YPlus,
		"reynolds":  c.last.Reynolds,
		"y1":        c.last.FirstLayerHeight,
	})
	if bad := in.InvalidFields(); len(bad) > 0 {
		entry = entry.WithField("invalid", bad)
	}
	entry.Debug("calculate")
}

// Reset restores the default inputs and clears the result.
func (c *Controls) Reset() {
	c.inputForm.SetFields(c.defaults)
	c.last = yplus.Result{}
	c.resultView.Clear()
	c.log.Debug("reset to defaults")
}

// Last returns the most recent result.
func (c *Controls) Last() yplus.Result {
	return c.last
}
