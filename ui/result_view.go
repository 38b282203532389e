package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"yplus-tool/internal/format"
	"yplus-tool/internal/yplus"
)

// ResultView shows the two derived values of the last calculation.
type ResultView struct {
	reynolds  *readOnlyEntry
	height    *readOnlyEntry
	container *fyne.Container
}

// NewResultView creates the output fields. Both start as NaN until the first
// calculation.
func NewResultView() *ResultView {
	rv := &ResultView{
		reynolds: newReadOnlyEntry(),
		height:   newReadOnlyEntry(),
	}

	rv.container = container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Reynolds Number", rv.reynolds),
			widget.NewFormItem("First Layer Height", rv.height),
		),
	)

	rv.Clear()
	return rv
}

// Container returns the result view's container.
func (rv *ResultView) Container() *fyne.Container {
	return rv.container
}

// Show displays r.
func (rv *ResultView) Show(r yplus.Result) {
	rv.reynolds.SetText(format.FormatValue(r.Reynolds))
	rv.height.SetText(format.FormatValue(r.FirstLayerHeight))
}

// Clear resets both values to NaN.
func (rv *ResultView) Clear() {
	rv.reynolds.SetText("NaN")
	rv.height.SetText("NaN")
}

// Text returns the displayed Reynolds number and first layer height.
func (rv *ResultView) Text() (reynolds, height string) {
	return rv.reynolds.Text, rv.height.Text
}
