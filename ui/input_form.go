package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"yplus-tool/internal/yplus"
)

// InputForm holds the five text fields of a calculation.
type InputForm struct {
	velocityEntry  *widget.Entry
	densityEntry   *widget.Entry
	viscosityEntry *widget.Entry
	lengthEntry    *widget.Entry
	yplusEntry     *widget.Entry
	form           *fyne.Container
}

// NewInputForm creates the form with the given default texts.
func NewInputForm(defaults yplus.Fields) *InputForm {
	f := &InputForm{
		velocityEntry:  widget.NewEntry(),
		densityEntry:   widget.NewEntry(),
		viscosityEntry: widget.NewEntry(),
		lengthEntry:    widget.NewEntry(),
		yplusEntry:     widget.NewEntry(),
	}

	f.velocityEntry.SetPlaceHolder("m/s")
	f.densityEntry.SetPlaceHolder("kg/m^3")
	f.viscosityEntry.SetPlaceHolder("Pa*s")
	f.lengthEntry.SetPlaceHolder("m")
	f.yplusEntry.SetPlaceHolder("y+")

	f.SetFields(defaults)

	f.form = container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Characteristic Velocity", f.velocityEntry),
			widget.NewFormItem("Fluid Density", f.densityEntry),
			widget.NewFormItem("Viscosity", f.viscosityEntry),
			widget.NewFormItem("Characteristic Length", f.lengthEntry),
			widget.NewFormItem("Target Y+", f.yplusEntry),
		),
	)

	return f
}

// Container returns the form's Fyne container.
func (f *InputForm) Container() *fyne.Container {
	return f.form
}

// Fields returns the current text of every entry.
func (f *InputForm) Fields() yplus.Fields {
	return yplus.Fields{
		Velocity:  f.velocityEntry.Text,
		Density:   f.densityEntry.Text,
		Viscosity: f.viscosityEntry.Text,
		Length:    f.lengthEntry.Text,
		YPlus:     f.yplusEntry.Text,
	}
}

// SetFields overwrites every entry.
func (f *InputForm) SetFields(v yplus.Fields) {
	f.velocityEntry.SetText(v.Velocity)
	f.densityEntry.SetText(v.Density)
	f.viscosityEntry.SetText(v.Viscosity)
	f.lengthEntry.SetText(v.Length)
	f.yplusEntry.SetText(v.YPlus)
}

// OnSubmit runs fn when Enter is pressed in any entry.
func (f *InputForm) OnSubmit(fn func()) {
	for _, e := range f.entries() {
		e.OnSubmitted = func(string) { fn() }
	}
}

func (f *InputForm) entries() []*widget.Entry {
	return []*widget.Entry{f.velocityEntry, f.densityEntry, f.viscosityEntry, f.lengthEntry, f.yplusEntry}
}
