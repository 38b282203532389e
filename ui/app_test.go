package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yplus-tool/internal/config"
	"yplus-tool/internal/logging"
	"yplus-tool/internal/yplus"
)

func newTestControls(t *testing.T, defaults yplus.Fields) (*InputForm, *ResultView, *Controls) {
	t.Helper()
	a := test.NewTempApp(t)

	form := NewInputForm(defaults)
	rv := NewResultView()
	c := NewControls(form, rv, defaults, logging.Discard())

	w := a.NewWindow("test")
	w.SetContent(container.NewVBox(form.Container(), c.Container(), rv.Container()))
	t.Cleanup(w.Close)

	return form, rv, c
}

func TestInitialState(t *testing.T) {
	form, rv, _ := newTestControls(t, yplus.DefaultFields())

	assert.Equal(t, yplus.DefaultFields(), form.Fields())

	re, y1 := rv.Text()
	assert.Equal(t, "NaN", re)
	assert.Equal(t, "NaN", y1)
}

func TestCalculateDefaults(t *testing.T) {
	_, rv, c := newTestControls(t, yplus.DefaultFields())

	test.Tap(c.calculateBtn)

	re, y1 := rv.Text()
	assert.Contains(t, re, "66208.7912")
	assert.Contains(t, y1, "0.000269139")
	assert.True(t, c.Last().Valid())
}

func TestCalculateInvalidViscosity(t *testing.T) {
	form, rv, c := newTestControls(t, yplus.DefaultFields())

	form.viscosityEntry.SetText("abc")
	test.Tap(c.calculateBtn)

	re, y1 := rv.Text()
	assert.Equal(t, "NaN", re)
	assert.Equal(t, "NaN", y1)
}

func TestCalculateZeroYPlus(t *testing.T) {
	form, rv, c := newTestControls(t, yplus.DefaultFields())

	form.yplusEntry.SetText("0")
	test.Tap(c.calculateBtn)

	re, y1 := rv.Text()
	assert.Contains(t, re, "66208.7912")
	assert.Equal(t, "NaN", y1)
}

func TestSubmitTriggersCalculate(t *testing.T) {
	form, rv, _ := newTestControls(t, yplus.DefaultFields())

	form.densityEntry.SetText("998.2")
	form.densityEntry.OnSubmitted(form.densityEntry.Text)

	re, _ := rv.Text()
	assert.NotEqual(t, "NaN", re)
}

func TestReset(t *testing.T) {
	form, rv, c := newTestControls(t, yplus.DefaultFields())

	form.velocityEntry.SetText("25")
	test.Tap(c.calculateBtn)
	test.Tap(c.resetBtn)

	assert.Equal(t, yplus.DefaultDensity, form.Fields().Density)
	assert.Equal(t, yplus.DefaultVelocity, form.Fields().Velocity)

	re, y1 := rv.Text()
	assert.Equal(t, "NaN", re)
	assert.Equal(t, "NaN", y1)
}

func TestReadOnlyEntryRejectsTyping(t *testing.T) {
	test.NewTempApp(t)

	e := newReadOnlyEntry()
	e.SetText("1.5")

	test.Type(e, "99")
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})

	assert.Equal(t, "1.5", e.Text)
	assert.GreaterOrEqual(t, e.MinSize().Width, float32(ValueMinWidth))
}

func TestBuildMainWindow(t *testing.T) {
	a := test.NewTempApp(t)

	cfg := config.Default()
	cfg.Defaults.YPlus = "30"

	win := BuildMainWindow(a, cfg, logging.Discard())
	require.NotNil(t, win)
	defer win.Close()

	assert.Equal(t, Title, win.Title())
	assert.NotNil(t, win.MainMenu())
	assert.Equal(t, AppIcon, a.Icon())
}
