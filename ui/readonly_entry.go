package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// readOnlyEntry is a single-line Entry that allows selection and copy but
// rejects all edits.
type readOnlyEntry struct {
	widget.Entry
}

func newReadOnlyEntry() *readOnlyEntry {
	e := &readOnlyEntry{}
	e.TextStyle = fyne.TextStyle{Monospace: true}
	e.ExtendBaseWidget(e)
	return e
}

// MinSize keeps room for a full-precision value.
func (e *readOnlyEntry) MinSize() fyne.Size {
	size := e.Entry.MinSize()
	if size.Width < ValueMinWidth {
		size.Width = ValueMinWidth
	}
	return size
}

// TypedRune blocks all character input.
func (e *readOnlyEntry) TypedRune(_ rune) {}

// TypedKey allows only navigation and selection keys, blocks editing keys.
func (e *readOnlyEntry) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyBackspace, fyne.KeyDelete, fyne.KeyReturn, fyne.KeyEnter, fyne.KeyTab:
		return
	}
	e.Entry.TypedKey(ev)
}

// TypedShortcut allows copy and select-all, blocks cut and paste.
func (e *readOnlyEntry) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll, *desktop.CustomShortcut:
		e.Entry.TypedShortcut(s)
	}
}
