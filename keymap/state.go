package keymap

import (
	"github.com/dasdy/vkeymap/model"
)

func (k *Keymap) ShiftMode() model.ShiftMode { return k.shiftMode }

func (k *Keymap) SymbolMode() model.SymbolMode { return k.symbolMode }

func (k *Keymap) Page() model.LayoutPage { return k.page }

func (k *Keymap) NumLock() bool { return k.numLock }

func (k *Keymap) AutoCap() bool { return k.autoCap }

// IsShiftActive is true when exactly one of "shift once" and "shift key held" holds,
// so holding shift cancels a pending single shift.
func (k *Keymap) IsShiftActive() bool {
	return (k.shiftMode == model.ShiftOnce) != k.shiftDown
}

// IsSymbolActive is true when exactly one of "symbol locked" and "symbol key held"
// holds.
func (k *Keymap) IsSymbolActive() bool {
	return (k.symbolMode == model.SymbolLock) != k.symbolDown
}

func (k *Keymap) IsCapActive() bool {
	if k.shiftDown {
		return k.shiftMode == model.ShiftOff
	}

	return k.shiftMode != model.ShiftOff
}

func (k *Keymap) IsCapOrAutoCapActive() bool {
	return k.autoCap || k.IsCapActive()
}

func (k *Keymap) IsCapsLocked() bool {
	return k.shiftMode == model.ShiftCapsLock
}

func (k *Keymap) ShowEmoticonsAsGraphics() bool {
	return k.editor.Flags&model.FieldFlagEmoticons != 0
}

func (k *Keymap) SetShiftMode(mode model.ShiftMode) bool {
	if mode == k.shiftMode {
		return false
	}

	k.shiftMode = mode
	k.updateMapping()

	return true
}

func (k *Keymap) SetSymbolMode(mode model.SymbolMode) bool {
	if mode == k.symbolMode {
		return false
	}

	k.symbolMode = mode
	k.updateMapping()

	return true
}

func (k *Keymap) SetShiftKeyDown(down bool) bool {
	if down == k.shiftDown {
		return false
	}

	k.shiftDown = down

	return true
}

// SetSymbolKeyDown reports whether the page changed.
func (k *Keymap) SetSymbolKeyDown(down bool) bool {
	k.symbolDown = down

	return k.updateMapping()
}

func (k *Keymap) SetAutoCap(autoCap bool) bool {
	if autoCap == k.autoCap {
		return false
	}

	k.autoCap = autoCap

	return true
}

func (k *Keymap) updateMapping() bool {
	page := model.PagePlain
	if k.IsSymbolActive() {
		page = model.PageAlternate
	}

	if page == k.page {
		return false
	}

	k.page = page

	return true
}

// variableTabLabel enables the next/previous labels on the tab key.
const variableTabLabel = false

// TabAction tells what the tab key does in the focused field.
func (k *Keymap) TabAction() model.TabAction {
	if !variableTabLabel {
		return model.TabActionTab
	}

	actions := k.editor.Actions & (model.FieldActionNext | model.FieldActionPrevious)

	switch {
	case actions == 0:
		return model.TabActionTab
	case actions == model.FieldActionNext:
		return model.TabActionNext
	case actions == model.FieldActionPrevious || k.shiftDown:
		return model.TabActionPrevious
	default:
		return model.TabActionNext
	}
}
