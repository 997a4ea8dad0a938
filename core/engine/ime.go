package engine

import (
	"github.com/hajimehoshi/ebiten/v2/exp/textinput"
	"github.com/nowsprinting/test-helper.input/core/device"
)

var startTextInput = textinput.Start

// imeSession is the open text-input session while composition mode is On.
type imeSession struct {
	open   bool
	states <-chan textinput.State
	close  func()
	text   string
}

// pumpIME keeps a session open while the mode is On. A session that fails to
// start or ends on its own is started again on the next tick.
func (e *Engine) pumpIME() {
	if e.Settings.IMECompositionMode != device.IMEOn {
		if e.ime.open {
			e.closeIME()
		}
		return
	}
	if !e.ime.open {
		pos := e.Settings.CompositionCursorPos
		states, closeFn := startTextInput(int(pos.X()), int(pos.Y()))
		if states == nil {
			if closeFn != nil {
				closeFn()
			}
			return
		}
		e.ime = imeSession{open: true, states: states, close: closeFn}
		e.logger.Debugf("[ENGINE] IME session opened at (%.0f,%.0f)", pos.X(), pos.Y())
	}
	for {
		select {
		case s, ok := <-e.ime.states:
			if !ok {
				e.ime = imeSession{}
				e.logger.Debugf("[ENGINE] IME session ended")
				return
			}
			if s.Error != nil {
				e.logger.Errorf("[ENGINE] IME: %v", s.Error)
				continue
			}
			if s.Committed {
				e.ime.text = ""
			} else {
				e.ime.text = s.Text
			}
		default:
			return
		}
	}
}

func (e *Engine) closeIME() {
	if e.ime.close != nil {
		e.ime.close()
	}
	e.ime = imeSession{}
	e.logger.Debugf("[ENGINE] IME session closed")
}

// CompositionString is the text the IME is composing and has not committed.
func (e *Engine) CompositionString() string { return e.ime.text }

// IMEIsSelected reports whether a composition session is open.
func (e *Engine) IMEIsSelected() bool { return e.ime.open }
