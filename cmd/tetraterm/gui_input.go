package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/alconn/tetraterm/pkg/event"
)

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.GameAction
}

var keybindings = []*Keybinding{
	{r: 'z', a: event.ActionRotateCCW},
	{r: 'Z', a: event.ActionRotateCCW},
	{r: 'x', a: event.ActionRotateCW},
	{r: 'X', a: event.ActionRotateCW},
	{k: tcell.KeyUp, a: event.ActionRotateCW},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'a', a: event.ActionMoveLeft},
	{r: 'A', a: event.ActionMoveLeft},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'd', a: event.ActionMoveRight},
	{r: 'D', a: event.ActionMoveRight},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: ' ', a: event.ActionHardDrop},
	{r: 'p', a: event.ActionPause},
	{r: 'P', a: event.ActionPause},
	{r: 'q', a: event.ActionQuit},
	{r: 'Q', a: event.ActionQuit},
	{k: tcell.KeyEscape, a: event.ActionQuit},
}

func actionForKey(ev *tcell.EventKey) event.GameAction {
	k := ev.Key()
	r := ev.Rune()

	for _, bind := range keybindings {
		if bind.k != 0 {
			if bind.k == k && (bind.m == 0 || bind.m == ev.Modifiers()) {
				return bind.a
			}

			continue
		}

		if k == tcell.KeyRune && bind.r == r {
			return bind.a
		}
	}

	return event.ActionUnknown
}

func handleKeypress(ev *tcell.EventKey) *tcell.EventKey {
	a := actionForKey(ev)
	if a == event.ActionUnknown {
		return ev
	}

	// A quit press on a finished game exits; during play it ends the game
	// and the final board stays on screen.
	if a == event.ActionQuit && activeGame != nil && activeGame.GameOver() {
		app.Stop()
		return nil
	}

	select {
	case input <- a:
	default:
	}

	return nil
}
