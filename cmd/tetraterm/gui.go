package main

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/alconn/tetraterm/pkg/event"
	"github.com/alconn/tetraterm/pkg/game"
	"github.com/alconn/tetraterm/pkg/tetromino"
)

const CommandQueueSize = 10

const statusText = "Arrows or A/D move, Z/X rotate, Space hard drop, P pause, Q quit"

var (
	app  *tview.Application
	mtx  *tview.TextView
	side *tview.TextView

	activeGame *game.Engine

	input = make(chan event.GameAction, CommandQueueSize)

	renderLock   = new(sync.Mutex)
	renderBuffer bytes.Buffer
)

// renderBlock maps a settled or falling kind to its two-column glyph. The
// color assignment follows the classic terminal palette per kind.
var renderBlock = map[tetromino.PieceKind][]byte{
	tetromino.PieceNone: []byte("  "),
	tetromino.PieceI:    []byte("[#00eeee]██[#ffffff]"),
	tetromino.PieceJ:    []byte("[#2864ff]██[#ffffff]"),
	tetromino.PieceL:    []byte("[#dddd00]██[#ffffff]"),
	tetromino.PieceO:    []byte("[#00e900]██[#ffffff]"),
	tetromino.PieceS:    []byte("[#c000cc]██[#ffffff]"),
	tetromino.PieceT:    []byte("[#ee0000]██[#ffffff]"),
	tetromino.PieceZ:    []byte("[#ffffff]██[#ffffff]"),
}

var (
	renderHLine    = []byte(string(tcell.RuneHLine))
	renderVLine    = []byte(string(tcell.RuneVLine))
	renderULCorner = []byte(string(tcell.RuneULCorner))
	renderURCorner = []byte(string(tcell.RuneURCorner))
	renderLLCorner = []byte(string(tcell.RuneLLCorner))
	renderLRCorner = []byte(string(tcell.RuneLRCorner))
)

func initGUI(e *game.Engine) *tview.Application {
	activeGame = e

	app = tview.NewApplication()
	app.SetInputCapture(handleKeypress)

	mtx = tview.NewTextView()
	mtx.SetDynamicColors(true).SetWrap(false)

	side = tview.NewTextView()
	side.SetDynamicColors(true).SetWrap(true)

	s := e.Snapshot()
	boardColumns := (s.Width * 2) + 2

	flex := tview.NewFlex().
		AddItem(mtx, boardColumns, 1, true).
		AddItem(side, 0, 1, false)

	app.SetRoot(flex, true)

	return app
}

func closeGUI() {
	if app != nil {
		app.Stop()
	}
}

// runGame is the control loop: each frame drains at most one pending
// command, advances gravity against the wall clock and hands a fresh
// snapshot to the renderer.
func runGame(e *game.Engine, fps int) {
	t := time.NewTicker(time.Second / time.Duration(fps))
	defer t.Stop()

	for range t.C {
		select {
		case a := <-input:
			e.Handle(a)
		default:
		}

		e.Tick(time.Now())

		s := e.Snapshot()
		app.QueueUpdateDraw(func() {
			mtx.SetText(renderMatrix(&s))
			side.SetText(renderSide(&s))
		})
	}
}

// renderMatrix draws the visible playfield with the falling piece
// overlaid. Buffer rows are skipped.
func renderMatrix(s *game.Snapshot) string {
	renderLock.Lock()
	defer renderLock.Unlock()

	falling := make(map[tetromino.Point]tetromino.PieceKind)
	if s.Current != nil {
		for _, blk := range s.Current.Blocks {
			falling[blk] = s.Current.Kind
		}
	}

	renderBuffer.Reset()

	renderBuffer.Write(renderULCorner)
	for x := 0; x < s.Width*2; x++ {
		renderBuffer.Write(renderHLine)
	}
	renderBuffer.Write(renderURCorner)
	renderBuffer.WriteRune('\n')

	for y := s.Buffer; y < s.Height+s.Buffer; y++ {
		renderBuffer.Write(renderVLine)
		for x := 0; x < s.Width; x++ {
			kind, ok := falling[tetromino.Point{X: x, Y: y}]
			if !ok {
				kind = s.Cell(x, y)
			}

			renderBuffer.Write(renderBlock[kind])
		}
		renderBuffer.Write(renderVLine)
		renderBuffer.WriteRune('\n')
	}

	renderBuffer.Write(renderLLCorner)
	for x := 0; x < s.Width*2; x++ {
		renderBuffer.Write(renderHLine)
	}
	renderBuffer.Write(renderLRCorner)

	return renderBuffer.String()
}

// renderSide draws the score panel, the next piece preview and any state
// banner.
func renderSide(s *game.Snapshot) string {
	var b bytes.Buffer

	fmt.Fprintf(&b, "Score %d\n", s.Score)
	fmt.Fprintf(&b, "Level %d\n", s.Level)
	fmt.Fprintf(&b, "Lines %d\n", s.Lines)

	b.WriteString("\nNext:\n")
	if s.Next != tetromino.PieceNone {
		offsets := tetromino.RotationOffsets(s.Next, 0)

		shape := make(map[tetromino.Point]bool)
		for _, o := range offsets {
			shape[o] = true
		}

		for y := 0; y < 2; y++ {
			for x := 0; x < 4; x++ {
				if shape[tetromino.Point{X: x, Y: y}] {
					b.Write(renderBlock[s.Next])
				} else {
					b.WriteString("  ")
				}
			}
			b.WriteRune('\n')
		}
	}

	switch {
	case s.GameOver:
		b.WriteString("\n[#ee0000]GAME OVER[#ffffff]\nPress Q to exit\n")
	case s.Paused:
		b.WriteString("\n[#dddd00]PAUSED[#ffffff]\n")
	}

	b.WriteString("\n")
	b.WriteString(statusText)

	return b.String()
}
