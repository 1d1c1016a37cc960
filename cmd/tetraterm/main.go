package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/alconn/tetraterm/pkg/game"
)

// LogEnvVar names the file debug output is appended to. Stdout belongs to
// the terminal UI, so logging is discarded unless this is set.
const LogEnvVar = "TETRATERM_LOG"

func init() {
	log.SetFlags(0)
}

func initLog() {
	dest := os.Getenv(LogEnvVar)
	if dest == "" {
		log.SetOutput(io.Discard)
		return
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}

	log.SetOutput(f)
	log.SetPrefix("TETRATERM: ")
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			closeGUI()
			time.Sleep(time.Second)

			log.Println()
			debug.PrintStack()
			log.Fatalf("panic: %+v", r)
		}
	}()

	initLog()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "tetraterm requires an interactive terminal")
		os.Exit(1)
	}

	cfg := game.DefaultConfig()
	engine := game.NewEngine(cfg, time.Now().UnixNano())

	app := initGUI(engine)

	go runGame(engine, cfg.FPS)

	if err := app.Run(); err != nil {
		log.Fatalf("failed to run application: %v", err)
	}

	s := engine.Snapshot()
	color.New(color.FgCyan, color.Bold).Println("Game over")
	fmt.Printf("Score %d - Level %d - Lines %d\n", s.Score, s.Level, s.Lines)
}
