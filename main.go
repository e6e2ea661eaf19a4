// Terminal tetris. One or more playing fields tiled over the terminal,
// driven by a fixed-rate loop polling raw keyboard input.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"termtetris/game"
	"termtetris/keyboard"
	"termtetris/term"
)

var (
	noLimits   = flag.Bool("no-limits", false, "disable restrictions on max playing field size")
	fieldCount = flag.Int("fields", 1, "number of simultaneous playing fields")
	configPath = flag.String("config", "termtetris.ini", "path to optional settings file")
)

func main() {
	flag.Parse()
	if *fieldCount < 1 {
		log.Fatal("fields must be a positive integer")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		log.Fatal("stdout is not a terminal")
	}

	cfg := LoadConfig(*configPath)
	cfg.Tuning.NoLimits = *noLimits

	input, err := keyboard.NewProcessor()
	if err != nil {
		log.Fatal("open tty: ", err)
	}

	// output goes through our own buffer, never a colorable writer
	color.NoColor = false
	scr := term.NewScreen(os.Stdout)
	restoreOnSignal(input, scr)

	cols, rows, err := input.Size()
	if err != nil {
		input.Close()
		log.Fatal("terminal size: ", err)
	}
	screen := game.Rect{Top: 1, Left: 1, Rows: rows, Cols: cols}

	picker := game.NewRandomPicker(time.Now().UnixNano())
	session, err := game.NewSession(screen, *fieldCount, cfg.Tuning, picker)
	if err != nil {
		input.Close()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	scr.Clear()
	scr.HideCursor()

	frameBudget := time.Second / time.Duration(cfg.TargetFPS)
	fps := 0
	frames := 0
	fpsStart := time.Now()
	lastUpdate := time.Now()

	for {
		frameStart := time.Now()

		cmds, keys := input.Poll()
		if cmds.Pause {
			session.TogglePause()
		}
		if cmds.Quit {
			break
		}

		now := time.Now()
		session.Update(now.Sub(lastUpdate).Seconds(), keys)
		lastUpdate = now

		if session.ShouldRestart(len(keys) > 0) {
			session, err = game.NewSession(screen, *fieldCount, cfg.Tuning, picker)
			if err != nil {
				break
			}
			scr.Clear()
		}

		session.Draw(scr)
		drawFPS(scr, fps)
		scr.Flush()

		if used := time.Since(frameStart); used < frameBudget {
			time.Sleep(frameBudget - used)
		}

		frames++
		if elapsed := time.Since(fpsStart); elapsed > time.Second {
			fps = int(math.Round(float64(frames) / elapsed.Seconds()))
			frames = 0
			fpsStart = time.Now()
		}
	}

	input.Close()
	scr.Clear()
	scr.MoveTo(1, 1)
	scr.ShowCursor()
	scr.Flush()
	if err != nil {
		log.Fatal(err)
	}
}

func drawFPS(scr *term.Screen, fps int) {
	scr.MoveTo(1, 1)
	scr.TextColor(fmt.Sprintf("FPS:%-2d", fps), game.ColorMessage, game.ColorBorder, false)
}

// restoreOnSignal puts the terminal back together when the process is
// killed instead of quit.
func restoreOnSignal(input *keyboard.Processor, scr *term.Screen) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		input.Close()
		scr.Clear()
		scr.ShowCursor()
		scr.Flush()
		os.Exit(1)
	}()
}
