package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/lextris/config"
	"github.com/domino14/lextris/game"
	"github.com/domino14/lextris/lexicon"
	"github.com/domino14/lextris/variant"
)

//go:embed words.txt
var defaultWords string

var (
	configPath = flag.String("config", "", "path to a lextris config file")
	debug      = flag.Bool("debug", false, "enable debug logging")
)

// shell drives a single engine from readline input plus a drop ticker. The
// engine itself is single-threaded; the mutex serializes the two drivers.
type shell struct {
	mu sync.Mutex
	g  *game.Game
}

func (s *shell) withGame(f func(*game.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.g)
}

func main() {
	flag.Parse()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.NewConfig()
	if err := cfg.Load(*configPath); err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	lex, err := loadLexicon(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("loading lexicon")
	}

	rules, err := game.NewBasicGameRules(cfg, lex,
		variant.Variant(cfg.GetString(config.ConfigVariant)))
	if err != nil {
		log.Fatal().Err(err).Msg("creating rules")
	}

	sh := &shell{g: game.NewGame(rules)}
	if err := sh.run(); err != nil {
		log.Fatal().Err(err).Msg("shell exited")
	}
}

func loadLexicon(cfg *config.Config) (lexicon.Lexicon, error) {
	name := cfg.GetString(config.ConfigLexiconName)
	if path := cfg.GetString(config.ConfigLexiconPath); path != "" {
		return lexicon.LoadFile(name, path)
	}
	return lexicon.NewWordSet(name, strings.Fields(defaultWords)), nil
}

func (s *shell) run() error {
	rl, err := readline.New("lextris> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	// Drop ticker. The interval is re-read every tick so level-ups speed
	// the game up without restarting the timer.
	g.Go(func() error {
		for {
			var interval time.Duration
			s.withGame(func(gm *game.Game) {
				gm.Tick()
				interval = gm.DropInterval()
			})
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(interval):
			}
		}
	})

	g.Go(func() error {
		defer cancel()
		for {
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			if quit := s.dispatch(line); quit {
				return nil
			}
		}
	})

	err = g.Wait()
	cancel()
	return err
}

// dispatch parses one command line and applies it. Returns true on quit.
func (s *shell) dispatch(line string) bool {
	fields, err := shellquote.Split(line)
	if err != nil {
		fmt.Println("parse error:", err)
		return false
	}
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		printHelp()
		return false
	}

	s.withGame(func(gm *game.Game) {
		switch cmd {
		case "left", "h":
			gm.MoveLeft()
		case "right", "l":
			gm.MoveRight()
		case "down", "j":
			gm.SoftDrop()
		case "drop", "space":
			gm.HardDrop()
		case "rotate", "r":
			gm.Rotate()
		case "scan":
			gm.ActivateScan()
		case "flash":
			gm.ActivateFlashClear()
		case "shuffle":
			gm.ShuffleRack()
		case "swap":
			if len(args) != 2 {
				fmt.Println("usage: swap <row> <col>")
				return
			}
			row, err1 := strconv.Atoi(args[0])
			col, err2 := strconv.Atoi(args[1])
			if err1 != nil || err2 != nil {
				fmt.Println("usage: swap <row> <col>")
				return
			}
			gm.SwapSelect(row, col)
		case "pause":
			gm.Pause()
		case "resume":
			gm.Resume()
		case "reset":
			gm.Reset()
		case "show", "s", "":
		default:
			fmt.Println("unknown command; try help")
			return
		}
		printSnapshot(gm.Snapshot())
	})
	return false
}

func printHelp() {
	fmt.Println(`commands:
  left/h right/l down/j   move the falling block
  rotate/r                cycle orientation
  drop                    hard drop
  scan                    vertical scan power-up
  flash                   flash clear buff
  shuffle                 shuffle the rack letters
  swap <row> <col>        select/swap a grid cell
  pause resume reset show quit`)
}

func printSnapshot(snap game.Snapshot) {
	board := make([][]rune, snap.Rows)
	for r := range board {
		board[r] = make([]rune, snap.Cols)
		for c := range board[r] {
			board[r][c] = '.'
			if !snap.Cells[r][c].Empty() {
				board[r][c] = snap.Cells[r][c].Letter
			}
		}
	}
	if snap.Falling != nil {
		for i, p := range snap.Falling.Cells {
			board[p.Row][p.Col] = []rune(snap.Falling.Letters[i])[0]
		}
	}
	var sb strings.Builder
	for _, row := range board {
		sb.WriteString("  |")
		sb.WriteString(string(row))
		sb.WriteString("|\n")
	}
	fmt.Print(sb.String())
	fmt.Printf("  score %d  level %d (%d)  combo %d  scans %d",
		snap.Score, snap.Level, snap.LevelScore, snap.Combo, snap.ScanCharges)
	if snap.FlashTicksLeft > 0 {
		fmt.Printf("  flash %d", snap.FlashTicksLeft)
	}
	fmt.Println()
	for _, b := range snap.Queue {
		fmt.Printf("  next: %s %s\n", strings.Join(b.Letters, ""), b.Kind)
	}
	if len(snap.LastCleared) > 0 {
		fmt.Printf("  cleared: %s\n", strings.Join(snap.LastCleared, " "))
	}
	switch {
	case snap.IsGameOver:
		fmt.Println("  GAME OVER (reset to play again)")
	case snap.IsPaused:
		fmt.Println("  paused")
	case snap.IsLevelingUp:
		fmt.Println("  level up!")
	}
}
