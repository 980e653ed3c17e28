// Package textui is the line-oriented front end: it reads commands such as
// "reveal 1,2,0" and prints slices of the board. It suits pipes, scripts
// and terminals without full-screen support.
package textui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/anmitsu/go-shlex"
	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/ndsweeper/internal/core"
	"github.com/vovakirdan/ndsweeper/internal/games/ndmines"
	"github.com/vovakirdan/ndsweeper/internal/games/ndmines/core"
	"github.com/vovakirdan/ndsweeper/internal/platform/tui"
	"github.com/vovakirdan/ndsweeper/internal/storage"
)

var (
	// ErrUnknownCommand is returned for a command word the session does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrBadCoord is returned for a coordinate that does not parse or has the
	// wrong number of components.
	ErrBadCoord = errors.New("bad coordinate")

	// ErrUsage is returned when a command has the wrong arguments.
	ErrUsage = errors.New("usage")
)

// Options configures a Session. The zero value prints plain text and
// stores nothing.
type Options struct {
	PresetID  string // recorded with results, "custom" if empty
	CellWidth int
	Color     bool
	Store     *storage.Store
	Logger    *log.Logger
	Now       func() time.Time
}

// Session owns one game and the plane the player is looking at. It is not
// safe for concurrent use.
type Session struct {
	dims      core.Dims
	mines     int
	seed      int64
	presetID  string
	game      *core.Game
	view      ndmines.View
	anchor    core.Coord
	cellWidth int
	paint     func(string, platformcore.Color) string

	store   *storage.Store
	logger  *log.Logger
	now     func() time.Time
	started time.Time
	ended   time.Time
	saved   bool

	out io.Writer
}

// NewSession starts a game on dims with the given mine count and seed.
func NewSession(dims core.Dims, mines int, seed int64, out io.Writer, opts Options) (*Session, error) {
	s := &Session{
		dims:      dims.Clone(),
		mines:     mines,
		presetID:  opts.PresetID,
		cellWidth: platformcore.Clamp(opts.CellWidth, 1, 3),
		store:     opts.Store,
		logger:    opts.Logger,
		now:       opts.Now,
		out:       out,
	}
	if s.presetID == "" {
		s.presetID = "custom"
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.now == nil {
		s.now = time.Now
	}
	if opts.Color {
		s.paint = tui.Paint
	}

	if err := s.reset(seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) reset(seed int64) error {
	game, err := core.NewGame(s.dims, s.mines, seed)
	if err != nil {
		return err
	}

	s.game = game
	s.seed = seed
	s.view = ndmines.NewView(s.dims.Rank())
	s.anchor = make(core.Coord, s.dims.Rank())
	s.started, s.ended = time.Time{}, time.Time{}
	s.saved = false

	s.logger.Debug("new board", "dims", s.dims.String(), "mines", s.mines, "seed", seed)
	return nil
}

// Game returns the game the session currently owns.
func (s *Session) Game() *core.Game {
	return s.game
}

// Run reads commands from in until quit or EOF. Command errors are printed
// and reading continues; only read errors are returned.
func (s *Session) Run(in io.Reader, prompt bool) error {
	s.printf("%s board, %d mines. Type \"help\" for commands.\n", s.dims, s.mines)
	s.show()

	sc := bufio.NewScanner(in)
	for {
		if prompt {
			s.printf("> ")
		}
		if !sc.Scan() {
			break
		}

		quit, err := s.Execute(sc.Text())
		if err != nil {
			s.printf("error: %v\n", err)
			s.logger.Debug("command failed", "line", sc.Text(), "error", err)
		}
		if quit {
			return nil
		}
	}
	return sc.Err()
}

// Execute runs one command line. quit is true for quit/exit.
func (s *Session) Execute(line string) (quit bool, err error) {
	args, err := shlex.Split(line, true)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return false, nil
	}

	cmd, rest := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "reveal", "r", "open", "o":
		return false, s.reveal(rest)
	case "flag", "f":
		return false, s.flag(rest)
	case "chord", "c":
		return false, s.chord(rest)
	case "show", "s":
		return false, s.showCmd(rest)
	case "axes", "view":
		return false, s.axes(rest)
	case "status", "st":
		s.status()
		return false, nil
	case "new", "n":
		return false, s.newGame(rest)
	case "help", "h", "?":
		s.help()
		return false, nil
	case "quit", "exit", "q":
		return true, nil
	}
	return false, fmt.Errorf("%w %q (try help)", ErrUnknownCommand, cmd)
}

func (s *Session) coordArg(args []string) (core.Coord, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: expected a coordinate like %s", ErrUsage, exampleCoord(s.dims))
	}
	return ParseCoord(strings.Join(args, ","), s.dims)
}

func (s *Session) reveal(args []string) error {
	c, err := s.coordArg(args)
	if err != nil {
		return err
	}

	first := s.game.Phase() == core.AwaitingFirstMove
	out, err := s.game.Reveal(c)
	if err != nil {
		return err
	}
	if first {
		s.started = s.now()
		s.logger.Debug("mines placed", "first", c.String(), "seed", s.seed)
	}

	s.anchor = c
	s.report(out)
	return nil
}

func (s *Session) flag(args []string) error {
	c, err := s.coordArg(args)
	if err != nil {
		return err
	}
	if err := s.game.ToggleFlag(c); err != nil {
		return err
	}

	cv, err := s.game.Cell(c)
	if err != nil {
		return err
	}
	verb := "unflagged"
	if cv.State == core.Flagged {
		verb = "flagged"
	}
	s.printf("%s %s, %d mines left\n", verb, c, s.game.RemainingMineEstimate())
	return nil
}

func (s *Session) chord(args []string) error {
	c, err := s.coordArg(args)
	if err != nil {
		return err
	}

	out, err := s.game.Chord(c)
	if err != nil {
		return err
	}
	if out.Kind == core.OutcomeNone {
		s.printf("flags around %s don't match its number\n", c)
		return nil
	}

	s.anchor = c
	s.report(out)
	return nil
}

// report prints the outcome of a reveal or chord and the plane through the
// anchor, then records the result once the game is over.
func (s *Session) report(out core.RevealOutcome) {
	if s.game.Over() {
		s.ended = s.now()
	}

	switch s.game.Phase() {
	case core.Lost:
		s.printf("BOOM! mine at %s\n", out.At)
	case core.Won:
		s.printf("cleared! %d cells in %d moves, %s\n", s.game.RevealedCount(), s.game.Moves(), s.elapsed().Round(time.Millisecond))
	default:
		s.printf("opened %d cell(s)\n", len(out.Revealed))
	}
	s.show()

	if s.game.Over() {
		s.saveResult()
	}
}

func (s *Session) saveResult() {
	if s.store == nil || s.saved {
		return
	}
	s.saved = true

	r := storage.Result{
		PresetID:  s.presetID,
		Dims:      s.dims.String(),
		Mines:     s.mines,
		Seed:      s.seed,
		Won:       s.game.Phase() == core.Won,
		Revealed:  s.game.RevealedCount(),
		SafeCells: s.game.TotalCells() - s.game.MineCount(),
		Moves:     s.game.Moves(),
		Duration:  s.elapsed(),
	}
	if _, err := s.store.SaveResult(r); err != nil {
		s.logger.Warn("could not save result", "preset", s.presetID, "error", err)
	}
}

func (s *Session) elapsed() time.Duration {
	switch {
	case s.started.IsZero():
		return 0
	case !s.ended.IsZero():
		return s.ended.Sub(s.started)
	default:
		return s.now().Sub(s.started)
	}
}

func (s *Session) showCmd(args []string) error {
	if len(args) > 0 {
		c, err := s.coordArg(args)
		if err != nil {
			return err
		}
		s.anchor = c
	}
	s.show()
	return nil
}

func (s *Session) show() {
	text, err := ndmines.SliceTextStyled(s.game, s.view, s.anchor, s.cellWidth, s.paint)
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	s.printf("%s", text)
}

func (s *Session) axes(args []string) error {
	want := 2
	if s.dims.Rank() == 1 {
		want = 1
	}
	if len(args) != want {
		return fmt.Errorf("%w: axes <column-axis> <row-axis>", ErrUsage)
	}

	x, err := ndmines.ParseAxis(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	y := -1
	if want == 2 {
		if y, err = ndmines.ParseAxis(args[1]); err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}
	}

	v, err := s.view.WithAxes(x, y)
	if err != nil {
		return err
	}
	s.view = v
	s.show()
	return nil
}

func (s *Session) status() {
	g := s.game
	s.printf("board    %s, %d mines, seed %d\n", s.dims, s.mines, s.seed)
	s.printf("phase    %s\n", g.Phase())
	s.printf("mines    %d left (%d flagged)\n", g.RemainingMineEstimate(), g.FlaggedCount())
	s.printf("revealed %d / %d safe cells\n", g.RevealedCount(), g.TotalCells()-g.MineCount())
	s.printf("moves    %d\n", g.Moves())
	s.printf("time     %s\n", s.elapsed().Round(time.Second))
	s.printf("view     %s\n", s.view.Label(s.anchor))
}

func (s *Session) newGame(args []string) error {
	seed := s.now().UnixNano()
	if len(args) > 0 {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: new [seed]", ErrUsage)
		}
		seed = n
	}
	if err := s.reset(seed); err != nil {
		return err
	}
	s.printf("new %s board, %d mines (seed %d)\n", s.dims, s.mines, seed)
	s.show()
	return nil
}

func (s *Session) help() {
	ex := exampleCoord(s.dims)
	s.printf(`commands:
  reveal %[1]s   open a cell (the first reveal is always safe)
  flag %[1]s     toggle a flag
  chord %[1]s    open the neighbours of a satisfied number
  show [%[1]s]   print the plane through a cell
  axes x y       choose the column and row axes
  status         phase, mines left, progress, time
  new [seed]     start over on the same board
  quit           leave
`, ex)
}

func (s *Session) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

// ParseCoord parses "1,2,0", "(1,2,0)" or "1 2 0" against d.
func ParseCoord(text string, d core.Dims) (core.Coord, error) {
	text = strings.Trim(strings.TrimSpace(text), "()")
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != d.Rank() {
		return nil, fmt.Errorf("%w: %q has %d components, the board has %d axes", ErrBadCoord, text, len(parts), d.Rank())
	}

	c := make(core.Coord, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrBadCoord, p)
		}
		c[i] = n
	}
	if !d.Contains(c) {
		return nil, fmt.Errorf("%w: %s outside %s", core.ErrOutOfBounds, c, d)
	}
	return c, nil
}

func exampleCoord(d core.Dims) string {
	parts := make([]string, d.Rank())
	for i := range parts {
		parts[i] = "0"
	}
	return strings.Join(parts, ",")
}
