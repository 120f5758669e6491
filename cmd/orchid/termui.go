package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/edup2p/orchid/orchid"
	"github.com/edup2p/orchid/types/entity"
	"github.com/nsf/termbox-go"
)

const (
	// Terminals only report key presses, a key counts as held until it stops repeating for this long.
	holdTimeout = 150 * time.Millisecond

	worldWidth  float32 = 800
	worldHeight float32 = 600
)

type control byte

const (
	up control = iota
	down
	left
	right
	fire
	special
	shield
	restart
)

// termUI draws the game with termbox and turns key presses into held intents.
type termUI struct {
	mu   sync.Mutex
	seen map[control]time.Time
	now  func() time.Time
}

func newTermUI() (*termUI, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("could not initialise terminal: %w", err)
	}

	return &termUI{seen: make(map[control]time.Time), now: time.Now}, nil
}

func (t *termUI) Close() {
	termbox.Close()
}

// poll reads terminal events until quit is requested.
func (t *termUI) poll(quit func()) {
	for {
		ev := termbox.PollEvent()

		switch ev.Type {
		case termbox.EventInterrupt, termbox.EventError:
			quit()
			return
		case termbox.EventKey:
			if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q' {
				quit()
				return
			}

			if c, ok := controlFor(ev); ok {
				t.press(c)
			}
		}
	}
}

func controlFor(ev termbox.Event) (control, bool) {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return up, true
	case termbox.KeyArrowDown:
		return down, true
	case termbox.KeyArrowLeft:
		return left, true
	case termbox.KeyArrowRight:
		return right, true
	case termbox.KeySpace:
		return fire, true
	}

	switch ev.Ch {
	case 'w':
		return up, true
	case 's':
		return down, true
	case 'a':
		return left, true
	case 'd':
		return right, true
	case 'j':
		return special, true
	case 'k':
		return shield, true
	case 'r':
		return restart, true
	}

	return 0, false
}

func (t *termUI) press(c control) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seen[c] = t.now()
}

func (t *termUI) held(c control, now time.Time) bool {
	at, ok := t.seen[c]
	return ok && now.Sub(at) < holdTimeout
}

func (t *termUI) Input() orchid.InputState {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()

	return orchid.InputState{
		Up:      t.held(up, now),
		Down:    t.held(down, now),
		Left:    t.held(left, now),
		Right:   t.held(right, now),
		Fire:    t.held(fire, now),
		Special: t.held(special, now),
		Shield:  t.held(shield, now),
		Restart: t.held(restart, now),
	}
}

// Bounds is the world size, it is scaled to whatever the terminal has.
func (t *termUI) Bounds() (float32, float32) {
	return worldWidth, worldHeight
}

func (t *termUI) Render(snap orchid.Snapshot) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	cols, rows := termbox.Size()
	// last row is the status line
	rows--

	cell := func(p entity.Point) (int, int, bool) {
		x := int(p.X / worldWidth * float32(cols))
		y := int(p.Y / worldHeight * float32(rows))
		return x, y, x >= 0 && x < cols && y >= 0 && y < rows
	}

	for _, b := range snap.Bullets {
		x, y, ok := cell(b.Pos)
		if !ok {
			continue
		}

		switch {
		case b.Possession == entity.Enemy:
			termbox.SetCell(x, y, '*', termbox.ColorRed, termbox.ColorDefault)
		case b.Kind == entity.Special:
			termbox.SetCell(x, y, 'o', termbox.ColorYellow, termbox.ColorDefault)
		default:
			termbox.SetCell(x, y, '|', termbox.ColorWhite, termbox.ColorDefault)
		}
	}

	for _, sv := range snap.Ships {
		if !sv.Ship.Alive() {
			continue
		}

		x, y, ok := cell(sv.Ship.Pos)
		if !ok {
			continue
		}

		ch, fg := shipGlyph(sv)
		termbox.SetCell(x, y, ch, fg, termbox.ColorDefault)
	}

	printLine(0, rows, status(snap))

	termbox.Flush()
}

func shipGlyph(sv orchid.ShipView) (rune, termbox.Attribute) {
	switch {
	case sv.Kind == entity.Boss:
		return 'W', termbox.ColorMagenta | termbox.AttrBold
	case sv.Ship.Shield:
		return '@', termbox.ColorCyan | termbox.AttrBold
	case sv.Kind == entity.LocalPlayer:
		return 'A', termbox.ColorGreen | termbox.AttrBold
	default:
		return 'A', termbox.ColorBlue
	}
}

func status(snap orchid.Snapshot) string {
	var boss float32
	for _, sv := range snap.Ships {
		if sv.Kind == entity.Boss {
			boss = sv.Ship.Health
		}
	}

	line := fmt.Sprintf("%s | %s | peers %d | boss %.0f", snap.Role, snap.Phase, snap.Peers, max(boss, 0))
	if snap.SpecialReady {
		line += " | special ready"
	}
	if snap.ShieldReady {
		line += " | shield ready"
	}

	switch snap.Phase {
	case orchid.Loading:
		if snap.Converged {
			line += " | move to start"
		} else {
			line += " | waiting for ships"
		}
	case orchid.Won, orchid.Lost:
		line += " | r to restart"
	}

	return line + " | q quits"
}

func printLine(x, y int, s string) {
	for _, r := range s {
		termbox.SetCell(x, y, r, termbox.ColorDefault, termbox.ColorDefault)
		x++
	}
}
