// Command collision-sandbox is a small terminal demo driving the
// collision package against a procedurally generated field of ships:
// an arrow-keyed cursor fires rays through collision.Line while a
// belt of hostiles drifts and the index is rebuilt every tick.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/voidfront/collision"
	"github.com/lixenwraith/voidfront/vmath"
	"github.com/lixenwraith/voidfront/worldgen"
)

func main() {
	configPath := flag.String("config", "sandbox.toml", "path to sandbox config")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collision-sandbox: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "collision-sandbox: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "collision-sandbox: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)

	cue, err := newSoundCue(44100)
	if err != nil {
		// Audio is cosmetic; fall back to a silent cue rather than exit.
		cue = &soundCue{}
	}

	d := newDemo(cfg)
	d.run(screen, cue)
}

type demo struct {
	cfg Config

	player    *worldgen.Ship
	playerGov *worldgen.Faction
	hostiles  []*worldgen.Ship
	hostileVX []float64
	hostileVY []float64
	hostileGov *worldgen.Faction

	worldExtent float64
	idx         *collision.CollisionIndex

	cursorX, cursorY float64 // aim point, world space
	flashBody        collision.Body
	flashTicks       int
	lastShotHit      bool
	lastShotResolved bool
}

func newDemo(cfg Config) *demo {
	playerGov := worldgen.NewFaction("player")
	hostileGov := worldgen.NewFaction("raiders")
	worldgen.SetEnemy(playerGov, hostileGov)

	worldExtent := float64(cfg.CellSize * cfg.CellCount)

	var ships []collision.Body
	switch cfg.Field {
	case "poisson":
		gap := cfg.CellSize / 4
		if gap < int(cfg.Radius*2) {
			gap = int(cfg.Radius*2) + 1
		}
		ships = worldgen.PoissonField(uint32(cfg.Seed), cfg.CellSize*cfg.CellCount, cfg.CellSize*cfg.CellCount, gap, cfg.Radius, hostileGov)
	default:
		ships = worldgen.ClusterField(uint32(cfg.Seed), cfg.BodyCount, worldExtent, worldExtent, cfg.Radius, hostileGov)
	}

	hostiles := make([]*worldgen.Ship, len(ships))
	vx := make([]float64, len(ships))
	vy := make([]float64, len(ships))
	// Grounded on vmath.FastRand, the engine's xorshift RNG for
	// deterministic, seed-reproducible per-tick randomness.
	rng := vmath.NewFastRand(uint32(cfg.Seed))
	for i, b := range ships {
		hostiles[i] = b.(*worldgen.Ship)
		angle := float64(rng.Intn(360)) * math.Pi / 180
		speed := 4 + float64(rng.Intn(800))/100
		vx[i] = speed * math.Cos(angle)
		vy[i] = speed * math.Sin(angle)
	}

	player := worldgen.NewShip(0, worldExtent/2, worldExtent/2, 4, playerGov)

	return &demo{
		cfg:         cfg,
		player:      player,
		playerGov:   playerGov,
		hostiles:    hostiles,
		hostileVX:   vx,
		hostileVY:   vy,
		hostileGov:  hostileGov,
		worldExtent: worldExtent,
		idx:         collision.New(cfg.CellSize, cfg.CellCount),
		cursorX:     player.X + 40,
		cursorY:     player.Y,
	}
}

func (d *demo) wrap(v float64) float64 {
	v = mod(v, d.worldExtent)
	if v < 0 {
		v += d.worldExtent
	}
	return v
}

func mod(a, b float64) float64 {
	return a - b*float64(int64(a/b))
}

func (d *demo) rebuildIndex(step int64) {
	d.idx.Clear(step)
	d.idx.Add(d.player)
	for _, h := range d.hostiles {
		d.idx.Add(h)
	}
	d.idx.Finalize()
}

func (d *demo) tick(dt float64) {
	for i, h := range d.hostiles {
		h.X = d.wrap(h.X + d.hostileVX[i]*dt)
		h.Y = d.wrap(h.Y + d.hostileVY[i]*dt)
	}
}

func (d *demo) fire(cue *soundCue) {
	closest := 1.0
	hit := d.idx.Line(d.player.X, d.player.Y, d.cursorX, d.cursorY, &closest, d.playerGov, nil)
	d.lastShotResolved = true
	d.flashTicks = 6
	if hit != nil {
		d.flashBody = hit
		d.lastShotHit = true
		cue.playHit()
	} else {
		d.flashBody = nil
		d.lastShotHit = false
		cue.playMiss()
	}
}

func (d *demo) run(screen tcell.Screen, cue *soundCue) {
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			eventCh <- screen.PollEvent()
		}
	}()

	tickDur := time.Second / time.Duration(d.cfg.TickHz)
	ticker := time.NewTicker(tickDur)
	defer ticker.Stop()

	var step int64
	d.rebuildIndex(step)

	running := true
	for running {
		select {
		case ev := <-eventCh:
			switch e := ev.(type) {
			case *tcell.EventKey:
				switch e.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					running = false
				case tcell.KeyUp:
					d.cursorY -= 20
				case tcell.KeyDown:
					d.cursorY += 20
				case tcell.KeyLeft:
					d.cursorX -= 20
				case tcell.KeyRight:
					d.cursorX += 20
				case tcell.KeyEnter:
					d.fire(cue)
				case tcell.KeyRune:
					if e.Rune() == ' ' {
						d.fire(cue)
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			step++
			d.tick(tickDur.Seconds())
			d.rebuildIndex(step)
			if d.flashTicks > 0 {
				d.flashTicks--
			}
			d.render(screen)
		}
	}
}

func (d *demo) render(screen tcell.Screen) {
	screen.Clear()
	width, height := screen.Size()
	camera := mgl64.Vec2{d.player.X, d.player.Y}

	draw := func(worldX, worldY float64, ch rune, style tcell.Style) {
		rel := mgl64.Vec2{worldX, worldY}.Sub(camera)
		// fold through the toroidal wrap to the nearest image
		rel[0] = foldHalfExtent(rel[0], d.worldExtent)
		rel[1] = foldHalfExtent(rel[1], d.worldExtent)

		sx := width/2 + int(rel[0]/8)
		sy := height/2 + int(rel[1]/16)
		if sx >= 0 && sx < width && sy >= 0 && sy < height {
			screen.SetContent(sx, sy, ch, nil, style)
		}
	}

	for _, h := range d.hostiles {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		if d.flashTicks > 0 && collision.Body(h) == d.flashBody {
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
		}
		draw(h.X, h.Y, 'o', style)
	}

	draw(d.player.X, d.player.Y, '^', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	draw(d.cursorX, d.cursorY, '+', tcell.StyleDefault.Foreground(tcell.ColorAqua))

	status := fmt.Sprintf("arrows: aim  enter/space: fire  esc: quit  hostiles: %d", len(d.hostiles))
	if d.lastShotResolved {
		if d.lastShotHit {
			status += "  last shot: HIT"
		} else {
			status += "  last shot: miss"
		}
	}
	for i, r := range status {
		if i >= width {
			break
		}
		screen.SetContent(i, height-1, r, nil, tcell.StyleDefault)
	}

	screen.Show()
}

// foldHalfExtent maps a displacement onto [-extent/2, extent/2], the
// shortest signed path across a toroidally-wrapped axis.
func foldHalfExtent(d, extent float64) float64 {
	d = mod(d, extent)
	if d > extent/2 {
		d -= extent
	}
	if d < -extent/2 {
		d += extent
	}
	return d
}
