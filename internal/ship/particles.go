package ship

import (
	"math"
	"math/rand"

	"github.com/shipward/shipward/internal/core"
	"github.com/shipward/shipward/internal/entity"
)

const particleDepth = 30

// Particle is a short-lived drifting glyph. Each tick it moves along its
// direction at constant speed, then the force vector bends the direction
// for the next tick, so trajectories curve instead of staying straight.
type Particle struct {
	entity.Base

	Pos   core.Vec2
	Dir   core.Vec2 // unit length, except when force cancels it exactly
	Force core.Vec2
	Speed float64

	Created float64
	Expires float64
	now     float64 // last tick's clock, used for render-time fading

	// Glyphs run from dense to sparse; the fade picks one by remaining
	// alpha so particles visually dissolve as they age.
	Glyphs []rune
	Color  core.Color
}

// NewParticle creates a particle at pos living for lifetime seconds from
// now.
func NewParticle(pos, dir, force core.Vec2, speed, now, lifetime float64, glyphs []rune, c core.Color) *Particle {
	return &Particle{
		Base:    entity.Base{Z: particleDepth},
		Pos:     pos,
		Dir:     dir.Normalize(),
		Force:   force,
		Speed:   speed,
		Created: now,
		Expires: now + lifetime,
		now:     now,
		Glyphs:  glyphs,
		Color:   c,
	}
}

// Update advances the particle. Expired particles die and move no
// further.
func (p *Particle) Update(dt, now float64) {
	p.now = now
	if now >= p.Expires {
		p.Kill()
		return
	}
	p.Pos = p.Pos.Add(p.Dir.Scale(p.Speed * dt))
	p.Dir = p.Dir.Add(p.Force.Scale(dt)).Normalize()
}

// Alpha returns the remaining life fraction: 1 at creation, 0 at expiry.
func (p *Particle) Alpha(now float64) float64 {
	life := p.Expires - p.Created
	if life <= 0 {
		return 0
	}
	a := 1 - (now-p.Created)/life
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Glyph returns the rune for the given age, fading through the glyph
// ramp as alpha drops.
func (p *Particle) Glyph(now float64) rune {
	if len(p.Glyphs) == 0 {
		return '*'
	}
	a := p.Alpha(now)
	i := int((1 - a) * float64(len(p.Glyphs)))
	if i >= len(p.Glyphs) {
		i = len(p.Glyphs) - 1
	}
	return p.Glyphs[i]
}

func (p *Particle) Render(dst *core.Screen) {
	dst.SetCell(int(math.Round(p.Pos.X)), int(math.Round(p.Pos.Y)), p.Glyph(p.now), p.Color)
}

// hemisphereDir returns a unit vector within the half circle centered on
// the given base angle (radians), spread ±π/2.
func hemisphereDir(rng *rand.Rand, baseAngle float64) core.Vec2 {
	a := baseAngle + (rng.Float64()-0.5)*math.Pi
	return core.Vec2{X: math.Cos(a), Y: math.Sin(a)}
}

var (
	steamGlyphs  = []rune{'@', 'o', '°', '·'}
	sprayGlyphs  = []rune{'*', '+', '·'}
	dustGlyphs   = []rune{'#', '%', '·'}
	bubbleGlyphs = []rune{'O', 'o', '·'}
)

// SpawnSteam emits boiler steam: upward hemisphere, light sideways
// force so plumes curl with apparent headwind.
func SpawnSteam(rng *rand.Rand, pos core.Vec2, now float64) *Particle {
	dir := hemisphereDir(rng, -math.Pi/2)
	force := core.Vec2{X: -0.8, Y: -0.3}
	life := 1.2 + rng.Float64()*0.8
	return NewParticle(pos, dir, force, 2.5, now, life, steamGlyphs, core.ColorGray)
}

// SpawnSpray emits water spray off a submerged hull: upward fan pulled
// back down by gravity.
func SpawnSpray(rng *rand.Rand, pos core.Vec2, now float64) *Particle {
	dir := hemisphereDir(rng, -math.Pi/2)
	force := core.Vec2{X: 0, Y: 2.0}
	life := 0.5 + rng.Float64()*0.4
	return NewParticle(pos, dir, force, 4.0, now, life, sprayGlyphs, core.ColorCyan)
}

// SpawnDust emits construction dust around a freshly placed module.
func SpawnDust(rng *rand.Rand, pos core.Vec2, now float64) *Particle {
	dir := hemisphereDir(rng, -math.Pi/2)
	force := core.Vec2{X: 0, Y: 1.2}
	life := 0.4 + rng.Float64()*0.5
	return NewParticle(pos, dir, force, 3.0, now, life, dustGlyphs, core.ColorYellow)
}

// SpawnBubble emits flood bubbles from a broken submerged module.
func SpawnBubble(rng *rand.Rand, pos core.Vec2, now float64) *Particle {
	dir := hemisphereDir(rng, -math.Pi/2)
	force := core.Vec2{X: 0.3, Y: -0.5}
	life := 0.8 + rng.Float64()*0.6
	return NewParticle(pos, dir, force, 1.5, now, life, bubbleGlyphs, core.ColorBlue)
}
