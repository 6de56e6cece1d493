package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Pool holds a fixed number of pre-allocated obstacles per kind.
// Nothing is allocated after construction.
type Pool struct {
	kinds    []Kind
	yRatio   map[Kind]float64
	byKind   map[Kind][]*Obstacle
	all      []*Obstacle // Pool order: kind order, then slot order
	despawnX float64

	active   []*Obstacle // Scratch for Active
	hitboxes []core.Box  // Scratch for ActiveHitboxes
}

// NewPool allocates sizePerKind obstacles for each configured kind.
// Obstacles are deactivated once their x drops below despawnX.
func NewPool(kinds []config.KindConfig, sizePerKind int, despawnX, viewportH float64) (*Pool, error) {
	if sizePerKind < 1 {
		return nil, fmt.Errorf("sim: pool size must be at least 1, got %d", sizePerKind)
	}

	p := &Pool{
		yRatio:   make(map[Kind]float64, len(kinds)),
		byKind:   make(map[Kind][]*Obstacle, len(kinds)),
		all:      make([]*Obstacle, 0, len(kinds)*sizePerKind),
		despawnX: despawnX,
		active:   make([]*Obstacle, 0, len(kinds)*sizePerKind),
		hitboxes: make([]core.Box, 0, len(kinds)*sizePerKind),
	}
	for _, kc := range kinds {
		kind, err := ParseKind(kc.Name)
		if err != nil {
			return nil, err
		}
		if _, dup := p.byKind[kind]; dup {
			return nil, fmt.Errorf("sim: obstacle kind %q configured twice", kc.Name)
		}

		slots := make([]*Obstacle, sizePerKind)
		for i := range slots {
			slots[i] = NewObstacle(kind, kc, viewportH)
		}
		p.kinds = append(p.kinds, kind)
		p.yRatio[kind] = kc.YRatio
		p.byKind[kind] = slots
		p.all = append(p.all, slots...)
	}
	return p, nil
}

// Kinds returns the configured kinds in pool order.
func (p *Pool) Kinds() []Kind { return p.kinds }

// YRatio returns the spawn height of a kind as a fraction of viewport height.
func (p *Pool) YRatio(kind Kind) (float64, bool) {
	r, ok := p.yRatio[kind]
	return r, ok
}

// Capacity returns the number of slots for a kind.
func (p *Pool) Capacity(kind Kind) int { return len(p.byKind[kind]) }

// Inactive returns the first inactive obstacle of the kind, or nil if the
// kind is exhausted or unknown.
func (p *Pool) Inactive(kind Kind) *Obstacle {
	for _, o := range p.byKind[kind] {
		if !o.Active() {
			return o
		}
	}
	return nil
}

// UpdateAll moves every active obstacle and despawns those past the left edge.
func (p *Pool) UpdateAll(now, deltaMs float64) {
	for _, o := range p.all {
		if !o.Active() {
			continue
		}
		o.Update(now, deltaMs)
		if x, _ := o.Position(); x < p.despawnX {
			o.Deactivate()
		}
	}
}

// Active returns the active obstacles in pool order.
// The slice is reused by the next call.
func (p *Pool) Active() []*Obstacle {
	p.active = p.active[:0]
	for _, o := range p.all {
		if o.Active() {
			p.active = append(p.active, o)
		}
	}
	return p.active
}

// ActiveHitboxes returns the hitboxes of active obstacles in pool order.
// The slice is reused by the next call.
func (p *Pool) ActiveHitboxes() []core.Box {
	p.hitboxes = p.hitboxes[:0]
	for _, o := range p.all {
		if o.Active() {
			p.hitboxes = append(p.hitboxes, o.Hitbox())
		}
	}
	return p.hitboxes
}

// ActiveCount returns the number of active obstacles of a kind.
func (p *Pool) ActiveCount(kind Kind) int {
	n := 0
	for _, o := range p.byKind[kind] {
		if o.Active() {
			n++
		}
	}
	return n
}

// DeactivateAll returns every obstacle to the pool.
func (p *Pool) DeactivateAll() {
	for _, o := range p.all {
		o.Deactivate()
	}
}
