package components

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	markerDim    = "▹"
	markerBright = "▸"

	pulseFPS = UITicksPerSecond

	// Spring physics parameters
	pulseAngularFrequency = 6.0
	pulseDampingRatio     = 0.6

	// Ticks spent at each end of the pulse
	pulseBrightTicks = 7
	pulseDimTicks    = 4

	pulseThreshold = 0.5

	pulseBright = 1.0
	pulseDim    = 0.0
)

// Pulse animates the focus marker with spring physics
type Pulse struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	active    bool
	tickCount int
}

// NewPulse creates a pulse resting at the bright end
func NewPulse() *Pulse {
	return &Pulse{
		spring:   harmonica.NewSpring(harmonica.FPS(pulseFPS), pulseAngularFrequency, pulseDampingRatio),
		position: pulseBright,
		target:   pulseBright,
	}
}

// Start begins the animation
func (p *Pulse) Start() {
	p.active = true
}

// Stop freezes the marker bright
func (p *Pulse) Stop() {
	p.active = false
	p.position = pulseBright
	p.velocity = 0
	p.target = pulseBright
	p.tickCount = 0
}

// Restart puts the marker back to bright, used when focus moves
func (p *Pulse) Restart() {
	active := p.active
	p.Stop()
	p.active = active
}

// Update advances the animation by one UI tick
func (p *Pulse) Update() {
	if !p.active {
		return
	}

	p.tickCount++

	switch p.target {
	case pulseBright:
		if p.tickCount >= pulseBrightTicks {
			p.target = pulseDim
			p.tickCount = 0
		}
	default:
		if p.tickCount >= pulseDimTicks {
			p.target = pulseBright
			p.tickCount = 0
		}
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, p.target)
}

// Frame returns the marker glyph for the current spring position
func (p *Pulse) Frame() string {
	if p.position < pulseThreshold {
		return markerDim
	}

	return markerBright
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}

// IsActive returns whether the animation is running
func (p *Pulse) IsActive() bool {
	return p.active
}
