package roller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rollpanel/internal/motion"
)

// ErrInvalidConfig is wrapped by every construction-time validation error.
var ErrInvalidConfig = errors.New("invalid roller config")

// Direction is the layout the panels roll along.
type Direction string

const (
	Horizontal Direction = "horizontal"
	Vertical   Direction = "vertical"
)

// Axis is the offset a Direction moves: columns for horizontal, rows for vertical.
type Axis string

const (
	AxisLeft Axis = "left"
	AxisTop  Axis = "top"
)

// Unit is how far one move rolls.
type Unit string

const (
	UnitPage Unit = "page" // one full container
	UnitItem Unit = "item" // one container divided by ItemCount
)

// Flow is the direction of a single move.
type Flow string

const (
	FlowPrev Flow = "prev"
	FlowNext Flow = "next"
)

// Defaults applied by New when the corresponding Config field is zero.
const (
	DefaultDuration   = 1000 * time.Millisecond
	DefaultDelay      = 10 * time.Millisecond
	DefaultPanelTag   = "li"
	DefaultWrapperTag = "ul"
)

// Opposite returns the other flow.
func (f Flow) Opposite() Flow {
	if f == FlowPrev {
		return FlowNext
	}
	return FlowPrev
}

// normalize maps anything that is not prev to next. Empty stays empty so
// callers can substitute their default.
func (f Flow) normalize() Flow {
	switch f {
	case "", FlowPrev:
		return f
	}
	return FlowNext
}

// Config is fixed at construction.
type Config struct {
	Width, Height int // container size in cells

	Direction  Direction
	Motion     string // easing name; empty or "noeffect" moves instantly
	Unit       Unit
	ItemCount  int // items per container when Unit is not page
	Flow       Flow
	Duration   time.Duration
	Delay      time.Duration // animation tick interval
	PanelTag   string        // "tag.className"
	WrapperTag string        // "tag.className"
}

// Tag is a parsed "tag.className" option. Renderers use Class to pick a style.
type Tag struct {
	Name  string
	Class string
}

// String formats the tag back to "tag.className" form.
func (t Tag) String() string {
	if t.Class == "" {
		return t.Name
	}
	return t.Name + "." + t.Class
}

// ParseTag splits "tag.className". An empty tag name falls back to def.
func ParseTag(s, def string) Tag {
	name, class, _ := strings.Cut(strings.TrimSpace(s), ".")
	if name == "" {
		name = def
	}
	return Tag{Name: name, Class: class}
}

// WithDefaults returns c with zero fields replaced by their defaults.
func (c Config) WithDefaults() Config {
	if c.Direction == "" {
		c.Direction = Horizontal
	}
	if c.Unit == "" {
		c.Unit = UnitPage
	}
	if c.Flow == "" {
		c.Flow = FlowNext
	}
	if c.Duration <= 0 {
		c.Duration = DefaultDuration
	}
	if c.Delay <= 0 {
		c.Delay = DefaultDelay
	}
	return c
}

// Validate reports the first problem with c. Call it on a config that has
// been through WithDefaults.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: container size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	switch c.Direction {
	case Horizontal, Vertical:
	default:
		return fmt.Errorf("%w: direction %q (want horizontal or vertical)", ErrInvalidConfig, c.Direction)
	}
	switch c.Flow {
	case FlowPrev, FlowNext:
	default:
		return fmt.Errorf("%w: flow %q (want prev or next)", ErrInvalidConfig, c.Flow)
	}
	if c.Unit != UnitPage && c.ItemCount <= 0 {
		return fmt.Errorf("%w: unit %q needs a positive item count", ErrInvalidConfig, c.Unit)
	}
	if !motion.Known(c.Motion) {
		if s := motion.Suggest(c.Motion); s != "" {
			return fmt.Errorf("%w: unknown motion %q (did you mean %q?)", ErrInvalidConfig, c.Motion, s)
		}
		return fmt.Errorf("%w: unknown motion %q", ErrInvalidConfig, c.Motion)
	}
	return nil
}

// Axis returns the offset the configured direction moves.
func (c Config) Axis() Axis {
	if c.Direction == Vertical {
		return AxisTop
	}
	return AxisLeft
}

// PanelSpec returns the parsed panel tag.
func (c Config) PanelSpec() Tag {
	return ParseTag(c.PanelTag, DefaultPanelTag)
}

// WrapperSpec returns the parsed wrapper tag.
func (c Config) WrapperSpec() Tag {
	return ParseTag(c.WrapperTag, DefaultWrapperTag)
}

// UnitDistance returns how many cells one move covers for a container of the
// given size along the axis.
func UnitDistance(size int, unit Unit, itemCount int) int {
	if unit == UnitPage || itemCount <= 0 {
		return size
	}
	return (size + itemCount - 1) / itemCount
}
