package roller

// Role is a panel's logical position in the ring.
type Role int

const (
	RolePrev Role = iota
	RoleCenter
	RoleNext
)

func (r Role) String() string {
	switch r {
	case RolePrev:
		return "prev"
	case RoleCenter:
		return "center"
	case RoleNext:
		return "next"
	default:
		return "unknown"
	}
}

// roleOf maps a flow to the role of the panel that becomes visible.
func roleOf(flow Flow) Role {
	if flow == FlowPrev {
		return RolePrev
	}
	return RoleNext
}

// Panel is one of the three reusable containers.
type Panel struct {
	Slot     int // fixed index in the ring, never changes
	Content  string
	Offset   int // position along the axis, in cells
	Attached bool

	mountSeq uint64
}

// PanelSet is the ring of exactly three panels. roles maps each Role to a
// slot and is always a permutation of {0,1,2}.
type PanelSet struct {
	panels [3]Panel
	roles  [3]int
	seq    uint64
}

func newPanelSet() PanelSet {
	var s PanelSet
	for i := range s.panels {
		s.panels[i].Slot = i
		s.roles[i] = i
	}
	return s
}

// Get returns the panel currently labeled r.
func (s *PanelSet) Get(r Role) *Panel {
	return &s.panels[s.roles[r]]
}

// RoleOf returns the role held by the panel in slot.
func (s *PanelSet) RoleOf(slot int) Role {
	for r, idx := range s.roles {
		if idx == slot {
			return Role(r)
		}
	}
	return -1
}

// attach mounts the panel labeled r at offset, on top of anything already
// mounted.
func (s *PanelSet) attach(r Role, offset int) {
	p := s.Get(r)
	s.seq++
	p.Offset = offset
	p.Attached = true
	p.mountSeq = s.seq
}

func (s *PanelSet) detach(r Role) {
	p := s.Get(r)
	p.Attached = false
	p.mountSeq = 0
}

// rotate swaps the center label with the flow label and returns the vacated
// panel, which now carries the flow label.
func (s *PanelSet) rotate(flow Flow) *Panel {
	target := roleOf(flow)
	s.roles[RoleCenter], s.roles[target] = s.roles[target], s.roles[RoleCenter]
	return s.Get(target)
}

// Attached returns copies of the mounted panels, bottom-most first.
func (s *PanelSet) Attached() []Panel {
	out := make([]Panel, 0, 2)
	for _, p := range s.panels {
		if p.Attached {
			out = append(out, p)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].mountSeq < out[j-1].mountSeq; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// computeOffsets returns the final offsets of the two moving panels, paired
// with the target order used by Move: [prev, center] for prev and
// [center, next] for next.
func computeOffsets(flow Flow, distance int) [2]int {
	if flow == FlowPrev {
		return [2]int{0, distance}
	}
	return [2]int{-distance, 0}
}

// mountOffset is where the incoming panel starts: one distance off the side
// it enters from.
func mountOffset(flow Flow, distance int) int {
	if flow == FlowPrev {
		return -distance
	}
	return distance
}
