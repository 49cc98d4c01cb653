package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq starts a command sequence. Sequences are written as words:
// "SPC m" is space, then m. Bubble Tea reports space as " ".
const leaderSeq = "SPC"

// Binding is one deck command reachable from one or more key sequences.
// The embedded key.Binding carries the sequences and the help text.
type Binding struct {
	key.Binding
	Cmd   tea.Cmd
	Modes []AppMode // empty: every mode
}

// AppliesTo reports whether the binding is active in mode.
func (b Binding) AppliesTo(mode AppMode) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, m := range b.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// Keymap maps key sequences to deck commands.
type Keymap struct {
	bindings []Binding
	bySeq    map[string]int
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{bySeq: make(map[string]int)}
}

// Add registers cmd under every sequence in seqs. A sequence that was
// already bound moves to the new binding.
func (k *Keymap) Add(desc string, cmd tea.Cmd, modes []AppMode, seqs ...string) {
	k.bindings = append(k.bindings, Binding{
		Binding: key.NewBinding(key.WithKeys(seqs...), key.WithHelp(keyLabel(seqs), desc)),
		Cmd:     cmd,
		Modes:   modes,
	})
	for _, s := range seqs {
		k.bySeq[s] = len(k.bindings) - 1
	}
}

// Lookup returns the binding for a full sequence.
func (k *Keymap) Lookup(seq string) (Binding, bool) {
	i, ok := k.bySeq[seq]
	if !ok {
		return Binding{}, false
	}
	return k.bindings[i], true
}

// continues reports whether some bound sequence extends seq.
func (k *Keymap) continues(seq string) bool {
	prefix := seq + " "
	for s := range k.bySeq {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// Direct returns help entries for the bindings reached without the leader,
// one per binding, in the order they were added.
func (k *Keymap) Direct(mode AppMode) []key.Binding {
	var out []key.Binding
	for i, b := range k.bindings {
		if !b.AppliesTo(mode) {
			continue
		}
		var seqs []string
		for _, s := range b.Keys() {
			if !isLeaderSeq(s) && k.bySeq[s] == i {
				seqs = append(seqs, s)
			}
		}
		if len(seqs) == 0 {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(seqs...), key.WithHelp(keyLabel(seqs), b.Help().Desc)))
	}
	return out
}

// Leader returns help entries for the keys that may follow prefix ("SPC",
// or a longer sequence), sorted by key. Keys that open a further level are
// described as "key…".
func (k *Keymap) Leader(prefix string, mode AppMode) []key.Binding {
	descs := make(map[string]string)
	for s, i := range k.bySeq {
		rest, ok := strings.CutPrefix(s, prefix+" ")
		if !ok || !k.bindings[i].AppliesTo(mode) {
			continue
		}
		word, _, _ := strings.Cut(rest, " ")
		if k.continues(prefix + " " + word) {
			descs[word] = word + "…"
		} else {
			descs[word] = k.bindings[i].Help().Desc
		}
	}
	words := make([]string, 0, len(descs))
	for w := range descs {
		words = append(words, w)
	}
	sort.Strings(words)
	out := make([]key.Binding, len(words))
	for i, w := range words {
		out[i] = key.NewBinding(key.WithKeys(w), key.WithHelp(w, descs[w]))
	}
	return out
}

func isLeaderSeq(s string) bool {
	return s == leaderSeq || strings.HasPrefix(s, leaderSeq+" ")
}

var arrowLabels = map[string]string{"left": "←", "right": "→", "up": "↑", "down": "↓"}

// keyLabel joins sequences for display: "l/→/j/↓".
func keyLabel(seqs []string) string {
	labels := make([]string, len(seqs))
	for i, s := range seqs {
		if a, ok := arrowLabels[s]; ok {
			s = a
		}
		labels[i] = s
	}
	return strings.Join(labels, "/")
}

// KeyHandler tracks a partly typed leader sequence and dispatches keys to
// the keymap.
type KeyHandler struct {
	Keymap *Keymap
	seq    []string
}

// NewKeyHandler creates a handler for km.
func NewKeyHandler(km *Keymap) *KeyHandler {
	return &KeyHandler{Keymap: km}
}

// Waiting reports whether a leader sequence is in progress.
func (h *KeyHandler) Waiting() bool {
	return len(h.seq) > 0
}

// Sequence returns the leader sequence typed so far, e.g. "SPC".
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.seq, " ")
}

// Handle processes a key in mode. consumed means the key belonged to the
// keymap and should not reach views; cmd is the bound command, if any.
// Bindings that do not apply to mode are treated as unbound.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	k := msg.String()
	switch {
	case k == " ":
		h.seq = []string{leaderSeq}
		return true, nil
	case k == "esc":
		if h.Waiting() {
			h.seq = nil
			return true, nil
		}
		return false, nil
	case h.Waiting():
		h.seq = append(h.seq, k)
		seq := h.Sequence()
		if b, ok := h.Keymap.Lookup(seq); ok && b.AppliesTo(mode) {
			h.seq = nil
			return true, b.Cmd
		}
		if !h.Keymap.continues(seq) {
			h.seq = nil
		}
		return true, nil
	}
	if b, ok := h.Keymap.Lookup(k); ok && b.AppliesTo(mode) {
		return true, b.Cmd
	}
	return false, nil
}
