package extract

// Byte-level Aho-Corasick automaton. Text is already lower-cased UTF-8, so multi-byte
// triggers like "€" match as plain byte sequences. A 256-way table per state keeps the
// scan loop free of map lookups

type acState struct {
	next [256]int32 // -1 when the edge is absent
	fail int32
	out  []int // trigger ids ending here (own + inherited through fail links)
}

type automaton struct {
	states []acState
}

func newState() acState {
	var s acState
	for i := range s.next {
		s.next[i] = -1
	}
	return s
}

func newAutomaton() *automaton {
	return &automaton{states: []acState{newState()}}
}

// add inserts pat under id; empty patterns are ignored
func (a *automaton) add(pat string, id int) {
	if pat == "" {
		return
	}
	cur := int32(0)
	for i := 0; i < len(pat); i++ {
		b := pat[i]
		nxt := a.states[cur].next[b]
		if nxt == -1 {
			nxt = int32(len(a.states))
			a.states[cur].next[b] = nxt
			a.states = append(a.states, newState())
		}
		cur = nxt
	}
	a.states[cur].out = append(a.states[cur].out, id)
}

// build computes failure links breadth first and folds outputs along them
func (a *automaton) build() {
	queue := make([]int32, 0, len(a.states))
	for b := range 256 {
		if s := a.states[0].next[b]; s != -1 {
			a.states[s].fail = 0
			queue = append(queue, s)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		r := queue[qi]
		for b := range 256 {
			s := a.states[r].next[b]
			if s == -1 {
				continue
			}
			queue = append(queue, s)

			f := a.states[r].fail
			for f != 0 && a.states[f].next[b] == -1 {
				f = a.states[f].fail
			}
			if nxt := a.states[f].next[b]; nxt != -1 {
				a.states[s].fail = nxt
			} else {
				a.states[s].fail = 0
			}
			a.states[s].out = append(a.states[s].out, a.states[a.states[s].fail].out...)
		}
	}
}

// scan marks hit[id] for every trigger occurring anywhere in text
func (a *automaton) scan(text string, hit []bool) {
	cur := int32(0)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for cur != 0 && a.states[cur].next[b] == -1 {
			cur = a.states[cur].fail
		}
		if nxt := a.states[cur].next[b]; nxt != -1 {
			cur = nxt
		}
		for _, id := range a.states[cur].out {
			hit[id] = true
		}
	}
}
