// Subconscious — bounded experience memory and impulse generation.
// Experiences live in a FIFO ring buffer; impulses rank candidate
// actions by historical reward in similar contexts, with innate
// priors covering the empty-memory case.
package mind

import "sort"

// Experience records one lived tick: what was perceived, what was
// done, and how it paid off. Append-only, evicted oldest-first.
type Experience struct {
	Snapshot PerceptionSnapshot `json:"snapshot"`
	Action   Action             `json:"action"`
	Reward   float64            `json:"reward"`
	Tick     uint64             `json:"tick"`
}

// Candidate is an action with its impulse score, ranked for the Ego.
type Candidate struct {
	Action  Action
	Impulse float64
}

// Subconscious owns the experience buffer. Capacity is fixed at
// construction; Observe never grows the buffer past it.
type Subconscious struct {
	buf      []Experience
	head     int // index of the oldest experience
	count    int
	capacity int

	// memoryWeight scales how strongly recalled reward shifts the
	// innate impulse ranking.
	memoryWeight float64
}

// NewSubconscious creates an empty memory with the given capacity.
func NewSubconscious(capacity int) *Subconscious {
	return &Subconscious{
		buf:          make([]Experience, capacity),
		capacity:     capacity,
		memoryWeight: 0.5,
	}
}

// Observe appends an experience, evicting the oldest when full.
func (s *Subconscious) Observe(snap PerceptionSnapshot, action Action, reward float64, tick uint64) {
	if s.capacity == 0 {
		return
	}
	idx := (s.head + s.count) % s.capacity
	s.buf[idx] = Experience{Snapshot: snap, Action: action, Reward: reward, Tick: tick}
	if s.count < s.capacity {
		s.count++
	} else {
		s.head = (s.head + 1) % s.capacity
	}
}

// Len returns the number of stored experiences.
func (s *Subconscious) Len() int { return s.count }

// Experiences returns the stored experiences oldest-first.
func (s *Subconscious) Experiences() []Experience {
	out := make([]Experience, 0, s.count)
	for i := 0; i < s.count; i++ {
		out = append(out, s.buf[(s.head+i)%s.capacity])
	}
	return out
}

// Restore replaces the buffer contents with saved experiences
// (oldest-first), truncating to capacity from the most recent end.
func (s *Subconscious) Restore(exps []Experience) {
	if len(exps) > s.capacity {
		exps = exps[len(exps)-s.capacity:]
	}
	s.head = 0
	s.count = len(exps)
	copy(s.buf, exps)
}

// Impulse returns candidate actions ranked by appeal in the given
// context. The base ranking comes from innate priors — movement is
// drawn to sunlight, eating to reachable objects — shifted by the
// mean reward of remembered experiences whose discretized features
// match the snapshot. Ties break by most-recent matching experience,
// then by lexical order of the action identifier, so the ranking is
// fully deterministic.
func (s *Subconscious) Impulse(snap PerceptionSnapshot) []Candidate {
	candidates := s.innate(snap)
	key := featureKey(snap)

	type recall struct {
		total    float64
		n        int
		lastTick uint64
	}
	recalled := make(map[string]*recall)
	for i := 0; i < s.count; i++ {
		exp := s.buf[(s.head+i)%s.capacity]
		if featureKey(exp.Snapshot) != key {
			continue
		}
		id := exp.Action.ID()
		r := recalled[id]
		if r == nil {
			r = &recall{}
			recalled[id] = r
		}
		r.total += exp.Reward
		r.n++
		if exp.Tick > r.lastTick {
			r.lastTick = exp.Tick
		}
	}

	lastSeen := make(map[string]uint64, len(recalled))
	for i := range candidates {
		id := candidates[i].Action.ID()
		if r := recalled[id]; r != nil {
			candidates[i].Impulse += s.memoryWeight * (r.total / float64(r.n))
			lastSeen[id] = r.lastTick
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if ci.Impulse != cj.Impulse {
			return ci.Impulse > cj.Impulse
		}
		li, lj := lastSeen[ci.Action.ID()], lastSeen[cj.Action.ID()]
		if li != lj {
			return li > lj
		}
		return ci.Action.ID() < cj.Action.ID()
	})
	return candidates
}

// innate returns the fixed candidate set with context-sensitive
// priors. Sunlight pulls toward movement; a reachable object makes
// eating it attractive.
func (s *Subconscious) innate(snap PerceptionSnapshot) []Candidate {
	eat := Candidate{Action: Action{Kind: ActionEat}, Impulse: 0.05}
	if obj := nearestObject(snap); obj != nil && obj.Distance <= ReachDistance {
		eat.Action.Target = obj.Kind
		eat.Impulse += 0.25
	}
	return []Candidate{
		{Action: Action{Kind: ActionMove, Dir: DirRight}, Impulse: 0.10 + 0.30*snap.Sunlight},
		{Action: Action{Kind: ActionLook}, Impulse: 0.08},
		eat,
		{Action: Action{Kind: ActionWait}, Impulse: 0.02},
	}
}
