package anim

// SequenceGroup runs animations one after another.
type SequenceGroup struct {
	items []Animation
	cur   int
}

// Sequence returns an animation that runs items in order. Each item starts
// on the Update after the previous one finished.
func Sequence(items ...Animation) *SequenceGroup {
	return &SequenceGroup{items: items}
}

// Update implements Animation.
func (s *SequenceGroup) Update(dt float32) bool {
	if s.cur >= len(s.items) {
		return true
	}
	if s.items[s.cur].Update(dt) {
		s.cur++
	}
	return s.cur >= len(s.items)
}

// Reset implements Animation. Items are reset in reverse so that items
// sharing a target restore the earliest start state last.
func (s *SequenceGroup) Reset() {
	for i := len(s.items) - 1; i >= 0; i-- {
		s.items[i].Reset()
	}
	s.cur = 0
}

// ParallelGroup runs animations together.
type ParallelGroup struct {
	items []Animation
	done  []bool
}

// Parallel returns an animation that advances all items every Update and
// finishes when the slowest one does.
func Parallel(items ...Animation) *ParallelGroup {
	return &ParallelGroup{items: items, done: make([]bool, len(items))}
}

// Update implements Animation.
func (p *ParallelGroup) Update(dt float32) bool {
	all := true
	for i, a := range p.items {
		if p.done[i] {
			continue
		}
		p.done[i] = a.Update(dt)
		all = all && p.done[i]
	}
	return all
}

// Reset implements Animation.
func (p *ParallelGroup) Reset() {
	for i, a := range p.items {
		a.Reset()
		p.done[i] = false
	}
}

// RepeatGroup restarts an animation each time it finishes.
type RepeatGroup struct {
	anim  Animation
	times int
	count int
}

// Repeat returns an animation that plays a the given number of times. A
// non-positive times repeats forever and never finishes.
func Repeat(a Animation, times int) *RepeatGroup {
	return &RepeatGroup{anim: a, times: times}
}

// Update implements Animation.
func (r *RepeatGroup) Update(dt float32) bool {
	if r.times > 0 && r.count >= r.times {
		return true
	}
	if !r.anim.Update(dt) {
		return false
	}
	r.count++
	if r.times > 0 && r.count >= r.times {
		return true
	}
	r.anim.Reset()
	return false
}

// Reset implements Animation.
func (r *RepeatGroup) Reset() {
	r.anim.Reset()
	r.count = 0
}

// Loops returns how many times the animation has completed.
func (r *RepeatGroup) Loops() int { return r.count }
