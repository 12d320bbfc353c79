package battle

import "slices"

// outcome is one result of a chance event. chance is a percentage of the parent branch.
type outcome struct {
	chance float32
	apply  func()
	// halt ends the running sequence for this outcome (a miss, a full paralysis)
	halt bool
}

// branchWriter mutates the shared state while recording every mutation.
// Chance events are explored depth-first: each outcome runs to a leaf, then the
// writer rewinds to the fork point and tries the next outcome.
type branchWriter struct {
	state        *State
	instructions []Instruction
	percentage   float32
	pending      [][]outcome

	leaves []leaf
}

type leaf struct {
	instructions []Instruction
	percentage   float32
}

func newBranchWriter(state *State, instructions []Instruction, percentage float32) *branchWriter {
	return &branchWriter{
		state:        state,
		instructions: slices.Clip(instructions),
		percentage:   percentage,
	}
}

// push applies an instruction and records it on the current path
func (w *branchWriter) push(instruction Instruction) {
	instruction.Apply(w.state)
	w.instructions = append(w.instructions, instruction)
}

func (w *branchWriter) mark() int {
	return len(w.instructions)
}

// rewind reverses every instruction recorded after mark
func (w *branchWriter) rewind(mark int) {
	for i := len(w.instructions) - 1; i >= mark; i-- {
		w.instructions[i].Reverse(w.state)
	}
	w.instructions = w.instructions[:mark]
}

// since returns the instructions recorded after mark on the current path
func (w *branchWriter) since(mark int) []Instruction {
	return w.instructions[mark:]
}

// finish records the current path as a leaf
func (w *branchWriter) finish() {
	w.leaves = append(w.leaves, leaf{
		instructions: slices.Clone(w.instructions),
		percentage:   w.percentage,
	})
}

// chance queues an independent effect that happens pct percent of the time.
// The unaffected outcome is explored first.
func (w *branchWriter) chance(pct float32, apply func()) {
	if pct <= 0 {
		return
	}
	if pct >= 100 {
		apply()
		return
	}

	w.pending = append(w.pending, []outcome{
		{chance: 100 - pct},
		{chance: pct, apply: apply},
	})
}

// oneOf queues a set of mutually exclusive outcomes whose chances sum to 100
func (w *branchWriter) oneOf(outcomes []outcome) {
	live := 0
	halts := false
	for _, o := range outcomes {
		if o.chance > 0 {
			live++
			halts = halts || o.halt
		}
	}

	// A certain outcome that halts still has to be settled to stop the sequence
	if live == 1 && !halts {
		for _, o := range outcomes {
			if o.chance > 0 && o.apply != nil {
				o.apply()
			}
		}
		return
	}

	w.pending = append(w.pending, outcomes)
}

func (w *branchWriter) takePending() [][]outcome {
	pending := w.pending
	w.pending = nil
	return pending
}

// settle resolves queued chance events one after another, then continues with next
// (or stop when an outcome halts).
func (w *branchWriter) settle(events [][]outcome, next func(), stop func()) {
	if len(events) == 0 {
		next()
		return
	}

	mark := w.mark()
	base := w.percentage
	rest := events[1:]

	for _, o := range events[0] {
		if o.chance <= 0 {
			continue
		}

		w.percentage = base * o.chance / 100
		if o.apply != nil {
			o.apply()
		}

		raised := w.takePending()
		if o.halt {
			w.settle(raised, stop, stop)
		} else {
			w.settle(append(raised, rest...), next, stop)
		}

		w.rewind(mark)
	}

	w.percentage = base
}

// step is one stage of an action. It continues with next, or with stop when the
// rest of its sequence should be skipped.
type step func(w *branchWriter, next func(), stop func())

// do wraps straight-line code as a step: it runs fn, then resolves any chance
// events fn queued before moving on. fn returning false stops the sequence.
func do(fn func() bool) step {
	return func(w *branchWriter, next func(), stop func()) {
		if !fn() {
			w.pending = nil
			stop()
			return
		}

		w.settle(w.takePending(), next, stop)
	}
}

// sequence chains steps; any step stopping skips the remaining ones
func sequence(steps ...step) step {
	return func(w *branchWriter, next func(), stop func()) {
		if len(steps) == 0 {
			next()
			return
		}

		steps[0](w, func() {
			sequence(steps[1:]...)(w, next, stop)
		}, stop)
	}
}

// forEach runs one sub-sequence per target. A target's sequence stopping moves on to the next target.
// targets is evaluated when the step runs, not when it is built.
func forEach(targets func() []Position, build func(Position) step) step {
	return func(w *branchWriter, next func(), stop func()) {
		resolved := targets()

		var loop func(i int)
		loop = func(i int) {
			if i == len(resolved) {
				next()
				return
			}

			cont := func() { loop(i + 1) }
			build(resolved[i])(w, cont, cont)
		}

		loop(0)
	}
}

// fork splits into explicit outcomes, each continuing with next unless it halts
func fork(outcomes func() []outcome) step {
	return func(w *branchWriter, next func(), stop func()) {
		w.settle([][]outcome{outcomes()}, next, stop)
	}
}

// runStep executes a step to completion, recording a leaf for every path.
// The state is rewound to where it was before the step.
func (w *branchWriter) runStep(s step) {
	mark := w.mark()
	s(w, w.finish, w.finish)
	w.rewind(mark)
}

// mergeLeaves sums the percentage of leaves with equal instruction lists, keeping first-seen order
func mergeLeaves(leaves []leaf) []leaf {
	merged := make([]leaf, 0, len(leaves))
	for _, l := range leaves {
		found := false
		for i := range merged {
			if slices.Equal(merged[i].instructions, l.instructions) {
				merged[i].percentage += l.percentage
				found = true
				break
			}
		}

		if !found {
			merged = append(merged, l)
		}
	}

	return merged
}
