package battle

import (
	"fmt"
	"math"
	"slices"
)

// Allowed drift of the summed branch percentages from 100
const PERCENTAGE_TOLERANCE = 0.01

// generator holds the inputs of one GenerateInstructions call and the writer of the branch being resolved
type generator struct {
	state          *State
	choices        [4]MoveChoice
	branchOnDamage bool

	w *branchWriter
	// Actors that have not acted yet in the branch being resolved, current actor excluded
	remaining actorSet
}

// branch is one partial outcome of a turn between rounds
type branch struct {
	instructions []Instruction
	percentage   float32
	remaining    actorSet
	halted       bool
}

// GenerateInstructions returns every outcome of one turn given the choice of each active slot.
// The state is used as scratch space and is restored before returning.
func GenerateInstructions(state *State, s1a, s1b, s2a, s2b MoveChoice, branchOnDamage bool) []StateInstructions {
	g := &generator{
		state:          state,
		choices:        [4]MoveChoice{s1a, s1b, s2a, s2b},
		branchOnDamage: branchOnDamage,
	}

	var results []StateInstructions
	switch {
	case pivotPending(state):
		turnLogger().V(1).Info("resuming turn after pivot")
		results = g.resume()
	case g.replacementCall():
		turnLogger().V(1).Info("replacing fainted pokemon")
		results = g.replacements()
	default:
		results = g.turn(branch{percentage: 100, remaining: allActors()})
	}

	checkPercentages(results)
	turnLogger().V(1).Info("turn generated", "branches", len(results))

	return results
}

// pivotPending reports whether a slot is waiting on a pivot switch
func pivotPending(state *State) bool {
	for _, pos := range declarationOrder {
		if state.Slot(pos).ForceSwitch {
			return true
		}
	}

	return false
}

// replacementCall reports whether this call only replaces fainted pokemon
func (g *generator) replacementCall() bool {
	for _, pos := range declarationOrder {
		if g.state.activeFainted(pos) && g.choices[pos.declarationIndex()].Kind == CHOICE_SWITCH {
			return true
		}
	}

	return false
}

// turn runs every remaining action of start, then end of turn on each branch that did not halt
func (g *generator) turn(start branch) []StateInstructions {
	branches := g.runRounds([]branch{start})

	results := make([]StateInstructions, 0, len(branches))
	for _, b := range branches {
		leaves, ran := g.endOfTurnLeaves(b)
		if !ran {
			results = append(results, StateInstructions{
				Percentage:   b.percentage,
				Instructions: b.instructions,
			})
			continue
		}

		for _, l := range leaves {
			results = append(results, StateInstructions{
				Percentage:         l.percentage,
				Instructions:       l.instructions,
				EndOfTurnTriggered: true,
			})
		}
	}

	return mergeResults(results)
}

// runRounds resolves one actor per branch per round until no branch has actors left
func (g *generator) runRounds(branches []branch) []branch {
	for {
		progressed := false
		next := make([]branch, 0, len(branches))

		for _, b := range branches {
			if b.halted || b.remaining == 0 {
				next = append(next, b)
				continue
			}

			progressed = true
			next = append(next, g.round(b)...)
		}

		branches = mergeBranches(next)
		if !progressed {
			return branches
		}
	}
}

// round resolves the next actor of one branch
func (g *generator) round(b branch) []branch {
	state := g.state
	state.ApplyInstructions(b.instructions)
	defer state.ReverseInstructions(b.instructions)

	if pivotPending(state) {
		b.halted = true
		return []branch{b}
	}

	actor, remaining, ok := nextActor(state, &g.choices, b.remaining)
	if !ok {
		b.remaining = 0
		return []branch{b}
	}

	g.w = newBranchWriter(state, b.instructions, b.percentage)
	g.remaining = remaining.without(actor)
	turnLogger().V(2).Info("actor", "side", actor.Side, "slot", actor.Slot, "percentage", b.percentage)

	g.w.runStep(g.action(actor))

	branches := make([]branch, 0, len(g.w.leaves))
	for _, l := range g.w.leaves {
		branches = append(branches, branch{
			instructions: l.instructions,
			percentage:   l.percentage,
			remaining:    g.remaining,
		})
	}
	g.w = nil

	return branches
}

func (g *generator) action(actor Position) step {
	choice := g.choices[actor.declarationIndex()]
	if choice.Kind == CHOICE_SWITCH {
		return g.switchAction(actor, choice)
	}

	return g.moveAction(actor, choice)
}

// endOfTurnLeaves runs end of turn on top of a finished branch.
// It does not run when a pivot switch is still pending.
func (g *generator) endOfTurnLeaves(b branch) ([]leaf, bool) {
	if b.halted {
		return nil, false
	}

	state := g.state
	state.ApplyInstructions(b.instructions)
	defer state.ReverseInstructions(b.instructions)

	if pivotPending(state) {
		return nil, false
	}

	g.w = newBranchWriter(state, b.instructions, b.percentage)
	g.w.runStep(g.endOfTurn())
	leaves := mergeLeaves(g.w.leaves)
	g.w = nil

	return leaves, true
}

// resume takes the pending pivot switch, then lets the slots that had not acted use their saved choices
func (g *generator) resume() []StateInstructions {
	state := g.state
	g.w = newBranchWriter(state, nil, 100)

	steps := make([]step, 0, len(declarationOrder))
	for _, pos := range declarationOrder {
		slot := state.Slot(pos)
		choice := g.choices[pos.declarationIndex()]
		if !slot.ForceSwitch {
			continue
		}

		steps = append(steps, do(func() bool {
			g.w.push(ToggleForceSwitch{Side: pos.Side, Slot: pos.Slot})
			return true
		}))
		if canAct(state, pos, choice) && choice.Kind == CHOICE_SWITCH {
			steps = append(steps, g.switchAction(pos, choice))
		}
	}

	// Saved choices replace whatever was declared for this call
	remaining := actorSet(0)
	for _, pos := range declarationOrder {
		saved := state.Slot(pos).SwitchOutMove
		if saved.Kind == CHOICE_NONE {
			continue
		}

		g.choices[pos.declarationIndex()] = saved
		remaining |= 1 << pos.declarationIndex()
		steps = append(steps, do(func() bool {
			g.w.push(SetSwitchOutMove{Side: pos.Side, Slot: pos.Slot, Old: saved, New: MoveChoice{}})
			return true
		}))
	}

	g.remaining = remaining
	g.w.runStep(sequence(steps...))
	prelude := g.w.leaves
	g.w = nil

	results := make([]StateInstructions, 0, len(prelude))
	for _, l := range prelude {
		results = append(results, g.turn(branch{
			instructions: l.instructions,
			percentage:   l.percentage,
			remaining:    remaining,
		})...)
	}

	return mergeResults(results)
}

// replacements switches in for fainted pokemon only. End of turn already ran for this turn.
func (g *generator) replacements() []StateInstructions {
	remaining := actorSet(0)
	for _, pos := range declarationOrder {
		if g.state.activeFainted(pos) && g.choices[pos.declarationIndex()].Kind == CHOICE_SWITCH {
			remaining |= 1 << pos.declarationIndex()
		}
	}

	branches := g.runRounds([]branch{{percentage: 100, remaining: remaining}})

	results := make([]StateInstructions, 0, len(branches))
	for _, b := range branches {
		results = append(results, StateInstructions{
			Percentage:   b.percentage,
			Instructions: b.instructions,
		})
	}

	return mergeResults(results)
}

// mergeBranches sums the percentage of branches with equal instructions, actors and halt state
func mergeBranches(branches []branch) []branch {
	merged := make([]branch, 0, len(branches))
	for _, b := range branches {
		i := slices.IndexFunc(merged, func(m branch) bool {
			return m.remaining == b.remaining && m.halted == b.halted && slices.Equal(m.instructions, b.instructions)
		})
		if i < 0 {
			merged = append(merged, b)
			continue
		}

		merged[i].percentage += b.percentage
	}

	return merged
}

func mergeResults(results []StateInstructions) []StateInstructions {
	merged := make([]StateInstructions, 0, len(results))
	for _, r := range results {
		i := slices.IndexFunc(merged, func(m StateInstructions) bool {
			return m.EndOfTurnTriggered == r.EndOfTurnTriggered && slices.Equal(m.Instructions, r.Instructions)
		})
		if i < 0 {
			merged = append(merged, r)
			continue
		}

		merged[i].Percentage += r.Percentage
	}

	return merged
}

func checkPercentages(results []StateInstructions) {
	var total float64
	for _, r := range results {
		total += float64(r.Percentage)
	}

	if math.Abs(total-100) > PERCENTAGE_TOLERANCE {
		panic(fmt.Sprintf("branch percentages sum to %f over %d branches", total, len(results)))
	}
}
