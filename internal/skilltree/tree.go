// Package skilltree implements the per-leader skill progression state
// machine: a reputation balance, the set of unlocked skills, the set of
// started branches, and the current command grade. Every mutation enforces
// the cross-cutting constraints (cost, prerequisites, grade gating, branch
// exclusivity) against the static catalog.
//
// A Tree is owned by exactly one leader and is not safe for concurrent use;
// the turn structure serializes access. Callers that introduce concurrent
// simulation must serialize the mutating operations per tree.
package skilltree

import (
	"fmt"
	"sort"

	"github.com/swatter555/leadercorps/internal/catalog"
)

// Tree is the mutable skill-progression state for a single leader.
type Tree struct {
	reputation int
	unlocked   map[catalog.SkillID]bool
	active     map[catalog.Branch]bool
	grade      catalog.Grade

	// pending accumulates change events until the owner drains them.
	pending []Event
}

// New creates a tree with the given starting reputation (clamped at zero),
// no unlocked skills, no active branches, and Junior grade.
func New(initialReputation int) *Tree {
	if initialReputation < 0 {
		initialReputation = 0
	}
	return &Tree{
		reputation: initialReputation,
		unlocked:   make(map[catalog.SkillID]bool),
		active:     make(map[catalog.Branch]bool),
		grade:      catalog.GradeJunior,
	}
}

// Reputation returns the current spendable balance.
func (t *Tree) Reputation() int {
	return t.reputation
}

// Grade returns the current command grade.
func (t *Tree) Grade() catalog.Grade {
	return t.grade
}

// AddReputation increases the balance. Non-positive amounts are accepted and
// ignored — reputation is never lost through an award, so this is a no-op,
// not an error.
func (t *Tree) AddReputation(amount int) {
	if amount <= 0 {
		return
	}
	t.reputation += amount
}

// IsSkillUnlocked reports whether a skill has been unlocked. The None
// sentinel always reports false.
func (t *Tree) IsSkillUnlocked(id catalog.SkillID) bool {
	if id.IsNone() {
		return false
	}
	return t.unlocked[id]
}

// UnlockedSkills returns the unlocked skill IDs in a stable order.
func (t *Tree) UnlockedSkills() []catalog.SkillID {
	ids := make([]catalog.SkillID, 0, len(t.unlocked))
	for id := range t.unlocked {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// HasStartedBranch reports whether at least one skill from the branch has
// been unlocked.
func (t *Tree) HasStartedBranch(b catalog.Branch) bool {
	return t.active[b]
}

// ActiveBranches returns the started branches in a stable order.
func (t *Tree) ActiveBranches() []catalog.Branch {
	var result []catalog.Branch
	for _, b := range catalog.AllBranches() {
		if t.active[b] {
			result = append(result, b)
		}
	}
	return result
}

// IsBranchAvailable reports whether a branch can receive a new unlock: the
// branch is already this tree's active branch for its category, or no branch
// in that category is active yet. Foundation branches are never mutually
// exclusive, so for them only the "already started" shortcut matters and the
// category scan always passes. The None branch is never available.
func (t *Tree) IsBranchAvailable(b catalog.Branch) bool {
	if b == catalog.BranchNone {
		return false
	}
	cat, err := catalog.CategoryOf(b)
	if err != nil {
		return false
	}
	if t.active[b] {
		return true
	}
	if cat == catalog.CategoryFoundation {
		return true
	}
	for _, other := range catalog.BranchesInCategory(cat) {
		if t.active[other] {
			return false
		}
	}
	return true
}

// CanUnlockSkill evaluates every unlock constraint without mutating state.
// It returns false — never an error — for any disqualifying condition,
// including the None sentinel and skills absent from the catalog.
func (t *Tree) CanUnlockSkill(id catalog.SkillID) bool {
	if id.IsNone() {
		return false
	}
	if t.unlocked[id] {
		return false
	}
	def, err := catalog.GetDefinition(id)
	if err != nil {
		return false
	}
	if t.reputation < def.Cost {
		return false
	}
	if t.grade < def.MinGrade {
		return false
	}
	for _, p := range def.Prerequisites {
		if !t.unlocked[p] {
			return false
		}
	}
	return t.IsBranchAvailable(id.Branch)
}

// UnlockSkill attempts to unlock a skill. If any constraint fails it returns
// false with no state change. On success it deducts the cost, records the
// unlock, marks the branch active, advances the command grade by one step
// when the skill is a promotion, and appends the corresponding events. The
// mutation is all-or-nothing.
func (t *Tree) UnlockSkill(id catalog.SkillID) bool {
	if !t.CanUnlockSkill(id) {
		return false
	}
	def, err := catalog.GetDefinition(id)
	if err != nil {
		// CanUnlockSkill already consulted the catalog.
		panic(fmt.Sprintf("skilltree: catalog lost definition for %q: %v", id, err))
	}

	t.reputation -= def.Cost
	t.unlocked[id] = true
	t.active[id.Branch] = true

	if def.IsPromotion && t.grade < catalog.GradeTop {
		from := t.grade
		t.grade++
		t.pending = append(t.pending, Event{
			Kind:      EventGradeChanged,
			Skill:     id,
			FromGrade: from,
			ToGrade:   t.grade,
		})
	}

	t.pending = append(t.pending, Event{Kind: EventSkillUnlocked, Skill: id})
	return true
}

// GetBonusValue sums the bonus magnitude of every unlocked skill granting
// the given bonus type. Returns 0 when nothing matches.
func (t *Tree) GetBonusValue(bonus catalog.BonusType) float64 {
	var total float64
	for id := range t.unlocked {
		def := t.mustDefinition(id)
		if def.Bonus == bonus {
			total += def.BonusValue
		}
	}
	return total
}

// HasCapability reports whether at least one unlocked skill grants the given
// bonus type.
func (t *Tree) HasCapability(bonus catalog.BonusType) bool {
	for id := range t.unlocked {
		if t.mustDefinition(id).Bonus == bonus {
			return true
		}
	}
	return false
}

// ResetSkills is the respec operation: it refunds the cost of every unlocked
// skill outside Foundation branches, clears those skills and their branches'
// active flags, and recomputes the command grade from the remaining unlocks.
// Returns false when nothing is resettable, which is a no-op, not an error.
func (t *Tree) ResetSkills() bool {
	var cleared []catalog.SkillID
	refund := 0
	for id := range t.unlocked {
		def := t.mustDefinition(id)
		cat, err := catalog.CategoryOf(id.Branch)
		if err != nil {
			panic(fmt.Sprintf("skilltree: unlocked skill %q has unclassifiable branch: %v", id, err))
		}
		if cat == catalog.CategoryFoundation {
			continue
		}
		cleared = append(cleared, id)
		refund += def.Cost
	}
	if len(cleared) == 0 {
		return false
	}

	for _, id := range cleared {
		delete(t.unlocked, id)
		delete(t.active, id.Branch)
	}
	t.reputation += refund
	t.grade = t.recomputeGrade()

	t.pending = append(t.pending, Event{Kind: EventSkillsReset, Refund: refund})
	return true
}

// recomputeGrade derives the grade from the promotion skills still unlocked.
// Promotions advance one step each, so the grade is simply their count.
func (t *Tree) recomputeGrade() catalog.Grade {
	grade := catalog.GradeJunior
	for id := range t.unlocked {
		if t.mustDefinition(id).IsPromotion && grade < catalog.GradeTop {
			grade++
		}
	}
	return grade
}

// DrainEvents returns the accumulated change events and clears the buffer.
func (t *Tree) DrainEvents() []Event {
	events := t.pending
	t.pending = nil
	return events
}

// mustDefinition resolves a definition for a skill the tree already holds.
// A miss means the unlocked set and the catalog disagree — an enum/catalog
// registration mismatch the engine cannot safely continue from.
func (t *Tree) mustDefinition(id catalog.SkillID) catalog.SkillDefinition {
	def, err := catalog.GetDefinition(id)
	if err != nil {
		panic(fmt.Sprintf("skilltree: unlocked skill missing from catalog: %v", err))
	}
	return def
}
