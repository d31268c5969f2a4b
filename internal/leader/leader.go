// Package leader owns the consumer side of the progression engine: a Leader
// holds exactly one skill tree, forwards reputation awards from gameplay
// systems, and exposes the aggregated bonus surface to combat resolution.
package leader

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/swatter555/leadercorps/internal/catalog"
	"github.com/swatter555/leadercorps/internal/skilltree"
)

// Name length bounds, validated once at construction.
const (
	MinNameLen = 2
	MaxNameLen = 40
)

// CommandAbility is a leader's innate command rating, fixed at creation.
type CommandAbility int

const (
	AbilityPoor CommandAbility = iota
	AbilityBelowAverage
	AbilityAverage
	AbilityGood
	AbilitySuperior
)

// String returns the display label for a command ability.
func (a CommandAbility) String() string {
	switch a {
	case AbilityPoor:
		return "Poor"
	case AbilityBelowAverage:
		return "Below Average"
	case AbilityAverage:
		return "Average"
	case AbilityGood:
		return "Good"
	case AbilitySuperior:
		return "Superior"
	default:
		return fmt.Sprintf("CommandAbility(%d)", int(a))
	}
}

// Leader is a named officer owning one skill tree.
type Leader struct {
	ID      string
	Name    string
	Ability CommandAbility

	tree *skilltree.Tree
}

// New creates a leader with a fresh tree and zero reputation. The name and
// ability are validated here, once; an invalid argument is a construction
// error, never deferred to later calls.
func New(name string, ability CommandAbility) (*Leader, error) {
	if err := validate(name, ability); err != nil {
		return nil, err
	}
	return &Leader{
		ID:      uuid.NewString(),
		Name:    name,
		Ability: ability,
		tree:    skilltree.New(0),
	}, nil
}

func validate(name string, ability CommandAbility) error {
	n := utf8.RuneCountInString(name)
	if n < MinNameLen || n > MaxNameLen {
		return fmt.Errorf("leader name must be %d-%d characters, got %d", MinNameLen, MaxNameLen, n)
	}
	if ability < AbilityPoor || ability > AbilitySuperior {
		return fmt.Errorf("command ability out of range: %d", int(ability))
	}
	return nil
}

// Tree returns the leader's skill tree.
func (l *Leader) Tree() *skilltree.Tree {
	return l.tree
}

// AwardReputation forwards a raw reputation amount to the tree.
// Non-positive amounts are ignored.
func (l *Leader) AwardReputation(amount int) {
	l.tree.AddReputation(amount)
}

// Thin pass-through delegation to the owned tree.

func (l *Leader) Reputation() int                { return l.tree.Reputation() }
func (l *Leader) Grade() catalog.Grade           { return l.tree.Grade() }
func (l *Leader) DrainEvents() []skilltree.Event { return l.tree.DrainEvents() }

func (l *Leader) CanUnlockSkill(id catalog.SkillID) bool  { return l.tree.CanUnlockSkill(id) }
func (l *Leader) UnlockSkill(id catalog.SkillID) bool     { return l.tree.UnlockSkill(id) }
func (l *Leader) IsSkillUnlocked(id catalog.SkillID) bool { return l.tree.IsSkillUnlocked(id) }

func (l *Leader) IsBranchAvailable(b catalog.Branch) bool { return l.tree.IsBranchAvailable(b) }
func (l *Leader) HasStartedBranch(b catalog.Branch) bool  { return l.tree.HasStartedBranch(b) }

func (l *Leader) GetBonusValue(bonus catalog.BonusType) float64 { return l.tree.GetBonusValue(bonus) }
func (l *Leader) HasCapability(bonus catalog.BonusType) bool    { return l.tree.HasCapability(bonus) }

func (l *Leader) ResetSkills() bool { return l.tree.ResetSkills() }

// Record is the leader's flat save shape: identity fields plus the tree
// snapshot. The persistence collaborator stores it opaquely.
type Record struct {
	ID      string                 `json:"id"`
	Name    string                 `json:"name"`
	Ability int                    `json:"ability"`
	Tree    skilltree.SnapshotData `json:"tree"`
}

// Record exports the leader for persistence.
func (l *Leader) Record() Record {
	return Record{
		ID:      l.ID,
		Name:    l.Name,
		Ability: int(l.Ability),
		Tree:    l.tree.Snapshot(),
	}
}

// FromRecord reconstructs a leader from a save record, re-running the same
// validation as New plus the tree snapshot integrity checks.
func FromRecord(rec Record) (*Leader, error) {
	if rec.ID == "" {
		return nil, fmt.Errorf("leader record missing ID")
	}
	ability := CommandAbility(rec.Ability)
	if err := validate(rec.Name, ability); err != nil {
		return nil, fmt.Errorf("leader record %s: %w", rec.ID, err)
	}
	tree, err := skilltree.FromSnapshot(rec.Tree)
	if err != nil {
		return nil, fmt.Errorf("leader record %s: %w", rec.ID, err)
	}
	return &Leader{
		ID:      rec.ID,
		Name:    rec.Name,
		Ability: ability,
		tree:    tree,
	}, nil
}
