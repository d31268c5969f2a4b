package leader

import (
	"fmt"
	"math"
)

// ActionKind identifies a reputation-earning gameplay action.
type ActionKind string

const (
	ActionMove          ActionKind = "move"
	ActionMountDismount ActionKind = "mount-dismount"
	ActionIntelGather   ActionKind = "intel-gather"
	ActionCombat        ActionKind = "combat"
	ActionAirborneJump  ActionKind = "airborne-jump"
	ActionForcedRetreat ActionKind = "forced-retreat"
	ActionUnitDestroyed ActionKind = "unit-destroyed"
)

// AllActions returns the action kinds in display order.
func AllActions() []ActionKind {
	return []ActionKind{
		ActionMove,
		ActionMountDismount,
		ActionIntelGather,
		ActionCombat,
		ActionAirborneJump,
		ActionForcedRetreat,
		ActionUnitDestroyed,
	}
}

// actionBaseReputation is the fixed per-action award table. One immutable
// table, shared by reference, never mutated after init.
var actionBaseReputation = map[ActionKind]int{
	ActionMove:          1,
	ActionMountDismount: 1,
	ActionIntelGather:   2,
	ActionCombat:        5,
	ActionAirborneJump:  3,
	ActionForcedRetreat: 4,
	ActionUnitDestroyed: 10,
}

// BaseReputation returns the base award for an action kind.
func BaseReputation(kind ActionKind) (int, error) {
	base, ok := actionBaseReputation[kind]
	if !ok {
		return 0, fmt.Errorf("unrecognized action kind: %q", kind)
	}
	return base, nil
}

// ParseActionKind converts a raw string to an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	if _, ok := actionBaseReputation[ActionKind(s)]; !ok {
		return "", fmt.Errorf("unrecognized action kind: %q", s)
	}
	return ActionKind(s), nil
}

// AwardReputationForAction looks up the action's base amount, scales it by
// the multiplier, rounds, and forwards the result to the tree. A multiplier
// that produces a non-positive amount awards nothing. Returns the amount
// actually awarded.
func (l *Leader) AwardReputationForAction(kind ActionKind, multiplier float64) (int, error) {
	base, err := BaseReputation(kind)
	if err != nil {
		return 0, err
	}
	amount := int(math.Round(float64(base) * multiplier))
	if amount <= 0 {
		return 0, nil
	}
	l.tree.AddReputation(amount)
	return amount, nil
}
