package catalog

import (
	"fmt"
	"strings"
)

// SkillID identifies a skill as a branch tag plus a branch-local code.
// The struct is comparable and is used directly as a map key.
type SkillID struct {
	Branch Branch
	Code   string
}

// SkillNone is the sentinel for "no skill selected".
var SkillNone = SkillID{}

// IsNone reports whether the ID is the no-selection sentinel.
func (id SkillID) IsNone() bool {
	return id.Branch == BranchNone && id.Code == ""
}

// String renders the ID as "branch/code".
func (id SkillID) String() string {
	return string(id.Branch) + "/" + id.Code
}

// ParseSkillID parses a "branch/code" string produced by SkillID.String.
func ParseSkillID(s string) (SkillID, error) {
	branch, code, ok := strings.Cut(s, "/")
	if !ok || branch == "" || code == "" {
		return SkillID{}, fmt.Errorf("malformed skill ID: %q", s)
	}
	return SkillID{Branch: Branch(branch), Code: code}, nil
}

// Grade is a leader's command rank tier. Grades only ever increase,
// one step at a time, except through a full skill reset.
type Grade int

const (
	GradeJunior Grade = iota
	GradeSenior
	GradeTop
)

// String returns the display label for a grade.
func (g Grade) String() string {
	switch g {
	case GradeJunior:
		return "Junior Grade"
	case GradeSenior:
		return "Senior Grade"
	case GradeTop:
		return "Top Grade"
	default:
		return fmt.Sprintf("Grade(%d)", int(g))
	}
}

// ParseGrade converts a stored grade label back to a Grade.
func ParseGrade(s string) (Grade, error) {
	switch s {
	case "junior":
		return GradeJunior, nil
	case "senior":
		return GradeSenior, nil
	case "top":
		return GradeTop, nil
	}
	return 0, fmt.Errorf("unrecognized grade: %q", s)
}

// Key returns the stable storage key for a grade.
func (g Grade) Key() string {
	switch g {
	case GradeSenior:
		return "senior"
	case GradeTop:
		return "top"
	default:
		return "junior"
	}
}

// BonusType tags the combat or game statistic a skill modifies. The engine
// exposes magnitudes only; interpretation belongs to combat resolution.
type BonusType string

const (
	BonusCommandRange        BonusType = "command-range"
	BonusHardAttack          BonusType = "hard-attack"
	BonusSoftAttack          BonusType = "soft-attack"
	BonusHardDefense         BonusType = "hard-defense"
	BonusSoftDefense         BonusType = "soft-defense"
	BonusSpottingRange       BonusType = "spotting-range"
	BonusMovementRate        BonusType = "movement-rate"
	BonusSupplyEconomy       BonusType = "supply-economy"
	BonusReplacementRate     BonusType = "replacement-rate"
	BonusMoraleRecovery      BonusType = "morale-recovery"
	BonusRequisitionDiscount BonusType = "requisition-discount"
	BonusAirDefense          BonusType = "air-defense"
	BonusConcealment         BonusType = "concealment"

	// Capability bonuses carry magnitude 1; presence is what matters.
	BonusAirborneAssault  BonusType = "airborne-assault"
	BonusAirMobileAssault BonusType = "air-mobile-assault"
	BonusNightOperations  BonusType = "night-operations"
	BonusSignalDecryption BonusType = "signal-decryption"
	BonusRiverCrossing    BonusType = "river-crossing"
	BonusInfiltration     BonusType = "infiltration"
)

// Tier reputation costs. One immutable table, shared by reference; promotion
// skills use the same schedule as everything else in their tier.
var tierCosts = map[int]int{
	1: 60,
	2: 100,
	3: 150,
	4: 220,
	5: 300,
}

// TierCost returns the reputation cost for a skill tier (1-5).
func TierCost(tier int) (int, error) {
	c, ok := tierCosts[tier]
	if !ok {
		return 0, fmt.Errorf("no cost defined for tier %d", tier)
	}
	return c, nil
}

// MaxSkillCost bounds the sane range for any catalog entry's cost.
const MaxSkillCost = 500

// SkillDefinition is the immutable static record for one skill.
type SkillDefinition struct {
	ID            SkillID
	Name          string
	Tier          int
	Cost          int
	Prerequisites []SkillID
	MinGrade      Grade
	Bonus         BonusType
	BonusValue    float64
	// IsPromotion marks the designated grade-promotion skills; unlocking one
	// advances the owning tree's command grade by exactly one step.
	IsPromotion bool
}
