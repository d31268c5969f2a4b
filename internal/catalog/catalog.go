// Package catalog holds the static skill registry: every skill's immutable
// definition plus the branch → category classification. The registry is
// populated once at init and never mutated, so unsynchronized concurrent
// reads are safe.
package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// registry holds the catalog with precomputed indices.
type registry struct {
	defs     []SkillDefinition
	byID     map[SkillID]*SkillDefinition
	byBranch map[Branch][]SkillDefinition
}

// reg is the package-level registry singleton, set by init() in seed.go.
var reg *registry

// buildRegistry constructs the registry and its indices from a definition set.
func buildRegistry(defs []SkillDefinition) *registry {
	r := &registry{
		defs:     defs,
		byID:     make(map[SkillID]*SkillDefinition, len(defs)),
		byBranch: make(map[Branch][]SkillDefinition),
	}
	for i := range r.defs {
		r.byID[r.defs[i].ID] = &r.defs[i]
	}

	branchGroups := make(map[Branch][]SkillDefinition)
	for i := range r.defs {
		d := r.defs[i]
		branchGroups[d.ID.Branch] = append(branchGroups[d.ID.Branch], d)
	}
	for branch, defs := range branchGroups {
		sorted := make([]SkillDefinition, len(defs))
		copy(sorted, defs)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Tier != sorted[j].Tier {
				return sorted[i].Tier < sorted[j].Tier
			}
			return sorted[i].ID.Code < sorted[j].ID.Code
		})
		r.byBranch[branch] = sorted
	}
	return r
}

// GetDefinition returns a skill's definition, or an error if the skill has no
// catalog entry. A missing entry for a real skill value signals a
// registration bug, not a user error.
func GetDefinition(id SkillID) (SkillDefinition, error) {
	d, ok := reg.byID[id]
	if !ok {
		return SkillDefinition{}, fmt.Errorf("skill not in catalog: %q", id)
	}
	return *d, nil
}

// AllSkills returns every skill ID in the catalog.
func AllSkills() []SkillID {
	ids := make([]SkillID, len(reg.defs))
	for i := range reg.defs {
		ids[i] = reg.defs[i].ID
	}
	return ids
}

// AllDefinitions returns every definition in the catalog.
func AllDefinitions() []SkillDefinition {
	return slices.Clone(reg.defs)
}

// ByBranch returns a branch's definitions ordered by tier.
func ByBranch(b Branch) []SkillDefinition {
	return slices.Clone(reg.byBranch[b])
}

// Validate checks the catalog and branch tables for structural issues.
func Validate() error {
	if err := ValidateBranches(); err != nil {
		return err
	}
	return validateDefinitions(reg.defs)
}
