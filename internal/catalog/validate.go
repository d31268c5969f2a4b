package catalog

import (
	"fmt"
	"strings"
)

// validateDefinitions performs all structural checks on the given definition
// set. Returns a combined error describing all problems found, or nil if valid.
func validateDefinitions(defs []SkillDefinition) error {
	var errs []string

	idSet := make(map[SkillID]bool, len(defs))
	for _, d := range defs {
		if idSet[d.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", d.ID))
		}
		idSet[d.ID] = true

		if _, err := CategoryOf(d.ID.Branch); err != nil || d.ID.Branch == BranchNone {
			errs = append(errs, fmt.Sprintf("skill %q belongs to invalid branch %q", d.ID, d.ID.Branch))
		}
		if d.Cost <= 0 || d.Cost > MaxSkillCost {
			errs = append(errs, fmt.Sprintf("skill %q cost %d outside (0, %d]", d.ID, d.Cost, MaxSkillCost))
		}
		if d.Tier < 1 || d.Tier > 5 {
			errs = append(errs, fmt.Sprintf("skill %q tier %d outside [1, 5]", d.ID, d.Tier))
		}
		if d.BonusValue <= 0 {
			errs = append(errs, fmt.Sprintf("skill %q bonus value must be > 0, got %v", d.ID, d.BonusValue))
		}
		if d.MinGrade < GradeJunior || d.MinGrade > GradeTop {
			errs = append(errs, fmt.Sprintf("skill %q has out-of-range minimum grade %d", d.ID, d.MinGrade))
		}
	}

	// Dangling prerequisites, and the in-branch prerequisite rule: every
	// non-root skill needs at least one prerequisite inside its own branch.
	// Promotion skills are exempt (they may gate cross-branch).
	for _, d := range defs {
		inBranch := len(d.Prerequisites) == 0
		for _, p := range d.Prerequisites {
			if !idSet[p] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", d.ID, p))
			}
			if p.Branch == d.ID.Branch {
				inBranch = true
			}
		}
		if !inBranch && !d.IsPromotion {
			errs = append(errs, fmt.Sprintf("skill %q has no prerequisite within its own branch", d.ID))
		}
	}

	// Cycle check using Kahn's algorithm.
	inDegree := make(map[SkillID]int, len(defs))
	adjList := make(map[SkillID][]SkillID)
	for _, d := range defs {
		inDegree[d.ID] = len(d.Prerequisites)
		for _, p := range d.Prerequisites {
			adjList[p] = append(adjList[p], d.ID)
		}
	}
	var queue []SkillID
	for _, d := range defs {
		if inDegree[d.ID] == 0 {
			queue = append(queue, d.ID)
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adjList[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if visited < len(defs) {
		var cycleNodes []string
		for _, d := range defs {
			if inDegree[d.ID] > 0 {
				cycleNodes = append(cycleNodes, d.ID.String())
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving skills: %s", strings.Join(cycleNodes, ", ")))
	}

	// Exactly one promotion per grade step, each gated on the grade below it.
	promosByGrade := make(map[Grade]int)
	for _, d := range defs {
		if !d.IsPromotion {
			continue
		}
		if cat, err := CategoryOf(d.ID.Branch); err == nil && cat != CategoryFoundation {
			errs = append(errs, fmt.Sprintf("promotion skill %q outside a Foundation branch", d.ID))
		}
		promosByGrade[d.MinGrade]++
	}
	if promosByGrade[GradeJunior] != 1 {
		errs = append(errs, fmt.Sprintf("want exactly 1 Junior→Senior promotion skill, got %d", promosByGrade[GradeJunior]))
	}
	if promosByGrade[GradeSenior] != 1 {
		errs = append(errs, fmt.Sprintf("want exactly 1 Senior→Top promotion skill, got %d", promosByGrade[GradeSenior]))
	}
	if promosByGrade[GradeTop] != 0 {
		errs = append(errs, "promotion skill gated on Top grade has nowhere to promote to")
	}

	// Every real branch must have at least one skill.
	branchSet := make(map[Branch]bool)
	for _, d := range defs {
		branchSet[d.ID.Branch] = true
	}
	for _, b := range AllBranches() {
		if !branchSet[b] {
			errs = append(errs, fmt.Sprintf("branch %q has no skills", b))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
