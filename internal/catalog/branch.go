package catalog

import "fmt"

// Branch identifies a skill branch.
type Branch string

const (
	// BranchNone is the sentinel for "no branch selected". It classifies as
	// Foundation by convention but is never a real, unlockable branch.
	BranchNone Branch = ""

	BranchLeadershipFoundation           Branch = "leadership-foundation"
	BranchPoliticallyConnected           Branch = "politically-connected-foundation"
	BranchArmoredDoctrine                Branch = "armored-doctrine"
	BranchInfantryDoctrine               Branch = "infantry-doctrine"
	BranchArtilleryDoctrine              Branch = "artillery-doctrine"
	BranchAirDefenseDoctrine             Branch = "air-defense-doctrine"
	BranchAirborneDoctrine               Branch = "airborne-doctrine"
	BranchAirMobileDoctrine              Branch = "air-mobile-doctrine"
	BranchIntelligenceDoctrine           Branch = "intelligence-doctrine"
	BranchCombinedArmsSpecialization     Branch = "combined-arms-specialization"
	BranchEngineeringSpecialization      Branch = "engineering-specialization"
	BranchSpecialForcesSpecialization    Branch = "special-forces-specialization"
	BranchPoliticalOfficerSpecialization Branch = "political-officer-specialization"
)

// Category partitions branches by their exclusivity rules.
type Category string

const (
	CategoryFoundation     Category = "foundation"
	CategoryDoctrine       Category = "doctrine"
	CategorySpecialization Category = "specialization"
)

// AllCategories returns the three categories in display order.
func AllCategories() []Category {
	return []Category{CategoryFoundation, CategoryDoctrine, CategorySpecialization}
}

// branchCategories is the single authoritative branch → category table.
var branchCategories = map[Branch]Category{
	BranchLeadershipFoundation:           CategoryFoundation,
	BranchPoliticallyConnected:           CategoryFoundation,
	BranchArmoredDoctrine:                CategoryDoctrine,
	BranchInfantryDoctrine:               CategoryDoctrine,
	BranchArtilleryDoctrine:              CategoryDoctrine,
	BranchAirDefenseDoctrine:             CategoryDoctrine,
	BranchAirborneDoctrine:               CategoryDoctrine,
	BranchAirMobileDoctrine:              CategoryDoctrine,
	BranchIntelligenceDoctrine:           CategoryDoctrine,
	BranchCombinedArmsSpecialization:     CategorySpecialization,
	BranchEngineeringSpecialization:      CategorySpecialization,
	BranchSpecialForcesSpecialization:    CategorySpecialization,
	BranchPoliticalOfficerSpecialization: CategorySpecialization,
}

// AllBranches returns all real branches (excluding BranchNone) in display order.
func AllBranches() []Branch {
	return []Branch{
		BranchLeadershipFoundation,
		BranchPoliticallyConnected,
		BranchArmoredDoctrine,
		BranchInfantryDoctrine,
		BranchArtilleryDoctrine,
		BranchAirDefenseDoctrine,
		BranchAirborneDoctrine,
		BranchAirMobileDoctrine,
		BranchIntelligenceDoctrine,
		BranchCombinedArmsSpecialization,
		BranchEngineeringSpecialization,
		BranchSpecialForcesSpecialization,
		BranchPoliticalOfficerSpecialization,
	}
}

// CategoryOf returns the category for a branch. BranchNone classifies as
// Foundation by convention. Any other unrecognized value is an error, never
// a silent default.
func CategoryOf(b Branch) (Category, error) {
	if b == BranchNone {
		return CategoryFoundation, nil
	}
	c, ok := branchCategories[b]
	if !ok {
		return "", fmt.Errorf("unrecognized branch: %q", b)
	}
	return c, nil
}

// BranchesInCategory returns all branches belonging to a category,
// in AllBranches display order.
func BranchesInCategory(cat Category) []Branch {
	var result []Branch
	for _, b := range AllBranches() {
		if branchCategories[b] == cat {
			result = append(result, b)
		}
	}
	return result
}

// BranchDisplayName returns a human-readable name for a branch.
func BranchDisplayName(b Branch) string {
	switch b {
	case BranchLeadershipFoundation:
		return "Leadership"
	case BranchPoliticallyConnected:
		return "Politically Connected"
	case BranchArmoredDoctrine:
		return "Armored Doctrine"
	case BranchInfantryDoctrine:
		return "Infantry Doctrine"
	case BranchArtilleryDoctrine:
		return "Artillery Doctrine"
	case BranchAirDefenseDoctrine:
		return "Air Defense Doctrine"
	case BranchAirborneDoctrine:
		return "Airborne Doctrine"
	case BranchAirMobileDoctrine:
		return "Air Mobile Doctrine"
	case BranchIntelligenceDoctrine:
		return "Intelligence Doctrine"
	case BranchCombinedArmsSpecialization:
		return "Combined Arms"
	case BranchEngineeringSpecialization:
		return "Engineering"
	case BranchSpecialForcesSpecialization:
		return "Special Forces"
	case BranchPoliticalOfficerSpecialization:
		return "Political Officer"
	default:
		return string(b)
	}
}

// ValidateBranches checks that the category table is well-formed: every
// declared branch has exactly one category, the three category sets are
// pairwise disjoint, and their union covers the full branch enumeration.
func ValidateBranches() error {
	seen := make(map[Branch]Category)
	for _, cat := range AllCategories() {
		for _, b := range BranchesInCategory(cat) {
			if prev, ok := seen[b]; ok {
				return fmt.Errorf("branch %q appears in both %q and %q", b, prev, cat)
			}
			seen[b] = cat
		}
	}
	for _, b := range AllBranches() {
		if _, ok := seen[b]; !ok {
			return fmt.Errorf("branch %q has no category", b)
		}
	}
	if len(seen) != len(AllBranches()) {
		return fmt.Errorf("category table has %d branches, enumeration has %d", len(seen), len(AllBranches()))
	}
	return nil
}
