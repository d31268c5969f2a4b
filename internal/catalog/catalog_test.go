package catalog

import (
	"testing"
)

func TestGetDefinition_Exists(t *testing.T) {
	id := SkillID{Branch: BranchLeadershipFoundation, Code: "junior-officer-training"}
	d, err := GetDefinition(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "Junior Officer Training" {
		t.Errorf("got name %q, want %q", d.Name, "Junior Officer Training")
	}
	if d.Cost != 60 {
		t.Errorf("got cost %d, want 60", d.Cost)
	}
	if d.MinGrade != GradeJunior {
		t.Errorf("got min grade %v, want %v", d.MinGrade, GradeJunior)
	}
	if len(d.Prerequisites) != 0 {
		t.Errorf("tier-1 root skill should have no prerequisites, got %v", d.Prerequisites)
	}
}

func TestGetDefinition_NotFound(t *testing.T) {
	_, err := GetDefinition(SkillID{Branch: BranchArmoredDoctrine, Code: "nonexistent"})
	if err == nil {
		t.Fatal("expected error for nonexistent skill, got nil")
	}
}

func TestAllSkills_Count(t *testing.T) {
	all := AllSkills()
	if len(all) != 51 {
		t.Errorf("got %d skills, want 51", len(all))
	}
}

func TestByBranch_Counts(t *testing.T) {
	tests := []struct {
		branch Branch
		want   int
	}{
		{BranchLeadershipFoundation, 6},
		{BranchPoliticallyConnected, 5},
		{BranchArmoredDoctrine, 4},
		{BranchInfantryDoctrine, 4},
		{BranchArtilleryDoctrine, 4},
		{BranchAirDefenseDoctrine, 4},
		{BranchAirborneDoctrine, 4},
		{BranchAirMobileDoctrine, 4},
		{BranchIntelligenceDoctrine, 4},
		{BranchCombinedArmsSpecialization, 3},
		{BranchEngineeringSpecialization, 3},
		{BranchSpecialForcesSpecialization, 3},
		{BranchPoliticalOfficerSpecialization, 3},
	}
	for _, tt := range tests {
		defs := ByBranch(tt.branch)
		if len(defs) != tt.want {
			t.Errorf("ByBranch(%q): got %d skills, want %d", tt.branch, len(defs), tt.want)
		}
	}
}

func TestByBranch_SortedByTier(t *testing.T) {
	for _, b := range AllBranches() {
		defs := ByBranch(b)
		for i := 1; i < len(defs); i++ {
			if defs[i].Tier < defs[i-1].Tier {
				t.Errorf("ByBranch(%q): skill %q (tier %d) appears after %q (tier %d)",
					b, defs[i].ID, defs[i].Tier, defs[i-1].ID, defs[i-1].Tier)
			}
		}
	}
}

func TestCategoryCounts(t *testing.T) {
	tests := []struct {
		cat  Category
		want int
	}{
		{CategoryFoundation, 2},
		{CategoryDoctrine, 7},
		{CategorySpecialization, 4},
	}
	for _, tt := range tests {
		branches := BranchesInCategory(tt.cat)
		if len(branches) != tt.want {
			t.Errorf("BranchesInCategory(%q): got %d, want %d", tt.cat, len(branches), tt.want)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		branch Branch
		want   Category
	}{
		{BranchLeadershipFoundation, CategoryFoundation},
		{BranchPoliticallyConnected, CategoryFoundation},
		{BranchArmoredDoctrine, CategoryDoctrine},
		{BranchCombinedArmsSpecialization, CategorySpecialization},
	}
	for _, tt := range tests {
		got, err := CategoryOf(tt.branch)
		if err != nil {
			t.Errorf("CategoryOf(%q): unexpected error: %v", tt.branch, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CategoryOf(%q) = %q, want %q", tt.branch, got, tt.want)
		}
	}
}

func TestCategoryOf_NoneIsFoundationByConvention(t *testing.T) {
	got, err := CategoryOf(BranchNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != CategoryFoundation {
		t.Errorf("got %q, want %q", got, CategoryFoundation)
	}
}

func TestCategoryOf_UnrecognizedErrors(t *testing.T) {
	_, err := CategoryOf(Branch("naval-doctrine"))
	if err == nil {
		t.Fatal("expected error for unrecognized branch, got nil")
	}
}

func TestValidateBranches(t *testing.T) {
	if err := ValidateBranches(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTierCost(t *testing.T) {
	tests := []struct {
		tier int
		want int
	}{
		{1, 60},
		{2, 100},
		{3, 150},
		{4, 220},
		{5, 300},
	}
	for _, tt := range tests {
		got, err := TierCost(tt.tier)
		if err != nil {
			t.Errorf("TierCost(%d): unexpected error: %v", tt.tier, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TierCost(%d) = %d, want %d", tt.tier, got, tt.want)
		}
	}
	if _, err := TierCost(6); err == nil {
		t.Error("expected error for tier 6, got nil")
	}
}

func TestPromotionCosts(t *testing.T) {
	// Promotions follow the tier schedule: Senior at tier 2, Top at tier 4.
	senior, err := GetDefinition(SkillID{Branch: BranchLeadershipFoundation, Code: "senior-officer-school"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if senior.Cost != 100 {
		t.Errorf("Senior promotion cost = %d, want 100", senior.Cost)
	}
	top, err := GetDefinition(SkillID{Branch: BranchLeadershipFoundation, Code: "general-staff-academy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if top.Cost != 220 {
		t.Errorf("Top promotion cost = %d, want 220", top.Cost)
	}
	if !senior.IsPromotion || !top.IsPromotion {
		t.Error("promotion skills must carry the promotion flag")
	}
}

func TestParseSkillID(t *testing.T) {
	id, err := ParseSkillID("armored-doctrine/shock-tank-corps")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.Branch != BranchArmoredDoctrine || id.Code != "shock-tank-corps" {
		t.Errorf("got %v", id)
	}
	if id.String() != "armored-doctrine/shock-tank-corps" {
		t.Errorf("round trip got %q", id.String())
	}

	for _, bad := range []string{"", "no-slash", "/code", "branch/"} {
		if _, err := ParseSkillID(bad); err == nil {
			t.Errorf("ParseSkillID(%q): expected error, got nil", bad)
		}
	}
}

func TestParseGrade(t *testing.T) {
	for _, g := range []Grade{GradeJunior, GradeSenior, GradeTop} {
		got, err := ParseGrade(g.Key())
		if err != nil {
			t.Errorf("ParseGrade(%q): unexpected error: %v", g.Key(), err)
			continue
		}
		if got != g {
			t.Errorf("ParseGrade(%q) = %v, want %v", g.Key(), got, g)
		}
	}
	if _, err := ParseGrade("field-marshal"); err == nil {
		t.Error("expected error for unrecognized grade, got nil")
	}
}
