package skilltree

import (
	"reflect"
	"testing"

	"github.com/swatter555/leadercorps/internal/catalog"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	tree := New(1000)
	for _, id := range []catalog.SkillID{
		juniorOfficerTraining,
		seniorOfficerSchool,
		shockTankCorps,
	} {
		if !tree.UnlockSkill(id) {
			t.Fatalf("unlock %v should succeed", id)
		}
	}

	data := tree.Snapshot()
	restored, err := FromSnapshot(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if restored.Reputation() != tree.Reputation() {
		t.Errorf("reputation: got %d, want %d", restored.Reputation(), tree.Reputation())
	}
	if restored.Grade() != tree.Grade() {
		t.Errorf("grade: got %v, want %v", restored.Grade(), tree.Grade())
	}
	if !reflect.DeepEqual(restored.UnlockedSkills(), tree.UnlockedSkills()) {
		t.Errorf("unlocked: got %v, want %v", restored.UnlockedSkills(), tree.UnlockedSkills())
	}
	if !reflect.DeepEqual(restored.ActiveBranches(), tree.ActiveBranches()) {
		t.Errorf("active branches: got %v, want %v", restored.ActiveBranches(), tree.ActiveBranches())
	}

	// The restored tree keeps enforcing exclusivity.
	if restored.IsBranchAvailable(catalog.BranchInfantryDoctrine) {
		t.Error("doctrine exclusivity lost across the round trip")
	}
}

func TestSnapshot_FreshTree(t *testing.T) {
	data := New(0).Snapshot()
	restored, err := FromSnapshot(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restored.Reputation() != 0 || restored.Grade() != catalog.GradeJunior {
		t.Errorf("got reputation %d grade %v", restored.Reputation(), restored.Grade())
	}
}

func TestSnapshot_DeterministicOrder(t *testing.T) {
	build := func() SnapshotData {
		tree := New(1000)
		tree.UnlockSkill(partyMembership)
		tree.UnlockSkill(juniorOfficerTraining)
		tree.UnlockSkill(shockTankCorps)
		return tree.Snapshot()
	}
	if !reflect.DeepEqual(build(), build()) {
		t.Error("snapshots of equal trees must compare equal")
	}
}

func TestFromSnapshot_Errors(t *testing.T) {
	tests := []struct {
		name string
		data SnapshotData
	}{
		{
			name: "malformed skill ID",
			data: SnapshotData{Unlocked: []string{"not-an-id"}, Grade: "junior"},
		},
		{
			name: "skill missing from catalog",
			data: SnapshotData{Unlocked: []string{"armored-doctrine/ghost-skill"}, Grade: "junior"},
		},
		{
			name: "unrecognized branch",
			data: SnapshotData{ActiveBranches: []string{"naval-doctrine"}, Grade: "junior"},
		},
		{
			name: "unrecognized grade",
			data: SnapshotData{Grade: "field-marshal"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromSnapshot(tt.data); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
