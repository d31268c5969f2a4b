package skilltree

import (
	"fmt"

	"github.com/swatter555/leadercorps/internal/catalog"
)

// SnapshotData is the flat, serializable representation of a tree. It is the
// only shape the persistence collaborator needs: round-tripping it through
// FromSnapshot reconstructs the tree exactly.
type SnapshotData struct {
	Reputation     int      `json:"reputation"`
	Unlocked       []string `json:"unlocked"`
	ActiveBranches []string `json:"active_branches"`
	Grade          string   `json:"grade"`
}

// Snapshot exports the tree's state. Slices are emitted in a stable order so
// snapshots of equal trees compare equal.
func (t *Tree) Snapshot() SnapshotData {
	data := SnapshotData{
		Reputation: t.reputation,
		Grade:      t.grade.Key(),
	}
	for _, id := range t.UnlockedSkills() {
		data.Unlocked = append(data.Unlocked, id.String())
	}
	for _, b := range t.ActiveBranches() {
		data.ActiveBranches = append(data.ActiveBranches, string(b))
	}
	return data
}

// FromSnapshot reconstructs a tree from exported state. Skill IDs absent
// from the catalog and unclassifiable branches are registration mismatches
// between the save and the build, surfaced as errors rather than dropped.
func FromSnapshot(data SnapshotData) (*Tree, error) {
	t := New(data.Reputation)

	for _, raw := range data.Unlocked {
		id, err := catalog.ParseSkillID(raw)
		if err != nil {
			return nil, fmt.Errorf("snapshot unlocked skill: %w", err)
		}
		if _, err := catalog.GetDefinition(id); err != nil {
			return nil, fmt.Errorf("snapshot references %w", err)
		}
		t.unlocked[id] = true
	}

	for _, raw := range data.ActiveBranches {
		b := catalog.Branch(raw)
		if _, err := catalog.CategoryOf(b); err != nil || b == catalog.BranchNone {
			return nil, fmt.Errorf("snapshot active branch: unrecognized branch %q", raw)
		}
		t.active[b] = true
	}

	grade, err := catalog.ParseGrade(data.Grade)
	if err != nil {
		return nil, fmt.Errorf("snapshot grade: %w", err)
	}
	t.grade = grade

	return t, nil
}
