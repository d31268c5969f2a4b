package skilltree

import "github.com/swatter555/leadercorps/internal/catalog"

// EventKind identifies the category of a tree change event.
type EventKind string

const (
	EventSkillUnlocked EventKind = "skill-unlocked"
	EventGradeChanged  EventKind = "grade-changed"
	EventSkillsReset   EventKind = "skills-reset"
)

// Event records a single tree state change for display and event logging.
// Mutations append events to the tree's buffer; the owning leader drains
// them after each action resolves.
type Event struct {
	Kind  EventKind
	Skill catalog.SkillID // skill-unlocked, grade-changed (the promotion skill)

	// grade-changed only
	FromGrade catalog.Grade
	ToGrade   catalog.Grade

	// skills-reset only
	Refund int
}
