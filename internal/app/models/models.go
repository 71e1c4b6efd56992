package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "student"
	RoleInstructor RoleType = "instructor"
	RoleSuper      RoleType = "super"
)

// Role-to-group mapping. Groups are pre-provisioned; account provisioning
// only attaches users to them.
const (
	GroupSuper      = "super_group"
	GroupStudent    = "student_group"
	GroupInstructor = "instructor_group"
)

// GroupNameForRole returns the permission group a role maps to.
// Any role other than super or student falls back to the instructor group.
func GroupNameForRole(role RoleType) string {
	switch role {
	case RoleSuper:
		return GroupSuper
	case RoleStudent:
		return GroupStudent
	default:
		return GroupInstructor
	}
}

// Term represents an exam paper term
type Term string

const (
	TermMid Term = "mid-term"
	TermEnd Term = "end-term"
)

// IsValid reports whether the term is one of the known values.
func (t Term) IsValid() bool {
	return t == TermMid || t == TermEnd
}

// ContributionKind identifies which ledger counter a contribution belongs to
type ContributionKind string

const (
	ContributionPaper        ContributionKind = "paper"
	ContributionMaterial     ContributionKind = "material"
	ContributionAnnouncement ContributionKind = "announcement"
	ContributionFeedback     ContributionKind = "feedback"
)

// IsValid reports whether the contribution kind is known.
func (k ContributionKind) IsValid() bool {
	switch k {
	case ContributionPaper, ContributionMaterial, ContributionAnnouncement, ContributionFeedback:
		return true
	}
	return false
}

// Semester bounds shared by student profiles and course allotments
const (
	SemesterMin = 1
	SemesterMax = 8
)
