package models

import "testing"

func TestGroupNameForRole(t *testing.T) {
	tests := []struct {
		role RoleType
		want string
	}{
		{RoleSuper, GroupSuper},
		{RoleStudent, GroupStudent},
		{RoleInstructor, GroupInstructor},
		{RoleType("staff"), GroupInstructor},
		{RoleType(""), GroupInstructor},
	}

	for _, tt := range tests {
		if got := GroupNameForRole(tt.role); got != tt.want {
			t.Errorf("GroupNameForRole(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jane@University.EDU", "jane@university.edu"},
		{"  jane@university.edu  ", "jane@university.edu"},
		{"Jane.Doe@UNIVERSITY.EDU", "Jane.Doe@university.edu"}, // local part case preserved
		{"no-at-sign", "no-at-sign"},
		{"", ""},
		{"a@b@University.EDU", "a@b@university.edu"}, // domain is after the last @
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTermIsValid(t *testing.T) {
	if !TermMid.IsValid() || !TermEnd.IsValid() {
		t.Fatalf("known terms must be valid")
	}
	if Term("finals").IsValid() || Term("").IsValid() {
		t.Fatalf("unknown terms must be invalid")
	}
}

func TestContributionKindIsValid(t *testing.T) {
	for _, kind := range []ContributionKind{ContributionPaper, ContributionMaterial, ContributionAnnouncement, ContributionFeedback} {
		if !kind.IsValid() {
			t.Errorf("%s must be valid", kind)
		}
	}
	if ContributionKind("upvote").IsValid() {
		t.Fatalf("unknown kind must be invalid")
	}
}
