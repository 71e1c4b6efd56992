package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"jane@university.edu",
		"jane.doe+tag@sub.university.edu",
		"a_b-c%d@x-y.co",
	}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "plain", "a@b", "@university.edu", "jane@.edu", "jane doe@university.edu"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidRegistrationNo(t *testing.T) {
	if !IsValidRegistrationNo("19BCS042") || !IsValidRegistrationNo("2020/CS-17") {
		t.Fatalf("expected registration numbers to be accepted")
	}
	if IsValidRegistrationNo("") || IsValidRegistrationNo("this-number-is-way-too-long-to-fit") {
		t.Fatalf("expected registration numbers to be rejected")
	}
}

func TestIsValidSemester(t *testing.T) {
	for semester := 1; semester <= 8; semester++ {
		if !IsValidSemester(semester, 1, 8) {
			t.Errorf("semester %d should be valid", semester)
		}
	}
	for _, semester := range []int{0, 9, -3} {
		if IsValidSemester(semester, 1, 8) {
			t.Errorf("semester %d should be invalid", semester)
		}
	}
}
