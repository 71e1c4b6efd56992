package services

import (
	"context"
	"errors"
	"testing"

	"github.com/oyasar/assist/internal/app/models"
	"github.com/oyasar/assist/internal/pkg/apperrors"
)

func newCatalogFixture() (*CourseService, *DepartmentService, *fakeCourseStore, *fakeDepartmentStore) {
	departments := newFakeDepartmentStore(&models.Department{ID: 1, Name: "Computer Science & Engineering", Acronym: "CSE"})
	courses := newFakeCourseStore()
	return NewCourseService(courses, departments), NewDepartmentService(departments), courses, departments
}

func TestCreateCourse(t *testing.T) {
	courseService, _, _, _ := newCatalogFixture()

	course, err := courseService.Create(context.Background(), 1, "Operating Systems", "cs330")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if course.Code != "CS330" {
		t.Fatalf("code = %q, want upper-cased CS330", course.Code)
	}
	if course.ID == 0 {
		t.Fatalf("course ID not assigned")
	}
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	courseService, _, _, _ := newCatalogFixture()

	if _, err := courseService.Create(context.Background(), 1, "Operating Systems", "CS330"); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := courseService.Create(context.Background(), 1, "Other Course", "CS330")
	if !errors.Is(err, apperrors.ErrCourseCodeExists) {
		t.Fatalf("err = %v, want ErrCourseCodeExists", err)
	}
}

func TestCreateCourseMissingDepartment(t *testing.T) {
	courseService, _, _, _ := newCatalogFixture()

	_, err := courseService.Create(context.Background(), 99, "Operating Systems", "CS330")
	if !errors.Is(err, apperrors.ErrReferenceNotFound) {
		t.Fatalf("err = %v, want a reference error", err)
	}
}

func TestCreateCourseValidation(t *testing.T) {
	courseService, _, _, _ := newCatalogFixture()

	if _, err := courseService.Create(context.Background(), 1, "", "CS330"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("empty name: err = %v, want validation error", err)
	}
	if _, err := courseService.Create(context.Background(), 1, "Operating Systems", "  "); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("blank code: err = %v, want validation error", err)
	}
}

func TestAllotCourse(t *testing.T) {
	courseService, _, _, _ := newCatalogFixture()

	course, err := courseService.Create(context.Background(), 1, "Operating Systems", "CS330")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	allotment, err := courseService.Allot(context.Background(), course.ID, 5)
	if err != nil {
		t.Fatalf("Allot: %v", err)
	}
	if allotment.Semester != 5 || allotment.CourseID != course.ID {
		t.Fatalf("allotment = %+v", allotment)
	}

	// A course holds at most one allotment
	if _, err := courseService.Allot(context.Background(), course.ID, 6); !errors.Is(err, apperrors.ErrAllotmentExists) {
		t.Fatalf("second Allot: err = %v, want ErrAllotmentExists", err)
	}
}

func TestAllotSemesterBounds(t *testing.T) {
	courseService, _, _, _ := newCatalogFixture()

	course, err := courseService.Create(context.Background(), 1, "Operating Systems", "CS330")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, semester := range []int{0, 9} {
		if _, err := courseService.Allot(context.Background(), course.ID, semester); !errors.Is(err, apperrors.ErrInvalidSemester) {
			t.Fatalf("semester %d: err = %v, want ErrInvalidSemester", semester, err)
		}
	}

	for _, semester := range []int{models.SemesterMin, models.SemesterMax} {
		courses := newFakeCourseStore(&models.Course{ID: 10, DepartmentID: 1, Name: "X", Code: "X100"})
		departments := newFakeDepartmentStore(&models.Department{ID: 1})
		svc := NewCourseService(courses, departments)
		if _, err := svc.Allot(context.Background(), 10, semester); err != nil {
			t.Fatalf("semester %d should be allowed: %v", semester, err)
		}
	}
}

func TestAllotMissingCourse(t *testing.T) {
	courseService, _, _, _ := newCatalogFixture()

	_, err := courseService.Allot(context.Background(), 42, 3)
	if !errors.Is(err, apperrors.ErrReferenceNotFound) {
		t.Fatalf("err = %v, want a reference error", err)
	}
}

func TestListCoursesByDepartment(t *testing.T) {
	courseService, _, _, departments := newCatalogFixture()

	other := &models.Department{Name: "Mechanical Engineering", Acronym: "ME"}
	if err := departments.Create(context.Background(), other); err != nil {
		t.Fatalf("create department: %v", err)
	}

	if _, err := courseService.Create(context.Background(), 1, "Operating Systems", "CS330"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := courseService.Create(context.Background(), other.ID, "Thermodynamics", "ME210"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	deptID := int64(1)
	courses, err := courseService.List(context.Background(), &deptID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(courses) != 1 || courses[0].Code != "CS330" {
		t.Fatalf("filtered list = %+v", courses)
	}

	all, err := courseService.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered list has %d courses, want 2", len(all))
	}
}

func TestCreateDepartmentValidation(t *testing.T) {
	_, departmentService, _, _ := newCatalogFixture()

	if _, err := departmentService.Create(context.Background(), "", "CSE"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("empty name: err = %v, want validation error", err)
	}
	if _, err := departmentService.Create(context.Background(), "Physics", ""); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("empty acronym: err = %v, want validation error", err)
	}

	department, err := departmentService.Create(context.Background(), " Physics ", "phy")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if department.Name != "Physics" || department.Acronym != "PHY" {
		t.Fatalf("department = %+v", department)
	}
}

func TestDeleteDepartmentWithCourses(t *testing.T) {
	_, departmentService, _, departments := newCatalogFixture()

	departments.deleteErr = apperrors.ErrDepartmentHasRelations

	err := departmentService.Delete(context.Background(), 1)
	if !errors.Is(err, apperrors.ErrDepartmentHasRelations) {
		t.Fatalf("err = %v, want ErrDepartmentHasRelations", err)
	}
}
