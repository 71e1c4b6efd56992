package models

// Course defines the course model based on the 'courses' table.
// Code is unique across all courses.
type Course struct {
	ID           int64       `json:"id" db:"id" example:"1"`
	DepartmentID int64       `json:"departmentId" db:"department_id" example:"1"`
	Name         string      `json:"name" db:"name" example:"Algorithms"`
	Code         string      `json:"code" db:"code" example:"CS101"`
	Department   *Department `json:"department,omitempty"` // Relation, no db tag
}

// CourseAllotment binds a course to a semester number. At most one allotment
// exists per course.
type CourseAllotment struct {
	ID       int64 `json:"id" db:"id"`
	CourseID int64 `json:"courseId" db:"course_id"`
	Semester int   `json:"semester" db:"semester"` // 1..8
}
