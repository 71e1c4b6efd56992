package dto

import "github.com/oyasar/assist/internal/app/models"

// CreateDepartmentRequest is the payload for creating a department.
type CreateDepartmentRequest struct {
	Name    string `json:"name" binding:"required" example:"Computer Science & Engineering"`
	Acronym string `json:"acronym" binding:"required" example:"CSE"`
}

// DepartmentResponse is the public shape of a department.
type DepartmentResponse struct {
	ID      int64  `json:"id" example:"1"`
	Name    string `json:"name" example:"Computer Science & Engineering"`
	Acronym string `json:"acronym" example:"CSE"`
}

// CreateCourseRequest is the payload for creating a course.
type CreateCourseRequest struct {
	DepartmentID int64  `json:"departmentId" binding:"required" example:"1"`
	Name         string `json:"name" binding:"required" example:"Operating Systems"`
	Code         string `json:"code" binding:"required" example:"CS330"`
}

// CourseResponse is the public shape of a course.
type CourseResponse struct {
	ID           int64  `json:"id" example:"1"`
	DepartmentID int64  `json:"departmentId" example:"1"`
	Name         string `json:"name" example:"Operating Systems"`
	Code         string `json:"code" example:"CS330"`
}

// AllotCourseRequest is the payload for binding a course to a semester.
type AllotCourseRequest struct {
	Semester int `json:"semester" binding:"required,min=1,max=8" example:"5"`
}

// AllotmentResponse is the public shape of a course allotment.
type AllotmentResponse struct {
	ID       int64 `json:"id" example:"1"`
	CourseID int64 `json:"courseId" example:"1"`
	Semester int   `json:"semester" example:"5"`
}

// ToDepartmentResponse maps a department model to its public shape.
func ToDepartmentResponse(department *models.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:      department.ID,
		Name:    department.Name,
		Acronym: department.Acronym,
	}
}

// ToCourseResponse maps a course model to its public shape.
func ToCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:           course.ID,
		DepartmentID: course.DepartmentID,
		Name:         course.Name,
		Code:         course.Code,
	}
}

// ToAllotmentResponse maps an allotment model to its public shape.
func ToAllotmentResponse(allotment *models.CourseAllotment) AllotmentResponse {
	return AllotmentResponse{
		ID:       allotment.ID,
		CourseID: allotment.CourseID,
		Semester: allotment.Semester,
	}
}
