package models

// Department defines the department model based on the 'departments' table
type Department struct {
	ID      int64  `json:"id" db:"id" example:"1"`
	Name    string `json:"name" db:"name" example:"Computer Science"`
	Acronym string `json:"acronym" db:"acronym" example:"CS"`
}
