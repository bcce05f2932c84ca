package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaterialCategoryNotes     = "notes"
	MaterialCategoryPYQ       = "pyq"
	MaterialCategoryPractical = "practical"
	MaterialCategoryMST       = "mst"

	// DefaultSemester labels materials that are not tied to a semester.
	DefaultSemester = "General"
)

// Material is a downloadable academic resource.
type Material struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	Semester    *string   `json:"semester,omitempty"`
	Category    string    `json:"category"`
	FileURL     *string   `json:"file_url,omitempty"`
	Downloads   int       `json:"downloads"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryKey implements content.Categorized.
func (m Material) CategoryKey() string { return m.Category }

// SemesterLabel returns the semester, or DefaultSemester when unset.
func (m Material) SemesterLabel() string {
	if m.Semester == nil || *m.Semester == "" {
		return DefaultSemester
	}
	return *m.Semester
}

// HasFile reports whether the material has a file to open.
func (m Material) HasFile() bool {
	return m.FileURL != nil && *m.FileURL != ""
}

// MaterialView is a material decorated for display.
type MaterialView struct {
	Material
	CategoryName  string `json:"category_name"`
	Icon          string `json:"icon"`
	SemesterLabel string `json:"semester_label"`
}
