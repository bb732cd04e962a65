package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubjectResult is one subject's marks within a result sheet
type SubjectResult struct {
	Name  string  `json:"name" bson:"name"`
	Marks float64 `json:"marks" bson:"marks"`
}

// SemesterResult is an aggregated per-semester entry used by the
// semester-wise result variant
type SemesterResult struct {
	Semester   int      `json:"semester" bson:"semester"`
	Courses    []string `json:"courses" bson:"courses"`
	SGPA       float64  `json:"sgpa" bson:"sgpa"`
	Cumulative float64  `json:"cumulative" bson:"cumulative"`
}

// Result defines a record in the 'results' collection. studentId carries a
// unique index. Results are read-only through the API and seeded externally.
type Result struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentID  string             `json:"studentId" bson:"studentId"`
	Subjects   []SubjectResult    `json:"subjects,omitempty" bson:"subjects,omitempty"`
	Semesters  []SemesterResult   `json:"semesters,omitempty" bson:"semesters,omitempty"`
	TotalMarks float64            `json:"totalMarks" bson:"totalMarks"`
	Percentage float64            `json:"percentage" bson:"percentage"`
	Grade      string             `json:"grade" bson:"grade"`
}
