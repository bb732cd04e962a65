package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Program is the degree program a student is enrolled in
type Program string

// Allowed degree programs
const (
	ProgramBTechCSE   Program = "B.Tech CSE"
	ProgramBTechECE   Program = "B.Tech ECE"
	ProgramBComGen    Program = "B.Com General"
	ProgramBComHonors Program = "B.Com Honors"
)

// Programs lists every allowed program value
func Programs() []string {
	return []string{
		string(ProgramBTechCSE),
		string(ProgramBTechECE),
		string(ProgramBComGen),
		string(ProgramBComHonors),
	}
}

// AttendanceStatus marks a student present or absent on a given date
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
)

// AttendanceEntry is one day in a student's attendance log
type AttendanceEntry struct {
	Date   string           `json:"date" bson:"date"`
	Status AttendanceStatus `json:"status" bson:"status"`
}

// Student defines a roster record in the 'students' collection.
// rollNumber and email carry unique indexes.
type Student struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	RollNumber      string             `json:"rollNumber" bson:"rollNumber"`
	Email           string             `json:"email" bson:"email"`
	PhoneNumber     string             `json:"phoneNumber" bson:"phoneNumber"`
	CurrentSemester int                `json:"currentSemester" bson:"currentSemester"`
	Program         Program            `json:"program" bson:"program"`
	// Password is a bcrypt hash of the defaulted student password, never
	// serialized to clients
	Password   string            `json:"-" bson:"password"`
	Attendance []AttendanceEntry `json:"attendance,omitempty" bson:"attendance,omitempty"`
	CreatedAt  time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt" bson:"updatedAt"`
}
