package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	CourseID      string    `gorm:"uniqueIndex;not null" json:"courseId"`
	CourseBatchID string    `gorm:"index;not null" json:"courseBatchId"`
	Title         string    `json:"title"`
	Level         int       `json:"level"`
	DateCreated   time.Time `json:"dateCreated"`
	// Ordered exercise IDs belonging to this course
	ExerciseBatchList datatypes.JSON `json:"exerciseBatchList"`
	ExercisesLength   int            `json:"exercisesLength"`
	IsDeleted         bool           `gorm:"default:false" json:"-"`
}

// Exercises decodes the ordered exercise ID list
func (co *Course) Exercises() []string {
	return decodeStringList(co.ExerciseBatchList)
}

// SetExercises encodes the ordered exercise ID list and keeps the length
// field in sync
func (co *Course) SetExercises(ids []string) error {
	raw, err := encodeStringList(ids)
	if err != nil {
		return err
	}
	co.ExerciseBatchList = raw
	co.ExercisesLength = len(ids)
	return nil
}
