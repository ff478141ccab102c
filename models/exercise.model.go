package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Exercise struct {
	gorm.Model
	ExerciseID      string         `gorm:"uniqueIndex;not null" json:"exerciseId"`
	CourseID        string         `gorm:"index;not null" json:"courseId"`
	CourseBatchID   string         `gorm:"index;not null" json:"courseBatchId"`
	DifficultyLevel int            `json:"difficultyLevel"`
	Question        string         `json:"question"`
	Options         datatypes.JSON `json:"options"`
	// Never exposed through the API; answer checking happens client-side
	// before the completion endpoint is called
	Answer    string `json:"-"`
	IsDeleted bool   `gorm:"default:false" json:"-"`
}

// OptionList decodes the answer options
func (e *Exercise) OptionList() []string {
	return decodeStringList(e.Options)
}

// SetOptions encodes the answer options
func (e *Exercise) SetOptions(options []string) error {
	raw, err := encodeStringList(options)
	if err != nil {
		return err
	}
	e.Options = raw
	return nil
}
