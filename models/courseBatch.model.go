package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseBatch is a top-level grouping of courses, unlocked stage by stage
type CourseBatch struct {
	gorm.Model
	CourseBatchID string         `gorm:"uniqueIndex;not null" json:"courseBatchId"`
	DateCreated   time.Time      `json:"dateCreated"`
	CourseList    datatypes.JSON `json:"courseList"`
	Stage         int            `json:"stage"`
	IsDeleted     bool           `gorm:"default:false" json:"-"`
}

// Courses decodes the ordered course ID list
func (b *CourseBatch) Courses() []string {
	return decodeStringList(b.CourseList)
}

// SetCourses encodes the ordered course ID list
func (b *CourseBatch) SetCourses(ids []string) error {
	raw, err := encodeStringList(ids)
	if err != nil {
		return err
	}
	b.CourseList = raw
	return nil
}

func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

func encodeStringList(list []string) (datatypes.JSON, error) {
	if list == nil {
		list = []string{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
