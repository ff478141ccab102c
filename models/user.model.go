package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	gorm.Model
	Username       string         `gorm:"unique;not null" json:"username"`
	Nickname       string         `gorm:"default:''" json:"nickname"`
	Email          string         `gorm:"unique;not null" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	Role           string         `gorm:"default:'USER'" json:"role"`
	ProfilePicture string         `gorm:"default:''" json:"profilePicture"`
	XP             uint           `gorm:"column:xp;default:0" json:"xp"`
	Level          uint           `gorm:"default:1" json:"level"`
	Coins          uint           `gorm:"default:100" json:"coins"`
	Progress       datatypes.JSON `json:"progress"`
	// ProgressVersion backs the compare-and-swap write in the completion
	// engine. Bumped on every progress persist.
	ProgressVersion     uint       `gorm:"default:0" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `gorm:"default:false" json:"-"`
	BlockedUntil        *time.Time `json:"-"`
	LastLogin           time.Time  `gorm:"default:NULL" json:"-"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`
}

// ProgressTree decodes the embedded batch progress records. An empty column
// decodes to an empty tree, meaning no batch has been started yet.
func (u *User) ProgressTree() ([]BatchProgress, error) {
	if len(u.Progress) == 0 {
		return nil, nil
	}
	var tree []BatchProgress
	if err := json.Unmarshal(u.Progress, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// SetProgressTree serializes the tree back into the JSON column
func (u *User) SetProgressTree(tree []BatchProgress) error {
	raw, err := json.Marshal(tree)
	if err != nil {
		return err
	}
	u.Progress = datatypes.JSON(raw)
	return nil
}
