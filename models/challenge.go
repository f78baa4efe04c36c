// file: models/challenge.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type Challenge struct {
	ID           uint32    `gorm:"primarykey" json:"id"`
	Title        string    `gorm:"size:100;not null" json:"title"`
	Slug         string    `gorm:"size:100;unique;not null" json:"slug"`
	Description  string    `gorm:"type:text" json:"description"`
	Category     string    `gorm:"size:50;not null" json:"category"`
	Points       uint      `gorm:"not null" json:"points"`
	FlagHash     string    `gorm:"size:255;not null" json:"-"`
	IsVisible    bool      `gorm:"not null;default:true" json:"is_visible"`
	Round        *string   `gorm:"size:50" json:"round"`
	ImageURL     string    `gorm:"size:255" json:"image_url"`
	ExternalLink string    `gorm:"size:255" json:"external_link"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Challenge) TableName() string {
	return "challenges"
}

// SetFlag 存储 Flag 的单向哈希，绝不保存明文
func (ch *Challenge) SetFlag(flag string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(flag), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	ch.FlagHash = string(hash)
	return nil
}

// CheckFlag 校验候选 Flag，大小写敏感的精确比对
func (ch *Challenge) CheckFlag(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(ch.FlagHash), []byte(candidate))
	return err == nil
}
