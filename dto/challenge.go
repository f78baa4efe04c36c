// file: dto/challenge.go
package dto

import "strings"

// ========== 请求 DTO ==========

type CreateChallengeReq struct {
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Points       *uint   `json:"points"`
	Flag         string  `json:"flag"`
	Round        *string `json:"round"`
	ImageURL     string  `json:"image_url"`
	ExternalLink string  `json:"external_link"`
	IsVisible    *bool   `json:"is_visible"`
}

// Normalize 清洗输入，可见性缺省为 true
func (r *CreateChallengeReq) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Slug = strings.TrimSpace(r.Slug)
	r.Category = strings.TrimSpace(r.Category)
	if r.IsVisible == nil {
		visible := true
		r.IsVisible = &visible
	}
}

// UpdateChallengeReq 全部字段可选，省略 Flag 则保留原有哈希
type UpdateChallengeReq struct {
	Title        *string `json:"title"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	Points       *uint   `json:"points"`
	Flag         *string `json:"flag"`
	Round        *string `json:"round"`
	ImageURL     *string `json:"image_url"`
	ExternalLink *string `json:"external_link"`
	IsVisible    *bool   `json:"is_visible"`
}
