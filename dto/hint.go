// file: dto/hint.go
package dto

type CreateHintReq struct {
	Content    string `json:"content" binding:"required"`
	Cost       uint   `json:"cost"`
	UnlockTime int64  `json:"unlock_time"`
	Position   uint   `json:"position"`
}

type UpdateHintReq struct {
	Content    *string `json:"content"`
	Cost       *uint   `json:"cost"`
	UnlockTime *int64  `json:"unlock_time"`
	Position   *uint   `json:"position"`
}

type CreateCategoryReq struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type"`
	Color string `json:"color"`
}
