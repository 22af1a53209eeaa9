package types

import "LexNote/models"

// CreateEntryReq 新增词条
type CreateEntryReq struct {
	WordPhrase string `json:"word_phrase" binding:"required"`
	Definition string `json:"definition" binding:"required"`
	Example    string `json:"example"`
	UnitNumber *int   `json:"unit_number"`
	Comments   string `json:"comments"`
}

// UpdateEntryReq 编辑词条
type UpdateEntryReq struct {
	WordPhrase string `json:"word_phrase" binding:"required"`
	Definition string `json:"definition" binding:"required"`
	Example    string `json:"example"`
	UnitNumber *int   `json:"unit_number"`
	Comments   string `json:"comments"`
}

type CreateEntryResp struct {
	EntryID int64 `json:"entry_id"`
}

// EntryDetailResp 词条详情 + 相关词条
type EntryDetailResp struct {
	Entry        *models.Entry `json:"entry"`
	RelatedTerms []RelatedTerm `json:"related_terms"`
}
