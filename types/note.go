package types

import "LexNote/models"

// CreateNoteReq 新增笔记（multipart 表单，学习单文件另取）
type CreateNoteReq struct {
	Title          string `form:"title" binding:"required"`
	Content        string `form:"content" binding:"required"`
	UnitNumber     *int   `form:"unit_number"`
	Tags           string `form:"tags"`
	RelatedEntries string `form:"related_entries"`
	Comments       string `form:"comments"`
	IsFavorite     bool   `form:"is_favorite"`
}

type UpdateNoteReq struct {
	Title          string `form:"title" binding:"required"`
	Content        string `form:"content" binding:"required"`
	UnitNumber     *int   `form:"unit_number"`
	Tags           string `form:"tags"`
	RelatedEntries string `form:"related_entries"`
	Comments       string `form:"comments"`
	IsFavorite     bool   `form:"is_favorite"`
}

type CreateNoteResp struct {
	NoteID        int64  `json:"note_id"`
	WorksheetSize int    `json:"worksheet_count"`
	// 笔记已落库但学习单整批被拒时带回拒绝原因
	WorksheetError string `json:"worksheet_error,omitempty"`
}

// DuplicateNoteReq 复制笔记到另一个单元
type DuplicateNoteReq struct {
	TargetUnit        int  `json:"target_unit" binding:"required"`
	IncludeWorksheets bool `json:"include_worksheets"`
}

type DuplicateNoteResp struct {
	NewNoteID int64 `json:"new_note_id"`
}

// NoteDetailResp 笔记详情，关联词条来自词典库
type NoteDetailResp struct {
	Note            *models.Note             `json:"note"`
	RelatedEntries  []*models.Entry          `json:"related_entries"`
	WorksheetImages []*models.WorksheetImage `json:"worksheet_images"`
}

// NoteGroup 列表页按单元分组
type NoteGroup struct {
	UnitNumber *int           `json:"unit_number"`
	Notes      []*models.Note `json:"notes"`
}

type NoteContentResp struct {
	Content string `json:"content"`
}

// SavedWorksheet 上传成功的学习单
type SavedWorksheet struct {
	ID               int64  `json:"id"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
}
