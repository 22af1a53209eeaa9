package service

import (
	"LexNote/dao"
	"LexNote/models"
	"LexNote/pkg/log"
	"LexNote/pkg/response"
	"LexNote/pkg/storage"
	"LexNote/types"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
	"gorm.io/gorm"
)

// 学习单允许的扩展名，白名单之外一律拒收
var allowedWorksheetExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

var imageExt = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

const maxWorksheetSize = 10 << 20 // 10MB

type NoteService struct {
	NoteDAO      *dao.NoteDAO
	WorksheetDAO *dao.WorksheetDAO
	EntryDAO     *dao.EntryDAO
	Storage      storage.Storage
}

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	ListNotes(ctx context.Context) ([]types.NoteGroup, error)
	CreateNote(ctx context.Context, req *types.CreateNoteReq, files []*multipart.FileHeader) (*types.CreateNoteResp, error)
	GetNote(ctx context.Context, id int64) (*types.NoteDetailResp, error)
	GetNoteContent(ctx context.Context, id int64) (string, error)
	UpdateNote(ctx context.Context, id int64, req *types.UpdateNoteReq, files []*multipart.FileHeader) error
	DeleteNote(ctx context.Context, id int64) error
	DuplicateNote(ctx context.Context, id int64, req *types.DuplicateNoteReq) (int64, error)
	SaveWorksheets(ctx context.Context, noteID int64, files []*multipart.FileHeader) ([]types.SavedWorksheet, error)
	DeleteWorksheet(ctx context.Context, worksheetID int64) (int64, error)
	OpenWorksheet(ctx context.Context, filename string) (io.ReadCloser, error)
}

// ListNotes 按单元分组：有单元号的在前、单元号倒序，未分组殿后
func (s *NoteService) ListNotes(ctx context.Context) ([]types.NoteGroup, error) {
	notes, err := s.NoteDAO.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]types.NoteGroup, 0)
	index := make(map[string]int)
	for _, n := range notes {
		key := "ungrouped"
		if n.UnitNumber != nil {
			key = strconv.Itoa(*n.UnitNumber)
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, types.NoteGroup{UnitNumber: n.UnitNumber})
		}
		groups[i].Notes = append(groups[i].Notes, n)
	}
	return groups, nil
}

func (s *NoteService) CreateNote(ctx context.Context, req *types.CreateNoteReq, files []*multipart.FileHeader) (*types.CreateNoteResp, error) {
	note := &models.Note{
		Title:          req.Title,
		Content:        req.Content,
		UnitNumber:     req.UnitNumber,
		Tags:           req.Tags,
		RelatedEntries: req.RelatedEntries,
		Comments:       req.Comments,
		IsFavorite:     req.IsFavorite,
	}
	if err := s.NoteDAO.Create(ctx, note); err != nil {
		return nil, err
	}

	resp := &types.CreateNoteResp{NoteID: note.ID}
	saved, err := s.SaveWorksheets(ctx, note.ID, files)
	if err != nil {
		// 笔记本体已落库，附件失败不回滚，把原因带回给调用方
		log.L.Error("save worksheets failed", zap.Int64("note_id", note.ID), zap.Error(err))
		resp.WorksheetError = err.Error()
	}
	resp.WorksheetSize = len(saved)
	return resp, nil
}

// GetNote 浏览计数 +1，并把 related_entries 里的词条 ID 解析成词典库里的词条
func (s *NoteService) GetNote(ctx context.Context, id int64) (*types.NoteDetailResp, error) {
	note, err := s.NoteDAO.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "笔记不存在")
		}
		return nil, err
	}

	_ = s.NoteDAO.IncrementViews(ctx, id)

	resp := &types.NoteDetailResp{
		Note:            note,
		RelatedEntries:  []*models.Entry{},
		WorksheetImages: []*models.WorksheetImage{},
	}

	if ids := parseEntryIDs(note.RelatedEntries); len(ids) > 0 {
		entries, err := s.EntryDAO.FindByIDs(ctx, ids)
		if err != nil {
			// 词典库查不到不影响笔记本身展示
			log.L.Error("resolve related entries failed", zap.Int64("note_id", id), zap.Error(err))
		} else {
			resp.RelatedEntries = entries
		}
	}

	if note.HasWorksheet {
		images, err := s.WorksheetDAO.FindByNoteID(ctx, id)
		if err == nil {
			resp.WorksheetImages = images
		}
	}
	return resp, nil
}

func (s *NoteService) GetNoteContent(ctx context.Context, id int64) (string, error) {
	note, err := s.NoteDAO.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", response.NewError(http.StatusNotFound, "笔记不存在")
		}
		return "", err
	}
	return note.Content, nil
}

func (s *NoteService) UpdateNote(ctx context.Context, id int64, req *types.UpdateNoteReq, files []*multipart.FileHeader) error {
	if _, err := s.NoteDAO.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusNotFound, "笔记不存在")
		}
		return err
	}

	err := s.NoteDAO.UpdateByID(ctx, id, map[string]interface{}{
		"title":           req.Title,
		"content":         req.Content,
		"unit_number":     req.UnitNumber,
		"tags":            req.Tags,
		"related_entries": req.RelatedEntries,
		"comments":        req.Comments,
		"is_favorite":     req.IsFavorite,
	})
	if err != nil {
		return err
	}

	if len(files) > 0 {
		if _, err := s.SaveWorksheets(ctx, id, files); err != nil {
			log.L.Error("save worksheets failed", zap.Int64("note_id", id), zap.Error(err))
		}
	}
	return nil
}

// DeleteNote 先清学习单的文件和记录，再删笔记
func (s *NoteService) DeleteNote(ctx context.Context, id int64) error {
	if _, err := s.NoteDAO.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusNotFound, "笔记不存在")
		}
		return err
	}

	worksheets, err := s.WorksheetDAO.FindByNoteID(ctx, id)
	if err != nil {
		return err
	}
	for _, w := range worksheets {
		if err := s.Storage.Remove(ctx, w.Filename); err != nil {
			log.L.Error("remove worksheet file failed",
				zap.String("filename", w.Filename), zap.Error(err))
		}
	}
	if err := s.WorksheetDAO.DeleteByNoteID(ctx, id); err != nil {
		return err
	}
	return s.NoteDAO.DeleteByID(ctx, id)
}

// DuplicateNote 复制到目标单元，标题加 (Copy)，收藏状态重置
func (s *NoteService) DuplicateNote(ctx context.Context, id int64, req *types.DuplicateNoteReq) (int64, error) {
	src, err := s.NoteDAO.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, response.NewError(http.StatusNotFound, "笔记不存在")
		}
		return 0, err
	}

	target := req.TargetUnit
	dup := &models.Note{
		Title:          src.Title + " (Copy)",
		Content:        src.Content,
		UnitNumber:     &target,
		Tags:           src.Tags,
		RelatedEntries: src.RelatedEntries,
		Comments:       src.Comments,
		IsFavorite:     false,
	}
	if err := s.NoteDAO.Create(ctx, dup); err != nil {
		return 0, err
	}

	if req.IncludeWorksheets && src.HasWorksheet {
		worksheets, err := s.WorksheetDAO.FindByNoteID(ctx, id)
		if err != nil {
			return 0, err
		}
		copied := 0
		for _, w := range worksheets {
			newName := uuid.NewString() + path.Ext(w.Filename)
			if err := s.Storage.Copy(ctx, w.Filename, newName); err != nil {
				log.L.Error("copy worksheet file failed",
					zap.String("filename", w.Filename), zap.Error(err))
				continue
			}
			img := &models.WorksheetImage{
				NoteID:           dup.ID,
				Filename:         newName,
				OriginalFilename: w.OriginalFilename,
				Width:            w.Width,
				Height:           w.Height,
			}
			if err := s.WorksheetDAO.Create(ctx, img); err != nil {
				log.L.Error("copy worksheet record failed", zap.Error(err))
				continue
			}
			copied++
		}
		if copied > 0 {
			if err := s.refreshHasWorksheet(ctx, dup.ID); err != nil {
				return 0, err
			}
		}
	}
	return dup.ID, nil
}

// SaveWorksheets 白名单校验 → 生成 uuid 文件名 → 落盘 → 写记录 → 重算标记。
// 扩展名不在白名单的文件整批拒绝，不留半成品。
func (s *NoteService) SaveWorksheets(ctx context.Context, noteID int64, files []*multipart.FileHeader) ([]types.SavedWorksheet, error) {
	if len(files) == 0 {
		return []types.SavedWorksheet{}, nil
	}

	for _, header := range files {
		ext := strings.ToLower(path.Ext(header.Filename))
		if !allowedWorksheetExt[ext] {
			return nil, response.NewError(http.StatusBadRequest,
				fmt.Sprintf("不支持的文件类型: %s", ext))
		}
		if header.Size > maxWorksheetSize {
			return nil, response.NewError(http.StatusBadRequest, "文件超过 10MB")
		}
	}

	saved := make([]types.SavedWorksheet, 0, len(files))
	for _, header := range files {
		ws, err := s.saveOne(ctx, noteID, header)
		if err != nil {
			log.L.Error("save worksheet failed",
				zap.String("filename", header.Filename), zap.Error(err))
			continue
		}
		saved = append(saved, *ws)
	}

	if len(saved) > 0 {
		if err := s.refreshHasWorksheet(ctx, noteID); err != nil {
			return saved, err
		}
	}
	return saved, nil
}

func (s *NoteService) saveOne(ctx context.Context, noteID int64, header *multipart.FileHeader) (*types.SavedWorksheet, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ext := strings.ToLower(path.Ext(header.Filename))

	// 图片顺手取一下宽高，排版用；非图片或解析失败都无所谓
	var width, height int
	if imageExt[ext] {
		if cfg, _, err := image.DecodeConfig(f); err == nil {
			width, height = cfg.Width, cfg.Height
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
	}

	// 存储名由服务端生成，原始文件名只进元数据
	filename := uuid.NewString() + ext
	if err := s.Storage.Save(ctx, filename, io.LimitReader(f, maxWorksheetSize+1)); err != nil {
		return nil, err
	}

	img := &models.WorksheetImage{
		NoteID:           noteID,
		Filename:         filename,
		OriginalFilename: header.Filename,
		Width:            width,
		Height:           height,
	}
	if err := s.WorksheetDAO.Create(ctx, img); err != nil {
		// 记录写不进去就把文件也清掉，别留孤儿文件
		_ = s.Storage.Remove(ctx, filename)
		return nil, err
	}

	return &types.SavedWorksheet{
		ID:               img.ID,
		Filename:         img.Filename,
		OriginalFilename: img.OriginalFilename,
	}, nil
}

// DeleteWorksheet 删除学习单并重算标记，返回所属笔记 ID
func (s *NoteService) DeleteWorksheet(ctx context.Context, worksheetID int64) (int64, error) {
	w, err := s.WorksheetDAO.FindByID(ctx, worksheetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, response.NewError(http.StatusNotFound, "学习单不存在")
		}
		return 0, err
	}

	if err := s.Storage.Remove(ctx, w.Filename); err != nil {
		log.L.Error("remove worksheet file failed",
			zap.String("filename", w.Filename), zap.Error(err))
	}
	if err := s.WorksheetDAO.DeleteByID(ctx, worksheetID); err != nil {
		return 0, err
	}
	if err := s.refreshHasWorksheet(ctx, w.NoteID); err != nil {
		return 0, err
	}
	return w.NoteID, nil
}

func (s *NoteService) OpenWorksheet(ctx context.Context, filename string) (io.ReadCloser, error) {
	return s.Storage.Open(ctx, filename)
}

// refreshHasWorksheet has_worksheet 始终等于“该笔记学习单数量 > 0”，
// 每条增删路径都从计数重算，不做增量维护
func (s *NoteService) refreshHasWorksheet(ctx context.Context, noteID int64) error {
	count, err := s.WorksheetDAO.CountByNoteID(ctx, noteID)
	if err != nil {
		return err
	}
	return s.NoteDAO.SetHasWorksheet(ctx, noteID, count > 0)
}

// parseEntryIDs 解析 "1,4,5" 这类词条 ID 列表，非数字丢掉
func parseEntryIDs(raw string) []int64 {
	if raw == "" {
		return nil
	}
	ids := make([]int64, 0)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
