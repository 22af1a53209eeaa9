package service

import (
	"LexNote/dao"
	"LexNote/models"
	"LexNote/pkg/response"
	"LexNote/types"
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type DictionaryService struct {
	EntryDAO *dao.EntryDAO
	Search   ISearchService
}

var _ IDictionaryService = (*DictionaryService)(nil)

type IDictionaryService interface {
	ListEntries(ctx context.Context) ([]*models.Entry, error)
	CreateEntry(ctx context.Context, req *types.CreateEntryReq) (int64, error)
	GetEntry(ctx context.Context, id int64, public bool) (*types.EntryDetailResp, error)
	UpdateEntry(ctx context.Context, id int64, req *types.UpdateEntryReq) error
	DeleteEntry(ctx context.Context, id int64) error
}

func (s *DictionaryService) ListEntries(ctx context.Context) ([]*models.Entry, error) {
	return s.EntryDAO.ListAll(ctx)
}

// CreateEntry 词组重复返回业务错误而不是笼统的失败
func (s *DictionaryService) CreateEntry(ctx context.Context, req *types.CreateEntryReq) (int64, error) {
	if s.EntryDAO.IsWordPhraseExist(ctx, req.WordPhrase) {
		return 0, response.NewError(http.StatusBadRequest, "该词条已收录")
	}

	entry := &models.Entry{
		WordPhrase: req.WordPhrase,
		Definition: req.Definition,
		Example:    req.Example,
		UnitNumber: req.UnitNumber,
		Comments:   req.Comments,
	}
	if err := s.EntryDAO.Create(ctx, entry); err != nil {
		// 并发插入时唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, response.NewError(http.StatusBadRequest, "该词条已收录")
		}
		return 0, err
	}
	return entry.ID, nil
}

// GetEntry public 为 true 时浏览计数 +1，登录态浏览不计数
func (s *DictionaryService) GetEntry(ctx context.Context, id int64, public bool) (*types.EntryDetailResp, error) {
	if public {
		_ = s.EntryDAO.IncrementViews(ctx, id)
	}

	entry, err := s.EntryDAO.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusNotFound, "词条不存在")
		}
		return nil, err
	}

	return &types.EntryDetailResp{
		Entry:        entry,
		RelatedTerms: s.Search.RelatedTerms(ctx, entry.WordPhrase, entry.ID),
	}, nil
}

func (s *DictionaryService) UpdateEntry(ctx context.Context, id int64, req *types.UpdateEntryReq) error {
	if _, err := s.EntryDAO.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusNotFound, "词条不存在")
		}
		return err
	}

	return s.EntryDAO.UpdateByID(ctx, id, map[string]interface{}{
		"word_phrase": req.WordPhrase,
		"definition":  req.Definition,
		"example":     req.Example,
		"unit_number": req.UnitNumber,
		"comments":    req.Comments,
	})
}

func (s *DictionaryService) DeleteEntry(ctx context.Context, id int64) error {
	if _, err := s.EntryDAO.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewError(http.StatusNotFound, "词条不存在")
		}
		return err
	}
	return s.EntryDAO.DeleteByID(ctx, id)
}
