package service

import (
	"LexNote/dao"
	"LexNote/models"
	"LexNote/pkg/database"
	"LexNote/pkg/response"
	"LexNote/pkg/storage"
	"LexNote/types"
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
)

func newNoteService(t *testing.T) (*NoteService, string) {
	t.Helper()

	notesDB := database.NotesDB{DB: openTestDB(t, &models.Note{}, &models.WorksheetImage{})}
	dictDB := database.DictDB{DB: openTestDB(t, &models.Entry{})}

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}

	s := &NoteService{
		NoteDAO:      dao.NewNoteDAO(notesDB),
		WorksheetDAO: dao.NewWorksheetDAO(notesDB),
		EntryDAO:     dao.NewEntryDAO(dictDB),
		Storage:      store,
	}
	return s, dir
}

// makeFileHeaders 构造 multipart 文件头，走真实的表单编解码
func makeFileHeaders(t *testing.T, files map[string]string) []*multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range files {
		fw, err := w.CreateFormFile("worksheets", name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	return form.File["worksheets"]
}

func createNote(t *testing.T, s *NoteService, title string) int64 {
	t.Helper()
	unit := 3
	resp, err := s.CreateNote(context.Background(), &types.CreateNoteReq{
		Title:      title,
		Content:    "body of " + title,
		UnitNumber: &unit,
	}, nil)
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	return resp.NoteID
}

func filesOnDisk(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestSaveWorksheets_DisallowedExtension(t *testing.T) {
	s, dir := newNoteService(t)
	noteID := createNote(t, s, "Week 1")

	_, err := s.SaveWorksheets(context.Background(), noteID,
		makeFileHeaders(t, map[string]string{"payload.exe": "MZ"}))

	var be *response.BizError
	if !errors.As(err, &be) {
		t.Fatalf("expected a validation error, got %v", err)
	}

	// 整批拒绝：不落文件、不落记录、标记不动
	if got := filesOnDisk(t, dir); len(got) != 0 {
		t.Fatalf("no files should be written, found %v", got)
	}
	note, err := s.NoteDAO.FindByID(context.Background(), noteID)
	if err != nil {
		t.Fatalf("reload note: %v", err)
	}
	if note.HasWorksheet {
		t.Fatal("has_worksheet should stay false after a rejected upload")
	}
}

func TestSaveWorksheets_MixedBatchRejected(t *testing.T) {
	s, dir := newNoteService(t)
	noteID := createNote(t, s, "Week 1")

	_, err := s.SaveWorksheets(context.Background(), noteID, makeFileHeaders(t, map[string]string{
		"ok.txt":  "fine",
		"bad.sh":  "#!/bin/sh",
	}))
	var be *response.BizError
	if !errors.As(err, &be) {
		t.Fatalf("batch with a bad file should be rejected, got %v", err)
	}
	if got := filesOnDisk(t, dir); len(got) != 0 {
		t.Fatalf("nothing from a rejected batch should persist, found %v", got)
	}
}

func TestSaveWorksheets_AllowedFlipsFlag(t *testing.T) {
	s, dir := newNoteService(t)
	noteID := createNote(t, s, "Week 2")

	saved, err := s.SaveWorksheets(context.Background(), noteID,
		makeFileHeaders(t, map[string]string{"worksheet.txt": "questions"}))
	if err != nil {
		t.Fatalf("save worksheets: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected 1 saved worksheet, got %d", len(saved))
	}
	// 存储名由服务端生成，不能沿用上传名
	if saved[0].Filename == "worksheet.txt" {
		t.Fatal("stored filename should be generated, not the upload name")
	}
	if saved[0].OriginalFilename != "worksheet.txt" {
		t.Fatalf("original filename should be preserved, got %q", saved[0].OriginalFilename)
	}
	if _, err := os.Stat(filepath.Join(dir, saved[0].Filename)); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}

	note, err := s.NoteDAO.FindByID(context.Background(), noteID)
	if err != nil {
		t.Fatalf("reload note: %v", err)
	}
	if !note.HasWorksheet {
		t.Fatal("has_worksheet should flip to true")
	}
}

// 学习单整批被拒时笔记照常创建，但响应里要带回拒绝原因
func TestCreateNote_SurfacesWorksheetRejection(t *testing.T) {
	s, dir := newNoteService(t)
	unit := 2

	resp, err := s.CreateNote(context.Background(), &types.CreateNoteReq{
		Title:      "Week 3",
		Content:    "consideration",
		UnitNumber: &unit,
	}, makeFileHeaders(t, map[string]string{"payload.exe": "MZ"}))
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	if resp.NoteID == 0 {
		t.Fatal("note should be created despite rejected worksheets")
	}
	if resp.WorksheetSize != 0 {
		t.Fatalf("rejected batch should save nothing, got %d", resp.WorksheetSize)
	}
	if resp.WorksheetError == "" {
		t.Fatal("rejection reason should be surfaced in the response")
	}
	if files := filesOnDisk(t, dir); len(files) != 0 {
		t.Fatalf("rejected batch left files on disk: %v", files)
	}

	note, err := s.NoteDAO.FindByID(context.Background(), resp.NoteID)
	if err != nil {
		t.Fatalf("reload note: %v", err)
	}
	if note.HasWorksheet {
		t.Fatal("has_worksheet should stay false after rejection")
	}
}

func TestDeleteNote_CascadesRowsAndFiles(t *testing.T) {
	s, dir := newNoteService(t)
	noteID := createNote(t, s, "Week 3")

	_, err := s.SaveWorksheets(context.Background(), noteID, makeFileHeaders(t, map[string]string{
		"a.pdf": "pdf-a",
		"b.png": "png-b",
	}))
	if err != nil {
		t.Fatalf("save worksheets: %v", err)
	}
	if got := filesOnDisk(t, dir); len(got) != 2 {
		t.Fatalf("expected 2 files before delete, got %v", got)
	}

	if err := s.DeleteNote(context.Background(), noteID); err != nil {
		t.Fatalf("delete note: %v", err)
	}

	if got := filesOnDisk(t, dir); len(got) != 0 {
		t.Fatalf("files should be cascaded away, found %v", got)
	}
	count, err := s.WorksheetDAO.CountByNoteID(context.Background(), noteID)
	if err != nil {
		t.Fatalf("count worksheets: %v", err)
	}
	if count != 0 {
		t.Fatalf("worksheet rows should be cascaded away, got %d", count)
	}
	if _, err := s.NoteDAO.FindByID(context.Background(), noteID); err == nil {
		t.Fatal("note should be gone")
	}
}

func TestDeleteWorksheet_RederivesFlag(t *testing.T) {
	s, _ := newNoteService(t)
	noteID := createNote(t, s, "Week 4")

	saved, err := s.SaveWorksheets(context.Background(), noteID, makeFileHeaders(t, map[string]string{
		"first.txt":  "1",
		"second.txt": "2",
	}))
	if err != nil || len(saved) != 2 {
		t.Fatalf("save worksheets: %v (%d saved)", err, len(saved))
	}

	if _, err := s.DeleteWorksheet(context.Background(), saved[0].ID); err != nil {
		t.Fatalf("delete first worksheet: %v", err)
	}
	note, _ := s.NoteDAO.FindByID(context.Background(), noteID)
	if !note.HasWorksheet {
		t.Fatal("flag should stay true while one worksheet remains")
	}

	if _, err := s.DeleteWorksheet(context.Background(), saved[1].ID); err != nil {
		t.Fatalf("delete second worksheet: %v", err)
	}
	note, _ = s.NoteDAO.FindByID(context.Background(), noteID)
	if note.HasWorksheet {
		t.Fatal("flag should re-derive to false once the last worksheet is gone")
	}
}

func TestDuplicateNote_CopiesWorksheets(t *testing.T) {
	s, dir := newNoteService(t)
	noteID := createNote(t, s, "Originals")

	if _, err := s.SaveWorksheets(context.Background(), noteID,
		makeFileHeaders(t, map[string]string{"sheet.txt": "contents"})); err != nil {
		t.Fatalf("save worksheets: %v", err)
	}

	newID, err := s.DuplicateNote(context.Background(), noteID, &types.DuplicateNoteReq{
		TargetUnit:        7,
		IncludeWorksheets: true,
	})
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}

	dup, err := s.NoteDAO.FindByID(context.Background(), newID)
	if err != nil {
		t.Fatalf("reload duplicate: %v", err)
	}
	if dup.Title != "Originals (Copy)" {
		t.Fatalf("title = %q", dup.Title)
	}
	if dup.UnitNumber == nil || *dup.UnitNumber != 7 {
		t.Fatalf("unit = %v", dup.UnitNumber)
	}
	if dup.IsFavorite {
		t.Fatal("favorite flag should reset on duplicate")
	}
	if !dup.HasWorksheet {
		t.Fatal("duplicate should carry the worksheet flag")
	}
	// 文件也复制了一份
	if got := filesOnDisk(t, dir); len(got) != 2 {
		t.Fatalf("expected 2 files after duplicate, got %v", got)
	}
}

func TestGetNote_ResolvesRelatedEntries(t *testing.T) {
	s, _ := newNoteService(t)
	ctx := context.Background()

	e1 := &models.Entry{WordPhrase: "duty of care", Definition: "obligation to avoid harm"}
	e2 := &models.Entry{WordPhrase: "causation", Definition: "link between act and damage"}
	for _, e := range []*models.Entry{e1, e2} {
		if err := s.EntryDAO.Create(ctx, e); err != nil {
			t.Fatalf("seed entry: %v", err)
		}
	}

	unit := 1
	created, err := s.CreateNote(ctx, &types.CreateNoteReq{
		Title:          "Negligence",
		Content:        "elements of negligence",
		UnitNumber:     &unit,
		RelatedEntries: "1, 2, 99, junk",
	}, nil)
	if err != nil {
		t.Fatalf("create note: %v", err)
	}

	detail, err := s.GetNote(ctx, created.NoteID)
	if err != nil {
		t.Fatalf("get note: %v", err)
	}
	if len(detail.RelatedEntries) != 2 {
		t.Fatalf("expected 2 resolved entries, got %d", len(detail.RelatedEntries))
	}
}

func TestGetNote_IncrementsViews(t *testing.T) {
	s, _ := newNoteService(t)
	ctx := context.Background()
	noteID := createNote(t, s, "Views")

	for i := 0; i < 3; i++ {
		if _, err := s.GetNote(ctx, noteID); err != nil {
			t.Fatalf("get note: %v", err)
		}
	}

	note, err := s.NoteDAO.FindByID(ctx, noteID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if note.Views != 3 {
		t.Fatalf("views = %d, want 3", note.Views)
	}
}

func TestParseEntryIDs(t *testing.T) {
	ids := parseEntryIDs(" 1,2, junk ,0,-3, 42 ")
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 42 {
		t.Fatalf("parseEntryIDs = %v", ids)
	}
	if got := parseEntryIDs(""); got != nil {
		t.Fatalf("empty input should yield nil, got %v", got)
	}
}
