package handler

import (
	"LexNote/config"
	"LexNote/middleware"
	"LexNote/pkg/context"
	"LexNote/pkg/response"
	"LexNote/service"
	"LexNote/types"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

type Note struct {
	Config      *config.Config
	NoteService service.INoteService
}

func (h *Note) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/api/notes")
	g.GET("", context.Wrap(h.ListNotes))
	g.GET("/:id", context.Wrap(h.GetNote))
	g.GET("/:id/content", context.Wrap(h.GetNoteContent))
	g.POST("", authorize, context.Wrap(h.CreateNote))
	g.PUT("/:id", authorize, context.Wrap(h.UpdateNote))
	g.DELETE("/:id", authorize, context.Wrap(h.DeleteNote))
	g.POST("/:id/duplicate", authorize, context.Wrap(h.DuplicateNote))
	g.POST("/:id/worksheets", authorize, context.Wrap(h.UploadWorksheets))

	r.DELETE("/api/worksheets/:id", authorize, context.Wrap(h.DeleteWorksheet))
	r.GET("/uploads/worksheets/:filename", context.Wrap(h.ServeWorksheet))
}

func (h *Note) ListNotes(c *gin.Context) error {
	groups, err := h.NoteService.ListNotes(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, groups)
	return nil
}

// CreateNote multipart 表单，学习单文件字段名 worksheets
func (h *Note) CreateNote(c *gin.Context) error {
	var req types.CreateNoteReq
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resp, err := h.NoteService.CreateNote(c.Request.Context(), &req, worksheetFiles(c))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Note) GetNote(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := h.NoteService.GetNote(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

func (h *Note) GetNoteContent(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	content, err := h.NoteService.GetNoteContent(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, types.NoteContentResp{Content: content})
	return nil
}

func (h *Note) UpdateNote(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req types.UpdateNoteReq
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	if err := h.NoteService.UpdateNote(c.Request.Context(), id, &req, worksheetFiles(c)); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Note) DeleteNote(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.NoteService.DeleteNote(c.Request.Context(), id); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Note) DuplicateNote(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req types.DuplicateNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	newID, err := h.NoteService.DuplicateNote(c.Request.Context(), id, &req)
	if err != nil {
		return err
	}
	response.Success(c, types.DuplicateNoteResp{NewNoteID: newID})
	return nil
}

// UploadWorksheets 给已有笔记补传学习单
func (h *Note) UploadWorksheets(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	files := worksheetFiles(c)
	if len(files) == 0 {
		return response.NewError(http.StatusBadRequest, "没有上传文件")
	}

	saved, err := h.NoteService.SaveWorksheets(c.Request.Context(), id, files)
	if err != nil {
		return err
	}
	response.Success(c, saved)
	return nil
}

func (h *Note) DeleteWorksheet(c *gin.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	noteID, err := h.NoteService.DeleteWorksheet(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"note_id": noteID})
	return nil
}

// ServeWorksheet 按存储名回文件，文件名是服务端生成的 uuid，不信任路径
func (h *Note) ServeWorksheet(c *gin.Context) error {
	filename := path.Base(c.Param("filename"))

	f, err := h.NoteService.OpenWorksheet(c.Request.Context(), filename)
	if err != nil {
		return response.NewError(http.StatusNotFound, "文件不存在")
	}
	defer f.Close()

	contentType := mime.TypeByExtension(path.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, f)
	return nil
}

// worksheetFiles multipart 里字段名 worksheets 的文件，表单没带就是空
func worksheetFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["worksheets"]
}
