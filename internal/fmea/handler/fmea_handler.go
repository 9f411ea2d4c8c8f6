package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bitfantasy/fmea/internal/fmea/repository"
	"github.com/bitfantasy/fmea/internal/fmea/service"
	"github.com/bitfantasy/fmea/internal/fmea/worksheet"
	"github.com/gin-gonic/gin"
)

// FMEAHandler FMEA文档接口
type FMEAHandler struct {
	svc *service.FMEAService
}

// NewFMEAHandler 创建FMEA文档接口
func NewFMEAHandler(svc *service.FMEAService) *FMEAHandler {
	return &FMEAHandler{svc: svc}
}

// Save 保存FMEA文档
// POST /api/save-fmea
func (h *FMEAHandler) Save(c *gin.Context) {
	var req struct {
		Header *worksheet.Header `json:"headerData"`
		Rows   []worksheet.Row   `json:"rows"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "请求体格式错误: "+err.Error())
		return
	}
	if req.Header == nil || len(req.Rows) == 0 {
		ErrorResponse(c, http.StatusBadRequest, "缺少Header或Row数据")
		return
	}

	doc := worksheet.Document{Header: *req.Header, Rows: req.Rows}
	id, err := h.svc.Save(c.Request.Context(), &doc)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "FMEA数据保存成功",
		"id":      id,
	})
}

// Latest 获取最近保存的FMEA文档
// GET /api/get-latest-fmea
func (h *FMEAHandler) Latest(c *gin.Context) {
	doc, err := h.svc.Latest(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFoundResponse(c, "没有已保存的FMEA")
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Get 根据ID获取FMEA文档
// GET /api/fmea/:id
func (h *FMEAHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的FMEA ID")
		return
	}

	doc, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFoundResponse(c, "找不到该ID的FMEA")
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, doc)
}

// List 获取已保存FMEA的摘要列表，按保存顺序倒序
// GET /api/fmea-list
func (h *FMEAHandler) List(c *gin.Context) {
	summaries, err := h.svc.List(c.Request.Context())
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// Export 导出FMEA文档为xlsx
// GET /api/fmea/:id/export
func (h *FMEAHandler) Export(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "无效的FMEA ID")
		return
	}

	f, filename, err := h.svc.Export(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFoundResponse(c, "找不到该ID的FMEA")
			return
		}
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "write excel: "+err.Error())
	}
}
