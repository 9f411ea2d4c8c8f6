package handler

import (
	"github.com/bitfantasy/fmea/internal/fmea/service"
	"github.com/gin-gonic/gin"
)

// Handlers 处理器集合
type Handlers struct {
	FMEA *FMEAHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(fmeaSvc *service.FMEAService) *Handlers {
	return &Handlers{
		FMEA: NewFMEAHandler(fmeaSvc),
	}
}

// 响应形状属于对外契约：错误统一为 {"error": message}，
// 未找到为 {"message": message}，成功响应不做额外包装。

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// NotFoundResponse 未找到响应
func NotFoundResponse(c *gin.Context, message string) {
	c.JSON(404, gin.H{"message": message})
}
