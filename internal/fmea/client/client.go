package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bitfantasy/fmea/internal/fmea/worksheet"
)

// =============================================================================
// Client — FMEA存储服务客户端
// 对应编辑器的四个持久化操作：保存、取最新、按ID取、取列表。
// 四个操作相互独立，无缓存、无重试。
// =============================================================================

// SaveError 保存失败
type SaveError struct {
	Message string
}

func (e *SaveError) Error() string { return e.Message }

// LoadError 加载失败
type LoadError struct {
	Message string
}

func (e *LoadError) Error() string { return e.Message }

// ListError 列表获取失败
type ListError struct {
	Message string
}

func (e *ListError) Error() string { return e.Message }

// 请求未到达服务端时的兜底提示
const (
	fallbackTransport = "无法连接到服务器"
	fallbackRejected  = "服务器处理请求失败"
)

// Client FMEA存储服务客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New 创建客户端实例
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Save 保存文档，成功返回存储分配的ID。
// 无论成败都不修改传入的文档。
func (c *Client) Save(ctx context.Context, doc *worksheet.Document) (int64, error) {
	var result struct {
		ID int64 `json:"id"`
	}
	if err := c.doRequest(ctx, http.MethodPost, "/api/save-fmea", doc, &result); err != nil {
		return 0, &SaveError{Message: err.Error()}
	}
	return result.ID, nil
}

// LoadLatest 获取最近保存的文档。
// 服务端404表示还没有数据，返回 (nil, nil) 而不是错误。
func (c *Client) LoadLatest(ctx context.Context) (*worksheet.Document, error) {
	var doc worksheet.Document
	err := c.doRequest(ctx, http.MethodGet, "/api/get-latest-fmea", nil, &doc)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, &LoadError{Message: err.Error()}
	}
	return &doc, nil
}

// LoadByID 按ID获取文档
func (c *Client) LoadByID(ctx context.Context, id int64) (*worksheet.Document, error) {
	var doc worksheet.Document
	path := fmt.Sprintf("/api/fmea/%d", id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &doc); err != nil {
		return nil, &LoadError{Message: err.Error()}
	}
	return &doc, nil
}

// List 获取已保存文档的摘要列表，保持服务端返回的顺序
func (c *Client) List(ctx context.Context) ([]worksheet.Summary, error) {
	var summaries []worksheet.Summary
	if err := c.doRequest(ctx, http.MethodGet, "/api/fmea-list", nil, &summaries); err != nil {
		return nil, &ListError{Message: err.Error()}
	}
	return summaries, nil
}

// statusError 服务端返回非2xx时的错误，保留原始状态码和服务端消息
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string { return e.message }

func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.status == http.StatusNotFound
}

// doRequest 执行一次HTTP请求。
// 非2xx响应优先透传服务端body里的 error/message 文案，
// body无法解析时回退到通用提示。
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("序列化请求体失败: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("%s: %v", fallbackTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %v", fallbackTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %v", fallbackTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{
			status:  resp.StatusCode,
			message: serverMessage(respBody),
		}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("解析响应体失败: %v", err)
		}
	}

	return nil
}

// serverMessage 从错误响应体中提取服务端文案
func serverMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fallbackRejected
}
