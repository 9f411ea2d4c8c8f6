package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bitfantasy/fmea/internal/fmea/worksheet"
	"go.uber.org/zap"
)

// DocumentStore 编辑器依赖的远端存储操作
type DocumentStore interface {
	Save(ctx context.Context, doc *worksheet.Document) (int64, error)
	LoadLatest(ctx context.Context) (*worksheet.Document, error)
	LoadByID(ctx context.Context, id int64) (*worksheet.Document, error)
	List(ctx context.Context) ([]worksheet.Summary, error)
}

// ErrSaveInFlight 已有一次保存在进行中（对应界面上保存按钮被禁用）
var ErrSaveInFlight = errors.New("save already in flight")

// Status 提供给视图层的状态消息，几秒后自动消失由视图层基于 At 实现
type Status struct {
	Text    string
	IsError bool
	At      time.Time
}

// Editor 编辑会话：持有唯一一份内存中的文档。
// 所有变更都是整值替换；mutex 只是为了嵌入方从多个goroutine调用时的安全。
type Editor struct {
	mu     sync.Mutex
	doc    *worksheet.Document
	saving bool
	status Status

	store  DocumentStore
	logger *zap.Logger
}

// NewEditor 创建编辑会话，文档初始化为种子默认值
func NewEditor(store DocumentStore, logger *zap.Logger) *Editor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor{
		doc:    worksheet.NewDocument(),
		store:  store,
		logger: logger,
	}
}

// Document 当前文档的副本
func (e *Editor) Document() worksheet.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

func (e *Editor) snapshot() worksheet.Document {
	rows := make([]worksheet.Row, len(e.doc.Rows))
	copy(rows, e.doc.Rows)
	return worksheet.Document{Header: e.doc.Header, Rows: rows}
}

// Status 最近一条状态消息
func (e *Editor) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

func (e *Editor) setStatus(text string, isError bool) {
	e.status = Status{Text: text, IsError: isError, At: time.Now()}
}

// UpdateRow 更新一行的字段，派生的RPN在同一次更新内重算
func (e *Editor) UpdateRow(id string, field worksheet.Field, value interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Rows = worksheet.UpdateRow(e.doc.Rows, id, field, value)
}

// AddRow 追加默认新行
func (e *Editor) AddRow() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Rows = worksheet.AddRow(e.doc.Rows)
}

// DeleteRow 删除一行；只剩一行时无操作
func (e *Editor) DeleteRow(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Rows = worksheet.DeleteRow(e.doc.Rows, id)
}

// UpdateHeader 更新表头字段
func (e *Editor) UpdateHeader(field worksheet.HeaderField, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc.Header = worksheet.UpdateHeaderField(e.doc.Header, field, value)
}

// Save 保存当前文档。保存期间再次调用返回 ErrSaveInFlight。
// 无论成败本地文档都保持不变；成功时把存储分配的ID原样展示给用户。
func (e *Editor) Save(ctx context.Context) (int64, error) {
	e.mu.Lock()
	if e.saving {
		e.mu.Unlock()
		return 0, ErrSaveInFlight
	}
	e.saving = true
	doc := e.snapshot()
	e.mu.Unlock()

	id, err := e.store.Save(ctx, &doc)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.saving = false
	if err != nil {
		e.setStatus(err.Error(), true)
		return 0, err
	}
	e.setStatus(fmt.Sprintf("保存成功 (ID: %d)", id), false)
	return id, nil
}

// LoadLatest 启动时的尽力加载：
// 没有历史数据或请求失败都不致命，保留当前种子文档，只记日志。
func (e *Editor) LoadLatest(ctx context.Context) {
	doc, err := e.store.LoadLatest(ctx)
	if err != nil {
		e.logger.Warn("load latest fmea failed", zap.Error(err))
		return
	}
	if doc == nil {
		e.logger.Info("no saved fmea yet, keeping default document")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc = doc
}

// LoadByID 按ID加载并整体替换内存文档（用户显式触发，未保存的编辑被覆盖）。
// 失败时内存状态不变。
func (e *Editor) LoadByID(ctx context.Context, id int64) error {
	doc, err := e.store.LoadByID(ctx, id)
	if err != nil {
		e.mu.Lock()
		e.setStatus(err.Error(), true)
		e.mu.Unlock()
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc = doc
	e.setStatus(fmt.Sprintf("已加载FMEA (ID: %d)", id), false)
	return nil
}

// List 获取已保存文档的摘要列表，保持服务端顺序。
// 失败时返回错误和空列表。
func (e *Editor) List(ctx context.Context) ([]worksheet.Summary, error) {
	summaries, err := e.store.List(ctx)
	if err != nil {
		e.mu.Lock()
		e.setStatus(err.Error(), true)
		e.mu.Unlock()
		return nil, err
	}
	return summaries, nil
}
