package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/bitfantasy/fmea/internal/fmea/handler"
	"github.com/bitfantasy/fmea/internal/fmea/repository"
	"github.com/bitfantasy/fmea/internal/fmea/service"
	"github.com/bitfantasy/fmea/internal/fmea/testutil"
	"github.com/bitfantasy/fmea/internal/fmea/worksheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestServer runs the real API on an httptest server
func startTestServer(t *testing.T) *Client {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := repository.NewFMEARepository(db)
	svc := service.NewFMEAService(repo)
	h := handler.NewFMEAHandler(svc)

	router := testutil.SetupRouter()
	api := router.Group("/api")
	api.POST("/save-fmea", h.Save)
	api.GET("/get-latest-fmea", h.Latest)
	api.GET("/fmea-list", h.List)
	api.GET("/fmea/:id", h.Get)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestSaveAndLoadByID(t *testing.T) {
	c := startTestServer(t)
	ctx := context.Background()

	doc := worksheet.NewDocument()
	doc.Header.ProductName = "Bracket"
	doc.Header.FMEANumber = "F-001"
	doc.Rows = worksheet.UpdateRow(doc.Rows, doc.Rows[0].ID, worksheet.FieldItem, "支架")
	doc.Rows = worksheet.UpdateRow(doc.Rows, doc.Rows[0].ID, worksheet.FieldSeverity, 5)
	doc.Rows = worksheet.UpdateRow(doc.Rows, doc.Rows[0].ID, worksheet.FieldOccurrence, 4)
	doc.Rows = worksheet.UpdateRow(doc.Rows, doc.Rows[0].ID, worksheet.FieldDetection, 10)

	id, err := c.Save(ctx, doc)
	require.NoError(t, err)
	assert.Positive(t, id)

	loaded, err := c.LoadByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Bracket", loaded.Header.ProductName)
	assert.Equal(t, "F-001", loaded.Header.FMEANumber)
	require.Len(t, loaded.Rows, 1)
	assert.Equal(t, "支架", loaded.Rows[0].Item)
	assert.Equal(t, 200, loaded.Rows[0].RPN)
}

func TestLoadLatestEmptyStore(t *testing.T) {
	c := startTestServer(t)

	doc, err := c.LoadLatest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestLoadLatestReturnsMostRecent(t *testing.T) {
	c := startTestServer(t)
	ctx := context.Background()

	first := worksheet.NewDocument()
	first.Header.ProductName = "Bracket"
	_, err := c.Save(ctx, first)
	require.NoError(t, err)

	second := worksheet.NewDocument()
	second.Header.ProductName = "Housing"
	_, err = c.Save(ctx, second)
	require.NoError(t, err)

	latest, err := c.LoadLatest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "Housing", latest.Header.ProductName)
}

func TestLoadByIDNotFound(t *testing.T) {
	c := startTestServer(t)

	_, err := c.LoadByID(context.Background(), 999)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	// 服务端文案原样透传
	assert.Equal(t, "找不到该ID的FMEA", loadErr.Message)
}

func TestListPreservesServerOrder(t *testing.T) {
	c := startTestServer(t)
	ctx := context.Background()

	for _, name := range []string{"Bracket", "Housing"} {
		doc := worksheet.NewDocument()
		doc.Header.ProductName = name
		doc.Header.FMEANumber = "F-" + name
		doc.Header.DatePrepared = "2025-08-31"
		_, err := c.Save(ctx, doc)
		require.NoError(t, err)
	}

	summaries, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	// 服务端按ID降序返回，客户端不重排
	assert.Equal(t, "Housing", summaries[0].ProductName)
	assert.Equal(t, "Bracket", summaries[1].ProductName)
	assert.Equal(t, "F-Housing", summaries[0].FMEANumber)
	assert.Equal(t, "2025-08-31", summaries[0].DatePrepared)
}

func TestTransportFailureErrors(t *testing.T) {
	// 指向一个已关闭的服务器
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	c := New(url)
	ctx := context.Background()

	_, err := c.Save(ctx, worksheet.NewDocument())
	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)

	_, err = c.LoadByID(ctx, 1)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)

	_, err = c.LoadLatest(ctx)
	require.ErrorAs(t, err, &loadErr)

	_, err = c.List(ctx)
	var listErr *ListError
	require.ErrorAs(t, err, &listErr)
}

func TestSaveDoesNotMutateDocument(t *testing.T) {
	c := startTestServer(t)

	doc := worksheet.NewDocument()
	doc.Header.ProductName = "Bracket"
	before := *doc
	beforeRows := make([]worksheet.Row, len(doc.Rows))
	copy(beforeRows, doc.Rows)

	_, err := c.Save(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, before.Header, doc.Header)
	assert.Equal(t, beforeRows, doc.Rows)
}
