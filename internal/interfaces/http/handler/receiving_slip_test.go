package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apprcv "github.com/erp/receiving/internal/application/receiving"
	"github.com/erp/receiving/internal/domain/catalog"
	"github.com/erp/receiving/internal/infrastructure/export"
	"github.com/erp/receiving/internal/infrastructure/persistence"
	"github.com/erp/receiving/internal/infrastructure/persistence/models"
	"github.com/erp/receiving/internal/interfaces/http/dto"
	"github.com/erp/receiving/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

type slipAPI struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newSlipAPI(t *testing.T) *slipAPI {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	svc := apprcv.NewReceivingSlipService(
		persistence.NewGormReceivingSlipRepository(db),
		persistence.NewGormReceivingSlipItemRepository(db),
		persistence.NewGormProductRepository(db),
		persistence.NewGormTransactionScope(db),
	)
	svc.SetExporter(export.NewXLSXSlipExporter())
	h := NewReceivingSlipHandler(svc)

	r := gin.New()
	r.Use(middleware.RequestID())
	api := r.Group("/api/v1/receiving")
	api.GET("/slips", h.List)
	api.GET("/slips/stats/summary", h.Summary)
	api.POST("/slips", h.Create)
	api.GET("/slips/:id", h.Get)
	api.DELETE("/slips/:id", h.Delete)
	api.GET("/slips/:id/items", h.ListItems)
	api.POST("/slips/:id/items", h.AddItem)
	api.POST("/slips/:id/confirm", h.Confirm)
	api.GET("/slips/:id/export", h.Export)
	api.PUT("/slip-items/:item_id", h.UpdateItem)
	api.DELETE("/slip-items/:item_id", h.DeleteItem)

	return &slipAPI{t: t, db: db, router: r}
}

func (a *slipAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, "/api/v1/receiving"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *slipAPI) seedProduct(code string, qty int64) int64 {
	a.t.Helper()
	p, err := catalog.NewProduct(code, "Product "+code, "box")
	require.NoError(a.t, err)
	p.Quantity = qty
	require.NoError(a.t, persistence.NewGormProductRepository(a.db).Save(context.Background(), p))
	return p.ID
}

func (a *slipAPI) stock(id int64) int64 {
	a.t.Helper()
	p, err := persistence.NewGormProductRepository(a.db).FindByID(context.Background(), id)
	require.NoError(a.t, err)
	return p.Quantity
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
	Meta    *dto.Meta       `json:"meta"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func createBody(ref string, items ...map[string]any) map[string]any {
	if len(items) == 0 {
		items = []map[string]any{{"product_name": "Loose part", "quantity": 1, "unit_price": "1.00"}}
	}
	return map[string]any{
		"supplier":     "Acme Supplies",
		"reference_no": ref,
		"receipt_date": "2024-05-02",
		"items":        items,
	}
}

func (a *slipAPI) createSlip(ref string, items ...map[string]any) int64 {
	a.t.Helper()
	w := a.do(http.MethodPost, "/slips", createBody(ref, items...))
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	var res apprcv.CreateSlipResult
	decode(a.t, w, &res)
	return res.ID
}

func TestReceivingSlipHandler_CreateAndGet(t *testing.T) {
	api := newSlipAPI(t)
	boltID := api.seedProduct("BOLT", 0)

	id := api.createSlip("RS-100",
		map[string]any{"product_id": boltID, "product_name": "Bolt", "quantity": 3, "unit_price": "2.50"},
		map[string]any{"product_name": "Washer", "quantity": 10, "unit_price": "0.10"},
	)
	assert.Positive(t, id)

	w := api.do(http.MethodGet, fmt.Sprintf("/slips/%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var slip apprcv.SlipResponse
	env := decode(t, w, &slip)
	assert.True(t, env.Success)
	assert.Equal(t, "RS-100", slip.ReferenceNo)
	assert.Equal(t, "DRAFT", slip.Status)
	assert.Equal(t, int64(13), slip.TotalQuantity)
	assert.Equal(t, "8.5", slip.TotalAmount.String())
	require.Len(t, slip.Items, 2)
	assert.Equal(t, "unit", slip.Items[1].Unit)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), slip.ReceiptDate.UTC())
}

func TestReceivingSlipHandler_CreateValidation(t *testing.T) {
	api := newSlipAPI(t)

	tests := []struct {
		name  string
		body  any
		code  string
		field string
	}{
		{"blank supplier", map[string]any{"supplier": "  ", "reference_no": "R", "receipt_date": "2024-05-02",
			"items": []map[string]any{{"product_name": "x", "quantity": 1}}}, dto.ErrCodeValidation, "supplier"},
		{"no items", map[string]any{"supplier": "Acme", "reference_no": "R", "receipt_date": "2024-05-02",
			"items": []map[string]any{}}, dto.ErrCodeValidation, "items"},
		{"zero quantity", createBody("R", map[string]any{"product_name": "x", "quantity": 0}), dto.ErrCodeValidation, "items[0].quantity"},
		{"bad date", map[string]any{"supplier": "Acme", "reference_no": "R", "receipt_date": "02/05/2024",
			"items": []map[string]any{{"product_name": "x", "quantity": 1}}}, dto.ErrCodeValidation, "receipt_date"},
		{"malformed json", `{"supplier":`, dto.ErrCodeInvalidJSON, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPost, "/slips", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			env := decode(t, w, nil)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotEmpty(t, env.Error.RequestID)
			if tt.field != "" {
				fields := make([]string, 0, len(env.Error.Fields))
				for _, f := range env.Error.Fields {
					fields = append(fields, f.Field)
				}
				assert.Contains(t, fields, tt.field)
			}
		})
	}
}

func TestReceivingSlipHandler_CreateUnknownProduct(t *testing.T) {
	api := newSlipAPI(t)

	w := api.do(http.MethodPost, "/slips", createBody("RS-1",
		map[string]any{"product_id": 999, "product_name": "Ghost", "quantity": 1}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, []any{float64(999)}, env.Error.Details["missing_product_ids"])
}

func TestReceivingSlipHandler_DuplicateReference(t *testing.T) {
	api := newSlipAPI(t)
	api.createSlip("RS-DUP")

	w := api.do(http.MethodPost, "/slips", createBody("RS-DUP"))
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.ErrCodeConflict, decode(t, w, nil).Error.Code)
}

func TestReceivingSlipHandler_ConfirmFlow(t *testing.T) {
	api := newSlipAPI(t)
	boltID := api.seedProduct("BOLT", 5)
	id := api.createSlip("RS-C",
		map[string]any{"product_id": boltID, "product_name": "Bolt", "quantity": 4},
		map[string]any{"product_id": boltID, "product_name": "Bolt", "quantity": 6},
	)

	w := api.do(http.MethodPost, fmt.Sprintf("/slips/%d/confirm", id), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result apprcv.ConfirmSlipResult
	decode(t, w, &result)
	assert.Equal(t, "CONFIRMED", result.Status)
	assert.Equal(t, []apprcv.StockIncrementResponse{{ProductID: boltID, AddedQuantity: 10}}, result.Applied)
	assert.Equal(t, int64(15), api.stock(boltID))

	w = api.do(http.MethodPost, fmt.Sprintf("/slips/%d/confirm", id), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(15), api.stock(boltID))

	w = api.do(http.MethodDelete, fmt.Sprintf("/slips/%d", id), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReceivingSlipHandler_ConfirmUnresolvedItem(t *testing.T) {
	api := newSlipAPI(t)
	id := api.createSlip("RS-U")

	w := api.do(http.MethodPost, fmt.Sprintf("/slips/%d/confirm", id), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	assert.Contains(t, env.Error.Details, "unresolved_item_ids")
}

func TestReceivingSlipHandler_ItemLifecycle(t *testing.T) {
	api := newSlipAPI(t)
	nutID := api.seedProduct("NUT", 0)
	id := api.createSlip("RS-I")

	w := api.do(http.MethodPost, fmt.Sprintf("/slips/%d/items", id),
		map[string]any{"product_id": nutID, "product_name": "Nut", "quantity": 2, "unit_price": "0.05"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var added apprcv.SlipItemResponse
	decode(t, w, &added)
	assert.Equal(t, id, added.SlipID)

	w = api.do(http.MethodPut, fmt.Sprintf("/slip-items/%d", added.ID),
		map[string]any{"product_id": nutID, "product_name": "Nut M6", "quantity": 5, "unit_price": "0.05"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated apprcv.SlipItemResponse
	decode(t, w, &updated)
	assert.Equal(t, int64(5), updated.Quantity)
	assert.Equal(t, "0.25", updated.Total.String())

	w = api.do(http.MethodGet, fmt.Sprintf("/slips/%d/items", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []apprcv.SlipItemResponse
	decode(t, w, &items)
	require.Len(t, items, 2)
	assert.Equal(t, "Nut M6", items[1].ProductName)

	w = api.do(http.MethodDelete, fmt.Sprintf("/slip-items/%d", added.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodDelete, fmt.Sprintf("/slip-items/%d", added.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReceivingSlipHandler_DeleteDraft(t *testing.T) {
	api := newSlipAPI(t)
	id := api.createSlip("RS-D")

	w := api.do(http.MethodDelete, fmt.Sprintf("/slips/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(http.MethodGet, fmt.Sprintf("/slips/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decode(t, w, nil).Error.Code)
}

func TestReceivingSlipHandler_InvalidIDs(t *testing.T) {
	api := newSlipAPI(t)

	for _, path := range []string{"/slips/abc", "/slips/0", "/slips/-3/items"} {
		w := api.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
	w := api.do(http.MethodPut, "/slip-items/x", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceivingSlipHandler_ListAndSummary(t *testing.T) {
	api := newSlipAPI(t)
	boltID := api.seedProduct("BOLT", 0)
	api.createSlip("RS-A")
	confirmed := api.createSlip("RS-B", map[string]any{"product_id": boltID, "product_name": "Bolt", "quantity": 1})
	api.createSlip("XY-C")
	require.Equal(t, http.StatusOK, api.do(http.MethodPost, fmt.Sprintf("/slips/%d/confirm", confirmed), nil).Code)

	w := api.do(http.MethodGet, "/slips?search=rs-&page_size=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []apprcv.SlipListItemResponse
	env := decode(t, w, &rows)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(2), env.Meta.Total)
	assert.Equal(t, 2, env.Meta.TotalPages)
	assert.Len(t, rows, 1)

	w = api.do(http.MethodGet, "/slips?status=confirmed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &rows)
	require.Len(t, rows, 1)
	assert.Equal(t, "RS-B", rows[0].ReferenceNo)

	w = api.do(http.MethodGet, "/slips?status=archived", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/slips?date_from=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/slips/stats/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary apprcv.SlipStatusSummary
	decode(t, w, &summary)
	assert.Equal(t, apprcv.SlipStatusSummary{Draft: 2, Confirmed: 1, Total: 3}, summary)
}

func TestReceivingSlipHandler_ListOutOfRangePaging(t *testing.T) {
	api := newSlipAPI(t)
	api.createSlip("RS-1")

	for _, query := range []string{"page=-1", "page_size=-5", "page=0&page_size=0", "page=-2&page_size=-20", "page_size=1000"} {
		t.Run(query, func(t *testing.T) {
			w := api.do(http.MethodGet, "/slips?"+query, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			env := decode(t, w, nil)
			require.NotNil(t, env.Meta)
			assert.Equal(t, 1, env.Meta.Page)
			assert.Equal(t, apprcv.DefaultPageSize, env.Meta.PageSize)
			assert.Equal(t, int64(1), env.Meta.Total)
		})
	}

	w := api.do(http.MethodGet, "/slips?page=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReceivingSlipHandler_QuantityLimit(t *testing.T) {
	api := newSlipAPI(t)

	w := api.do(http.MethodPost, "/slips", createBody("RS-BIG",
		map[string]any{"product_name": "Bulk", "quantity": 1_000_000_001, "unit_price": "1"}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeValidation, decode(t, w, nil).Error.Code)

	id := api.createSlip("RS-OK")
	w = api.do(http.MethodPost, fmt.Sprintf("/slips/%d/items", id),
		map[string]any{"product_name": "Bulk", "quantity": 1_000_000_000, "unit_price": "1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestReceivingSlipHandler_UnitPriceRoundedToStoredScale(t *testing.T) {
	api := newSlipAPI(t)
	id := api.createSlip("RS-P")

	w := api.do(http.MethodPost, fmt.Sprintf("/slips/%d/items", id),
		map[string]any{"product_name": "Washer", "quantity": 3, "unit_price": "0.33333"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var added apprcv.SlipItemResponse
	decode(t, w, &added)
	assert.Equal(t, "0.3333", added.UnitPrice.String())
	assert.Equal(t, "0.9999", added.Total.String())

	w = api.do(http.MethodGet, fmt.Sprintf("/slips/%d/items", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []apprcv.SlipItemResponse
	decode(t, w, &items)
	require.Len(t, items, 2)
	assert.True(t, added.UnitPrice.Equal(items[1].UnitPrice))
	assert.True(t, added.Total.Equal(items[1].Total))
}

func TestReceivingSlipHandler_Export(t *testing.T) {
	api := newSlipAPI(t)
	id := api.createSlip("RS/EXP 1")

	w := api.do(http.MethodGet, fmt.Sprintf("/slips/%d/export", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.XLSXContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=receiving-slip-RS_EXP_1.xlsx`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))

	w = api.do(http.MethodGet, "/slips/9999/export", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
