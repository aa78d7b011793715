package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeProductUC возвращает заранее заданные ответы и запоминает аргументы.
type fakeProductUC struct {
	res     *usecase.ProductRes
	pageRes *usecase.ProductPageRes
	err     error

	lastPage usecase.PageReq
	deleted  []uuid.UUID
}

func (f *fakeProductUC) Create(ctx context.Context, req *usecase.CreateProductReq) (*usecase.ProductRes, error) {
	return f.res, f.err
}

func (f *fakeProductUC) List(ctx context.Context, page usecase.PageReq) (*usecase.ProductPageRes, error) {
	f.lastPage = page
	return f.pageRes, f.err
}

func (f *fakeProductUC) Get(ctx context.Context, id uuid.UUID) (*usecase.ProductRes, error) {
	return f.res, f.err
}

func (f *fakeProductUC) Update(ctx context.Context, id uuid.UUID, req *usecase.UpdateProductReq) (*usecase.ProductRes, error) {
	return f.res, f.err
}

func (f *fakeProductUC) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeProductUC) UpdateStock(ctx context.Context, id uuid.UUID, req *usecase.UpdateStockReq) (*usecase.ProductRes, error) {
	return f.res, f.err
}

func (f *fakeProductUC) ByCategory(ctx context.Context, categoryID uuid.UUID, page usecase.PageReq) (*usecase.ProductPageRes, error) {
	f.lastPage = page
	return f.pageRes, f.err
}

func (f *fakeProductUC) Search(ctx context.Context, query string, page usecase.PageReq) (*usecase.ProductPageRes, error) {
	f.lastPage = page
	return f.pageRes, f.err
}

func (f *fakeProductUC) PriceRange(ctx context.Context, min, max decimal.Decimal, page usecase.PageReq) (*usecase.ProductPageRes, error) {
	f.lastPage = page
	return f.pageRes, f.err
}

func (f *fakeProductUC) AttachImage(ctx context.Context, id uuid.UUID, req *usecase.UploadImageReq) (*usecase.ProductRes, error) {
	return f.res, f.err
}

type fakeCategoryUC struct {
	list []usecase.CategoryRes
	res  *usecase.CategoryRes
	err  error
}

func (f *fakeCategoryUC) List(ctx context.Context) ([]usecase.CategoryRes, error) {
	return f.list, f.err
}

func (f *fakeCategoryUC) Get(ctx context.Context, id uuid.UUID) (*usecase.CategoryRes, error) {
	return f.res, f.err
}

func (f *fakeCategoryUC) Create(ctx context.Context, req *usecase.CreateCategoryReq) (*usecase.CategoryRes, error) {
	return f.res, f.err
}

func (f *fakeCategoryUC) Update(ctx context.Context, id uuid.UUID, req *usecase.UpdateCategoryReq) (*usecase.CategoryRes, error) {
	return f.res, f.err
}

func (f *fakeCategoryUC) Delete(ctx context.Context, id uuid.UUID) error {
	return f.err
}

type fakeAuditUC struct {
	res        []usecase.AuditRes
	err        error
	lastAction domain.AuditAction
}

func (f *fakeAuditUC) ByProduct(ctx context.Context, productID uuid.UUID) ([]usecase.AuditRes, error) {
	return f.res, f.err
}

func (f *fakeAuditUC) Latest(ctx context.Context) ([]usecase.AuditRes, error) {
	return f.res, f.err
}

func (f *fakeAuditUC) ByAction(ctx context.Context, action domain.AuditAction) ([]usecase.AuditRes, error) {
	f.lastAction = action
	return f.res, f.err
}

func newTestRouter(productUC usecase.ProductUC, categoryUC usecase.CategoryUC, auditUC usecase.AuditUC) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api", func(api chi.Router) {
		registerProductRoutes(api, NewProductHandler(productUC, 15<<20, nopLogger{}))
		registerCategoryRoutes(api, NewCategoryHandler(categoryUC, nopLogger{}))
		registerAuditRoutes(api, NewAuditHandler(auditUC, nopLogger{}))
	})
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateProduct_ValidationErrorBody(t *testing.T) {
	router := newTestRouter(&fakeProductUC{}, &fakeCategoryUC{}, &fakeAuditUC{})

	payload := `{"title":"","price":-5,"stock":-1}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Equal(t, "VALIDATION_ERROR", body.Error)
	assert.Equal(t, "/api/products", body.Path)
	assert.NotEmpty(t, body.Timestamp)

	// Сообщение собирается из пар "поле: сообщение" в порядке проверки
	assert.Contains(t, body.Message, "title: must not be blank")
	assert.Contains(t, body.Message, "price: must be greater than 0")
	assert.Contains(t, body.Message, "stock: must be greater than or equal to 0")
	assert.Contains(t, body.Message, "categoryId: must not be null")
}

func TestCreateProduct_Success(t *testing.T) {
	categoryID := uuid.New()
	productID := uuid.New()
	uc := &fakeProductUC{res: &usecase.ProductRes{
		ID:           productID,
		Title:        "Go in Action",
		Price:        decimal.RequireFromString("39.99"),
		Stock:        5,
		CategoryID:   categoryID,
		CategoryName: "Books",
	}}
	router := newTestRouter(uc, &fakeCategoryUC{}, &fakeAuditUC{})

	payload, err := json.Marshal(map[string]any{
		"title":      "Go in Action",
		"price":      39.99,
		"stock":      5,
		"categoryId": categoryID,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBuffer(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, productID, body.ID)
	assert.Equal(t, "Books", body.CategoryName)
	assert.Equal(t, 5, body.Stock)
}

func TestGetProduct_NotFound(t *testing.T) {
	uc := &fakeProductUC{err: e.ErrProductNotFound}
	router := newTestRouter(uc, &fakeCategoryUC{}, &fakeAuditUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "RESOURCE_NOT_FOUND", body.Error)
}

func TestGetProduct_InvalidID(t *testing.T) {
	router := newTestRouter(&fakeProductUC{}, &fakeCategoryUC{}, &fakeAuditUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INVALID_PATH_PARAMETER", body.Error)
}

func TestListProducts_PaginationDefaults(t *testing.T) {
	uc := &fakeProductUC{pageRes: &usecase.ProductPageRes{Content: []usecase.ProductRes{}}}
	router := newTestRouter(uc, &fakeCategoryUC{}, &fakeAuditUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.PageReq{Page: 0, Size: 20}, uc.lastPage)
}

func TestListProducts_SizeCapped(t *testing.T) {
	uc := &fakeProductUC{pageRes: &usecase.ProductPageRes{Content: []usecase.ProductRes{}}}
	router := newTestRouter(uc, &fakeCategoryUC{}, &fakeAuditUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/products?page=3&size=500", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, usecase.PageReq{Page: 3, Size: 100}, uc.lastPage)
}

func TestDeleteProduct_NoContent(t *testing.T) {
	uc := &fakeProductUC{}
	router := newTestRouter(uc, &fakeCategoryUC{}, &fakeAuditUC{})

	id := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/products/"+id.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []uuid.UUID{id}, uc.deleted)
}

func TestPriceRange_InvalidBounds(t *testing.T) {
	router := newTestRouter(&fakeProductUC{}, &fakeCategoryUC{}, &fakeAuditUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/products/price-range?min=abc&max=40", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body.Error)
	assert.Contains(t, body.Message, "min: must be a decimal number")
}

func TestCreateCategory_BusinessRuleViolation(t *testing.T) {
	uc := &fakeCategoryUC{err: e.ErrCategoryExists}
	router := newTestRouter(&fakeProductUC{}, uc, &fakeAuditUC{})

	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewBufferString(`{"name":"Books"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "BUSINESS_RULE_VIOLATION", body.Error)
}

func TestCreateCategory_DataConflict(t *testing.T) {
	uc := &fakeCategoryUC{err: e.ErrDataConflict}
	router := newTestRouter(&fakeProductUC{}, uc, &fakeAuditUC{})

	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewBufferString(`{"name":"Books"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "DATA_CONFLICT", body.Error)
}

func TestDeleteCategory_BlockedByProducts(t *testing.T) {
	uc := &fakeCategoryUC{err: e.ErrCategoryHasProducts}
	router := newTestRouter(&fakeProductUC{}, uc, &fakeAuditUC{})

	req := httptest.NewRequest(http.MethodDelete, "/api/categories/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "BUSINESS_RULE_VIOLATION", body.Error)
	assert.Equal(t, "category has active products", body.Message)
}

func TestAuditByAction(t *testing.T) {
	uc := &fakeAuditUC{res: []usecase.AuditRes{}}
	router := newTestRouter(&fakeProductUC{}, &fakeCategoryUC{}, uc)

	req := httptest.NewRequest(http.MethodGet, "/api/audit/actions/STOCK_UPDATE", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.AuditStockUpdate, uc.lastAction)
}

func TestAuditByAction_Unknown(t *testing.T) {
	router := newTestRouter(&fakeProductUC{}, &fakeCategoryUC{}, &fakeAuditUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/audit/actions/RENAME", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INVALID_PATH_PARAMETER", body.Error)
}

func TestInternalErrorIsOpaque(t *testing.T) {
	uc := &fakeProductUC{err: assert.AnError}
	router := newTestRouter(uc, &fakeCategoryUC{}, &fakeAuditUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Error)
	assert.Equal(t, "internal server error", body.Message)
}
