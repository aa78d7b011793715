package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeTx подменяет pgx.Tx в транзакционных сценариях.
// Менеджер транзакций вызывает только Commit и Rollback.
type fakeTx struct {
	pgx.Tx
	commits   int
	rollbacks int
	commitErr error
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	t.rollbacks++
	return nil
}

type fakeDB struct {
	tx       *fakeTx
	beginErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{tx: &fakeTx{}}
}

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return d.BeginTx(ctx, pgx.TxOptions{})
}

func (d *fakeDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]domain.Product

	createErr error
	updateErr error
	getCalls  int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]domain.Product)}
}

func (r *fakeProductRepo) put(p domain.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
}

func (r *fakeProductRepo) get(id uuid.UUID) domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id]
}

func (r *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.put(*product)
	cp := *product
	return &cp, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	r.mu.Lock()
	if _, ok := r.products[product.ID]; !ok {
		r.mu.Unlock()
		return nil, e.ErrProductNotFound
	}
	r.products[product.ID] = *product
	r.mu.Unlock()
	cp := *product
	return &cp, nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	p, ok := r.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	cp := p
	return &cp, nil
}

func (r *fakeProductRepo) ListActive(ctx context.Context, page PageReq) ([]ProductWithCategory, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID, page PageReq) ([]ProductWithCategory, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) SearchByTitle(ctx context.Context, query string, page PageReq) ([]ProductWithCategory, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) ListByPriceRange(ctx context.Context, min, max decimal.Decimal, page PageReq) ([]ProductWithCategory, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) ExistsActiveByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.CategoryID == categoryID && !p.Deleted {
			return true, nil
		}
	}
	return false, nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]domain.Category)}
}

func (r *fakeCategoryRepo) put(c domain.Category) {
	r.categories[c.ID] = c
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	result := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		result = append(result, c)
	}
	return result, nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, e.ErrCategoryNotFound
	}
	cp := c
	return &cp, nil
}

func (r *fakeCategoryRepo) ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	r.put(*category)
	cp := *category
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if _, ok := r.categories[category.ID]; !ok {
		return nil, e.ErrCategoryNotFound
	}
	r.put(*category)
	cp := *category
	return &cp, nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return e.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []ProductAuditEvent
}

func (p *fakePublisher) Publish(ctx context.Context, event *ProductAuditEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)
}

func (p *fakePublisher) published() []ProductAuditEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ProductAuditEvent(nil), p.events...)
}

type fakeCache struct {
	mu      sync.Mutex
	items   map[uuid.UUID]*ProductRes
	sets    int
	deletes []uuid.UUID
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[uuid.UUID]*ProductRes)}
}

func (c *fakeCache) GetProduct(ctx context.Context, id uuid.UUID) (*ProductRes, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[id], nil
}

func (c *fakeCache) SetProduct(ctx context.Context, product *ProductRes) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[product.ID] = product
	c.sets++
	return nil
}

func (c *fakeCache) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
	c.deletes = append(c.deletes, id)
	return nil
}

func (c *fakeCache) setCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets
}

type fakeImages struct {
	uploadKey string
	uploadErr error
	cleaned   []string
}

func (f *fakeImages) UploadImage(ctx context.Context, req *UploadImageReq) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return f.uploadKey, nil
}

func (f *fakeImages) CleanupImage(key string) {
	f.cleaned = append(f.cleaned, key)
}

type fakeAuditRepo struct {
	records    []domain.ProductAudit
	insertErr  error
	limitGiven int
}

func (r *fakeAuditRepo) Insert(ctx context.Context, audit *domain.ProductAudit) (*domain.ProductAudit, error) {
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	cp := *audit
	cp.ID = uuid.NewString()
	r.records = append(r.records, cp)
	return &cp, nil
}

func (r *fakeAuditRepo) ByProduct(ctx context.Context, productID uuid.UUID) ([]domain.ProductAudit, error) {
	var result []domain.ProductAudit
	for _, a := range r.records {
		if a.ProductID == productID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *fakeAuditRepo) Latest(ctx context.Context, limit int) ([]domain.ProductAudit, error) {
	r.limitGiven = limit
	if len(r.records) > limit {
		return r.records[:limit], nil
	}
	return r.records, nil
}

func (r *fakeAuditRepo) ByAction(ctx context.Context, action domain.AuditAction) ([]domain.ProductAudit, error) {
	var result []domain.ProductAudit
	for _, a := range r.records {
		if a.Action == action {
			result = append(result, a)
		}
	}
	return result, nil
}
