package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type categoryFixture struct {
	uc           *CategoryUseCase
	categoryRepo *fakeCategoryRepo
	productRepo  *fakeProductRepo
	db           *fakeDB
}

func newCategoryFixture() *categoryFixture {
	f := &categoryFixture{
		categoryRepo: newFakeCategoryRepo(),
		productRepo:  newFakeProductRepo(),
		db:           newFakeDB(),
	}
	f.uc = NewCategoryUC(f.categoryRepo, f.productRepo, f.db, nopLogger{})
	return f
}

func TestCategoryCreate(t *testing.T) {
	f := newCategoryFixture()

	res, err := f.uc.Create(context.Background(), &CreateCategoryReq{Name: "  Books  "})
	require.NoError(t, err)

	assert.Equal(t, "Books", res.Name)
	assert.NotEqual(t, uuid.Nil, res.ID)

	got, err := f.uc.Get(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Books", got.Name)
}

func TestCategoryCreate_DuplicateNameCaseInsensitive(t *testing.T) {
	f := newCategoryFixture()

	_, err := f.uc.Create(context.Background(), &CreateCategoryReq{Name: "Books"})
	require.NoError(t, err)

	_, err = f.uc.Create(context.Background(), &CreateCategoryReq{Name: "bOOkS"})
	require.ErrorIs(t, err, e.ErrCategoryExists)

	assert.Equal(t, 1, f.db.tx.rollbacks)
}

func TestCategoryUpdate_OwnCaseChangeAllowed(t *testing.T) {
	f := newCategoryFixture()

	created, err := f.uc.Create(context.Background(), &CreateCategoryReq{Name: "books"})
	require.NoError(t, err)

	res, err := f.uc.Update(context.Background(), created.ID, &UpdateCategoryReq{Name: "Books"})
	require.NoError(t, err)
	assert.Equal(t, "Books", res.Name)
}

func TestCategoryUpdate_CollisionRejected(t *testing.T) {
	f := newCategoryFixture()

	_, err := f.uc.Create(context.Background(), &CreateCategoryReq{Name: "Books"})
	require.NoError(t, err)
	games, err := f.uc.Create(context.Background(), &CreateCategoryReq{Name: "Games"})
	require.NoError(t, err)

	_, err = f.uc.Update(context.Background(), games.ID, &UpdateCategoryReq{Name: "BOOKS"})
	require.ErrorIs(t, err, e.ErrCategoryExists)
}

func TestCategoryUpdate_NotFound(t *testing.T) {
	f := newCategoryFixture()

	_, err := f.uc.Update(context.Background(), uuid.New(), &UpdateCategoryReq{Name: "Books"})
	require.ErrorIs(t, err, e.ErrCategoryNotFound)
}

func TestCategoryDelete_BlockedByActiveProduct(t *testing.T) {
	f := newCategoryFixture()

	category := domain.NewCategory("Books")
	f.categoryRepo.put(*category)

	product := domain.NewProduct("Go in Action", "", decimal.RequireFromString("39.99"), 5, category.ID, domain.NewRating(nil, 0), nil)
	f.productRepo.put(*product)

	err := f.uc.Delete(context.Background(), category.ID)
	require.ErrorIs(t, err, e.ErrCategoryHasProducts)

	_, err = f.uc.Get(context.Background(), category.ID)
	require.NoError(t, err)
}

func TestCategoryDelete_DeletedProductsDoNotBlock(t *testing.T) {
	f := newCategoryFixture()

	category := domain.NewCategory("Books")
	f.categoryRepo.put(*category)

	product := domain.NewProduct("Go in Action", "", decimal.RequireFromString("39.99"), 5, category.ID, domain.NewRating(nil, 0), nil)
	product.Deleted = true
	f.productRepo.put(*product)

	require.NoError(t, f.uc.Delete(context.Background(), category.ID))

	_, err := f.uc.Get(context.Background(), category.ID)
	require.ErrorIs(t, err, e.ErrCategoryNotFound)
}

func TestCategoryDelete_NotFound(t *testing.T) {
	f := newCategoryFixture()

	err := f.uc.Delete(context.Background(), uuid.New())
	require.ErrorIs(t, err, e.ErrCategoryNotFound)
}
