package pgdb

import (
	"context"
	"database/sql"
	"log"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/internal/repository/pgdb/converter"
	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var testPool *pgxpool.Pool

func setupTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	var (
		dbName = "catalog_test"
		dbPwd  = "password"
		dbUser = "catalog"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:15",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), "5432/tcp")
	if err != nil {
		return dbContainer.Terminate, err
	}

	dsn := "postgres://" + dbUser + ":" + dbPwd + "@" + dbHost + ":" + dbPort.Port() + "/" + dbName + "?sslmode=disable"

	if err := applyMigrations(dsn); err != nil {
		return dbContainer.Terminate, err
	}

	testPool, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		return dbContainer.Terminate, err
	}

	return dbContainer.Terminate, nil
}

// applyMigrations накатывает реальные файлы миграций, чтобы тесты
// работали против той же схемы, что и приложение.
func applyMigrations(dsn string) error {
	sqlDb, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer sqlDb.Close()

	driver, err := migratepg.WithInstance(sqlDb, &migratepg.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://../../../db/migrations", "postgres", driver)
	if err != nil {
		return err
	}

	return m.Up()
}

func TestMain(m *testing.M) {
	teardown, err := setupTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}
}

// txCtx открывает транзакцию и кладёт её в контекст так же,
// как это делает слой usecase.
func txCtx(t *testing.T) (context.Context, func()) {
	t.Helper()

	ctx := context.Background()
	tx, err := testPool.Begin(ctx)
	require.NoError(t, err)

	return context.WithValue(ctx, "tx", tx), func() {
		require.NoError(t, tx.Commit(context.Background()))
	}
}

func truncateTables(t *testing.T) {
	t.Helper()

	ctx := context.Background()
	_, err := testPool.Exec(ctx, `DELETE FROM products;`)
	require.NoError(t, err)
	_, err = testPool.Exec(ctx, `DELETE FROM categories;`)
	require.NoError(t, err)
}

func mustCreateCategory(t *testing.T, name string) *domain.Category {
	t.Helper()

	repo := NewCategoryRepo(testPool, converter.NewCategoryConverterImpl())
	ctx, commit := txCtx(t)
	created, err := repo.Create(ctx, domain.NewCategory(name))
	require.NoError(t, err)
	commit()

	return created
}

func mustCreateProduct(t *testing.T, categoryID uuid.UUID, title, price string, stock int) *domain.Product {
	t.Helper()

	repo := NewProductRepo(testPool, converter.NewProductConverterImpl())
	product := domain.NewProduct(title, "", decimal.RequireFromString(price), stock,
		categoryID, domain.NewRating(nil, 0), nil)

	ctx, commit := txCtx(t)
	created, err := repo.Create(ctx, product)
	require.NoError(t, err)
	commit()

	return created
}

func containsPrice(items []usecase.ProductWithCategory, price string) bool {
	want := decimal.RequireFromString(price)
	for _, item := range items {
		if item.Product.Price.Cmp(want) == 0 {
			return true
		}
	}

	return false
}

func TestProductRepo_ListByPriceRange_InclusiveBounds(t *testing.T) {
	truncateTables(t)

	category := mustCreateCategory(t, "Electronics")
	mustCreateProduct(t, category.ID, "Below", "39.99", 1)
	mustCreateProduct(t, category.ID, "Exact", "40.00", 1)
	mustCreateProduct(t, category.ID, "Above", "40.01", 1)

	repo := NewProductRepo(testPool, converter.NewProductConverterImpl())
	ctx := context.Background()
	page := usecase.PageReq{Page: 0, Size: 20}

	items, total, err := repo.ListByPriceRange(ctx,
		decimal.RequireFromString("40.00"), decimal.RequireFromString("100.00"), page)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.False(t, containsPrice(items, "39.99"))
	require.True(t, containsPrice(items, "40.00"))
	require.True(t, containsPrice(items, "40.01"))

	items, total, err = repo.ListByPriceRange(ctx,
		decimal.RequireFromString("10.00"), decimal.RequireFromString("40.00"), page)
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.True(t, containsPrice(items, "39.99"))
	require.False(t, containsPrice(items, "40.01"))

	_, total, err = repo.ListByPriceRange(ctx,
		decimal.RequireFromString("40.01"), decimal.RequireFromString("100.00"), page)
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
}

func TestProductRepo_ListByPriceRange_SkipsDeleted(t *testing.T) {
	truncateTables(t)

	category := mustCreateCategory(t, "Books")
	kept := mustCreateProduct(t, category.ID, "Kept", "25.00", 1)
	removed := mustCreateProduct(t, category.ID, "Removed", "25.00", 1)

	repo := NewProductRepo(testPool, converter.NewProductConverterImpl())
	removed.Deleted = true
	ctx, commit := txCtx(t)
	_, err := repo.Update(ctx, removed)
	require.NoError(t, err)
	commit()

	items, total, err := repo.ListByPriceRange(context.Background(),
		decimal.RequireFromString("20.00"), decimal.RequireFromString("30.00"),
		usecase.PageReq{Page: 0, Size: 20})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	require.Equal(t, kept.ID, items[0].Product.ID)
}

func TestProductRepo_ListActive_Pagination(t *testing.T) {
	truncateTables(t)

	category := mustCreateCategory(t, "Toys")
	for _, title := range []string{"One", "Two", "Three", "Four", "Five"} {
		mustCreateProduct(t, category.ID, title, "5.00", 1)
	}

	repo := NewProductRepo(testPool, converter.NewProductConverterImpl())
	ctx := context.Background()

	seen := make(map[uuid.UUID]bool)
	for page := 0; page < 3; page++ {
		items, total, err := repo.ListActive(ctx, usecase.PageReq{Page: page, Size: 2})
		require.NoError(t, err)
		require.EqualValues(t, 5, total)
		for _, item := range items {
			require.False(t, seen[item.Product.ID], "страницы пересекаются")
			seen[item.Product.ID] = true
			require.Equal(t, "Toys", item.CategoryName)
		}
	}
	require.Len(t, seen, 5)

	items, total, err := repo.ListActive(ctx, usecase.PageReq{Page: 3, Size: 2})
	require.NoError(t, err)
	require.EqualValues(t, 5, total)
	require.Empty(t, items)
}

func TestCategoryRepo_DeleteWithSoftDeletedProducts(t *testing.T) {
	truncateTables(t)

	category := mustCreateCategory(t, "Seasonal")
	product := mustCreateProduct(t, category.ID, "Garland", "12.50", 3)

	productRepo := NewProductRepo(testPool, converter.NewProductConverterImpl())
	product.Deleted = true
	ctx, commit := txCtx(t)
	_, err := productRepo.Update(ctx, product)
	require.NoError(t, err)
	commit()

	// Строка товара остаётся в таблице и продолжает ссылаться на
	// категорию, но удалению категории это мешать не должно.
	categoryRepo := NewCategoryRepo(testPool, converter.NewCategoryConverterImpl())
	ctx, commit = txCtx(t)
	require.NoError(t, categoryRepo.Delete(ctx, category.ID))
	commit()

	remaining, err := productRepo.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	require.True(t, remaining.Deleted)
	require.Equal(t, category.ID, remaining.CategoryID)
}
