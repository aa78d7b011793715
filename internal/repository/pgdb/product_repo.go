package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/internal/repository/pgdb/converter"
	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/hfsolutions/catalog-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// productColumns — колонки товара для выборок с категорией.
const productColumns = `
	pr.id, pr.title, pr.description, pr.price, pr.stock, pr.category_id,
	pr.rating_rate, pr.rating_count, pr.image, pr.deleted, pr.created_at, pr.updated_at,
	cat.name`

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Create вставляет новый товар. Требует транзакцию в контексте.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (id, title, description, price, stock, category_id, rating_rate, rating_count, image, deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.ID, model.Title, model.Description, model.Price, model.Stock,
		model.CategoryID, model.RatingRate, model.RatingCount, model.Image, model.Deleted,
	).Scan(&model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update перезаписывает все изменяемые поля товара.
// Требует транзакцию в контексте.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		UPDATE products
		SET title = $2, description = $3, price = $4, stock = $5, category_id = $6,
			rating_rate = $7, rating_count = $8, image = $9, deleted = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.ID, model.Title, model.Description, model.Price, model.Stock,
		model.CategoryID, model.RatingRate, model.RatingCount, model.Image, model.Deleted,
	).Scan(&model.CreatedAt, &model.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// GetByID возвращает товар по id, включая логически удалённые.
// Читает из транзакции, если она есть в контексте.
func (p *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
		SELECT id, title, description, price, stock, category_id,
			rating_rate, rating_count, image, deleted, created_at, updated_at
		FROM products
		WHERE id = $1;
	`

	var model converter.ProductModel
	err := tr.QuerierFromCtx(ctx, p.pool).QueryRow(ctx, query, id).Scan(
		&model.ID, &model.Title, &model.Description, &model.Price, &model.Stock,
		&model.CategoryID, &model.RatingRate, &model.RatingCount, &model.Image,
		&model.Deleted, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// ListActive возвращает страницу неудалённых товаров.
// Предикат: deleted = FALSE. Порядок: created_at, id.
func (p *ProductRepo) ListActive(ctx context.Context, page usecase.PageReq) ([]usecase.ProductWithCategory, int64, error) {
	where := `pr.deleted = FALSE`
	return p.listPage(ctx, where, nil, page)
}

// ListByCategory возвращает страницу неудалённых товаров категории.
// Предикат: category_id = $1 AND deleted = FALSE. Порядок: created_at, id.
func (p *ProductRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID, page usecase.PageReq) ([]usecase.ProductWithCategory, int64, error) {
	where := `pr.category_id = $1 AND pr.deleted = FALSE`
	return p.listPage(ctx, where, []any{categoryID}, page)
}

// SearchByTitle ищет неудалённые товары по подстроке названия без учёта
// регистра. Предикат: title ILIKE %$1%. Порядок: created_at, id.
func (p *ProductRepo) SearchByTitle(ctx context.Context, query string, page usecase.PageReq) ([]usecase.ProductWithCategory, int64, error) {
	where := `pr.deleted = FALSE AND pr.title ILIKE '%' || $1 || '%'`
	return p.listPage(ctx, where, []any{query}, page)
}

// ListByPriceRange возвращает неудалённые товары с ценой в [min, max],
// обе границы включительны. Порядок: created_at, id.
func (p *ProductRepo) ListByPriceRange(ctx context.Context, min, max decimal.Decimal, page usecase.PageReq) ([]usecase.ProductWithCategory, int64, error) {
	where := `pr.deleted = FALSE AND pr.price BETWEEN $1 AND $2`
	return p.listPage(ctx, where, []any{min, max}, page)
}

// ExistsActiveByCategory проверяет, остались ли в категории неудалённые товары.
func (p *ProductRepo) ExistsActiveByCategory(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM products WHERE category_id = $1 AND deleted = FALSE
		);
	`

	var exists bool
	err := tr.QuerierFromCtx(ctx, p.pool).QueryRow(ctx, query, categoryID).Scan(&exists)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

// listPage выполняет пару запросов count+list по общему предикату.
func (p *ProductRepo) listPage(ctx context.Context, where string, args []any, page usecase.PageReq) ([]usecase.ProductWithCategory, int64, error) {
	countQuery := `SELECT COUNT(*) FROM products pr WHERE ` + where + `;`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	listQuery := `
		SELECT ` + productColumns + `
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE ` + where + `
		ORDER BY pr.created_at, pr.id
	` + fmt.Sprintf("LIMIT $%d OFFSET $%d;", len(args)+1, len(args)+2)

	listArgs := append(append([]any{}, args...), page.Size, page.Offset())

	rows, err := p.pool.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductWithCategory, 0)
	for rows.Next() {
		var (
			model        converter.ProductModel
			categoryName string
		)
		if err := rows.Scan(
			&model.ID, &model.Title, &model.Description, &model.Price, &model.Stock,
			&model.CategoryID, &model.RatingRate, &model.RatingCount, &model.Image,
			&model.Deleted, &model.CreatedAt, &model.UpdatedAt, &categoryName,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, usecase.ProductWithCategory{
			Product:      *p.conv.ToEntity(&model),
			CategoryName: categoryName,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, total, nil
}
