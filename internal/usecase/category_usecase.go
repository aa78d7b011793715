package usecase

import (
	"context"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/hfsolutions/catalog-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
)

// CategoryUseCase реализует бизнес-логику управления категориями.
// Уникальность имени проверяется без учёта регистра; удаление категории
// жёсткое и блокируется при наличии активных товаров.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	db           transaction.Transactional
	logger       logger.Logger
}

func NewCategoryUC(
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	db transaction.Transactional,
	logger logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		db:           db,
		logger:       logger,
	}
}

// List возвращает все категории.
func (c *CategoryUseCase) List(ctx context.Context) ([]CategoryRes, error) {
	const op = "CategoryUseCase.List"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]CategoryRes, 0, len(categories))
	for i := range categories {
		result = append(result, *ToCategoryRes(&categories[i]))
	}

	return result, nil
}

// Get возвращает категорию по идентификатору.
func (c *CategoryUseCase) Get(ctx context.Context, id uuid.UUID) (*CategoryRes, error) {
	const op = "CategoryUseCase.Get"

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return ToCategoryRes(category), nil
}

// Create создает категорию, если имя ещё не занято (без учёта регистра).
func (c *CategoryUseCase) Create(ctx context.Context, req *CreateCategoryReq) (res *CategoryRes, err error) {
	const op = "CategoryUseCase.Create"

	name := strings.TrimSpace(req.Name)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.db)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	exists, err := c.categoryRepo.ExistsByNameIgnoreCase(ctx, name)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if exists {
		err = e.ErrCategoryExists
		return nil, e.Wrap(op, err)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(name))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return ToCategoryRes(category), nil
}

// Update переименовывает категорию. Переименование в имя другой
// существующей категории (без учёта регистра) запрещено; смена только
// регистра собственного имени разрешена.
func (c *CategoryUseCase) Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryReq) (res *CategoryRes, err error) {
	const op = "CategoryUseCase.Update"

	name := strings.TrimSpace(req.Name)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.db)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !strings.EqualFold(category.Name, name) {
		exists, errExists := c.categoryRepo.ExistsByNameIgnoreCase(ctx, name)
		if errExists != nil {
			err = errExists
			return nil, e.Wrap(op, err)
		}
		if exists {
			err = e.ErrCategoryExists
			return nil, e.Wrap(op, err)
		}
	}

	category.Name = name
	category, err = c.categoryRepo.Update(ctx, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return ToCategoryRes(category), nil
}

// Delete жёстко удаляет категорию. Категория с неудалёнными товарами
// не удаляется; ссылки только из логически удалённых товаров не мешают.
func (c *CategoryUseCase) Delete(ctx context.Context, id uuid.UUID) (err error) {
	const op = "CategoryUseCase.Delete"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.db)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	hasProducts, err := c.productRepo.ExistsActiveByCategory(ctx, category.ID)
	if err != nil {
		return e.Wrap(op, err)
	}
	if hasProducts {
		err = e.ErrCategoryHasProducts
		return e.Wrap(op, err)
	}

	if err = c.categoryRepo.Delete(ctx, category.ID); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
