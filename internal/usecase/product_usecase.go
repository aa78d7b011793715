package usecase

import (
	"context"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/hfsolutions/catalog-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ProductUseCase реализует бизнес-логику управления товарами каталога.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	db           transaction.Transactional
	publisher    AuditPublisher
	cacheRepo    CacheRepository
	imagesInfra  ImagesInfra
	logger       logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	db transaction.Transactional,
	publisher AuditPublisher,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		db:           db,
		publisher:    publisher,
		cacheRepo:    cacheRepo,
		imagesInfra:  imagesInfra,
		logger:       logger,
	}
}

// Create создает товар в существующей категории и публикует событие CREATE.
func (p *ProductUseCase) Create(ctx context.Context, req *CreateProductReq) (res *ProductRes, err error) {
	const op = "ProductUseCase.Create"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.db)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	category, err := p.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(
		strings.TrimSpace(req.Title),
		req.Description,
		req.Price,
		req.Stock,
		category.ID,
		domain.NewRating(req.Rating, 0),
		req.Image,
	)

	product, err = p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.publish(ctx, product.ID, domain.AuditCreate, map[string]any{"title": product.Title})

	return ToProductRes(product, category.Name), nil
}

// List возвращает страницу неудалённых товаров.
func (p *ProductUseCase) List(ctx context.Context, page PageReq) (*ProductPageRes, error) {
	const op = "ProductUseCase.List"

	rows, total, err := p.productRepo.ListActive(ctx, page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return ToProductPageRes(rows, page, total), nil
}

// Get возвращает товар по идентификатору. Логически удалённые товары
// для точечного чтения невидимы. Сначала проверяется кэш; промах
// дозаполняется в фоне и не задерживает ответ.
func (p *ProductUseCase) Get(ctx context.Context, id uuid.UUID) (*ProductRes, error) {
	const op = "ProductUseCase.Get"

	if cached, err := p.cacheRepo.GetProduct(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product.Deleted {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	category, err := p.categoryRepo.GetByID(ctx, product.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	res := ToProductRes(product, category.Name)

	// Фоновое добавление товара в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetProduct(bgCtx, res); err != nil {
			p.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return res, nil
}

// Update полностью обновляет товар. Разница полей считается до применения
// изменений: отдельно остаток (событие STOCK_UPDATE только при фактическом
// изменении) и отдельно title/price/description/category (одно событие
// UPDATE с картой новых значений).
func (p *ProductUseCase) Update(ctx context.Context, id uuid.UUID, req *UpdateProductReq) (res *ProductRes, err error) {
	const op = "ProductUseCase.Update"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.db)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := p.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Остаток сравнивается до изменения остальных полей
	stockChanged := product.Stock != req.Stock

	title := strings.TrimSpace(req.Title)

	changes := make(map[string]any)
	if product.Title != title {
		changes["title"] = title
	}
	// Cmp вместо сравнения представлений: 10.0 и 10.00 — одна и та же цена
	if product.Price.Cmp(req.Price) != 0 {
		// Число, а не строка: типы значений в details единообразны
		// с остальными полями (stock пишется как int)
		changes["price"] = req.Price.InexactFloat64()
	}
	if product.Description != req.Description {
		changes["description"] = req.Description
	}
	if product.CategoryID != category.ID {
		changes["category"] = category.Name
	}

	product.Title = title
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock
	product.CategoryID = category.ID
	// Rate перезаписывается, Count сохраняется
	product.Rating.Rate = req.Rating
	product.Image = req.Image

	product, err = p.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	if stockChanged {
		p.publish(ctx, product.ID, domain.AuditStockUpdate, map[string]any{"stock": product.Stock})
	}
	if len(changes) > 0 {
		p.publish(ctx, product.ID, domain.AuditUpdate, changes)
	}

	p.invalidate(ctx, product.ID)

	return ToProductRes(product, category.Name), nil
}

// Delete логически удаляет товар. Повторный вызов — no-op без события.
func (p *ProductUseCase) Delete(ctx context.Context, id uuid.UUID) (err error) {
	const op = "ProductUseCase.Delete"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.db)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if product.Deleted {
		if err = tx.Commit(ctx); err != nil {
			return e.Wrap(op, err)
		}
		return nil
	}

	product.Deleted = true
	if _, err = p.productRepo.Update(ctx, product); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	p.publish(ctx, product.ID, domain.AuditDelete, map[string]any{"title": product.Title})
	p.invalidate(ctx, product.ID)

	return nil
}

// UpdateStock безусловно перезаписывает остаток и публикует STOCK_UPDATE,
// даже если значение не изменилось. Это осознанная асимметрия с Update.
func (p *ProductUseCase) UpdateStock(ctx context.Context, id uuid.UUID, req *UpdateStockReq) (res *ProductRes, err error) {
	const op = "ProductUseCase.UpdateStock"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.db)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product.Stock = req.Stock
	product, err = p.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := p.categoryRepo.GetByID(ctx, product.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.publish(ctx, product.ID, domain.AuditStockUpdate, map[string]any{"stock": product.Stock})
	p.invalidate(ctx, product.ID)

	return ToProductRes(product, category.Name), nil
}

// ByCategory возвращает страницу неудалённых товаров категории.
func (p *ProductUseCase) ByCategory(ctx context.Context, categoryID uuid.UUID, page PageReq) (*ProductPageRes, error) {
	const op = "ProductUseCase.ByCategory"

	rows, total, err := p.productRepo.ListByCategory(ctx, categoryID, page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return ToProductPageRes(rows, page, total), nil
}

// Search ищет неудалённые товары по подстроке названия без учёта регистра.
func (p *ProductUseCase) Search(ctx context.Context, query string, page PageReq) (*ProductPageRes, error) {
	const op = "ProductUseCase.Search"

	rows, total, err := p.productRepo.SearchByTitle(ctx, query, page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return ToProductPageRes(rows, page, total), nil
}

// PriceRange возвращает неудалённые товары с ценой в диапазоне [min, max].
// Обе границы включительны.
func (p *ProductUseCase) PriceRange(ctx context.Context, min, max decimal.Decimal, page PageReq) (*ProductPageRes, error) {
	const op = "ProductUseCase.PriceRange"

	rows, total, err := p.productRepo.ListByPriceRange(ctx, min, max, page)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return ToProductPageRes(rows, page, total), nil
}

// AttachImage загружает изображение в объектное хранилище и привязывает
// его ключ к товару. При ошибке транзакции уже загруженный объект
// компенсируется фоновой очисткой.
func (p *ProductUseCase) AttachImage(ctx context.Context, id uuid.UUID, req *UploadImageReq) (res *ProductRes, err error) {
	const op = "ProductUseCase.AttachImage"

	var (
		key      string
		uploaded bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.db)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded {
				p.logger.Warnf(
					"Cleaning up orphaned image after transaction failure. product_id: %s, error: %v",
					id, e.Wrap(op, err),
				)
				p.imagesInfra.CleanupImage(key)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product.Deleted {
		err = e.ErrProductNotFound
		return nil, e.Wrap(op, err)
	}

	key, err = p.imagesInfra.UploadImage(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	uploaded = true

	product.Image = &key
	product, err = p.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	category, err := p.categoryRepo.GetByID(ctx, product.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.publish(ctx, product.ID, domain.AuditUpdate, map[string]any{"image": key})
	p.invalidate(ctx, product.ID)

	return ToProductRes(product, category.Name), nil
}

// publish синхронно отдаёт событие аудита слушателю.
func (p *ProductUseCase) publish(ctx context.Context, productID uuid.UUID, action domain.AuditAction, details map[string]any) {
	p.publisher.Publish(ctx, NewProductAuditEvent(productID, action, details))
}

// invalidate удаляет товар из кэша, ошибки кэша гасятся.
func (p *ProductUseCase) invalidate(ctx context.Context, id uuid.UUID) {
	if err := p.cacheRepo.DeleteProduct(ctx, id); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", err)
	}
}
