package http

import (
	"encoding/json"
	"net/http"

	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/hfsolutions/catalog-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	maxImageSize   int64
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, maxImageSize int64, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, maxImageSize: maxImageSize, logger: logger}
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создает новый товар в существующей категории
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Товар"
//	@Success		201		{object}	ProductResponse			"Успешное создание"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse			"Категория не найдена"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		p.logger.Warnf("%d: malformed request body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, r, e.NewValidationError([]e.FieldError{{Field: "body", Message: "malformed JSON"}}))
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		WriteError(w, r, e.NewValidationError(fields))
		return
	}

	res, err := p.productUsecase.Create(r.Context(), req.toUseCase())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(res))
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Постраничный список активных товаров
//	@Tags			products
//	@Produce		json
//	@Param			page	query		int						false	"Номер страницы (с нуля)"
//	@Param			size	query		int						false	"Размер страницы"
//	@Success		200		{object}	ProductPageResponse		"Страница товаров"
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	res, err := p.productUsecase.List(r.Context(), parsePage(r))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductPageResponse(res))
}

// getProduct
//
//	@Summary		Товар по ID
//	@Description	Возвращает товар; удалённые товары невидимы
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string			true	"ID товара"
//	@Success		200	{object}	ProductResponse	"Товар"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	res, err := p.productUsecase.Get(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(res))
}

// updateProduct
//
//	@Summary		Полное обновление товара
//	@Description	Перезаписывает все поля товара
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"ID товара"
//	@Param			request	body		UpdateProductRequest	true	"Товар"
//	@Success		200		{object}	ProductResponse			"Обновлённый товар"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse			"Товар или категория не найдены"
//	@Router			/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		p.logger.Warnf("%d: malformed request body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, r, e.NewValidationError([]e.FieldError{{Field: "body", Message: "malformed JSON"}}))
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		WriteError(w, r, e.NewValidationError(fields))
		return
	}

	res, err := p.productUsecase.Update(r.Context(), id, req.toUseCase())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(res))
}

// deleteProduct
//
//	@Summary		Удаление товара
//	@Description	Помечает товар удалённым; повторный вызов идемпотентен
//	@Tags			products
//	@Param			id	path	string	true	"ID товара"
//	@Success		204	"Успешное удаление"
//	@Failure		404	{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	if err := p.productUsecase.Delete(r.Context(), id); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}

// updateStock
//
//	@Summary		Обновление остатка
//	@Description	Перезаписывает остаток товара
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"ID товара"
//	@Param			request	body		UpdateStockRequest	true	"Остаток"
//	@Success		200		{object}	ProductResponse		"Обновлённый товар"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse		"Товар не найден"
//	@Router			/products/{id}/stock [patch]
func (p *ProductHandler) updateStock(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	var req UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		p.logger.Warnf("%d: malformed request body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, r, e.NewValidationError([]e.FieldError{{Field: "body", Message: "malformed JSON"}}))
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		WriteError(w, r, e.NewValidationError(fields))
		return
	}

	res, err := p.productUsecase.UpdateStock(r.Context(), id, &usecase.UpdateStockReq{Stock: *req.Stock})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(res))
}

// productsByCategory
//
//	@Summary		Товары категории
//	@Description	Постраничный список активных товаров одной категории
//	@Tags			products
//	@Produce		json
//	@Param			categoryId	path		string				true	"ID категории"
//	@Param			page		query		int					false	"Номер страницы (с нуля)"
//	@Param			size		query		int					false	"Размер страницы"
//	@Success		200			{object}	ProductPageResponse	"Страница товаров"
//	@Router			/products/category/{categoryId} [get]
func (p *ProductHandler) productsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseUUIDParam(r, "categoryId")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	res, err := p.productUsecase.ByCategory(r.Context(), categoryID, parsePage(r))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductPageResponse(res))
}

// searchProducts
//
//	@Summary		Поиск товаров
//	@Description	Регистронезависимый поиск по подстроке названия
//	@Tags			products
//	@Produce		json
//	@Param			q		query		string				true	"Строка поиска"
//	@Param			page	query		int					false	"Номер страницы (с нуля)"
//	@Param			size	query		int					false	"Размер страницы"
//	@Success		200		{object}	ProductPageResponse	"Страница товаров"
//	@Router			/products/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	res, err := p.productUsecase.Search(r.Context(), query, parsePage(r))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductPageResponse(res))
}

// productsByPriceRange
//
//	@Summary		Товары в диапазоне цен
//	@Description	Постраничный список активных товаров с ценой в диапазоне [min, max]
//	@Tags			products
//	@Produce		json
//	@Param			min		query		number				true	"Нижняя граница (включительно)"
//	@Param			max		query		number				true	"Верхняя граница (включительно)"
//	@Param			page	query		int					false	"Номер страницы (с нуля)"
//	@Param			size	query		int					false	"Размер страницы"
//	@Success		200		{object}	ProductPageResponse	"Страница товаров"
//	@Failure		400		{object}	ErrorResponse		"Некорректные границы"
//	@Router			/products/price-range [get]
func (p *ProductHandler) productsByPriceRange(w http.ResponseWriter, r *http.Request) {
	min, err := decimal.NewFromString(r.URL.Query().Get("min"))
	if err != nil {
		WriteError(w, r, e.NewValidationError([]e.FieldError{{Field: "min", Message: "must be a decimal number"}}))
		return
	}

	max, err := decimal.NewFromString(r.URL.Query().Get("max"))
	if err != nil {
		WriteError(w, r, e.NewValidationError([]e.FieldError{{Field: "max", Message: "must be a decimal number"}}))
		return
	}

	res, err := p.productUsecase.PriceRange(r.Context(), min, max, parsePage(r))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductPageResponse(res))
}

// uploadProductImage
//
//	@Summary		Загрузка изображения товара
//	@Description	Загружает изображение в объектное хранилище и привязывает его к товару
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string			true	"ID товара"
//	@Param			image	formData	file			true	"Файл изображения"
//	@Success		200		{object}	ProductResponse	"Товар с новым изображением"
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id}/image [post]
func (p *ProductHandler) uploadProductImage(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 32 << 20

	id, err := parseUUIDParam(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, p.maxImageSize+maxMemory)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, r, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"], p.maxImageSize)
	if err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, r, err)
		return
	}

	res, err := p.productUsecase.AttachImage(r.Context(), id, usecase.NewUploadImageReq(id, *image))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(res))
}
