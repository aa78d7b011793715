package http

import (
	"encoding/json"
	"net/http"

	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/hfsolutions/catalog-backend/pkg/logger"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

// listCategories
//
//	@Summary		Список категорий
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}	CategoryResponse	"Категории"
//	@Router			/categories [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	res, err := c.categoryUsecase.List(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponses(res))
}

// getCategory
//
//	@Summary		Категория по ID
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		string				true	"ID категории"
//	@Success		200	{object}	CategoryResponse	"Категория"
//	@Failure		404	{object}	ErrorResponse		"Категория не найдена"
//	@Router			/categories/{id} [get]
func (c *CategoryHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	res, err := c.categoryUsecase.Get(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(res))
}

// createCategory
//
//	@Summary		Создание категории
//	@Description	Имя категории уникально без учета регистра
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CategoryRequest		true	"Категория"
//	@Success		201		{object}	CategoryResponse	"Созданная категория"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации или дубликат имени"
//	@Router			/categories [post]
func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warnf("%d: malformed request body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, r, e.NewValidationError([]e.FieldError{{Field: "body", Message: "malformed JSON"}}))
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		WriteError(w, r, e.NewValidationError(fields))
		return
	}

	res, err := c.categoryUsecase.Create(r.Context(), &usecase.CreateCategoryReq{Name: req.Name})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(res))
}

// updateCategory
//
//	@Summary		Переименование категории
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"ID категории"
//	@Param			request	body		CategoryRequest		true	"Категория"
//	@Success		200		{object}	CategoryResponse	"Обновлённая категория"
//	@Failure		400		{object}	ErrorResponse		"Ошибка валидации или дубликат имени"
//	@Failure		404		{object}	ErrorResponse		"Категория не найдена"
//	@Router			/categories/{id} [put]
func (c *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.logger.Warnf("%d: malformed request body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, r, e.NewValidationError([]e.FieldError{{Field: "body", Message: "malformed JSON"}}))
		return
	}

	if fields := req.Validate(); len(fields) > 0 {
		WriteError(w, r, e.NewValidationError(fields))
		return
	}

	res, err := c.categoryUsecase.Update(r.Context(), id, &usecase.UpdateCategoryReq{Name: req.Name})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(res))
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Категория удаляется только если на нее не ссылаются активные товары
//	@Tags			categories
//	@Param			id	path	string	true	"ID категории"
//	@Success		204	"Успешное удаление"
//	@Failure		400	{object}	ErrorResponse	"Категория используется активными товарами"
//	@Failure		404	{object}	ErrorResponse	"Категория не найдена"
//	@Router			/categories/{id} [delete]
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	if err := c.categoryUsecase.Delete(r.Context(), id); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusNoContent, nil)
}
