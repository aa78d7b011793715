package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/hfsolutions/catalog-backend/pkg/logger"
)

type AuditHandler struct {
	auditUsecase usecase.AuditUC
	logger       logger.Logger
}

func NewAuditHandler(auditUsecase usecase.AuditUC, logger logger.Logger) *AuditHandler {
	return &AuditHandler{auditUsecase: auditUsecase, logger: logger}
}

// auditByProduct
//
//	@Summary		Журнал аудита товара
//	@Description	Все записи аудита одного товара, новые первыми
//	@Tags			audit
//	@Produce		json
//	@Param			productId	path	string	true	"ID товара"
//	@Success		200	{array}		AuditResponse	"Записи аудита"
//	@Failure		400	{object}	ErrorResponse	"Некорректный ID"
//	@Router			/audit/products/{productId} [get]
func (a *AuditHandler) auditByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseUUIDParam(r, "productId")
	if err != nil {
		WriteError(w, r, err)
		return
	}

	res, err := a.auditUsecase.ByProduct(r.Context(), productID)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toAuditResponses(res))
}

// latestAudit
//
//	@Summary		Последние записи аудита
//	@Description	100 последних записей по всем товарам, новые первыми
//	@Tags			audit
//	@Produce		json
//	@Success		200	{array}	AuditResponse	"Записи аудита"
//	@Router			/audit/products [get]
func (a *AuditHandler) latestAudit(w http.ResponseWriter, r *http.Request) {
	res, err := a.auditUsecase.Latest(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toAuditResponses(res))
}

// auditByAction
//
//	@Summary		Записи аудита по типу действия
//	@Description	Записи одного типа действия (CREATE, UPDATE, DELETE, STOCK_UPDATE), новые первыми
//	@Tags			audit
//	@Produce		json
//	@Param			action	path	string	true	"Тип действия"
//	@Success		200	{array}		AuditResponse	"Записи аудита"
//	@Failure		400	{object}	ErrorResponse	"Неизвестный тип действия"
//	@Router			/audit/actions/{action} [get]
func (a *AuditHandler) auditByAction(w http.ResponseWriter, r *http.Request) {
	action, err := domain.ParseAuditAction(chi.URLParam(r, "action"))
	if err != nil {
		WriteError(w, r, err)
		return
	}

	res, err := a.auditUsecase.ByAction(r.Context(), action)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toAuditResponses(res))
}
