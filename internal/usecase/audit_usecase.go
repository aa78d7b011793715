package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/pkg/e"
)

// latestAuditLimit — размер выборки последних записей аудита.
const latestAuditLimit = 100

// AuditUseCase отдаёт журнал аудита из документного хранилища.
// Только чтение: записи создаёт слушатель событий.
type AuditUseCase struct {
	auditRepo AuditRepository
}

func NewAuditUC(auditRepo AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// ByProduct возвращает историю изменений товара, новые записи первыми.
func (a *AuditUseCase) ByProduct(ctx context.Context, productID uuid.UUID) ([]AuditRes, error) {
	const op = "AuditUseCase.ByProduct"

	audits, err := a.auditRepo.ByProduct(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return toAuditResList(audits), nil
}

// Latest возвращает последние 100 записей аудита по всей системе.
func (a *AuditUseCase) Latest(ctx context.Context) ([]AuditRes, error) {
	const op = "AuditUseCase.Latest"

	audits, err := a.auditRepo.Latest(ctx, latestAuditLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return toAuditResList(audits), nil
}

// ByAction возвращает записи аудита одного типа действия, новые первыми.
func (a *AuditUseCase) ByAction(ctx context.Context, action domain.AuditAction) ([]AuditRes, error) {
	const op = "AuditUseCase.ByAction"

	audits, err := a.auditRepo.ByAction(ctx, action)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return toAuditResList(audits), nil
}

func toAuditResList(audits []domain.ProductAudit) []AuditRes {
	result := make([]AuditRes, 0, len(audits))
	for i := range audits {
		result = append(result, *ToAuditRes(&audits[i]))
	}

	return result
}
