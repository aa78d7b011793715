package audit

import (
	"context"
	"time"

	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/internal/usecase"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/hfsolutions/catalog-backend/pkg/logger"
)

// Listener принимает события аудита и сохраняет их в документное
// хранилище. Доставка at-most-once: бизнес-операция к этому моменту
// уже зафиксирована, поэтому любая ошибка записи журналируется и
// гасится, а событие теряется.
type Listener struct {
	auditRepo usecase.AuditRepository
	logger    logger.Logger
}

func NewListener(auditRepo usecase.AuditRepository, logger logger.Logger) *Listener {
	return &Listener{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Publish сохраняет запись аудита. Метка времени проставляется
// в момент обработки события, а не в момент бизнес-операции.
func (l *Listener) Publish(ctx context.Context, event *usecase.ProductAuditEvent) {
	const op = "Listener.Publish"

	record := &domain.ProductAudit{
		ProductID: event.ProductID,
		Action:    event.Action,
		Timestamp: time.Now().UTC(),
		Details:   event.Details,
	}

	if _, err := l.auditRepo.Insert(ctx, record); err != nil {
		l.logger.Errorf(e.Wrap(op, err),
			"Failed to persist audit record. product_id: %s, action: %s",
			event.ProductID, event.Action)
	}
}
