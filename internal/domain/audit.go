package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/pkg/e"
)

// AuditAction — тип операции над товаром, попадающей в журнал аудита.
type AuditAction string

const (
	AuditCreate      AuditAction = "CREATE"
	AuditUpdate      AuditAction = "UPDATE"
	AuditDelete      AuditAction = "DELETE"
	AuditStockUpdate AuditAction = "STOCK_UPDATE"
)

// ParseAuditAction преобразует строку в AuditAction.
func ParseAuditAction(s string) (AuditAction, error) {
	switch AuditAction(s) {
	case AuditCreate, AuditUpdate, AuditDelete, AuditStockUpdate:
		return AuditAction(s), nil
	default:
		return "", e.ErrUnknownAuditAction
	}
}

// ProductAudit — запись журнала аудита в документном хранилище.
// Запись создаётся слушателем событий и никогда не изменяется.
// Timestamp проставляется в момент работы слушателя, а не в момент
// бизнес-операции. Связь с товаром — только по ProductID, без
// ссылочной целостности.
type ProductAudit struct {
	ID        string
	ProductID uuid.UUID
	Action    AuditAction
	Timestamp time.Time
	Details   map[string]any
}
