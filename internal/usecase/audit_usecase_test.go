package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLatest_PassesLimit(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := NewAuditUC(repo)

	_, err := uc.Latest(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 100, repo.limitGiven)
}

func TestAuditByProduct_MapsTimestamp(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := NewAuditUC(repo)

	productID := uuid.New()
	_, err := repo.Insert(context.Background(), &domain.ProductAudit{
		ProductID: productID,
		Action:    domain.AuditCreate,
		Timestamp: time.Date(2025, 3, 14, 15, 9, 26, 535_000_000, time.UTC),
		Details:   map[string]any{"title": "Go in Action"},
	})
	require.NoError(t, err)

	res, err := uc.ByProduct(context.Background(), productID)
	require.NoError(t, err)
	require.Len(t, res, 1)

	assert.Equal(t, "2025-03-14T15:09:26.535Z", res[0].Timestamp)
	assert.Equal(t, domain.AuditCreate, res[0].Action)
	assert.Equal(t, map[string]any{"title": "Go in Action"}, res[0].Details)
}

func TestAuditByAction_Filters(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := NewAuditUC(repo)

	ctx := context.Background()
	_, _ = repo.Insert(ctx, &domain.ProductAudit{ProductID: uuid.New(), Action: domain.AuditCreate})
	_, _ = repo.Insert(ctx, &domain.ProductAudit{ProductID: uuid.New(), Action: domain.AuditDelete})

	res, err := uc.ByAction(ctx, domain.AuditDelete)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, domain.AuditDelete, res[0].Action)
}
