package mongo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hfsolutions/catalog-backend/internal/cfg"
	"github.com/hfsolutions/catalog-backend/internal/domain"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// auditModel представляет документ коллекции product_audit в MongoDB.
// Идентификатор товара хранится строкой: BSON-представление uuid.UUID
// как массива байт неудобно для ручных запросов к коллекции.
type auditModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID string             `bson:"product_id"`
	Action    string             `bson:"action"`
	Timestamp time.Time          `bson:"timestamp"`
	Details   map[string]any     `bson:"details"`
}

// AuditRepo реализует репозиторий журнала аудита поверх MongoDB.
// Коллекция append-only: записи не изменяются и не удаляются.
type AuditRepo struct {
	collection *mongo.Collection
}

func NewAuditRepo(client *mongo.Client, cfg *cfg.MongoCfg) *AuditRepo {
	return &AuditRepo{
		collection: client.Database(cfg.Database).Collection(cfg.CollectionName),
	}
}

// Insert сохраняет запись аудита и возвращает её с назначенным
// хранилищем идентификатором.
func (a *AuditRepo) Insert(ctx context.Context, audit *domain.ProductAudit) (*domain.ProductAudit, error) {
	model := &auditModel{
		ID:        primitive.NewObjectID(),
		ProductID: audit.ProductID.String(),
		Action:    string(audit.Action),
		Timestamp: audit.Timestamp,
		Details:   audit.Details,
	}

	if _, err := a.collection.InsertOne(ctx, model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return toEntity(model)
}

// ByProduct возвращает записи одного товара, новые первыми.
func (a *AuditRepo) ByProduct(ctx context.Context, productID uuid.UUID) ([]domain.ProductAudit, error) {
	filter := bson.M{"product_id": productID.String()}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	return a.find(ctx, filter, opts)
}

// Latest возвращает limit последних записей по всей коллекции.
func (a *AuditRepo) Latest(ctx context.Context, limit int) ([]domain.ProductAudit, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	return a.find(ctx, bson.M{}, opts)
}

// ByAction возвращает записи одного типа действия, новые первыми.
func (a *AuditRepo) ByAction(ctx context.Context, action domain.AuditAction) ([]domain.ProductAudit, error) {
	filter := bson.M{"action": string(action)}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	return a.find(ctx, filter, opts)
}

func (a *AuditRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.ProductAudit, error) {
	cursor, err := a.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer cursor.Close(ctx)

	result := make([]domain.ProductAudit, 0)
	for cursor.Next(ctx) {
		var model auditModel
		if err := cursor.Decode(&model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		entity, err := toEntity(&model)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *entity)
	}

	if err := cursor.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func toEntity(model *auditModel) (*domain.ProductAudit, error) {
	productID, err := uuid.Parse(model.ProductID)
	if err != nil {
		return nil, err
	}

	return &domain.ProductAudit{
		ID:        model.ID.Hex(),
		ProductID: productID,
		Action:    domain.AuditAction(model.Action),
		Timestamp: model.Timestamp,
		Details:   model.Details,
	}, nil
}
