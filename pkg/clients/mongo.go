package clients

import (
	"context"

	config "github.com/hfsolutions/catalog-backend/internal/cfg"
	"github.com/hfsolutions/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoClient(ctx context.Context, cfg *config.MongoCfg) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return client, nil
}
