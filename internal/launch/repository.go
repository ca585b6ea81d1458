package launch

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides launch-config persistence operations
type Repository interface {
	// Get returns the stored config, or nil when none has been written.
	Get(ctx context.Context) (*Config, error)
	// Replace removes any existing config document(s) and inserts the new
	// one. The delete and insert are separate calls; a concurrent reader
	// can observe a transient empty state.
	Replace(ctx context.Context, cfg *Config) error
}

// MongoRepository implements Repository using a Mongo collection
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Get(ctx context.Context) (*Config, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	var cfg Config
	if err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&cfg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *MongoRepository) Replace(ctx context.Context, cfg *Config) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	_, err := r.col.InsertOne(ctx, cfg)
	return err
}
