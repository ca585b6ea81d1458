package status

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides status-check persistence operations
type Repository interface {
	Insert(ctx context.Context, s *StatusCheck) error
	List(ctx context.Context, limit int64) ([]StatusCheck, error)
}

// MongoRepository implements Repository using a Mongo collection
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Insert(ctx context.Context, s *StatusCheck) error {
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *MongoRepository) List(ctx context.Context, limit int64) ([]StatusCheck, error) {
	opts := options.Find().SetLimit(limit).SetProjection(bson.M{"_id": 0})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	checks := []StatusCheck{}
	if err := cur.All(ctx, &checks); err != nil {
		return nil, err
	}
	return checks, nil
}
