package chat

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides turn persistence operations
type Repository interface {
	Append(ctx context.Context, t *Turn) error
	// History returns the newest limit turns of a session in ascending
	// timestamp order. Unknown sessions yield an empty slice, not an error.
	History(ctx context.Context, sessionID string, limit int64) ([]Turn, error)
	// Clear removes every turn of a session and reports how many were
	// removed. Idempotent.
	Clear(ctx context.Context, sessionID string) (int64, error)
}

// MongoRepository implements Repository using a Mongo collection
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Append(ctx context.Context, t *Turn) error {
	_, err := r.col.InsertOne(ctx, t)
	return err
}

func (r *MongoRepository) History(ctx context.Context, sessionID string, limit int64) ([]Turn, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})
	cur, err := r.col.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	turns := []Turn{}
	if err := cur.All(ctx, &turns); err != nil {
		return nil, err
	}
	// query sorted newest-first; flip back to conversation order
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

func (r *MongoRepository) Clear(ctx context.Context, sessionID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
