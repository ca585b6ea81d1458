package newsletter

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides subscription persistence operations
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Subscription, error)
	Insert(ctx context.Context, sub *Subscription) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit int64) ([]Subscription, error)
}

// MongoRepository implements Repository using a Mongo collection
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

// FindByEmail returns the subscription for an exact email match, or nil
// when the email is unknown.
func (r *MongoRepository) FindByEmail(ctx context.Context, email string) (*Subscription, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	var sub Subscription
	if err := r.col.FindOne(ctx, bson.M{"email": email}, opts).Decode(&sub); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *MongoRepository) Insert(ctx context.Context, sub *Subscription) error {
	_, err := r.col.InsertOne(ctx, sub)
	return err
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) List(ctx context.Context, limit int64) ([]Subscription, error) {
	opts := options.Find().SetLimit(limit).SetProjection(bson.M{"_id": 0})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	subs := []Subscription{}
	if err := cur.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
