package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/ariebrainware/clinic-cms/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	recordsCollection = "analytics"
	viewsCollection   = "post_views"
)

// MongoRecorder writes analytics to MongoDB, keeping page-view traffic off the content database.
type MongoRecorder struct {
	records *mongo.Collection
	views   *mongo.Collection
}

func NewMongoRecorder(db *mongo.Database) *MongoRecorder {
	return &MongoRecorder{
		records: db.Collection(recordsCollection),
		views:   db.Collection(viewsCollection),
	}
}

// EnsureIndexes creates the unique slug index and the timestamp index.
func (r *MongoRecorder) EnsureIndexes(ctx context.Context) error {
	if _, err := r.views.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}
	_, err := r.records.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "timestamp", Value: -1}},
	})
	return err
}

func (r *MongoRecorder) Record(ctx context.Context, rec model.AnalyticsRecord) error {
	_, err := r.records.InsertOne(ctx, rec)
	return err
}

func (r *MongoRecorder) IncrementView(ctx context.Context, slug string) error {
	now := time.Now().UTC()
	_, err := r.views.UpdateOne(ctx,
		bson.M{"slug": slug},
		bson.M{
			"$inc":         bson.M{"views": 1},
			"$set":         bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *MongoRecorder) Views(ctx context.Context, slug string) (int64, error) {
	var pv model.PostView
	err := r.views.FindOne(ctx, bson.M{"slug": slug}).Decode(&pv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return pv.Views, nil
}

func (r *MongoRecorder) Recent(ctx context.Context, limit int) ([]model.AnalyticsRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(normalizeLimit(limit)))
	cursor, err := r.records.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	records := []model.AnalyticsRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
