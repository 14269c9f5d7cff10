package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ClosedDateDocument is a stored closure. Date is YYYY-MM-DD in store time
// and Weekday is derived from it so recurring closures can be matched by index.
type ClosedDateDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Date      string             `bson:"date"`
	Weekday   int                `bson:"weekday"`
	Recurring bool               `bson:"recurring"`
	Reason    string             `bson:"reason,omitempty"`
	CreatedBy string             `bson:"created_by,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

// ClosedDatesRepository stores the closure calendar.
type ClosedDatesRepository struct {
	collection *mongo.Collection
}

// NewClosedDatesRepository creates a new closed dates repository.
func NewClosedDatesRepository(db *MongoDB) *ClosedDatesRepository {
	return &ClosedDatesRepository{collection: db.ClosedDates}
}

// Create inserts a closure. A second closure on the same date fails with ErrDuplicateKey.
func (r *ClosedDatesRepository) Create(ctx context.Context, doc *ClosedDateDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return translateWriteError(err)
}

// ClosedOn reports whether date is closed explicitly or by a recurring
// closure on weekday that started on or before date.
func (r *ClosedDatesRepository) ClosedOn(ctx context.Context, date string, weekday time.Weekday) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"date": date},
		bson.M{"recurring": true, "weekday": int(weekday), "date": bson.M{"$lte": date}},
	}}
	err := r.collection.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListUpcoming returns closures dated on or after from, plus every recurring
// closure, ordered by date.
func (r *ClosedDatesRepository) ListUpcoming(ctx context.Context, from string) ([]ClosedDateDocument, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"date": bson.M{"$gte": from}},
		bson.M{"recurring": true},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := []ClosedDateDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
