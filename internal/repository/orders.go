package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderLineDocument is one serialized item of an order.
type OrderLineDocument struct {
	Type       string         `bson:"type"`
	Price      string         `bson:"price"`
	Attributes map[string]any `bson:"attributes"`
	Summary    string         `bson:"summary"`
}

// OrderDocument is the stored form of a placed order. Money is kept as
// Decimal128 so totals survive the round trip exactly.
type OrderDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Reference     string               `bson:"reference"`
	CustomerName  string               `bson:"customer_name"`
	PhoneNumber   string               `bson:"phone_number"`
	Items         []OrderLineDocument  `bson:"items"`
	Subtotal      primitive.Decimal128 `bson:"subtotal"`
	Total         primitive.Decimal128 `bson:"total"`
	PaymentMethod string               `bson:"payment_method"`
	PaymentStatus string               `bson:"payment_status"`
	PickupAt      time.Time            `bson:"pickup_at"`
	CreatedAt     time.Time            `bson:"created_at"`
}

// OrdersRepository stores placed orders.
type OrdersRepository struct {
	collection *mongo.Collection
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{collection: db.Orders}
}

// Create inserts doc, filling in the id and creation time when unset.
func (r *OrdersRepository) Create(ctx context.Context, doc *OrderDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return translateWriteError(err)
}

// FindByReference returns the order with the given reference, or nil if none exists.
func (r *OrdersRepository) FindByReference(ctx context.Context, reference string) (*OrderDocument, error) {
	var doc OrderDocument
	err := r.collection.FindOne(ctx, bson.M{"reference": reference}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListCreatedBetween returns orders created in [start, end), oldest first.
func (r *OrdersRepository) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]OrderDocument, error) {
	filter := bson.M{"created_at": bson.M{"$gte": start, "$lt": end}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := []OrderDocument{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
