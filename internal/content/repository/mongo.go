package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// documentID is the _id of the single record holding the content tree.
const documentID = "site"

type mongoDocument struct {
	ID               string `bson:"_id"`
	content.Document `bson:",inline"`
}

// MongoRepo stores the whole content tree as one MongoDB record, keeping the
// same full-document read-modify-write behavior as the file store.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Load(ctx context.Context) (*content.Document, error) {
	var rec mongoDocument
	err := m.col.FindOne(ctx, bson.M{"_id": documentID}).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("load content: %w", err)
	}
	doc := rec.Document
	return &doc, nil
}

func (m *MongoRepo) Save(ctx context.Context, doc *content.Document) error {
	rec := mongoDocument{ID: documentID, Document: *doc}
	opts := options.Replace().SetUpsert(true)
	if _, err := m.col.ReplaceOne(ctx, bson.M{"_id": documentID}, rec, opts); err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return nil
}
