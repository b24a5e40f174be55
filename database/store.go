package database

import (
	"context"
	"errors"
	"fmt"
	"studyhub/models"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the document-store surface the services consume: documents are
// addressed by collection and id, written either as merge (only named fields
// replaced) or full replacement. The Mongo implementation below is the
// production one; tests substitute an in-memory store.
type Store interface {
	GetDocument(ctx context.Context, collection, id string, out interface{}) error
	FindDocument(ctx context.Context, collection string, filter bson.M, out interface{}) error
	SetDocument(ctx context.Context, collection, id string, doc interface{}, merge bool) error
	UpdateDocument(ctx context.Context, collection, id string, fields bson.M) error
	DeleteDocument(ctx context.Context, collection, id string) error
	ListDocuments(ctx context.Context, collection string, sort bson.D, out interface{}) error
	CountDocuments(ctx context.Context, collection string) (int64, error)
}

type mongoStore struct {
	db *mongo.Database
}

var (
	storeInstance Store
	storeOnce     sync.Once
)

// GetStore returns the Mongo-backed store over the global connection.
func GetStore() Store {
	storeOnce.Do(func() {
		storeInstance = &mongoStore{db: GetDatabase()}
	})
	return storeInstance
}

// NewMongoStore wraps an explicit database handle, mainly for setup code.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) GetDocument(ctx context.Context, collection, id string, out interface{}) error {
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (s *mongoStore) FindDocument(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (s *mongoStore) SetDocument(ctx context.Context, collection, id string, doc interface{}, merge bool) error {
	var err error
	if merge {
		_, err = s.db.Collection(collection).UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{"$set": doc},
			options.Update().SetUpsert(true),
		)
	} else {
		_, err = s.db.Collection(collection).ReplaceOne(ctx,
			bson.M{"_id": id},
			doc,
			options.Replace().SetUpsert(true),
		)
	}
	if err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (s *mongoStore) UpdateDocument(ctx context.Context, collection, id string, fields bson.M) error {
	_, err := s.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
	)
	if err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (s *mongoStore) DeleteDocument(ctx context.Context, collection, id string) error {
	result, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapStoreError(err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *mongoStore) ListDocuments(ctx context.Context, collection string, sort bson.D, out interface{}) error {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return mapStoreError(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (s *mongoStore) CountDocuments(ctx context.Context, collection string) (int64, error) {
	count, err := s.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, mapStoreError(err)
	}
	return count, nil
}

// mapStoreError folds driver errors into the service-level taxonomy: a
// missing document is ErrNotFound, everything else means the backend could
// not serve the request.
func mapStoreError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ErrNotFound
	}
	return fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
}
