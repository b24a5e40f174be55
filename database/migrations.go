package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"studyhub/models"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RunMigrations executes all database migrations
func RunMigrations() error {
	log.Println("Running database migrations...")

	if err := seedGlobalFolders(); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// seedGlobalFolders initializes the folders/global document with an empty
// forest when it does not exist yet. The folder service performs the same
// initialization lazily; seeding here just makes a fresh deployment readable
// before the first request.
func seedGlobalFolders() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store := GetStore()

	var doc models.GlobalFolders
	err := store.GetDocument(ctx, FoldersCollection, GlobalFoldersDoc, &doc)
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to read global folders document: %v", err)
	}

	if err := store.SetDocument(ctx, FoldersCollection, GlobalFoldersDoc,
		models.GlobalFolders{Folders: []models.Folder{}}, false); err != nil {
		return fmt.Errorf("failed to seed global folders document: %v", err)
	}

	log.Println("Seeded empty global folders document")
	return nil
}

// CreateIndexes creates necessary database indexes
func CreateIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Creating database indexes...")

	usersCollection := GetCollection(UsersCollection)
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "role", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	}

	if _, err := usersCollection.Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %v", err)
	}

	requestsCollection := GetCollection(ContactRequestsCollection)
	requestIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}},
		},
	}

	if _, err := requestsCollection.Indexes().CreateMany(ctx, requestIndexes); err != nil {
		return fmt.Errorf("failed to create contact request indexes: %v", err)
	}

	log.Println("Database indexes created successfully")
	return nil
}
