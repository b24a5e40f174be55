package config

import (
	"log"
	"studyhub/database"
)

// DatabaseManager handles database initialization and management
type DatabaseManager struct {
	config *Config
}

// NewDatabaseManager creates a new database manager
func NewDatabaseManager(cfg *Config) *DatabaseManager {
	return &DatabaseManager{config: cfg}
}

// Initialize initializes the database connection
func (dm *DatabaseManager) Initialize() error {
	log.Println("Initializing database connection...")
	return database.Connect(dm.config.MongoURI, dm.config.DBName)
}

// SetupDatabase performs initial database setup
func (dm *DatabaseManager) SetupDatabase() error {
	log.Println("Setting up database...")

	if err := database.CreateIndexes(); err != nil {
		return err
	}

	if err := database.RunMigrations(); err != nil {
		return err
	}

	log.Println("Database setup completed successfully")
	return nil
}

// HealthCheck performs a database health check
func (dm *DatabaseManager) HealthCheck() error {
	return database.Ping()
}

// Close closes the database connection
func (dm *DatabaseManager) Close() error {
	return database.Disconnect()
}
