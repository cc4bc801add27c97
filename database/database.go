package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"venuescout-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.Venue{},
		&models.Photo{},
		&models.CateringProvider{},
		&models.Client{},
		&models.Project{},
		&models.ProjectVenue{},
		&models.ActivityLog{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Add custom indexes for better query performance
	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	// Add constraints not covered by tags
	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Venue listing queries filter out soft-deleted rows by city
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_venues_city_deleted ON venues(city, is_deleted)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for venues: %v\n", err)
	}

	// Project dashboards list a user's projects by status
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_projects_user_status ON projects(user_id, status)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for projects: %v\n", err)
	}

	// Activity feeds read newest-first per project
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_project_created ON activity_logs(project_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for activity_logs: %v\n", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// One link per (project, venue) pair. Concurrent adds race on this
	// constraint rather than on application locks: exactly one insert wins.
	if err := db.Exec("ALTER TABLE project_venues ADD CONSTRAINT uq_project_venue UNIQUE (project_id, venue_id)").Error; err != nil {
		// Ignore error if constraint already exists
		fmt.Printf("Warning: Could not add unique constraint for project_venues: %v\n", err)
	}

	return nil
}

// SeedData populates the database with initial data for development/testing
func SeedData(db *gorm.DB) error {
	var venueCount int64
	db.Model(&models.Venue{}).Count(&venueCount)

	if venueCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	website := "https://www.grandpalais-brussels.be"
	address := "Place du Grand Sablon 12, 1000 Brussels"
	contactEmail := "events@grandpalais-brussels.be"

	testVenues := []models.Venue{
		{
			ID:           "venue-1",
			Name:         "Grand Palais Brussels",
			City:         "Brussels",
			Capacity:     450,
			Facilities:   models.StringSlice{"WiFi", "Projector", "Catering", "Parking"},
			EventTypes:   models.StringSlice{"Conference", "Gala", "Product Launch"},
			Website:      &website,
			Address:      &address,
			ContactEmail: &contactEmail,
		},
		{
			ID:         "venue-2",
			Name:       "Harbour Loft",
			City:       "Antwerp",
			Capacity:   120,
			Facilities: models.StringSlice{"WiFi", "AV System", "Rooftop Terrace"},
			EventTypes: models.StringSlice{"Workshop", "Networking", "Seminar"},
		},
	}

	for _, venue := range testVenues {
		if err := db.Create(&venue).Error; err != nil {
			fmt.Printf("Warning: Could not create test venue %s: %v\n", venue.Name, err)
		}
	}

	brandTone := "Professional, understated luxury"
	testClient := models.Client{
		ID:        "client-1",
		Name:      "Northwind Consulting",
		BrandTone: &brandTone,
	}
	if err := db.Create(&testClient).Error; err != nil {
		fmt.Printf("Warning: Could not create test client: %v\n", err)
	}

	fmt.Println("Database seeded with test venues and a sample client")
	return nil
}
