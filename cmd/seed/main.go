// Seeder for local development: wipes both collections and inserts two
// restaurants with one sample event each.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ariyanssg/event-mangement-api/internal/config"
	"github.com/ariyanssg/event-mangement-api/internal/connect"
	"github.com/ariyanssg/event-mangement-api/internal/models"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mustObjectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

func date(s string) time.Time {
	d, err := time.ParseInLocation(models.DateLayout, s, time.Local)
	if err != nil {
		panic(err)
	}
	return d
}

func main() {
	_ = godotenv.Load(".env.local")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	client, err := connect.MongoDBConnect(cfg.MongoDBURI, cfg.MongoDBPassword)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := connect.MongoDBDisconnect(); err != nil {
			logger.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()

	// Fixed ids so reseeding keeps saved sample requests working.
	jazzLoungeID := mustObjectID("61b6fa7db0f0f8e3bc44c7d9")
	sunsetBistroID := mustObjectID("61b6fa7db0f0f8e3bc44c7da")

	restaurants := []interface{}{
		models.Restaurant{
			ID:        jazzLoungeID,
			Name:      "The Jazz Lounge",
			Address:   "123 Banani Road, Dhaka",
			Phone:     "+880123456789",
			Email:     "info@jazzlounge.com",
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Restaurant{
			ID:        sunsetBistroID,
			Name:      "Sunset Bistro",
			Address:   "456 Gulshan Avenue, Dhaka",
			Phone:     "+880987654321",
			Email:     "contact@sunsetbistro.com",
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	events := []interface{}{
		models.Event{
			ID:                primitive.NewObjectID(),
			RestaurantID:      jazzLoungeID,
			EventTitle:        "Live Jazz Night",
			EventDescription:  "Join us for an amazing night of live jazz music and delicious food.",
			CoverImage:        "https://images.pexels.com/photos/1763075/pexels-photo-1763075.jpeg",
			EntryFeePerPerson: 500,
			StartDate:         date("2025-07-15"),
			EndDate:           date("2025-07-15"),
			StartTime:         "19:00",
			EndTime:           "23:00",
			ContactAddress:    "123 Banani Road, Dhaka",
			Email:             "events@jazzlounge.com",
			Mobile:            "+880123456789",
			IsActive:          true,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		models.Event{
			ID:                primitive.NewObjectID(),
			RestaurantID:      sunsetBistroID,
			EventTitle:        "Wine Tasting Evening",
			EventDescription:  "Experience the finest wines paired with gourmet cuisine.",
			CoverImage:        "https://images.pexels.com/photos/1407846/pexels-photo-1407846.jpeg",
			EntryFeePerPerson: 750,
			StartDate:         date("2025-07-20"),
			EndDate:           date("2025-07-20"),
			StartTime:         "18:00",
			EndTime:           "22:00",
			ContactAddress:    "456 Gulshan Avenue, Dhaka",
			Email:             "events@sunsetbistro.com",
			Mobile:            "+880987654321",
			IsActive:          true,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
	}

	db := client.Database(models.EventDbName)

	restaurantsCol := db.Collection(models.RestaurantColName)
	eventsCol := db.Collection(models.EventColName)

	if _, err := restaurantsCol.DeleteMany(ctx, bson.M{}); err != nil {
		logger.Error("Failed to clear restaurants", "error", err)
		os.Exit(1)
	}
	if _, err := eventsCol.DeleteMany(ctx, bson.M{}); err != nil {
		logger.Error("Failed to clear events", "error", err)
		os.Exit(1)
	}

	if _, err := restaurantsCol.InsertMany(ctx, restaurants); err != nil {
		logger.Error("Failed to seed restaurants", "error", err)
		os.Exit(1)
	}
	logger.Info("Restaurants seeded successfully", "count", len(restaurants))

	if _, err := eventsCol.InsertMany(ctx, events); err != nil {
		logger.Error("Failed to seed events", "error", err)
		os.Exit(1)
	}
	logger.Info("Events seeded successfully", "count", len(events))

	logger.Info("Database seeded successfully")
}
