package container

import (
	"log/slog"

	"github.com/ariyanssg/event-mangement-api/internal/config"
	"github.com/ariyanssg/event-mangement-api/internal/models"
	"github.com/ariyanssg/event-mangement-api/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client
	EventService  *services.EventService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	// Initialize repositories
	mongoRepo := models.MongodbNewRepo(mongoDBClient)
	eventService := services.NewEventService(mongoRepo, mongoRepo)

	return &Container{
		Logger:        logger,
		Config:        cfg,
		MongoDBClient: mongoDBClient,
		EventService:  eventService,
	}
}
