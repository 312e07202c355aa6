package handlers

import (
	"errors"
	"net/http"

	"github.com/ariyanssg/event-mangement-api/internal/config"
	"github.com/ariyanssg/event-mangement-api/internal/helpers"
	"github.com/ariyanssg/event-mangement-api/internal/models"
	"github.com/ariyanssg/event-mangement-api/internal/services"
	"github.com/ariyanssg/event-mangement-api/internal/validation"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// handleServiceError translates service failures into the response
// envelope. Internal detail is echoed only outside production.
func handleServiceError(c *gin.Context, cfg *config.Config, err error, invalidIDMessage string) {
	var docErr *models.DocumentInvalidError

	switch {
	case errors.As(err, &docErr):
		c.JSON(http.StatusBadRequest, models.ValidationFailedResponse(docErr.Fields))
	case errors.Is(err, services.ErrSameDayTimeOrder):
		c.JSON(http.StatusBadRequest, models.ErrorResponse("End time must be after start time for same-day events"))
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(invalidIDMessage))
	case errors.Is(err, models.ErrRestaurantNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse("Restaurant not found"))
	case errors.Is(err, models.ErrEventNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse("Event not found"))
	default:
		// Register for the logging middleware before responding.
		_ = c.Error(err)
		resp := models.ErrorResponse("Internal server error")
		if !cfg.IsProduction() {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}

func AddEvent(es *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := c.MustGet(validation.PayloadKey).(*models.EventInput)

		created, err := es.AddEvent(c.Request.Context(), in)
		if err != nil {
			handleServiceError(c, cfg, err, "Invalid restaurant ID format")
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Event created successfully"))
	}
}

func UpdateEvent(es *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := c.MustGet(validation.PayloadKey).(*models.EventUpdateInput)

		updated, err := es.UpdateEvent(c.Request.Context(), in)
		if err != nil {
			handleServiceError(c, cfg, err, "Invalid event ID format")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Event updated successfully"))
	}
}

func GetEventData(es *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := helpers.StringTrim(c.Param("rid"))
		if rid == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Restaurant ID is required"))
			return
		}
		if _, err := primitive.ObjectIDFromHex(rid); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid restaurant ID format"))
			return
		}

		events, err := es.GetEventData(c.Request.Context(), rid)
		if err != nil {
			handleServiceError(c, cfg, err, "Invalid restaurant ID format")
			return
		}

		c.JSON(http.StatusOK, models.ListResponse(events, len(events), "Events retrieved successfully"))
	}
}

func DeleteEvent(es *services.EventService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.MustGet(validation.PayloadKey).(string)

		deleted, err := es.DeleteEvent(c.Request.Context(), id)
		if err != nil {
			handleServiceError(c, cfg, err, "Invalid event ID format")
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(deleted, "Event deleted successfully"))
	}
}
