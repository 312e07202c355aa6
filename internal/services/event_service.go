package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ariyanssg/event-mangement-api/internal/helpers"
	"github.com/ariyanssg/event-mangement-api/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service-level failure shapes the handlers translate to HTTP statuses.
var (
	ErrInvalidID        = errors.New("invalid ID format")
	ErrSameDayTimeOrder = errors.New("end time must be after start time for same-day events")
)

type EventService struct {
	eventsRepo     models.EventRepo
	restaurantRepo models.RestaurantRepo
}

func NewEventService(eventsRepo models.EventRepo, restaurantRepo models.RestaurantRepo) *EventService {
	return &EventService{
		eventsRepo:     eventsRepo,
		restaurantRepo: restaurantRepo,
	}
}

// AddEvent resolves the owning restaurant, re-checks the same-day time
// ordering rule (authoritative at write time even though the validation
// chain already ran), and persists a new event.
func (es *EventService) AddEvent(ctx context.Context, in *models.EventInput) (*models.EventWithStatus, error) {
	restaurantID, err := primitive.ObjectIDFromHex(in.RestaurantID)
	if err != nil {
		return nil, ErrInvalidID
	}

	if _, err := es.restaurantRepo.GetRestaurantByID(ctx, restaurantID); err != nil {
		return nil, err
	}

	if helpers.SameDayConflict(in.StartDate, in.EndDate, in.StartTime, in.EndTime) {
		return nil, ErrSameDayTimeOrder
	}

	startDate, err := helpers.ParseDate(in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date: %v", err)
	}
	endDate, err := helpers.ParseDate(in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date: %v", err)
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	now := time.Now()
	event := &models.Event{
		RestaurantID:      restaurantID,
		EventTitle:        in.EventTitle,
		EventDescription:  in.EventDescription,
		CoverImage:        in.CoverImage,
		EntryFeePerPerson: *in.EntryFeePerPerson,
		StartDate:         startDate,
		EndDate:           endDate,
		StartTime:         in.StartTime,
		EndTime:           in.EndTime,
		ContactAddress:    in.ContactAddress,
		Email:             in.Email,
		Mobile:            in.Mobile,
		IsActive:          isActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	saved, err := es.eventsRepo.InsertEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	return models.NewEventWithStatus(saved, time.Now()), nil
}

// UpdateEvent applies a partial replace of the supplied fields. Date
// strings are canonicalized before writing; unsupplied fields are left
// untouched.
func (es *EventService) UpdateEvent(ctx context.Context, in *models.EventUpdateInput) (*models.EventWithStatus, error) {
	eventID, err := primitive.ObjectIDFromHex(in.ID)
	if err != nil {
		return nil, ErrInvalidID
	}

	if _, err := es.eventsRepo.GetEventByID(ctx, eventID); err != nil {
		return nil, err
	}

	if in.StartDate != "" && in.EndDate != "" && in.StartTime != "" && in.EndTime != "" {
		if helpers.SameDayConflict(in.StartDate, in.EndDate, in.StartTime, in.EndTime) {
			return nil, ErrSameDayTimeOrder
		}
	}

	fields, err := buildUpdateFields(in)
	if err != nil {
		return nil, err
	}

	updated, err := es.eventsRepo.UpdateEventByID(ctx, eventID, fields)
	if err != nil {
		return nil, err
	}
	return models.NewEventWithStatus(updated, time.Now()), nil
}

func buildUpdateFields(in *models.EventUpdateInput) (bson.M, error) {
	fields := bson.M{}

	if in.EventTitle != "" {
		fields["event_title"] = in.EventTitle
	}
	if in.EventDescription != "" {
		fields["event_description"] = in.EventDescription
	}
	if in.CoverImage != "" {
		fields["cover_image"] = in.CoverImage
	}
	if in.EntryFeePerPerson != nil {
		fields["entry_fee_per_person"] = *in.EntryFeePerPerson
	}
	if in.StartDate != "" {
		d, err := helpers.ParseDate(in.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %v", err)
		}
		fields["start_date"] = d
	}
	if in.EndDate != "" {
		d, err := helpers.ParseDate(in.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %v", err)
		}
		fields["end_date"] = d
	}
	if in.StartTime != "" {
		fields["start_time"] = in.StartTime
	}
	if in.EndTime != "" {
		fields["end_time"] = in.EndTime
	}
	if in.ContactAddress != "" {
		fields["contact_address"] = in.ContactAddress
	}
	if in.Email != "" {
		fields["email"] = in.Email
	}
	if in.Mobile != "" {
		fields["mobile"] = in.Mobile
	}
	if in.IsActive != nil {
		fields["is_active"] = *in.IsActive
	}

	fields["updated_at"] = time.Now()
	return fields, nil
}

// GetEventData returns all events for a restaurant ordered by start date
// then start time, each joined with a projection of the owner. A
// restaurant with zero events yields an empty list, not an error.
func (es *EventService) GetEventData(ctx context.Context, restaurantID string) ([]*models.EventListItem, error) {
	rid, err := primitive.ObjectIDFromHex(restaurantID)
	if err != nil {
		return nil, ErrInvalidID
	}

	restaurant, err := es.restaurantRepo.GetRestaurantByID(ctx, rid)
	if err != nil {
		return nil, err
	}

	events, err := es.eventsRepo.ListEventsByRestaurant(ctx, rid)
	if err != nil {
		return nil, err
	}

	projection := models.RestaurantProjection{
		ID:      restaurant.ID,
		Name:    restaurant.Name,
		Address: restaurant.Address,
		Phone:   restaurant.Phone,
		Email:   restaurant.Email,
	}

	now := time.Now()
	items := make([]*models.EventListItem, 0, len(events))
	for _, event := range events {
		items = append(items, &models.EventListItem{
			EventWithStatus: models.NewEventWithStatus(event, now),
			Restaurant:      projection,
		})
	}
	return items, nil
}

// DeleteEvent removes the event and reports the former title alongside the
// removed id.
func (es *EventService) DeleteEvent(ctx context.Context, id string) (*models.DeletedEvent, error) {
	eventID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	event, err := es.eventsRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := es.eventsRepo.DeleteEventByID(ctx, eventID); err != nil {
		return nil, err
	}

	return &models.DeletedEvent{
		DeletedEventID:    id,
		DeletedEventTitle: event.EventTitle,
	}, nil
}
