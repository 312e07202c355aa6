package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EventDbName  = "event_management"
	EventColName = "events"

	// Calendar dates travel as plain YYYY-MM-DD strings on the wire.
	DateLayout = "2006-01-02"
)

// Event status values derived from the stored date/time fields.
const (
	StatusUpcoming  = "upcoming"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Event is the stored document. The validate tags are the persistence-layer
// structural constraints, checked again on insert independently of the
// request validation chain.
type Event struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RestaurantID      primitive.ObjectID `bson:"restaurant_id" json:"restaurant_id" validate:"required"`
	EventTitle        string             `bson:"event_title" json:"event_title" validate:"required,max=200"`
	EventDescription  string             `bson:"event_description" json:"event_description" validate:"required,max=1000"`
	CoverImage        string             `bson:"cover_image" json:"cover_image" validate:"required,url"`
	EntryFeePerPerson float64            `bson:"entry_fee_per_person" json:"entry_fee_per_person" validate:"gte=0"`
	StartDate         time.Time          `bson:"start_date" json:"start_date" validate:"required"`
	EndDate           time.Time          `bson:"end_date" json:"end_date" validate:"required"`
	StartTime         string             `bson:"start_time" json:"start_time" validate:"required"`
	EndTime           string             `bson:"end_time" json:"end_time" validate:"required"`
	ContactAddress    string             `bson:"contact_address" json:"contact_address" validate:"required,max=500"`
	Email             string             `bson:"email" json:"email" validate:"required,email"`
	Mobile            string             `bson:"mobile" json:"mobile" validate:"required,e164"`
	IsActive          bool               `bson:"is_active" json:"is_active"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}

func (e *Event) BeforeCreate() {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
}

// Status computes the derived lifecycle value at the given instant by
// combining the calendar dates with the HH:MM time-of-day fields.
// It is never stored.
func (e *Event) Status(now time.Time) string {
	start := combineDateTime(e.StartDate, e.StartTime)
	end := combineDateTime(e.EndDate, e.EndTime)

	switch {
	case now.Before(start):
		return StatusUpcoming
	case !now.After(end):
		return StatusOngoing
	default:
		return StatusCompleted
	}
}

func combineDateTime(date time.Time, hhmm string) time.Time {
	t, err := time.ParseInLocation("15:04", hhmm, time.Local)
	if err != nil {
		// Malformed time never reaches storage; fall back to midnight.
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.Local)
}

// EventWithStatus decorates a stored event with its derived status for
// serialization. Status is computed, mirroring a schema virtual.
type EventWithStatus struct {
	*Event
	Status string `json:"status"`
}

func NewEventWithStatus(e *Event, now time.Time) *EventWithStatus {
	return &EventWithStatus{Event: e, Status: e.Status(now)}
}

// RestaurantProjection is the slice of the owning restaurant attached to
// each event in list responses.
type RestaurantProjection struct {
	ID      primitive.ObjectID `bson:"_id" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Address string             `bson:"address" json:"address"`
	Phone   string             `bson:"phone" json:"phone"`
	Email   string             `bson:"email" json:"email"`
}

// EventListItem is one entry of the list-by-restaurant response.
type EventListItem struct {
	*EventWithStatus
	Restaurant RestaurantProjection `json:"restaurant"`
}

// DeletedEvent is the confirmation payload returned after a delete.
type DeletedEvent struct {
	DeletedEventID    string `json:"deleted_event_id"`
	DeletedEventTitle string `json:"deleted_event_title"`
}

// EventInput is the creation payload. Dates and times arrive as strings and
// are validated before conversion to the stored representation.
type EventInput struct {
	RestaurantID      string   `json:"restaurant_id"`
	EventTitle        string   `json:"event_title"`
	EventDescription  string   `json:"event_description"`
	CoverImage        string   `json:"cover_image"`
	EntryFeePerPerson *float64 `json:"entry_fee_per_person"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	ContactAddress    string   `json:"contact_address"`
	Email             string   `json:"email"`
	Mobile            string   `json:"mobile"`
	IsActive          *bool    `json:"is_active"`
}

// EventUpdateInput is the partial update payload. Empty strings and nil
// pointers mean "not supplied" and leave the stored field untouched.
type EventUpdateInput struct {
	ID                string   `json:"_id"`
	EventTitle        string   `json:"event_title"`
	EventDescription  string   `json:"event_description"`
	CoverImage        string   `json:"cover_image"`
	EntryFeePerPerson *float64 `json:"entry_fee_per_person"`
	StartDate         string   `json:"start_date"`
	EndDate           string   `json:"end_date"`
	StartTime         string   `json:"start_time"`
	EndTime           string   `json:"end_time"`
	ContactAddress    string   `json:"contact_address"`
	Email             string   `json:"email"`
	Mobile            string   `json:"mobile"`
	IsActive          *bool    `json:"is_active"`
}
