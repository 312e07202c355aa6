// Package validation holds the declarative field-rule chains that sit
// between the router and the event handlers. Each profile evaluates every
// field's chain and collects all failures, so clients get the full list of
// problems in one round trip.
package validation

import (
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ariyanssg/event-mangement-api/internal/helpers"
	"github.com/ariyanssg/event-mangement-api/internal/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PayloadKey is where a validated request body is stashed for the handler.
const PayloadKey = "payload"

var imageExtRe = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)$`)

// check is one predicate+message pair. The first failing check in a field's
// chain wins; chains for different fields are independent.
type check struct {
	ok      func() bool
	message string
}

func firstFailure(field string, value interface{}, checks ...check) *models.FieldError {
	for _, ch := range checks {
		if !ch.ok() {
			return &models.FieldError{Field: field, Message: ch.message, Value: value}
		}
	}
	return nil
}

func collect(failures ...*models.FieldError) []models.FieldError {
	var errs []models.FieldError
	for _, f := range failures {
		if f != nil {
			errs = append(errs, *f)
		}
	}
	return errs
}

func isObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}

func isEmail(s string) bool {
	return models.Validate.Var(s, "email") == nil
}

func isMobile(s string) bool {
	return models.Validate.Var(s, "e164") == nil
}

func isImageURL(s string) bool {
	if models.Validate.Var(s, "url") != nil {
		return false
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	return imageExtRe.MatchString(s)
}

func isDate(s string) bool {
	_, err := helpers.ParseDate(s)
	return err == nil
}

func dateBeforeToday(s string) bool {
	d, err := helpers.ParseDate(s)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return d.Before(today)
}

// CreateProfile validates a full creation payload. Every field is required.
func CreateProfile(in *models.EventInput) []models.FieldError {
	errs := collect(
		firstFailure("restaurant_id", in.RestaurantID,
			check{func() bool { return in.RestaurantID != "" }, "Restaurant ID is required"},
			check{func() bool { return isObjectID(in.RestaurantID) }, "Invalid restaurant ID format"},
		),
		firstFailure("event_title", in.EventTitle,
			check{func() bool { return in.EventTitle != "" }, "Event title is required"},
			check{func() bool { return utf8.RuneCountInString(in.EventTitle) <= 200 }, "Event title cannot exceed 200 characters"},
		),
		firstFailure("event_description", in.EventDescription,
			check{func() bool { return in.EventDescription != "" }, "Event description is required"},
			check{func() bool { return utf8.RuneCountInString(in.EventDescription) <= 1000 }, "Event description cannot exceed 1000 characters"},
		),
		firstFailure("cover_image", in.CoverImage,
			check{func() bool { return in.CoverImage != "" }, "Cover image URL is required"},
			check{func() bool { return isImageURL(in.CoverImage) }, "Cover image must be a valid image URL (jpg, jpeg, png, gif, webp)"},
		),
		firstFailure("entry_fee_per_person", in.EntryFeePerPerson,
			check{func() bool { return in.EntryFeePerPerson != nil }, "Entry fee must be a number"},
			check{func() bool { return *in.EntryFeePerPerson >= 0 }, "Entry fee cannot be negative"},
		),
		firstFailure("start_date", in.StartDate,
			check{func() bool { return in.StartDate != "" }, "Start date is required"},
			check{func() bool { return isDate(in.StartDate) }, "Start date must be in valid date format (YYYY-MM-DD)"},
			check{func() bool { return !dateBeforeToday(in.StartDate) }, "Start date cannot be in the past"},
		),
		firstFailure("end_date", in.EndDate,
			check{func() bool { return in.EndDate != "" }, "End date is required"},
			check{func() bool { return isDate(in.EndDate) }, "End date must be in valid date format (YYYY-MM-DD)"},
			check{func() bool { return !isDate(in.StartDate) || in.EndDate >= in.StartDate }, "End date must be after or equal to start date"},
		),
		firstFailure("start_time", in.StartTime,
			check{func() bool { return in.StartTime != "" }, "Start time is required"},
			check{func() bool { return helpers.IsHHMM(in.StartTime) }, "Start time must be in HH:MM format"},
		),
		firstFailure("end_time", in.EndTime,
			check{func() bool { return in.EndTime != "" }, "End time is required"},
			check{func() bool { return helpers.IsHHMM(in.EndTime) }, "End time must be in HH:MM format"},
			check{func() bool {
				return !helpers.SameDayConflict(in.StartDate, in.EndDate, in.StartTime, in.EndTime)
			}, "End time must be after start time for same-day events"},
		),
		firstFailure("contact_address", in.ContactAddress,
			check{func() bool { return in.ContactAddress != "" }, "Contact address is required"},
			check{func() bool { return utf8.RuneCountInString(in.ContactAddress) <= 500 }, "Contact address cannot exceed 500 characters"},
		),
		firstFailure("email", in.Email,
			check{func() bool { return in.Email != "" }, "Email is required"},
			check{func() bool { return isEmail(in.Email) }, "Please provide a valid email address"},
		),
		firstFailure("mobile", in.Mobile,
			check{func() bool { return in.Mobile != "" }, "Mobile number is required"},
			check{func() bool { return isMobile(in.Mobile) }, "Mobile number must be in international format (e.g., +880123456789)"},
		),
	)
	return errs
}

// UpdateProfile validates a partial update payload. Present-but-empty
// values count as not supplied; the cross-field time ordering rule fires
// only when all four date/time fields arrive together.
func UpdateProfile(in *models.EventUpdateInput) []models.FieldError {
	optional := func(field, value string, checks ...check) *models.FieldError {
		if value == "" {
			return nil
		}
		return firstFailure(field, value, checks...)
	}

	failures := []*models.FieldError{
		firstFailure("_id", in.ID,
			check{func() bool { return in.ID != "" }, "Event ID is required"},
			check{func() bool { return isObjectID(in.ID) }, "Invalid event ID format"},
		),
		optional("event_title", in.EventTitle,
			check{func() bool { return utf8.RuneCountInString(in.EventTitle) <= 200 }, "Event title must be between 1 and 200 characters"},
		),
		optional("event_description", in.EventDescription,
			check{func() bool { return utf8.RuneCountInString(in.EventDescription) <= 1000 }, "Event description must be between 1 and 1000 characters"},
		),
		optional("cover_image", in.CoverImage,
			check{func() bool { return isImageURL(in.CoverImage) }, "Cover image must be a valid image file"},
		),
		optional("start_date", in.StartDate,
			check{func() bool { return isDate(in.StartDate) }, "Start date must be in valid date format (YYYY-MM-DD)"},
		),
		optional("end_date", in.EndDate,
			check{func() bool { return isDate(in.EndDate) }, "End date must be in valid date format (YYYY-MM-DD)"},
		),
		optional("start_time", in.StartTime,
			check{func() bool { return helpers.IsHHMM(in.StartTime) }, "Start time must be in HH:MM format"},
		),
		optional("end_time", in.EndTime,
			check{func() bool { return helpers.IsHHMM(in.EndTime) }, "End time must be in HH:MM format"},
		),
		optional("contact_address", in.ContactAddress,
			check{func() bool { return utf8.RuneCountInString(in.ContactAddress) <= 500 }, "Contact address must be between 1 and 500 characters"},
		),
		optional("email", in.Email,
			check{func() bool { return isEmail(in.Email) }, "Please provide a valid email address"},
		),
		optional("mobile", in.Mobile,
			check{func() bool { return isMobile(in.Mobile) }, "Mobile number must be in international format"},
		),
	}

	if in.EntryFeePerPerson != nil {
		failures = append(failures, firstFailure("entry_fee_per_person", in.EntryFeePerPerson,
			check{func() bool { return *in.EntryFeePerPerson >= 0 }, "Entry fee cannot be negative"},
		))
	}

	if in.StartDate != "" && in.EndDate != "" && in.StartTime != "" && in.EndTime != "" {
		failures = append(failures, firstFailure("end_time", in.EndTime,
			check{func() bool {
				return !helpers.SameDayConflict(in.StartDate, in.EndDate, in.StartTime, in.EndTime)
			}, "End time must be after start time for same-day events"},
		))
	}

	return collect(failures...)
}

// IdentityProfile validates a payload that carries only an event id.
func IdentityProfile(id string) []models.FieldError {
	return collect(
		firstFailure("_id", id,
			check{func() bool { return id != "" }, "Event ID is required"},
			check{func() bool { return isObjectID(id) }, "Invalid event ID format"},
		),
	)
}

func normalizeCreate(in *models.EventInput) {
	in.RestaurantID = strings.TrimSpace(in.RestaurantID)
	in.EventTitle = strings.TrimSpace(in.EventTitle)
	in.EventDescription = strings.TrimSpace(in.EventDescription)
	in.ContactAddress = strings.TrimSpace(in.ContactAddress)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func normalizeUpdate(in *models.EventUpdateInput) {
	in.ID = strings.TrimSpace(in.ID)
	in.EventTitle = strings.TrimSpace(in.EventTitle)
	in.EventDescription = strings.TrimSpace(in.EventDescription)
	in.ContactAddress = strings.TrimSpace(in.ContactAddress)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

// ValidateEvent validates a creation payload and hands it to the handler.
func ValidateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.EventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}
		normalizeCreate(&in)
		if errs := CreateProfile(&in); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ValidationFailedResponse(errs))
			return
		}
		c.Set(PayloadKey, &in)
		c.Next()
	}
}

// ValidateEventUpdate validates a partial update payload.
func ValidateEventUpdate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.EventUpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}
		normalizeUpdate(&in)
		if errs := UpdateProfile(&in); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ValidationFailedResponse(errs))
			return
		}
		c.Set(PayloadKey, &in)
		c.Next()
	}
}

// ValidateEventID validates a body that carries only `_id`.
func ValidateEventID() gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			ID string `json:"_id"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse("Invalid request body"))
			return
		}
		in.ID = strings.TrimSpace(in.ID)
		if errs := IdentityProfile(in.ID); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ValidationFailedResponse(errs))
			return
		}
		c.Set(PayloadKey, in.ID)
		c.Next()
	}
}
