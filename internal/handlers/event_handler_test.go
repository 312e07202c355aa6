package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/ariyanssg/event-mangement-api/internal/config"
	"github.com/ariyanssg/event-mangement-api/internal/models"
	"github.com/ariyanssg/event-mangement-api/internal/services"
	"github.com/ariyanssg/event-mangement-api/internal/validation"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memEventRepo struct {
	events map[primitive.ObjectID]*models.Event
}

func (m *memEventRepo) InsertEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	event.BeforeCreate()
	stored := *event
	m.events[event.ID] = &stored
	return event, nil
}

func (m *memEventRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	cp := *event
	return &cp, nil
}

func (m *memEventRepo) UpdateEventByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Event, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, models.ErrEventNotFound
	}
	for key, value := range fields {
		switch key {
		case "event_title":
			event.EventTitle = value.(string)
		case "entry_fee_per_person":
			event.EntryFeePerPerson = value.(float64)
		case "start_date":
			event.StartDate = value.(time.Time)
		case "end_date":
			event.EndDate = value.(time.Time)
		case "start_time":
			event.StartTime = value.(string)
		case "end_time":
			event.EndTime = value.(string)
		case "is_active":
			event.IsActive = value.(bool)
		case "updated_at":
			event.UpdatedAt = value.(time.Time)
		}
	}
	cp := *event
	return &cp, nil
}

func (m *memEventRepo) DeleteEventByID(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := m.events[id]; !ok {
		return models.ErrEventNotFound
	}
	delete(m.events, id)
	return nil
}

func (m *memEventRepo) ListEventsByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]*models.Event, error) {
	var out []*models.Event
	for _, event := range m.events {
		if event.RestaurantID == restaurantID {
			cp := *event
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.Before(out[j].StartDate)
		}
		return out[i].StartTime < out[j].StartTime
	})
	return out, nil
}

type memRestaurantRepo struct {
	restaurants map[primitive.ObjectID]*models.Restaurant
}

func (m *memRestaurantRepo) GetRestaurantByID(ctx context.Context, id primitive.ObjectID) (*models.Restaurant, error) {
	restaurant, ok := m.restaurants[id]
	if !ok {
		return nil, models.ErrRestaurantNotFound
	}
	return restaurant, nil
}

func newTestRouter() (*gin.Engine, *memEventRepo, *models.Restaurant) {
	gin.SetMode(gin.TestMode)

	restaurant := &models.Restaurant{
		ID:      primitive.NewObjectID(),
		Name:    "The Jazz Lounge",
		Address: "123 Banani Road, Dhaka",
		Phone:   "+880123456789",
		Email:   "info@jazzlounge.com",
	}
	events := &memEventRepo{events: make(map[primitive.ObjectID]*models.Event)}
	restaurants := &memRestaurantRepo{
		restaurants: map[primitive.ObjectID]*models.Restaurant{restaurant.ID: restaurant},
	}

	svc := services.NewEventService(events, restaurants)
	cfg := &config.Config{Environment: "development"}

	r := gin.New()
	admin := r.Group("/api/v1/admin")
	admin.POST("/addEvent", validation.ValidateEvent(), AddEvent(svc, cfg))
	admin.PUT("/updateEvent", validation.ValidateEventUpdate(), UpdateEvent(svc, cfg))
	admin.GET("/getEventData/:rid", GetEventData(svc, cfg))
	admin.DELETE("/DeleteEvent", validation.ValidateEventID(), DeleteEvent(svc, cfg))

	return r, events, restaurant
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, parsed
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(models.DateLayout)
}

func createPayload(restaurantID string) map[string]interface{} {
	return map[string]interface{}{
		"restaurant_id":        restaurantID,
		"event_title":          "Live Jazz Night",
		"event_description":    "An amazing night of live jazz music.",
		"cover_image":          "https://example.com/jazz.jpg",
		"entry_fee_per_person": 500,
		"start_date":           futureDate(7),
		"end_date":             futureDate(7),
		"start_time":           "19:00",
		"end_time":             "23:00",
		"contact_address":      "123 Banani Road, Dhaka",
		"email":                "Events@JazzLounge.com",
		"mobile":               "+880123456789",
	}
}

func TestAddEventCreated(t *testing.T) {
	r, repo, restaurant := newTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/v1/admin/addEvent", createPayload(restaurant.ID.Hex()))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %v)", w.Code, body)
	}
	if body["success"] != true {
		t.Error("expected success envelope")
	}

	data := body["data"].(map[string]interface{})
	if data["_id"] == nil || data["created_at"] == nil {
		t.Error("expected generated id and timestamps in response")
	}
	if data["is_active"] != true {
		t.Error("is_active should default to true")
	}
	if data["status"] != models.StatusUpcoming {
		t.Errorf("status = %v, want %q", data["status"], models.StatusUpcoming)
	}
	if data["email"] != "events@jazzlounge.com" {
		t.Errorf("email = %v, want lower-cased value", data["email"])
	}
	if len(repo.events) != 1 {
		t.Errorf("stored %d documents, want 1", len(repo.events))
	}
}

func TestAddEventTimeOrderingValidation(t *testing.T) {
	r, repo, restaurant := newTestRouter()

	payload := createPayload(restaurant.ID.Hex())
	payload["end_time"] = "18:00"

	w, body := doJSON(t, r, http.MethodPost, "/api/v1/admin/addEvent", payload)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["message"] != "Validation failed" {
		t.Errorf("message = %v, want validation failure", body["message"])
	}
	if len(repo.events) != 0 {
		t.Error("no document should be created on validation failure")
	}

	// Fixing the end time makes the same request succeed.
	payload["end_time"] = "23:00"
	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/admin/addEvent", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("status after fix = %d, want 201", w.Code)
	}
}

func TestAddEventRestaurantNotFound(t *testing.T) {
	r, repo, _ := newTestRouter()

	w, body := doJSON(t, r, http.MethodPost, "/api/v1/admin/addEvent", createPayload(primitive.NewObjectID().Hex()))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if body["message"] != "Restaurant not found" {
		t.Errorf("message = %v", body["message"])
	}
	if len(repo.events) != 0 {
		t.Error("no document should be created when the restaurant is missing")
	}
}

func TestUpdateEventFlow(t *testing.T) {
	r, _, restaurant := newTestRouter()

	_, created := doJSON(t, r, http.MethodPost, "/api/v1/admin/addEvent", createPayload(restaurant.ID.Hex()))
	id := created["data"].(map[string]interface{})["_id"].(string)

	w, body := doJSON(t, r, http.MethodPut, "/api/v1/admin/updateEvent", map[string]interface{}{
		"_id":         id,
		"event_title": "Smooth Jazz Night",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %v)", w.Code, body)
	}
	data := body["data"].(map[string]interface{})
	if data["event_title"] != "Smooth Jazz Night" {
		t.Errorf("title = %v, want updated value", data["event_title"])
	}
	if data["event_description"] != "An amazing night of live jazz music." {
		t.Error("unsupplied field changed by partial update")
	}

	// Malformed id fails validation before reaching the data layer.
	w, _ = doJSON(t, r, http.MethodPut, "/api/v1/admin/updateEvent", map[string]interface{}{
		"_id": "not-an-object-id",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed id status = %d, want 400", w.Code)
	}

	// Unknown id is a 404, distinct from the malformed case.
	w, _ = doJSON(t, r, http.MethodPut, "/api/v1/admin/updateEvent", map[string]interface{}{
		"_id":         primitive.NewObjectID().Hex(),
		"event_title": "Nobody Home",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", w.Code)
	}
}

func TestGetEventData(t *testing.T) {
	r, _, restaurant := newTestRouter()

	// Zero events: 200 with an empty list, not an error.
	w, body := doJSON(t, r, http.MethodGet, "/api/v1/admin/getEventData/"+restaurant.ID.Hex(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["count"] != float64(0) {
		t.Errorf("count = %v, want 0", body["count"])
	}

	// Two events on different days arrive sorted by start date.
	later := createPayload(restaurant.ID.Hex())
	later["event_title"] = "Late Show"
	later["start_date"] = futureDate(14)
	later["end_date"] = futureDate(14)
	doJSON(t, r, http.MethodPost, "/api/v1/admin/addEvent", later)

	earlier := createPayload(restaurant.ID.Hex())
	earlier["event_title"] = "Matinee"
	doJSON(t, r, http.MethodPost, "/api/v1/admin/addEvent", earlier)

	w, body = doJSON(t, r, http.MethodGet, "/api/v1/admin/getEventData/"+restaurant.ID.Hex(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["count"] != float64(2) {
		t.Fatalf("count = %v, want 2", body["count"])
	}

	items := body["data"].([]interface{})
	firstItem := items[0].(map[string]interface{})
	secondItem := items[1].(map[string]interface{})
	if firstItem["event_title"] != "Matinee" || secondItem["event_title"] != "Late Show" {
		t.Errorf("items out of order: %v then %v", firstItem["event_title"], secondItem["event_title"])
	}

	owner := firstItem["restaurant"].(map[string]interface{})
	if owner["name"] != restaurant.Name || owner["address"] != restaurant.Address {
		t.Error("restaurant projection missing or wrong")
	}
}

func TestGetEventDataFailureModes(t *testing.T) {
	r, _, _ := newTestRouter()

	w, body := doJSON(t, r, http.MethodGet, "/api/v1/admin/getEventData/not-an-object-id", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed id status = %d, want 400", w.Code)
	}
	if body["message"] != "Invalid restaurant ID format" {
		t.Errorf("message = %v", body["message"])
	}

	w, body = doJSON(t, r, http.MethodGet, "/api/v1/admin/getEventData/"+primitive.NewObjectID().Hex(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", w.Code)
	}
	if body["message"] != "Restaurant not found" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestDeleteEventTwice(t *testing.T) {
	r, repo, restaurant := newTestRouter()

	_, created := doJSON(t, r, http.MethodPost, "/api/v1/admin/addEvent", createPayload(restaurant.ID.Hex()))
	id := created["data"].(map[string]interface{})["_id"].(string)

	w, body := doJSON(t, r, http.MethodDelete, "/api/v1/admin/DeleteEvent", map[string]interface{}{"_id": id})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %v)", w.Code, body)
	}
	data := body["data"].(map[string]interface{})
	if data["deleted_event_id"] != id {
		t.Errorf("deleted_event_id = %v, want %v", data["deleted_event_id"], id)
	}
	if data["deleted_event_title"] != "Live Jazz Night" {
		t.Errorf("deleted_event_title = %v", data["deleted_event_title"])
	}
	if len(repo.events) != 0 {
		t.Error("record still present after delete")
	}

	w, body = doJSON(t, r, http.MethodDelete, "/api/v1/admin/DeleteEvent", map[string]interface{}{"_id": id})
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
	if body["message"] != "Event not found" {
		t.Errorf("second delete message = %v", body["message"])
	}
}

func TestDeleteEventInvalidID(t *testing.T) {
	r, _, _ := newTestRouter()

	w, body := doJSON(t, r, http.MethodDelete, "/api/v1/admin/DeleteEvent", map[string]interface{}{"_id": "nope"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if body["message"] != "Validation failed" {
		t.Errorf("message = %v", body["message"])
	}
}
