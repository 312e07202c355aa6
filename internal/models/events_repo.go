package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepo interface {
	InsertEvent(ctx context.Context, event *Event) (*Event, error)
	GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	UpdateEventByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Event, error)
	DeleteEventByID(ctx context.Context, id primitive.ObjectID) error
	ListEventsByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]*Event, error)
}

func (mdb *MongodbRepo) InsertEvent(ctx context.Context, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventDbName, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	event.BeforeCreate()
	if err := Validate.Struct(event); err != nil {
		return nil, newDocumentInvalidError(err)
	}

	if _, err := col.InsertOne(ctx, event); err != nil {
		return nil, fmt.Errorf("error inserting event: %v", err)
	}
	return event, nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventDbName, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error finding event by ID: %v", err)
	}
	return &event, nil
}

// UpdateEventByID applies a partial replace of the supplied fields and
// returns the post-update document.
func (mdb *MongodbRepo) UpdateEventByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventDbName, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Event
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error updating event: %v", err)
	}
	return &updated, nil
}

func (mdb *MongodbRepo) DeleteEventByID(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, EventDbName, EventColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting event: %v", err)
	}
	if res.DeletedCount == 0 {
		return ErrEventNotFound
	}
	return nil
}

// ListEventsByRestaurant returns the restaurant's events ordered by
// start_date then start_time, both ascending.
func (mdb *MongodbRepo) ListEventsByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, EventDbName, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "start_date", Value: 1},
		{Key: "start_time", Value: 1},
	})

	cursor, err := col.Find(ctx, bson.M{"restaurant_id": restaurantID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding events: %v", err)
	}
	defer cursor.Close(ctx)

	events := []*Event{}
	for cursor.Next(ctx) {
		var event Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding event: %v", err)
		}
		events = append(events, &event)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}
	return events, nil
}
