package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (mdb *MongodbRepo) GetRestaurantByID(ctx context.Context, id primitive.ObjectID) (*Restaurant, error) {
	col, err := mdb.GetCollection(ctx, EventDbName, RestaurantColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var restaurant Restaurant
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("error finding restaurant by ID: %v", err)
	}
	return &restaurant, nil
}
