package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// Validate enforces the document-level structural constraints on write.
var Validate = validator.New()

// Not-found sentinels. Repositories translate the driver's "no documents"
// condition into these so callers can branch with errors.Is.
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrEventNotFound      = errors.New("event not found")
)

// DocumentInvalidError reports a payload that failed the store's own
// structural constraints, with one entry per offending field.
type DocumentInvalidError struct {
	Fields []FieldError
}

func (e *DocumentInvalidError) Error() string {
	return fmt.Sprintf("document failed %d structural constraint(s)", len(e.Fields))
}

// newDocumentInvalidError maps validator output onto the per-field error
// shape the API promises.
func newDocumentInvalidError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed constraint %q", fe.Tag()),
			Value:   fe.Value(),
		})
	}
	return &DocumentInvalidError{Fields: fields}
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(dbName).Collection(colName), nil
}
