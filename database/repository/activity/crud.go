package activityRepo

import (
	"context"
	"errors"
	"time"

	"gatherly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new activity document and returns its ID.
func (r *mongoActivityRepo) Create(ctx context.Context, activity models.ActivityDocument) (string, error) {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	activity.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, activity)
	if err != nil {
		return "", err
	}
	return activity.ID, nil
}

// GetByID returns an activity document by its ID.
func (r *mongoActivityRepo) GetByID(ctx context.Context, id string) (*models.ActivityDocument, error) {
	var activity models.ActivityDocument
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&activity)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// DeleteByID removes an activity document by ID.
func (r *mongoActivityRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("activity not found")
	}
	return nil
}
