package activityRepo

import (
	"context"

	"gatherly/database"
	"gatherly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ActivityRepository resolves stored activity documents for the suggest-times
// route when the caller supplies an id instead of an inline activity.
type ActivityRepository interface {
	Create(ctx context.Context, activity models.ActivityDocument) (string, error)
	GetByID(ctx context.Context, id string) (*models.ActivityDocument, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo returns a new ActivityRepository instance using MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	db := database.MongoClient.Database("gatherly")
	return &mongoActivityRepo{
		coll: db.Collection("activities"),
	}
}
