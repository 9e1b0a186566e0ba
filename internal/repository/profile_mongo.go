package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/careerpath/careerpath-go/internal/model"
)

// MongoProfileRepository stores profiles in the user_profiles collection.
type MongoProfileRepository struct {
	profiles *mongo.Collection
	users    *mongo.Collection
}

// NewMongoProfileRepository creates a new MongoProfileRepository.
func NewMongoProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{
		profiles: db.Collection(profilesCollection),
		users:    db.Collection(usersCollection),
	}
}

// Upsert replaces the user's profile document in full, inserting it if absent,
// then flags the owning user. The flag update is idempotent, so a failure
// between the two writes is repaired by the next upsert.
func (r *MongoProfileRepository) Upsert(ctx context.Context, profile *model.Profile) error {
	filter := bson.D{{Key: "user_id", Value: profile.UserID}}
	if _, err := r.profiles.ReplaceOne(ctx, filter, profile, options.Replace().SetUpsert(true)); err != nil {
		return err
	}

	_, err := r.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: profile.UserID}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "profile_completed", Value: true}}}},
	)
	return err
}

// GetByUserID retrieves the profile owned by userID.
func (r *MongoProfileRepository) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var profile model.Profile
	err := r.profiles.FindOne(ctx, bson.D{{Key: "user_id", Value: userID}}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
