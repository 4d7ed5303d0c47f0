package repository

import (
	"context"

	"teampulse-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoUserStore backs the user set with a MongoDB collection for
// deployments that want durable reference data.
type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{
		collection: db.Collection("users"),
	}
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *MongoUserStore) TeamMembers(ctx context.Context, managerID string) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{
		"role":       models.RoleEmployee,
		"manager_id": managerID,
	})
	if err != nil {
		return nil, err
	}
	team := []models.User{}
	if err := cursor.All(ctx, &team); err != nil {
		return nil, err
	}
	return team, nil
}

// Seed inserts the given users if the collection is empty.
func (s *MongoUserStore) Seed(ctx context.Context, users []models.User) error {
	count, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	docs := make([]interface{}, len(users))
	for i := range users {
		docs[i] = users[i]
	}
	_, err = s.collection.InsertMany(ctx, docs)
	return err
}

// EnsureIndexes creates necessary indexes for the users collection
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "manager_id", Value: 1}},
		},
	}
	_, err := s.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
