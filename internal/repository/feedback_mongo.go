package repository

import (
	"context"
	"time"

	"teampulse-backend/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoFeedbackStore backs feedback records with a MongoDB collection.
type MongoFeedbackStore struct {
	collection *mongo.Collection
}

func NewMongoFeedbackStore(db *mongo.Database) *MongoFeedbackStore {
	return &MongoFeedbackStore{
		collection: db.Collection("feedbacks"),
	}
}

func (s *MongoFeedbackStore) Create(ctx context.Context, fb *models.Feedback) error {
	if err := validateFeedback(fb.Strengths, fb.Improvements, fb.Sentiment); err != nil {
		return err
	}

	now := time.Now()
	fb.ID = uuid.New().String()
	fb.CreatedAt = now
	fb.UpdatedAt = now
	fb.Acknowledged = false
	fb.AcknowledgedAt = nil

	_, err := s.collection.InsertOne(ctx, fb)
	return err
}

func (s *MongoFeedbackStore) GetByID(ctx context.Context, id string) (*models.Feedback, error) {
	var fb models.Feedback
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&fb)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &fb, nil
}

func (s *MongoFeedbackStore) Update(ctx context.Context, id string, upd models.FeedbackUpdate) (*models.Feedback, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	strengths := current.Strengths
	improvements := current.Improvements
	sentiment := current.Sentiment
	if upd.Strengths != nil {
		strengths = *upd.Strengths
	}
	if upd.Improvements != nil {
		improvements = *upd.Improvements
	}
	if upd.Sentiment != nil {
		sentiment = *upd.Sentiment
	}
	if err := validateFeedback(strengths, improvements, sentiment); err != nil {
		return nil, err
	}

	var updated models.Feedback
	err = s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"strengths":    strengths,
			"improvements": improvements,
			"sentiment":    sentiment,
			"updated_at":   time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (s *MongoFeedbackStore) Acknowledge(ctx context.Context, id string) (*models.Feedback, error) {
	now := time.Now()

	// Only an unacknowledged record is touched, so acknowledged_at keeps
	// the value from the first call.
	var updated models.Feedback
	err := s.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "acknowledged": false},
		bson.M{"$set": bson.M{
			"acknowledged":    true,
			"acknowledged_at": now,
			"updated_at":      now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// Either the id is unknown or the record was already acknowledged.
	return s.GetByID(ctx, id)
}

func (s *MongoFeedbackStore) ListForEmployee(ctx context.Context, employeeID string) ([]models.Feedback, error) {
	return s.list(ctx, bson.M{"employee_id": employeeID})
}

func (s *MongoFeedbackStore) ListForManager(ctx context.Context, managerID string) ([]models.Feedback, error) {
	return s.list(ctx, bson.M{"manager_id": managerID})
}

func (s *MongoFeedbackStore) list(ctx context.Context, filter bson.M) ([]models.Feedback, error) {
	cursor, err := s.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	records := []models.Feedback{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// EnsureIndexes creates necessary indexes for the feedbacks collection
func (s *MongoFeedbackStore) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "employee_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "manager_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	}
	_, err := s.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
