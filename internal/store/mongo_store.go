package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"nba-recap-service/internal/domain/recaps"
)

// MongoConfig controls how the Mongo store connects.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MongoStore serves recaps from a MongoDB collection.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and returns a store bound to the recap
// collection.
func NewMongoStore(cfg MongoConfig) (*MongoStore, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongo store: URI is required")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo store: connect: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// RecordsByDate returns every recap for the given date.
func (s *MongoStore) RecordsByDate(ctx context.Context, date string) ([]recaps.GameRecord, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var out []recaps.GameRecord
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out, nil
}

// RecordsByTeam returns up to limit recaps where either side matches team
// (case-insensitive substring), most recent first.
func (s *MongoStore) RecordsByTeam(ctx context.Context, team string, limit int) ([]recaps.GameRecord, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"home_team": bson.M{"$regex": team, "$options": "i"}},
			{"away_team": bson.M{"$regex": team, "$options": "i"}},
		},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var out []recaps.GameRecord
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out, nil
}

// SetEspnGameID fills in the ESPN game ID for a stored recap.
func (s *MongoStore) SetEspnGameID(ctx context.Context, id, espnGameID string) error {
	_, err := s.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"espn_game_id": espnGameID}})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
