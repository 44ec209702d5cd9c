package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/brainbin-app/brainbin-api/internal/model"
)

// NoteRepository defines the interface for note-related database operations.
// Every read and mutation is scoped to the owning user: the ownership filter
// is the sole authorization rule of the system.
type NoteRepository interface {
	CreateNote(ctx context.Context, note *model.Note) (*model.Note, error)
	ListNotesByOwner(ctx context.Context, ownerID string) ([]*model.Note, error)
	UpdateNote(ctx context.Context, ownerID, id string, params UpdateNoteParams) (*model.Note, error)
	DeleteNote(ctx context.Context, ownerID, id string) error
	ToggleStar(ctx context.Context, ownerID, id string) (*model.Note, error)
}

// UpdateNoteParams enumerates exactly the mutable note fields. Only the
// fields that are not nil will be updated.
type UpdateNoteParams struct {
	Title       *string
	Content     *string
	Subject     *string
	Tags        *[]string
	ResourceURL *string
	Status      *string
}

const noteCollection = "notes"

type noteMongoRepository struct {
	db *mongo.Database
}

func NewNoteMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) NoteRepository {
	collection := db.Collection(noteCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "updated_at", Value: -1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create note indexes")
	}

	return &noteMongoRepository{db: db}
}

func (r *noteMongoRepository) CreateNote(ctx context.Context, note *model.Note) (*model.Note, error) {
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	if note.Tags == nil {
		note.Tags = []string{}
	}

	result, err := r.db.Collection(noteCollection).InsertOne(ctx, note)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		note.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return note, nil
}

func (r *noteMongoRepository) ListNotesByOwner(ctx context.Context, ownerID string) ([]*model.Note, error) {
	ownerObjectID, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})

	cursor, err := r.db.Collection(noteCollection).Find(ctx, bson.M{"user_id": ownerObjectID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []*model.Note{}
	for cursor.Next(ctx) {
		var note model.Note
		if err := cursor.Decode(&note); err != nil {
			return nil, err
		}
		notes = append(notes, &note)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *noteMongoRepository) UpdateNote(
	ctx context.Context,
	ownerID, id string,
	params UpdateNoteParams,
) (*model.Note, error) {
	filter, err := ownedNoteFilter(ownerID, id)
	if err != nil {
		return nil, err
	}

	// Build update query
	updateMap := bson.M{}
	if params.Title != nil {
		updateMap["title"] = *params.Title
	}
	if params.Content != nil {
		updateMap["content"] = *params.Content
	}
	if params.Subject != nil {
		updateMap["subject"] = *params.Subject
	}
	if params.Tags != nil {
		updateMap["tags"] = *params.Tags
	}
	if params.ResourceURL != nil {
		updateMap["resource_url"] = *params.ResourceURL
	}
	if params.Status != nil {
		updateMap["status"] = *params.Status
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no note fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(noteCollection).FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var note model.Note
	if err := result.Decode(&note); err != nil {
		return nil, err
	}

	return &note, nil
}

func (r *noteMongoRepository) DeleteNote(ctx context.Context, ownerID, id string) error {
	filter, err := ownedNoteFilter(ownerID, id)
	if err != nil {
		return err
	}

	result := r.db.Collection(noteCollection).FindOneAndDelete(ctx, filter)
	return result.Err()
}

func (r *noteMongoRepository) ToggleStar(ctx context.Context, ownerID, id string) (*model.Note, error) {
	filter, err := ownedNoteFilter(ownerID, id)
	if err != nil {
		return nil, err
	}

	// $not on the stored value flips the flag atomically in one round trip.
	update := bson.A{bson.M{"$set": bson.M{
		"is_starred": bson.M{"$not": "$is_starred"},
		"updated_at": time.Now(),
	}}}

	result := r.db.Collection(noteCollection).FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var note model.Note
	if err := result.Decode(&note); err != nil {
		return nil, err
	}

	return &note, nil
}

func ownedNoteFilter(ownerID, id string) (bson.M, error) {
	ownerObjectID, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	return bson.M{"_id": objectID, "user_id": ownerObjectID}, nil
}
