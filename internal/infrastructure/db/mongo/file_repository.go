package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"files-manager/internal/domain/entities"
)

// FileRepository implements repositories.FileRepository on the `files`
// collection.
type FileRepository struct {
	collection *mongo.Collection
}

func NewFileRepository(db *mongo.Database) *FileRepository {
	return &FileRepository{
		collection: db.Collection("files"),
	}
}

func (r *FileRepository) Insert(ctx context.Context, file *entities.File) (*entities.File, error) {
	res, err := r.collection.InsertOne(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("insert file: %w", err)
	}
	file.ID = res.InsertedID.(primitive.ObjectID)
	return file, nil
}

func (r *FileRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entities.File, error) {
	var file entities.File
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&file)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find file by id: %w", err)
	}
	return &file, nil
}

func (r *FileRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
