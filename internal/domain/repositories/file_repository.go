package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"files-manager/internal/domain/entities"
)

type FileRepository interface {
	Insert(ctx context.Context, file *entities.File) (*entities.File, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entities.File, error)
	Count(ctx context.Context) (int64, error)
}
