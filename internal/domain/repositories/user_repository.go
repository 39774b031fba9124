package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"files-manager/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entities.User, error)
	Count(ctx context.Context) (int64, error)
}
