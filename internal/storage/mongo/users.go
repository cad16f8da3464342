package mongo

import (
	"context"

	"homzen/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *Storage) GetUsers(ctx context.Context) ([]models.User, error) {
	return findMany[models.User](ctx, s.collection(usersCollection), bson.M{})
}

func (s *Storage) GetUserById(ctx context.Context, id string) (models.User, error) {
	return findOne[models.User](ctx, s.collection(usersCollection), byId(id))
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return findOne[models.User](ctx, s.collection(usersCollection), bson.M{`email`: email})
}

func (s *Storage) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	user.Id = ``
	return insertOne(ctx, s.collection(usersCollection), user)
}

func (s *Storage) UpdateUserStatus(ctx context.Context, id string, update models.UserStatusUpdate) (models.UpdateResult, error) {
	set := bson.M{}
	if update.Role != `` {
		set[`role`] = update.Role
	}
	if update.Status != `` {
		set[`status`] = update.Status
	}

	return updateResult(s.collection(usersCollection).UpdateOne(ctx, byId(id), bson.M{`$set`: set}))
}

func (s *Storage) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	return deleteResult(s.collection(usersCollection).DeleteOne(ctx, byId(id)))
}
