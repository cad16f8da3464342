package postgres

import (
	"context"
	"fmt"
	"strings"

	"homzen/internal/models"
)

const userColumns = `id, name, email, image, role, status`

func (s *Storage) GetUsers(ctx context.Context) ([]models.User, error) {
	return selectMany[models.User](ctx, s.Db, `SELECT `+userColumns+` FROM users ORDER BY email`)
}

func (s *Storage) GetUserById(ctx context.Context, id string) (models.User, error) {
	return selectOne[models.User](ctx, s.Db, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return selectOne[models.User](ctx, s.Db, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (s *Storage) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	user.Id = models.NewId()
	return s.insert(ctx, `users`, user.Id, user)
}

func (s *Storage) UpdateUserStatus(ctx context.Context, id string, update models.UserStatusUpdate) (models.UpdateResult, error) {
	var sets []string
	var args []interface{}

	if update.Role != `` {
		args = append(args, update.Role)
		sets = append(sets, fmt.Sprintf(`role = $%d`, len(args)))
	}
	if update.Status != `` {
		args = append(args, update.Status)
		sets = append(sets, fmt.Sprintf(`status = $%d`, len(args)))
	}
	if len(sets) == 0 {
		return models.UpdateResult{}, fmt.Errorf(`nothing to update`)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`, strings.Join(sets, `, `), len(args))

	return s.update(ctx, query, args...)
}

func (s *Storage) DeleteUser(ctx context.Context, id string) (models.DeleteResult, error) {
	return s.delete(ctx, `DELETE FROM users WHERE id = $1`, id)
}
