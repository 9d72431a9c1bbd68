package user

import "context"

type Repository interface {
	Create(ctx context.Context, login, passwordHash string, role Role) (int, error)
	FindByLogin(ctx context.Context, login string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
}
