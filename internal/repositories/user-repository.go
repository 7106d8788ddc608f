package repositories

import (
	"context"
	"errors"

	"inventory-system/internal/entities"
	apperrors "inventory-system/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const userFields = "id, username, password, role, created_at, updated_at"

type UserRepositoryInterface interface {
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByUsername(ctx context.Context, username string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) (uint64, error)
	GetEngineers(ctx context.Context, search string) ([]entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *UserRepository) scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := "SELECT " + userFields + " FROM users WHERE id = $1"
	return r.scanUser(queryEngine(ctx, r.storage).QueryRow(ctx, query, id))
}

// FindUserByUsername ищет пользователя по точному совпадению имени
// (с учетом регистра).
func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := "SELECT " + userFields + " FROM users WHERE username = $1"
	return r.scanUser(queryEngine(ctx, r.storage).QueryRow(ctx, query, username))
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) (uint64, error) {
	query := `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id uint64
	err := queryEngine(ctx, r.storage).QueryRow(ctx, query,
		user.Username,
		user.Password,
		user.Role,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, apperrors.ErrUsernameTaken
		}
		return 0, err
	}

	return id, nil
}

// GetEngineers возвращает инженеров, опционально фильтруя по подстроке
// имени без учета регистра.
func (r *UserRepository) GetEngineers(ctx context.Context, search string) ([]entities.User, error) {
	query := "SELECT " + userFields + " FROM users WHERE role = 'Engineer'"
	args := []interface{}{}
	if search != "" {
		query += " AND username ILIKE $1"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY username"

	rows, err := queryEngine(ctx, r.storage).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var engineers []entities.User
	for rows.Next() {
		var user entities.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Password,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		engineers = append(engineers, user)
	}

	return engineers, rows.Err()
}
