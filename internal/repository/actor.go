package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/docnhanh/newsdesk/internal/domain"
)

// actorColumns is the shared list of columns for actor queries.
var actorColumns = []string{
	"id", "username", "email", "full_name", "password_hash", "role",
	"department_id", "position", "status", "last_login_at",
	"created_at", "updated_at",
}

// ActorRepository handles database operations for staff accounts.
type ActorRepository struct {
	pool *pgxpool.Pool
}

// NewActorRepository creates a new ActorRepository.
func NewActorRepository(pool *pgxpool.Pool) *ActorRepository {
	return &ActorRepository{pool: pool}
}

func scanActor(row pgx.Row) (*domain.Actor, error) {
	var actor domain.Actor
	err := row.Scan(
		&actor.ID,
		&actor.Username,
		&actor.Email,
		&actor.FullName,
		&actor.PasswordHash,
		&actor.Role,
		&actor.DepartmentID,
		&actor.Position,
		&actor.Status,
		&actor.LastLoginAt,
		&actor.CreatedAt,
		&actor.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActorNotFound
		}
		return nil, fmt.Errorf("scan actor: %w", err)
	}
	return &actor, nil
}

// GetByID retrieves an actor by ID.
func (r *ActorRepository) GetByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	query, args, err := psql.
		Select(actorColumns...).
		From("actors").
		Where(sq.Eq{"id": actorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for actor: %w", err)
	}

	return scanActor(r.pool.QueryRow(ctx, query, args...))
}

// GetByUsername retrieves an actor by username.
func (r *ActorRepository) GetByUsername(ctx context.Context, username string) (*domain.Actor, error) {
	query, args, err := psql.
		Select(actorColumns...).
		From("actors").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByUsername query for actor: %w", err)
	}

	return scanActor(r.pool.QueryRow(ctx, query, args...))
}

// ActorListFilters holds supported filters for listing staff accounts.
type ActorListFilters struct {
	Role         *domain.Role
	DepartmentID *string
	Status       *domain.ActorStatus
	Limit        int
	Offset       int
}

// List retrieves actors with filters and pagination, newest first.
func (r *ActorRepository) List(ctx context.Context, filters ActorListFilters) ([]*domain.Actor, int, error) {
	qb := psql.Select(actorColumns...).From("actors")
	countQb := psql.Select("COUNT(*)").From("actors")

	if filters.Role != nil {
		qb = qb.Where(sq.Eq{"role": *filters.Role})
		countQb = countQb.Where(sq.Eq{"role": *filters.Role})
	}
	if filters.DepartmentID != nil {
		qb = qb.Where(sq.Eq{"department_id": *filters.DepartmentID})
		countQb = countQb.Where(sq.Eq{"department_id": *filters.DepartmentID})
	}
	if filters.Status != nil {
		qb = qb.Where(sq.Eq{"status": *filters.Status})
		countQb = countQb.Where(sq.Eq{"status": *filters.Status})
	}

	qb = qb.OrderBy("created_at DESC").
		Limit(uint64(filters.Limit)).
		Offset(uint64(filters.Offset))

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build List query for actors: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query actors: %w", err)
	}
	defer rows.Close()

	var actors []*domain.Actor
	for rows.Next() {
		actor, err := scanActor(rows)
		if err != nil {
			return nil, 0, err
		}
		actors = append(actors, actor)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate rows: %w", err)
	}

	countQuery, countArgs, err := countQb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query for actors: %w", err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count actors: %w", err)
	}

	return actors, total, nil
}

// Create inserts a new actor within a transaction.
func (r *ActorRepository) Create(ctx context.Context, tx pgx.Tx, actor *domain.Actor) error {
	query, args, err := psql.
		Insert("actors").
		Columns("username", "email", "full_name", "password_hash", "role",
			"department_id", "position", "status").
		Values(actor.Username, actor.Email, actor.FullName, actor.PasswordHash,
			actor.Role, actor.DepartmentID, actor.Position, actor.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for actor: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&actor.ID, &actor.CreatedAt, &actor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create actor: %w", err)
	}
	return nil
}

// Update persists profile, role and status changes within a transaction.
func (r *ActorRepository) Update(ctx context.Context, tx pgx.Tx, actor *domain.Actor) error {
	query, args, err := psql.
		Update("actors").
		Set("email", actor.Email).
		Set("full_name", actor.FullName).
		Set("role", actor.Role).
		Set("department_id", actor.DepartmentID).
		Set("position", actor.Position).
		Set("status", actor.Status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": actor.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Update query for actor %s: %w", actor.ID, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update actor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActorNotFound
	}
	return nil
}

// Delete removes an actor within a transaction.
func (r *ActorRepository) Delete(ctx context.Context, tx pgx.Tx, actorID string) error {
	query, args, err := psql.
		Delete("actors").
		Where(sq.Eq{"id": actorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for actor %s: %w", actorID, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete actor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActorNotFound
	}
	return nil
}

// TouchLastLogin records a successful login within a transaction.
func (r *ActorRepository) TouchLastLogin(ctx context.Context, tx pgx.Tx, actorID string) error {
	query, args, err := psql.
		Update("actors").
		Set("last_login_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": actorID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build TouchLastLogin query for actor %s: %w", actorID, err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

// Names returns a map of actor ID to full name for the given IDs.
// Used to decorate task and history projections.
func (r *ActorRepository) Names(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	query, args, err := psql.
		Select("id", "full_name").
		From("actors").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build Names query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query actor names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan actor name: %w", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return names, nil
}
