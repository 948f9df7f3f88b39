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

// DepartmentRepository handles database operations for departments.
type DepartmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository creates a new DepartmentRepository.
func NewDepartmentRepository(pool *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

func scanDepartment(row pgx.Row) (*domain.Department, error) {
	var dept domain.Department
	err := row.Scan(
		&dept.ID,
		&dept.Name,
		&dept.Description,
		&dept.LeaderID,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("scan department: %w", err)
	}
	return &dept, nil
}

// GetByID retrieves a department by ID.
func (r *DepartmentRepository) GetByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	query, args, err := psql.
		Select("id", "name", "description", "leader_id", "created_at", "updated_at").
		From("departments").
		Where(sq.Eq{"id": departmentID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build GetByID query for department %s: %w", departmentID, err)
	}

	return scanDepartment(r.pool.QueryRow(ctx, query, args...))
}

// List retrieves all departments with their member counts.
func (r *DepartmentRepository) List(ctx context.Context) ([]*domain.Department, map[string]int, error) {
	query, args, err := psql.
		Select("id", "name", "description", "leader_id", "created_at", "updated_at").
		From("departments").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build List query for departments: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("query departments: %w", err)
	}
	defer rows.Close()

	var departments []*domain.Department
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, nil, err
		}
		departments = append(departments, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate rows: %w", err)
	}

	memberRows, err := r.pool.Query(ctx, `
		SELECT department_id, COUNT(*)
		FROM actors
		WHERE department_id IS NOT NULL
		GROUP BY department_id
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("query member counts: %w", err)
	}
	defer memberRows.Close()

	memberCounts := make(map[string]int)
	for memberRows.Next() {
		var id string
		var count int
		if err := memberRows.Scan(&id, &count); err != nil {
			return nil, nil, fmt.Errorf("scan member count: %w", err)
		}
		memberCounts[id] = count
	}
	if err := memberRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate rows: %w", err)
	}

	return departments, memberCounts, nil
}

// MemberCount returns how many actors belong to a department.
func (r *DepartmentRepository) MemberCount(ctx context.Context, departmentID string) (int, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("actors").
		Where(sq.Eq{"department_id": departmentID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build MemberCount query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return count, nil
}

// Create inserts a new department within a transaction.
func (r *DepartmentRepository) Create(ctx context.Context, tx pgx.Tx, dept *domain.Department) error {
	query, args, err := psql.
		Insert("departments").
		Columns("name", "description", "leader_id").
		Values(dept.Name, dept.Description, dept.LeaderID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build Create query for department: %w", err)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create department: %w", err)
	}
	return nil
}

// Update persists department changes within a transaction.
func (r *DepartmentRepository) Update(ctx context.Context, tx pgx.Tx, dept *domain.Department) error {
	query, args, err := psql.
		Update("departments").
		Set("name", dept.Name).
		Set("description", dept.Description).
		Set("leader_id", dept.LeaderID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": dept.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Update query for department %s: %w", dept.ID, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

// Delete removes a department within a transaction.
func (r *DepartmentRepository) Delete(ctx context.Context, tx pgx.Tx, departmentID string) error {
	query, args, err := psql.
		Delete("departments").
		Where(sq.Eq{"id": departmentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build Delete query for department %s: %w", departmentID, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}
