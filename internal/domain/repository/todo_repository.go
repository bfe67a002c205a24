package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskdeck/internal/common"
	"taskdeck/internal/domain/model"
)

type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	FindByID(ctx context.Context, id int64) (*model.Todo, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error)
	FindAll(ctx context.Context) ([]model.Todo, error)
	Update(ctx context.Context, todo *model.Todo) error
	DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error
	DeleteByID(ctx context.Context, id int64) error
}

type pgTodoRepository struct {
	db *sql.DB
}

func NewPgTodoRepository(db *sql.DB) TodoRepository {
	return &pgTodoRepository{db: db}
}

func (r *pgTodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	query := `INSERT INTO todos (title, description, priority, complete, owner_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		todo.Title, todo.Description, todo.Priority, todo.Complete, todo.OwnerID,
	).Scan(&todo.ID)
	if err != nil {
		return fmt.Errorf("pgTodoRepository.Create: %w", err)
	}
	return nil
}

func (r *pgTodoRepository) FindByID(ctx context.Context, id int64) (*model.Todo, error) {
	query := `SELECT id, title, description, priority, complete, owner_id FROM todos WHERE id = $1`
	todo := &model.Todo{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&todo.ID, &todo.Title, &todo.Description, &todo.Priority, &todo.Complete, &todo.OwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgTodoRepository.FindByID: %w", err)
	}
	return todo, nil
}

func (r *pgTodoRepository) FindByOwner(ctx context.Context, ownerID int64) ([]model.Todo, error) {
	query := `SELECT id, title, description, priority, complete, owner_id FROM todos WHERE owner_id = $1 ORDER BY id`
	return r.findMany(ctx, query, ownerID)
}

func (r *pgTodoRepository) FindAll(ctx context.Context) ([]model.Todo, error) {
	query := `SELECT id, title, description, priority, complete, owner_id FROM todos ORDER BY id`
	return r.findMany(ctx, query)
}

func (r *pgTodoRepository) findMany(ctx context.Context, query string, args ...any) ([]model.Todo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgTodoRepository.findMany: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		var todo model.Todo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.Priority, &todo.Complete, &todo.OwnerID); err != nil {
			return nil, fmt.Errorf("pgTodoRepository.findMany scan: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgTodoRepository.findMany rows: %w", err)
	}
	return todos, nil
}

func (r *pgTodoRepository) Update(ctx context.Context, todo *model.Todo) error {
	query := `UPDATE todos SET title = $1, description = $2, priority = $3, complete = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, todo.Title, todo.Description, todo.Priority, todo.Complete, todo.ID)
	if err != nil {
		return fmt.Errorf("pgTodoRepository.Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgTodoRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("pgTodoRepository.DeleteByIDAndOwner: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgTodoRepository) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgTodoRepository.DeleteByID: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}
