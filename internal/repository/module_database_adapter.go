package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"learnhub/internal/domain"
	"learnhub/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// ModuleDatabaseAdapter implements domain.ModuleRepository using sqlx.
type ModuleDatabaseAdapter struct {
	db *sqlx.DB
}

func NewModuleDatabaseAdapter(db *sqlx.DB) domain.ModuleRepository {
	return &ModuleDatabaseAdapter{db: db}
}

func toDomainModule(row *models.Module) *domain.Module {
	return &domain.Module{
		ID:        row.ID,
		Title:     row.Title,
		Content:   row.Content.String,
		Type:      domain.ModuleType(row.Type),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

// FindModule implements domain.ModuleRepository
func (a *ModuleDatabaseAdapter) FindModule(ctx context.Context, id int64) (*domain.Module, error) {
	exec := GetExecutor(ctx, a.db)

	var row models.Module
	query := exec.Rebind(`SELECT id, title, content, type, created_at, updated_at FROM course_modules WHERE id = ?`)
	if err := exec.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find module %d: %w", id, err)
	}
	return toDomainModule(&row), nil
}

// FindModuleByTitle implements domain.ModuleRepository
func (a *ModuleDatabaseAdapter) FindModuleByTitle(ctx context.Context, title string) (*domain.Module, error) {
	exec := GetExecutor(ctx, a.db)

	var row models.Module
	query := exec.Rebind(`SELECT id, title, content, type, created_at, updated_at FROM course_modules WHERE title = ? ORDER BY id LIMIT 1`)
	if err := exec.GetContext(ctx, &row, query, title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find module %q: %w", title, err)
	}
	return toDomainModule(&row), nil
}

// CreateModule implements domain.ModuleRepository
func (a *ModuleDatabaseAdapter) CreateModule(ctx context.Context, module *domain.Module) (int64, error) {
	exec := GetExecutor(ctx, a.db)

	moduleType := module.Type
	if moduleType == "" {
		moduleType = domain.ModuleTypeText
	}
	content := sql.NullString{String: module.Content, Valid: module.Content != ""}

	var id int64
	query := exec.Rebind(`INSERT INTO course_modules (title, content, type, created_at, updated_at) VALUES (?, ?, ?, ?, ?) RETURNING id`)
	if err := exec.GetContext(ctx, &id, query, module.Title, content, string(moduleType), module.CreatedAt, module.UpdatedAt); err != nil {
		return 0, fmt.Errorf("failed to create module: %w", err)
	}
	return id, nil
}
