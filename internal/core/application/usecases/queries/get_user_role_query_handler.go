package queries

import (
	"context"
	"database/sql"
	"errors"

	"zapshift/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserRoleQueryHandler resolves account roles by email. Unknown emails
// surface errs.ErrObjectNotFound so authorization checks fail closed.
type GetUserRoleQueryHandler struct {
	db *gorm.DB
}

// NewGetUserRoleQueryHandler creates a handler for role lookups.
func NewGetUserRoleQueryHandler(db *gorm.DB) GetUserRoleQueryHandler {
	return GetUserRoleQueryHandler{db: db}
}

// Handle executes the role lookup.
func (h GetUserRoleQueryHandler) Handle(ctx context.Context, query GetUserRoleQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var role string

	row := h.db.WithContext(ctx).Raw(
		`SELECT role FROM users WHERE email = ?`, query.Email(),
	).Row()

	err := row.Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errs.NewObjectNotFoundError("email", query.Email())
	}
	if err != nil {
		return "", err
	}

	return role, nil
}
