// internal/repository/user_directory.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/nimbushr/catalog/internal/domain"
	"github.com/nimbushr/catalog/internal/model"
)

// Directory fields a catalog item name can be matched against.
const (
	DirectoryFieldDepartment = "department"
	DirectoryFieldRole       = "role"
)

type UserDirectoryIface interface {
	CountActiveByField(ctx context.Context, field, value string) (int64, error)
}

// UserDirectory answers "how many active employees reference this value"
// against the shared users table. It is read-only from this service's point
// of view.
type UserDirectory struct {
	db *gorm.DB
}

func NewUserDirectory(db *gorm.DB) *UserDirectory {
	return &UserDirectory{db: db}
}

func (d *UserDirectory) CountActiveByField(ctx context.Context, field, value string) (int64, error) {
	var column string
	switch field {
	case DirectoryFieldDepartment:
		column = "department"
	case DirectoryFieldRole:
		column = "role"
	default:
		return 0, fmt.Errorf("%w: unsupported directory field %q", domain.ErrInvalidInput, field)
	}

	var count int64
	if err := d.db.WithContext(ctx).Model(&model.User{}).
		Where(column+" = ? AND status = ?", value, model.StatusActive).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users by %s: %w", field, err)
	}
	return count, nil
}
