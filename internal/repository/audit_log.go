// internal/repository/audit_log.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nimbushr/catalog/internal/model"
)

type CatalogAuditLogRepositoryIface interface {
	Create(ctx context.Context, entry *model.CatalogAuditLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CatalogAuditLog, error)
	Query(ctx context.Context, params AuditQueryParams) ([]model.CatalogAuditLog, int64, error)
}

// CatalogAuditLogRepository handles database operations for the catalog
// mutation audit trail.
type CatalogAuditLogRepository struct {
	db *gorm.DB
}

func NewCatalogAuditLogRepository(db *gorm.DB) *CatalogAuditLogRepository {
	return &CatalogAuditLogRepository{db: db}
}

// Create inserts a new audit log entry
func (r *CatalogAuditLogRepository) Create(ctx context.Context, entry *model.CatalogAuditLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to create catalog audit log: %w", result.Error)
	}

	return nil
}

// FindByID retrieves an audit log entry by its ID
func (r *CatalogAuditLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CatalogAuditLog, error) {
	var entry model.CatalogAuditLog
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entry)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find catalog audit log: %w", result.Error)
	}

	return &entry, nil
}

// AuditQueryParams holds parameters for querying audit logs
type AuditQueryParams struct {
	Action     string
	ConfigType string
	ActorID    *uuid.UUID
	ItemID     *uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Limit      int
	Offset     int
}

// Query retrieves audit logs based on the provided query parameters
func (r *CatalogAuditLogRepository) Query(ctx context.Context, params AuditQueryParams) ([]model.CatalogAuditLog, int64, error) {
	var logs []model.CatalogAuditLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.CatalogAuditLog{})

	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}
	if params.ConfigType != "" {
		query = query.Where("config_type = ?", params.ConfigType)
	}
	if params.ActorID != nil {
		query = query.Where("actor_id = ?", *params.ActorID)
	}
	if params.ItemID != nil {
		query = query.Where("item_id = ?", *params.ItemID)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	// Get total count for pagination
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count catalog audit logs: %w", err)
	}

	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	} else {
		query = query.Limit(100) // Default limit
	}

	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	result := query.Order("timestamp DESC").Find(&logs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query catalog audit logs: %w", result.Error)
	}

	return logs, count, nil
}
