// internal/repository/catalog.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/nimbushr/catalog/internal/domain"
	"github.com/nimbushr/catalog/internal/model"
)

type CatalogRepositoryIface interface {
	FindByTypeAndScope(ctx context.Context, configType model.ConfigType, scopeID *uuid.UUID) (*model.ConfigCatalog, error)
	FindAllByScope(ctx context.Context, scopeID *uuid.UUID) ([]*model.ConfigCatalog, error)
	CreateIfAbsent(ctx context.Context, catalog *model.ConfigCatalog) (bool, error)
	AddItem(ctx context.Context, catalogID uuid.UUID, item *model.CatalogItem, actorID *uuid.UUID) error
	SaveItem(ctx context.Context, catalogID uuid.UUID, item *model.CatalogItem, actorID *uuid.UUID) error
	DeleteItem(ctx context.Context, catalogID, itemID uuid.UUID, actorID *uuid.UUID) error
	UpdateItemOrders(ctx context.Context, catalogID uuid.UUID, orders map[uuid.UUID]int, actorID *uuid.UUID) error
}

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// scopeQuery builds the (config_type, scope_id) predicate. Scope is nullable,
// so the nil case must match with IS NULL rather than an equality bind.
func scopeQuery(q *gorm.DB, configType model.ConfigType, scopeID *uuid.UUID) *gorm.DB {
	q = q.Where("config_type = ?", configType)
	if scopeID == nil {
		return q.Where("scope_id IS NULL")
	}
	return q.Where("scope_id = ?", *scopeID)
}

func (r *CatalogRepository) FindByTypeAndScope(ctx context.Context, configType model.ConfigType, scopeID *uuid.UUID) (*model.ConfigCatalog, error) {
	var catalog model.ConfigCatalog
	result := scopeQuery(r.db.WithContext(ctx).Preload("Items"), configType, scopeID).First(&catalog)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCatalogNotFound
		}
		return nil, fmt.Errorf("failed to find catalog: %w", result.Error)
	}
	return &catalog, nil
}

func (r *CatalogRepository) FindAllByScope(ctx context.Context, scopeID *uuid.UUID) ([]*model.ConfigCatalog, error) {
	var catalogs []*model.ConfigCatalog
	q := r.db.WithContext(ctx).Preload("Items")
	if scopeID == nil {
		q = q.Where("scope_id IS NULL")
	} else {
		q = q.Where("scope_id = ?", *scopeID)
	}
	if err := q.Find(&catalogs).Error; err != nil {
		return nil, fmt.Errorf("failed to find catalogs: %w", err)
	}
	return catalogs, nil
}

// CreateIfAbsent inserts the catalog row and reports whether it was created.
// A concurrent insert losing the race against the (config_type, scope_id)
// unique index is not an error; the row already exists and that is all the
// seeder needs.
func (r *CatalogRepository) CreateIfAbsent(ctx context.Context, catalog *model.ConfigCatalog) (bool, error) {
	if err := r.db.WithContext(ctx).Create(catalog).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return false, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create catalog: %w", err)
	}
	return true, nil
}

// AddItem appends an item inside a transaction. The duplicate-name check runs
// against the committed state within the same transaction, mirroring the
// check that the service already performed on its loaded aggregate.
func (r *CatalogRepository) AddItem(ctx context.Context, catalogID uuid.UUID, item *model.CatalogItem, actorID *uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.CatalogItem{}).
			Where("catalog_id = ? AND is_active AND lower(trim(name)) = lower(trim(?))", catalogID, item.Name).
			Count(&count).Error; err != nil {
			return fmt.Errorf("checking duplicate name: %w", err)
		}
		if count > 0 {
			return domain.ErrDuplicateItemName
		}

		item.CatalogID = catalogID
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("creating item: %w", err)
		}

		return stampCatalog(tx, catalogID, actorID)
	})

	if err != nil {
		if errors.Is(err, domain.ErrDuplicateItemName) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// SaveItem persists an edited item. When the edit renames the item, the
// duplicate check excludes the item itself.
func (r *CatalogRepository) SaveItem(ctx context.Context, catalogID uuid.UUID, item *model.CatalogItem, actorID *uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if item.IsActive {
			var count int64
			if err := tx.Model(&model.CatalogItem{}).
				Where("catalog_id = ? AND id <> ? AND is_active AND lower(trim(name)) = lower(trim(?))",
					catalogID, item.ID, item.Name).
				Count(&count).Error; err != nil {
				return fmt.Errorf("checking duplicate name: %w", err)
			}
			if count > 0 {
				return domain.ErrDuplicateItemName
			}
		}

		if err := tx.Save(item).Error; err != nil {
			return fmt.Errorf("saving item: %w", err)
		}

		return stampCatalog(tx, catalogID, actorID)
	})

	if err != nil {
		if errors.Is(err, domain.ErrDuplicateItemName) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// DeleteItem hard-removes an item row.
func (r *CatalogRepository) DeleteItem(ctx context.Context, catalogID, itemID uuid.UUID, actorID *uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("catalog_id = ? AND id = ?", catalogID, itemID).Delete(&model.CatalogItem{})
		if result.Error != nil {
			return fmt.Errorf("deleting item: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrItemNotFound
		}

		return stampCatalog(tx, catalogID, actorID)
	})

	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// UpdateItemOrders assigns new sort ranks to the given items. Ids absent from
// the map are left untouched.
func (r *CatalogRepository) UpdateItemOrders(ctx context.Context, catalogID uuid.UUID, orders map[uuid.UUID]int, actorID *uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for itemID, rank := range orders {
			if err := tx.Model(&model.CatalogItem{}).
				Where("catalog_id = ? AND id = ?", catalogID, itemID).
				Update("sort_order", rank).Error; err != nil {
				return fmt.Errorf("updating item order: %w", err)
			}
		}

		return stampCatalog(tx, catalogID, actorID)
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// stampCatalog records who touched the catalog last. updated_at is bumped
// explicitly because the Updates map bypasses gorm's hook.
func stampCatalog(tx *gorm.DB, catalogID uuid.UUID, actorID *uuid.UUID) error {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if actorID != nil {
		updates["last_modified_by_id"] = *actorID
	}
	if err := tx.Model(&model.ConfigCatalog{}).
		Where("id = ?", catalogID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("stamping catalog: %w", err)
	}
	return nil
}
