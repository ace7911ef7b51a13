// internal/service/catalog.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nimbushr/catalog/internal/domain"
	"github.com/nimbushr/catalog/internal/model"
	"github.com/nimbushr/catalog/internal/repository"
)

// ChangeNotifier is notified after successful catalog mutations. Typically
// backed by the email service; may be nil.
type ChangeNotifier interface {
	NotifyCatalogChange(ctx context.Context, action string, configType model.ConfigType, itemName string) error
}

type CatalogService struct {
	repo         repository.CatalogRepositoryIface
	directory    repository.UserDirectoryIface
	auditRepo    repository.CatalogAuditLogRepositoryIface
	cacheService *CacheService
	notifier     ChangeNotifier
	validate     *validator.Validate
}

func NewCatalogService(
	repo repository.CatalogRepositoryIface,
	directory repository.UserDirectoryIface,
	auditRepo repository.CatalogAuditLogRepositoryIface,
	cacheService *CacheService,
	notifier ChangeNotifier,
) *CatalogService {
	return &CatalogService{
		repo:         repo,
		directory:    directory,
		auditRepo:    auditRepo,
		cacheService: cacheService,
		notifier:     notifier,
		validate:     validator.New(),
	}
}

// ItemView is the active-item projection returned by every read and
// mutation. Internal fields (creator, active flag, timestamps) stay hidden.
type ItemView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Order       int       `json:"order"`
}

type CatalogView struct {
	ConfigType     model.ConfigType `json:"configType"`
	Items          []ItemView       `json:"items"`
	LastModified   time.Time        `json:"lastModified"`
	LastModifiedBy *uuid.UUID       `json:"lastModifiedBy,omitempty"`
}

func projectCatalog(catalog *model.ConfigCatalog) *CatalogView {
	active := catalog.ActiveItems()
	items := make([]ItemView, 0, len(active))
	for _, it := range active {
		items = append(items, ItemView{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Color:       it.Color,
			Order:       it.SortOrder,
		})
	}
	return &CatalogView{
		ConfigType:     catalog.ConfigType,
		Items:          items,
		LastModified:   catalog.UpdatedAt,
		LastModifiedBy: catalog.LastModifiedByID,
	}
}

func parseConfigType(s string) (model.ConfigType, error) {
	if !model.ValidConfigType(s) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidConfigType, s)
	}
	return model.ConfigType(s), nil
}

func cacheKey(configType model.ConfigType, scopeID *uuid.UUID) string {
	scope := "global"
	if scopeID != nil {
		scope = scopeID.String()
	}
	return fmt.Sprintf("catalog:%s:%s", configType, scope)
}

// GetByType returns the active items of one catalog, seeding defaults on
// first access to a fresh scope.
func (s *CatalogService) GetByType(ctx context.Context, configType string, scopeID *uuid.UUID) (*CatalogView, error) {
	ct, err := parseConfigType(configType)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		var view CatalogView
		err := s.cacheService.GetOrSet(ctx, cacheKey(ct, scopeID), &view, func() (interface{}, error) {
			catalog, err := s.loadOrSeed(ctx, ct, scopeID)
			if err != nil {
				return nil, err
			}
			return projectCatalog(catalog), nil
		})
		if err != nil {
			return nil, err
		}
		return &view, nil
	}

	catalog, err := s.loadOrSeed(ctx, ct, scopeID)
	if err != nil {
		return nil, err
	}
	return projectCatalog(catalog), nil
}

// GetAll returns every catalog type mapped to its active items. Types with
// no catalog row yet appear with an empty list.
func (s *CatalogService) GetAll(ctx context.Context, scopeID *uuid.UUID) (map[model.ConfigType]*CatalogView, error) {
	catalogs, err := s.repo.FindAllByScope(ctx, scopeID)
	if err != nil {
		return nil, fmt.Errorf("loading catalogs: %w", err)
	}

	if len(catalogs) == 0 {
		if err := s.EnsureDefaults(ctx, scopeID); err != nil {
			return nil, err
		}
		catalogs, err = s.repo.FindAllByScope(ctx, scopeID)
		if err != nil {
			return nil, fmt.Errorf("loading catalogs after seeding: %w", err)
		}
	}

	views := make(map[model.ConfigType]*CatalogView, len(model.ConfigTypes))
	for _, ct := range model.ConfigTypes {
		views[ct] = &CatalogView{ConfigType: ct, Items: []ItemView{}}
	}
	for _, catalog := range catalogs {
		views[catalog.ConfigType] = projectCatalog(catalog)
	}
	return views, nil
}

type AddItemInput struct {
	ConfigType  string
	ScopeID     *uuid.UUID
	Name        string `validate:"required"`
	Description string
	Color       string `validate:"omitempty,hexcolor"`
	ActorID     *uuid.UUID
}

// AddItem appends an item to the end of a catalog.
func (s *CatalogService) AddItem(ctx context.Context, input AddItemInput) (*CatalogView, error) {
	ct, err := parseConfigType(input.ConfigType)
	if err != nil {
		return nil, err
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, domain.ErrEmptyItemName
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	catalog, err := s.loadOrSeed(ctx, ct, input.ScopeID)
	if err != nil {
		return nil, err
	}

	if catalog.HasActiveNamed(input.Name, uuid.Nil) {
		return nil, domain.ErrDuplicateItemName
	}

	color := input.Color
	if color == "" {
		color = model.DefaultItemColor
	}

	item := &model.CatalogItem{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: strings.TrimSpace(input.Description),
		Color:       color,
		IsActive:    true,
		SortOrder:   len(catalog.Items),
		CreatedByID: input.ActorID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.AddItem(ctx, catalog.ID, item, input.ActorID); err != nil {
		if errors.Is(err, domain.ErrDuplicateItemName) {
			return nil, err
		}
		return nil, fmt.Errorf("adding item: %w", err)
	}

	s.afterMutation(ctx, model.ActionItemAdd, ct, input.ScopeID, &item.ID, item.Name, input.ActorID)
	return s.refresh(ctx, ct, input.ScopeID)
}

// ItemPatch carries the optional fields of an item edit. Nil means "leave
// unchanged", which is different from clearing.
type ItemPatch struct {
	Name        *string
	Description *string
	Color       *string `validate:"omitnil,hexcolor"`
	IsActive    *bool
}

// UpdateItem applies a partial patch to one item.
func (s *CatalogService) UpdateItem(ctx context.Context, configType string, scopeID *uuid.UUID, itemID uuid.UUID, patch ItemPatch, actorID *uuid.UUID) (*CatalogView, error) {
	ct, err := parseConfigType(configType)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	catalog, err := s.repo.FindByTypeAndScope(ctx, ct, scopeID)
	if err != nil {
		return nil, err
	}

	item := catalog.FindItem(itemID)
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, domain.ErrEmptyItemName
		}
		if catalog.HasActiveNamed(name, itemID) {
			return nil, domain.ErrDuplicateItemName
		}
		item.Name = name
	}
	if patch.Description != nil {
		item.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Color != nil {
		item.Color = *patch.Color
	}
	if patch.IsActive != nil {
		item.IsActive = *patch.IsActive
	}

	if err := s.repo.SaveItem(ctx, catalog.ID, item, actorID); err != nil {
		if errors.Is(err, domain.ErrDuplicateItemName) {
			return nil, err
		}
		return nil, fmt.Errorf("updating item: %w", err)
	}

	s.afterMutation(ctx, model.ActionItemUpdate, ct, scopeID, &itemID, item.Name, actorID)
	return s.refresh(ctx, ct, scopeID)
}

// RemoveItem hard-deletes an item, refusing while active users still
// reference its name as their department or role.
func (s *CatalogService) RemoveItem(ctx context.Context, configType string, scopeID *uuid.UUID, itemID uuid.UUID, actorID *uuid.UUID) (*CatalogView, error) {
	ct, err := parseConfigType(configType)
	if err != nil {
		return nil, err
	}

	catalog, err := s.repo.FindByTypeAndScope(ctx, ct, scopeID)
	if err != nil {
		return nil, err
	}

	item := catalog.FindItem(itemID)
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	// Usage is only tracked for departments and roles; other types delete
	// unguarded.
	var field string
	switch ct {
	case model.ConfigDepartments:
		field = repository.DirectoryFieldDepartment
	case model.ConfigRoles:
		field = repository.DirectoryFieldRole
	}
	if field != "" && s.directory != nil {
		count, err := s.directory.CountActiveByField(ctx, field, item.Name)
		if err != nil {
			return nil, fmt.Errorf("checking item usage: %w", err)
		}
		if count > 0 {
			return nil, &domain.ItemInUseError{ItemName: item.Name, Field: field, UsageCount: count}
		}
	}

	if err := s.repo.DeleteItem(ctx, catalog.ID, itemID, actorID); err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("removing item: %w", err)
	}

	s.afterMutation(ctx, model.ActionItemRemove, ct, scopeID, &itemID, item.Name, actorID)
	return s.refresh(ctx, ct, scopeID)
}

// ReorderItems assigns order = index for each listed item. Unknown ids are
// skipped and unlisted items keep their previous order.
func (s *CatalogService) ReorderItems(ctx context.Context, configType string, scopeID *uuid.UUID, itemIDs []uuid.UUID, actorID *uuid.UUID) (*CatalogView, error) {
	ct, err := parseConfigType(configType)
	if err != nil {
		return nil, err
	}

	catalog, err := s.repo.FindByTypeAndScope(ctx, ct, scopeID)
	if err != nil {
		return nil, err
	}

	orders := make(map[uuid.UUID]int, len(itemIDs))
	for i, id := range itemIDs {
		if catalog.FindItem(id) != nil {
			orders[id] = i
		}
	}

	if err := s.repo.UpdateItemOrders(ctx, catalog.ID, orders, actorID); err != nil {
		return nil, fmt.Errorf("reordering items: %w", err)
	}

	s.afterMutation(ctx, model.ActionItemReorder, ct, scopeID, nil, "", actorID)
	return s.refresh(ctx, ct, scopeID)
}

// EnsureDefaults installs the default catalogs for every type still missing
// in the scope. Idempotent and safe under concurrent first access: losing
// the unique-index race counts as already seeded.
func (s *CatalogService) EnsureDefaults(ctx context.Context, scopeID *uuid.UUID) error {
	for _, ct := range model.ConfigTypes {
		catalog := &model.ConfigCatalog{
			ID:         uuid.New(),
			ConfigType: ct,
			ScopeID:    scopeID,
		}
		for i, seed := range defaultSeedItems[ct] {
			catalog.Items = append(catalog.Items, model.CatalogItem{
				ID:          uuid.New(),
				Name:        seed.Name,
				Description: seed.Description,
				Color:       seed.Color,
				IsActive:    true,
				SortOrder:   i,
				CreatedAt:   time.Now().UTC(),
			})
		}

		created, err := s.repo.CreateIfAbsent(ctx, catalog)
		if err != nil {
			return fmt.Errorf("seeding %s catalog: %w", ct, err)
		}
		if created {
			s.recordAudit(ctx, model.ActionSeed, ct, scopeID, nil, "", nil)
		}
	}
	return nil
}

// loadOrSeed reads one catalog, seeding the whole scope once on a miss and
// retrying the read.
func (s *CatalogService) loadOrSeed(ctx context.Context, configType model.ConfigType, scopeID *uuid.UUID) (*model.ConfigCatalog, error) {
	catalog, err := s.repo.FindByTypeAndScope(ctx, configType, scopeID)
	if err == nil {
		return catalog, nil
	}
	if !errors.Is(err, domain.ErrCatalogNotFound) {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	if err := s.EnsureDefaults(ctx, scopeID); err != nil {
		return nil, err
	}

	catalog, err = s.repo.FindByTypeAndScope(ctx, configType, scopeID)
	if err != nil {
		return nil, fmt.Errorf("loading catalog after seeding: %w", err)
	}
	return catalog, nil
}

// refresh reloads the catalog and returns the projection mutations hand back
// to the caller.
func (s *CatalogService) refresh(ctx context.Context, configType model.ConfigType, scopeID *uuid.UUID) (*CatalogView, error) {
	catalog, err := s.repo.FindByTypeAndScope(ctx, configType, scopeID)
	if err != nil {
		return nil, fmt.Errorf("reloading catalog: %w", err)
	}
	view := projectCatalog(catalog)
	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey(configType, scopeID), view); err != nil {
			slog.Warn("failed to cache catalog view", "config_type", configType, "error", err)
		}
	}
	return view, nil
}

// afterMutation invalidates the cached projection and records the audit
// trail and notification. Neither failure fails the mutation.
func (s *CatalogService) afterMutation(ctx context.Context, action string, configType model.ConfigType, scopeID *uuid.UUID, itemID *uuid.UUID, itemName string, actorID *uuid.UUID) {
	if s.cacheService != nil {
		if err := s.cacheService.Delete(ctx, cacheKey(configType, scopeID)); err != nil {
			slog.Warn("failed to invalidate catalog cache", "config_type", configType, "error", err)
		}
	}

	s.recordAudit(ctx, action, configType, scopeID, itemID, itemName, actorID)

	if s.notifier != nil {
		if err := s.notifier.NotifyCatalogChange(ctx, action, configType, itemName); err != nil {
			slog.Warn("failed to send catalog change notification", "action", action, "error", err)
		}
	}
}

func (s *CatalogService) recordAudit(ctx context.Context, action string, configType model.ConfigType, scopeID *uuid.UUID, itemID *uuid.UUID, itemName string, actorID *uuid.UUID) {
	if s.auditRepo == nil {
		return
	}
	entry := &model.CatalogAuditLog{
		Action:     action,
		ConfigType: configType,
		ScopeID:    scopeID,
		ItemID:     itemID,
		ItemName:   itemName,
		ActorID:    actorID,
		RequestID:  RequestIDFromContext(ctx),
		ClientIP:   ClientIPFromContext(ctx),
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		slog.Warn("failed to record catalog audit log", "action", action, "error", err)
	}
}
