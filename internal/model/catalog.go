// internal/model/catalog.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ConfigType string

const (
	ConfigDepartments ConfigType = "departments"
	ConfigRoles       ConfigType = "roles"
	ConfigPositions   ConfigType = "positions"
	ConfigSkills      ConfigType = "skills"
	ConfigBenefits    ConfigType = "benefits"
)

// ConfigTypes lists every valid catalog type in display order.
var ConfigTypes = []ConfigType{
	ConfigDepartments,
	ConfigRoles,
	ConfigPositions,
	ConfigSkills,
	ConfigBenefits,
}

// ValidConfigType reports whether s names one of the fixed catalog types.
func ValidConfigType(s string) bool {
	switch ConfigType(s) {
	case ConfigDepartments, ConfigRoles, ConfigPositions, ConfigSkills, ConfigBenefits:
		return true
	}
	return false
}

// DefaultItemColor is applied when a new item does not specify a color.
const DefaultItemColor = "#3B82F6"

// ConfigCatalog is the aggregate root: one row per (config_type, scope_id)
// pair, enforced by a composite unique index. A nil ScopeID is the single
// global catalog.
type ConfigCatalog struct {
	ID               uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ConfigType       ConfigType    `gorm:"type:text;not null;uniqueIndex:idx_catalog_type_scope" json:"config_type"`
	ScopeID          *uuid.UUID    `gorm:"type:uuid;uniqueIndex:idx_catalog_type_scope" json:"scope_id,omitempty"`
	Items            []CatalogItem `gorm:"foreignKey:CatalogID;constraint:OnDelete:CASCADE" json:"items"`
	LastModifiedByID *uuid.UUID    `gorm:"type:uuid" json:"last_modified_by,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

func (ConfigCatalog) TableName() string {
	return "config_catalogs"
}

// CatalogItem is an identity-bearing child of a catalog. Inactive items are
// hidden from normal reads but stay stored until hard-deleted.
type CatalogItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CatalogID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Description string     `gorm:"type:text;not null;default:''" json:"description"`
	Color       string     `gorm:"type:text;not null;default:'#3B82F6'" json:"color"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	SortOrder   int        `gorm:"not null;default:0" json:"order"`
	CreatedByID *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (CatalogItem) TableName() string {
	return "catalog_items"
}

// ActiveItems returns the active items sorted ascending by SortOrder. The
// sort is stable, so items sharing an order value keep storage order.
func (c *ConfigCatalog) ActiveItems() []CatalogItem {
	active := make([]CatalogItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.IsActive {
			active = append(active, it)
		}
	}
	// insertion sort keeps ties in storage order
	for i := 1; i < len(active); i++ {
		for j := i; j > 0 && active[j].SortOrder < active[j-1].SortOrder; j-- {
			active[j], active[j-1] = active[j-1], active[j]
		}
	}
	return active
}

// FindItem returns a pointer into Items for the given id, or nil.
func (c *ConfigCatalog) FindItem(id uuid.UUID) *CatalogItem {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return &c.Items[i]
		}
	}
	return nil
}

// HasActiveNamed reports whether an active item other than exclude already
// uses name, compared case-insensitively after trimming.
func (c *ConfigCatalog) HasActiveNamed(name string, exclude uuid.UUID) bool {
	folded := strings.ToLower(strings.TrimSpace(name))
	for i := range c.Items {
		it := &c.Items[i]
		if it.ID == exclude || !it.IsActive {
			continue
		}
		if strings.ToLower(strings.TrimSpace(it.Name)) == folded {
			return true
		}
	}
	return false
}
