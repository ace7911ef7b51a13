// internal/model/audit_log.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// CatalogAuditLog records one catalog mutation for the admin audit trail.
type CatalogAuditLog struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Timestamp  time.Time  `json:"timestamp" gorm:"default:CURRENT_TIMESTAMP"`
	Action     string     `json:"action"`
	ConfigType ConfigType `json:"config_type" gorm:"type:text;index"`
	ScopeID    *uuid.UUID `json:"scope_id,omitempty" gorm:"type:uuid"`
	ItemID     *uuid.UUID `json:"item_id,omitempty" gorm:"type:uuid"`
	ItemName   string     `json:"item_name"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty" gorm:"type:uuid"`
	Context    JSONMap    `json:"context" gorm:"type:jsonb"`
	RequestID  string     `json:"request_id"`
	ClientIP   string     `json:"client_ip"`
	CreatedAt  time.Time  `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for CatalogAuditLog
func (CatalogAuditLog) TableName() string {
	return "catalog_audit_logs"
}

// Constants for CatalogAuditLog actions
const (
	ActionItemAdd     = "item_add"
	ActionItemUpdate  = "item_update"
	ActionItemRemove  = "item_remove"
	ActionItemReorder = "item_reorder"
	ActionSeed        = "seed"
)

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}
