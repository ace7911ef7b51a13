// internal/handler/audit_log.go
package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nimbushr/catalog/internal/repository"
)

// AuditLogHandler handles API requests against the catalog mutation trail
type AuditLogHandler struct {
	auditRepo repository.CatalogAuditLogRepositoryIface
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(auditRepo repository.CatalogAuditLogRepositoryIface) *AuditLogHandler {
	return &AuditLogHandler{
		auditRepo: auditRepo,
	}
}

// GetAuditLogs handles requests to retrieve audit logs with filtering
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	params := repository.AuditQueryParams{}

	// Apply filters from query parameters
	if action := r.URL.Query().Get("action"); action != "" {
		params.Action = action
	}

	if configType := r.URL.Query().Get("config_type"); configType != "" {
		params.ConfigType = configType
	}

	if actorStr := r.URL.Query().Get("actor_id"); actorStr != "" {
		if actorID, err := uuid.Parse(actorStr); err == nil {
			params.ActorID = &actorID
		}
	}

	if itemStr := r.URL.Query().Get("item_id"); itemStr != "" {
		if itemID, err := uuid.Parse(itemStr); err == nil {
			params.ItemID = &itemID
		}
	}

	if startTimeStr := r.URL.Query().Get("start_time"); startTimeStr != "" {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err == nil {
			params.StartTime = startTime
		}
	}

	if endTimeStr := r.URL.Query().Get("end_time"); endTimeStr != "" {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err == nil {
			params.EndTime = endTime
		}
	}

	// Pagination
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			params.Limit = limit
		}
	}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	logs, total, err := h.auditRepo.Query(r.Context(), params)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve audit logs", err.Error())
		return
	}

	respondWithData(w, http.StatusOK, "Audit logs retrieved", struct {
		Logs  interface{} `json:"logs"`
		Total int64       `json:"total"`
	}{
		Logs:  logs,
		Total: total,
	})
}

// GetAuditLogByID handles requests to retrieve a specific audit log by ID
func (h *AuditLogHandler) GetAuditLogByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		respondWithError(w, http.StatusBadRequest, "Missing audit log ID", "id parameter is required")
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid audit log ID format", err.Error())
		return
	}

	entry, err := h.auditRepo.FindByID(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve audit log", err.Error())
		return
	}

	respondWithData(w, http.StatusOK, "Audit log retrieved", entry)
}
