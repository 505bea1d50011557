package dto

import (
	"resort/shared/constant"
	"resort/shared/model"
	"resort/shared/timezone"
	"time"
)

// Metadata is the audit trail rendered in the resort's timezone. Unset instants render empty.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at,omitempty"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = formatInstant(model.CreatedAt)
	m.ModifiedAt = formatInstant(model.ModifiedAt)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}

func formatInstant(at time.Time) string {
	if at.IsZero() {
		return ""
	}

	return timezone.Format(at, constant.DateFormat)
}
