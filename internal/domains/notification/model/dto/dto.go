package dto

import (
	"resort/internal/domains/notification/model"
	"resort/shared"
	gDto "resort/shared/dto"
	"strings"
)

type TemplateResponse struct {
	Key         string `json:"key"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	Enabled     bool   `json:"enabled"`
	Version     int    `json:"version"`
	gDto.Metadata
}

func (r *TemplateResponse) FromModel(m model.Template) {
	r.Key = m.Key
	r.Description = m.Description
	r.Subject = m.Subject
	r.Body = m.Body
	r.Enabled = m.Enabled
	r.Version = m.Version
	r.Metadata.FromModel(m.Metadata)
}

type GetTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

func (r *GetTemplatesResponse) FromModels(models []model.Template) {
	r.Templates = make([]TemplateResponse, len(models))
	for i, mod := range models {
		r.Templates[i].FromModel(mod)
	}
}

type UpdateTemplateRequest struct {
	Subject *string `json:"subject" validate:"omitempty,min=1,max=200"`
	Body    *string `json:"body"    validate:"omitempty,min=1"`
	Enabled *bool   `json:"enabled"`
}

type templateFields struct {
	Subject *string `db:"subject"`
	Body    *string `db:"body"`
	Enabled *bool   `db:"enabled"`
	Version int     `db:"version"`
}

// ToFields returns the columns to update with the version moved one past current.
func (r *UpdateTemplateRequest) ToFields(current model.Template, actor string) map[string]any {
	fields := templateFields{Enabled: r.Enabled, Version: current.Version + 1}

	if r.Subject != nil {
		subject := strings.TrimSpace(*r.Subject)
		fields.Subject = &subject
	}

	if r.Body != nil {
		fields.Body = r.Body
	}

	return shared.TransformFields(fields, actor)
}

// Empty reports whether the request changes nothing.
func (r *UpdateTemplateRequest) Empty() bool {
	return r.Subject == nil && r.Body == nil && r.Enabled == nil
}
