package dto_test

import (
	"net/http/httptest"
	"resort/shared/constant"
	"resort/shared/dto"
	"resort/shared/model"
	"resort/shared/timezone"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	modifiedAt := createdAt.Add(time.Hour)

	metadata := dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "guest",
		ModifiedBy: "operator-1",
	})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "guest", metadata.CreatedBy)
	assert.Equal(t, "operator-1", metadata.ModifiedBy)
}

func TestMetadata_FromModelLeavesUnsetInstantsEmpty(t *testing.T) {
	metadata := dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), CreatedBy: "guest"})

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.Empty(t, metadata.ModifiedAt)
	assert.Empty(t, metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=code&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "code", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults when empty",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults when empty",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back",
			query:          "page=abc&limit=-3",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "unknown sort direction ignored",
			query:    "sort_dir=sideways",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/bookings?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Sanitize(t *testing.T) {
	params := dto.QueryParams{SortBy: "code; DROP TABLE bookings"}
	params.Sanitize("code", "created_at")

	assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
	assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)

	params = dto.QueryParams{SortBy: "code", SortDir: dto.SortDirAsc}
	params.Sanitize("code", "created_at")

	assert.Equal(t, "code", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		group     dto.FilterGroup
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty group",
			group:     dto.FilterGroup{},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name: "equality with table",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "code", Value: "SC-20260301-AB12", Operator: dto.FilterOperatorEq, Table: "bookings"},
			}},
			wantWhere: "(bookings.code = :code)",
			wantArgs:  map[string]any{"code": "SC-20260301-AB12"},
		},
		{
			name: "and with null check",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "guest_confirmation_sent_at", Operator: dto.FilterIsNull},
				},
			},
			wantWhere: "(status = :status AND guest_confirmation_sent_at IS NULL)",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name: "in with slice expands named args",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
			}},
			wantWhere: "(id IN (:id_0, :id_1))",
			wantArgs:  map[string]any{"id_0": "a", "id_1": "b"},
		},
		{
			name: "nested group with arg name",
			group: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "created_at", ArgName: "since", Value: 1, Operator: dto.FilterOperatorGreaterEq},
					dto.FilterGroup{Filters: []any{
						dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq},
					}},
				},
			},
			wantWhere: "(created_at >= :since OR (active = :active))",
			wantArgs:  map[string]any{"since": 1, "active": true},
		},
		{
			name: "operator defaults to and",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "package_id", Value: "p-1", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq},
			}},
			wantWhere: "(package_id = :package_id AND active = :active)",
			wantArgs:  map[string]any{"package_id": "p-1", "active": true},
		},
		{
			name: "empty in list matches nothing",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn},
			}},
			wantWhere: "(FALSE)",
			wantArgs:  map[string]any{},
		},
		{
			name: "scalar in value is bound",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "id", Value: "a) OR (1=1", Operator: dto.FilterOperatorIn},
			}},
			wantWhere: "(id IN (:id))",
			wantArgs:  map[string]any{"id": "a) OR (1=1"},
		},
		{
			name: "unknown operator skipped",
			group: dto.FilterGroup{Filters: []any{
				dto.Filter{Field: "status", Value: "x", Operator: "between"},
				dto.Filter{Field: "active", Value: true, Operator: dto.FilterOperatorEq},
			}},
			wantWhere: "(active = :active)",
			wantArgs:  map[string]any{"active": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.group.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilter_Like(t *testing.T) {
	filter := dto.Filter{Field: "guest_name", Value: "ali", Operator: dto.FilterOperatorLike}

	where, args := filter.GetWhereClause()

	assert.True(t, strings.HasPrefix(where, "LOWER(guest_name) LIKE LOWER(:guest_name)"))
	assert.Equal(t, "%ali%", args["guest_name"])
}

func TestAnd(t *testing.T) {
	group := dto.And(
		dto.Eq("id", "b-1"),
		dto.Eq("status", "pending").As("from_status"),
		dto.IsNull("guest_confirmation_sent_at"),
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, dto.FilterGroupOperatorAnd, group.Operator)
	assert.Equal(t, "(id = :id AND status = :from_status AND guest_confirmation_sent_at IS NULL)", where)
	assert.Equal(t, map[string]any{"id": "b-1", "from_status": "pending"}, args)
}
