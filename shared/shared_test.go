package shared_test

import (
	"testing"

	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{
			name:     "already two decimals",
			amount:   340.25,
			expected: 340.25,
		},
		{
			name:     "rounds up",
			amount:   10.567,
			expected: 10.57,
		},
		{
			name:     "rounds down",
			amount:   12.344,
			expected: 12.34,
		},
		{
			name:     "zero amount",
			amount:   0,
			expected: 0,
		},
		{
			name:     "tax on a typical subtotal",
			amount:   340 * 0.10,
			expected: 34,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.RoundMoney(tt.amount)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	price := 120.5

	type updateRequest struct {
		Name     string   `db:"name"`
		Status   string   `db:"status"`
		Price    *float64 `db:"price"`
		Internal string
		Skipped  string `db:""`
	}

	req := updateRequest{
		Name:     "Deluxe",
		Price:    &price,
		Internal: "ignored",
		Skipped:  "ignored",
	}

	result := shared.TransformFields(req, "test-user")

	if result["name"] != "Deluxe" {
		t.Errorf("expected name to be set, got %v", result["name"])
	}

	if result["price"] != 120.5 {
		t.Errorf("expected pointer field to be dereferenced, got %v", result["price"])
	}

	if _, ok := result["status"]; ok {
		t.Error("expected zero-value field to be omitted")
	}

	if result[constant.FieldModifiedBy] != "test-user" {
		t.Errorf("expected modified_by to be set, got %v", result[constant.FieldModifiedBy])
	}

	if _, ok := result[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be set")
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("room-id", "id", "rooms")

	if len(filter.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(filter.Filters))
	}

	f, ok := filter.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", filter.Filters[0])
	}

	if f.Field != "id" || f.Table != "rooms" || f.Value != "room-id" {
		t.Errorf("unexpected filter %+v", f)
	}

	if f.Operator != dto.FilterOperatorEq {
		t.Errorf("expected Eq operator, got %v", f.Operator)
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("room:get", "room-id")
	if key != "room:get:room-id" {
		t.Errorf("unexpected cache key %q", key)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
