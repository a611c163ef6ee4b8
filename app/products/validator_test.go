package products

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// --- Mock Category Checker ---

type MockCategoryChecker struct {
	Existing map[uint]bool
	Err      error

	lastCheckedID uint
}

func (m *MockCategoryChecker) Exists(id uint) (bool, error) {
	m.lastCheckedID = id
	if m.Err != nil {
		return false, m.Err
	}
	return m.Existing[id], nil
}

func payloadFrom(t *testing.T, body string) ProductPayload {
	t.Helper()
	var p ProductPayload
	err := json.Unmarshal([]byte(body), &p)
	assert.NoError(t, err)
	return p
}

// --- Tests ---

func TestValidateCreate(t *testing.T) {
	checker := &MockCategoryChecker{Existing: map[uint]bool{1: true, 2: true}}

	testCases := []struct {
		name           string
		body           string
		expectedErrors map[string][]string
		checkFields    func(t *testing.T, v Validated)
	}{
		{
			name: "Valid payload",
			body: `{"name":"Widget","category_id":1,"price":9.99,"active":true}`,
			checkFields: func(t *testing.T, v Validated) {
				assert.Equal(t, "Widget", *v.Name)
				assert.Equal(t, uint(1), *v.CategoryID)
				assert.True(t, v.Price.Equal(decimal.RequireFromString("9.99")))
				assert.True(t, *v.Active)
			},
		},
		{
			name: "Integer price is valid",
			body: `{"name":"Widget","category_id":1,"price":10,"active":false}`,
			checkFields: func(t *testing.T, v Validated) {
				assert.True(t, v.Price.Equal(decimal.RequireFromString("10")))
				assert.False(t, *v.Active)
			},
		},
		{
			name: "Everything missing",
			body: `{}`,
			expectedErrors: map[string][]string{
				"name":        {"Product name is required"},
				"category_id": {"Category is required"},
				"price":       {"Price is required"},
				"active":      {"Active status is required"},
			},
		},
		{
			name: "Blank name",
			body: `{"name":"   ","category_id":1,"price":9.99,"active":true}`,
			expectedErrors: map[string][]string{
				"name": {"Product name is required"},
			},
		},
		{
			name: "Name over 255 characters",
			body: `{"name":"` + strings.Repeat("x", 256) + `","category_id":1,"price":9.99,"active":true}`,
			expectedErrors: map[string][]string{
				"name": {"Product name must not exceed 255 characters"},
			},
		},
		{
			name: "Fractional category id",
			body: `{"name":"Widget","category_id":1.5,"price":9.99,"active":true}`,
			expectedErrors: map[string][]string{
				"category_id": {"Category ID must be a valid number"},
			},
		},
		{
			name: "Unknown category",
			body: `{"name":"Widget","category_id":42,"price":9.99,"active":true}`,
			expectedErrors: map[string][]string{
				"category_id": {"Selected category does not exist"},
			},
		},
		{
			name: "Price with three decimals",
			body: `{"name":"Widget","category_id":1,"price":9.999,"active":true}`,
			expectedErrors: map[string][]string{
				"price": {"Price must have maximum 2 decimal places"},
			},
		},
		{
			name: "Negative price collects both price messages",
			body: `{"name":"Widget","category_id":1,"price":-5,"active":true}`,
			expectedErrors: map[string][]string{
				"price": {
					"Price must be greater than or equal to 0",
					"Price must have maximum 2 decimal places",
				},
			},
		},
		{
			name: "Active is not a boolean",
			body: `{"name":"Widget","category_id":1,"price":9.99,"active":"yes"}`,
			expectedErrors: map[string][]string{
				"active": {"Active status must be true or false"},
			},
		},
		{
			name: "Active as number",
			body: `{"name":"Widget","category_id":1,"price":9.99,"active":1}`,
			expectedErrors: map[string][]string{
				"active": {"Active status must be true or false"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			validator := NewValidator(checker)

			fields, verrs, err := validator.Validate(payloadFrom(t, tc.body), false)

			assert.NoError(t, err)
			if tc.expectedErrors != nil {
				assert.Equal(t, tc.expectedErrors, verrs)
			} else {
				assert.Nil(t, verrs)
				if tc.checkFields != nil {
					tc.checkFields(t, fields)
				}
			}
		})
	}
}

func TestValidatePartial(t *testing.T) {
	checker := &MockCategoryChecker{Existing: map[uint]bool{1: true}}
	validator := NewValidator(checker)

	t.Run("Absent fields are skipped", func(t *testing.T) {
		fields, verrs, err := validator.Validate(payloadFrom(t, `{"price":12.5}`), true)

		assert.NoError(t, err)
		assert.Nil(t, verrs)
		assert.Nil(t, fields.Name)
		assert.Nil(t, fields.CategoryID)
		assert.Nil(t, fields.Active)
		assert.True(t, fields.Price.Equal(decimal.RequireFromString("12.5")))
		assert.Equal(t, map[string]any{"price": *fields.Price}, fields.Fields())
	})

	t.Run("Present fields still get the full rules", func(t *testing.T) {
		_, verrs, err := validator.Validate(payloadFrom(t, `{"price":9.999}`), true)

		assert.NoError(t, err)
		assert.Equal(t, map[string][]string{
			"price": {"Price must have maximum 2 decimal places"},
		}, verrs)
	})

	t.Run("Empty payload is a no-op", func(t *testing.T) {
		fields, verrs, err := validator.Validate(ProductPayload{}, true)

		assert.NoError(t, err)
		assert.Nil(t, verrs)
		assert.Empty(t, fields.Fields())
	})
}

func TestValidateCheckerFailure(t *testing.T) {
	checker := &MockCategoryChecker{Err: errors.New("db connection lost")}
	validator := NewValidator(checker)

	_, verrs, err := validator.Validate(payloadFrom(t, `{"name":"Widget","category_id":1,"price":9.99,"active":true}`), false)

	assert.Error(t, err)
	assert.Nil(t, verrs, "a store failure must not masquerade as a validation error")
	assert.Equal(t, uint(1), checker.lastCheckedID)
}
