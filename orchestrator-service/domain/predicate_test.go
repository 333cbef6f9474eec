package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePredicate(t *testing.T) {
	tests := []struct {
		name          string
		condition     string
		expectedPath  []string
		expectedOp    CompareOp
		expectedLit   any
		expectedError string
	}{
		{
			name:         "string equality",
			condition:    `paymentResult.status == "completed"`,
			expectedPath: []string{"paymentResult", "status"},
			expectedOp:   OpEqual,
			expectedLit:  "completed",
		},
		{
			name:         "single quoted literal",
			condition:    `shippingResult.status == 'shipped'`,
			expectedPath: []string{"shippingResult", "status"},
			expectedOp:   OpEqual,
			expectedLit:  "shipped",
		},
		{
			name:         "strict equality alias",
			condition:    `orderData.status === "new"`,
			expectedPath: []string{"orderData", "status"},
			expectedOp:   OpEqual,
			expectedLit:  "new",
		},
		{
			name:         "strict inequality alias",
			condition:    `orderData.status !== "cancelled"`,
			expectedPath: []string{"orderData", "status"},
			expectedOp:   OpNotEqual,
			expectedLit:  "cancelled",
		},
		{
			name:         "numeric comparison",
			condition:    `orderData.quantity >= 10`,
			expectedPath: []string{"orderData", "quantity"},
			expectedOp:   OpGreaterEqual,
			expectedLit:  float64(10),
		},
		{
			name:         "boolean literal",
			condition:    `orderData.express == true`,
			expectedPath: []string{"orderData", "express"},
			expectedOp:   OpEqual,
			expectedLit:  true,
		},
		{
			name:         "null literal",
			condition:    `orderData.coupon == null`,
			expectedPath: []string{"orderData", "coupon"},
			expectedOp:   OpEqual,
			expectedLit:  nil,
		},
		{
			name:          "no operator",
			condition:     `paymentResult.status`,
			expectedError: "no comparison operator",
		},
		{
			name:          "empty condition",
			condition:     "   ",
			expectedError: "empty condition",
		},
		{
			name:          "ordering with string literal",
			condition:     `orderData.quantity > "many"`,
			expectedError: "needs a numeric literal",
		},
		{
			name:          "malformed field path",
			condition:     `orderData..status == "x"`,
			expectedError: "malformed field path",
		},
		{
			name:          "function call is rejected",
			condition:     `eval(x) == "y"`,
			expectedError: "malformed field path",
		},
		{
			name:          "unquoted string literal",
			condition:     `paymentResult.status == completed`,
			expectedError: "malformed literal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predicate, err := ParsePredicate(tt.condition)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPath, predicate.Path)
			assert.Equal(t, tt.expectedOp, predicate.Op)
			assert.Equal(t, tt.expectedLit, predicate.Literal)
		})
	}
}

func TestPredicate_Evaluate(t *testing.T) {
	variables := map[string]any{
		"paymentResult": map[string]any{
			"status": "completed",
			"amount": float64(500),
		},
		"orderData": map[string]any{
			"quantity": 5,
		},
	}

	tests := []struct {
		name          string
		condition     string
		expected      bool
		expectedError string
	}{
		{
			name:      "matching string equality",
			condition: `paymentResult.status == "completed"`,
			expected:  true,
		},
		{
			name:      "non-matching string equality",
			condition: `paymentResult.status == "failed"`,
			expected:  false,
		},
		{
			name:      "inequality",
			condition: `paymentResult.status != "failed"`,
			expected:  true,
		},
		{
			name:      "numeric equality across int and float",
			condition: `orderData.quantity == 5`,
			expected:  true,
		},
		{
			name:      "greater than",
			condition: `paymentResult.amount > 100`,
			expected:  true,
		},
		{
			name:      "less than or equal",
			condition: `orderData.quantity <= 4`,
			expected:  false,
		},
		{
			name:      "missing path compares equal to null",
			condition: `shippingResult.status == null`,
			expected:  true,
		},
		{
			name:      "missing path never equals a string",
			condition: `shippingResult.status == "completed"`,
			expected:  false,
		},
		{
			name:          "ordering against non-numeric field",
			condition:     `paymentResult.status > 3`,
			expectedError: "not numeric",
		},
		{
			name:          "ordering against missing field",
			condition:     `shippingResult.weight > 3`,
			expectedError: "not numeric",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predicate, err := ParsePredicate(tt.condition)
			require.NoError(t, err)

			result, err := predicate.Evaluate(variables)

			if tt.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
