//go:build !integration

package validation

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindNone},
		{"plain error", errors.New("boom"), KindNone},
		{"structural", Structural("quantity", "must be at least 1"), KindStructural},
		{"domain", Violation(RuleGardenBacon, "bacon not allowed on Garden"), KindDomain},
		{"temporal", &TemporalError{Rule: RuleOutsideHours, Message: "outside store hours"}, KindTemporal},
		{"reconciliation", &ReconciliationError{Claimed: decimal.NewFromInt(1), Computed: decimal.NewFromInt(2)}, KindReconciliation},
		{"wrapped domain", fmt.Errorf("checkout: %w", Violation(RuleComboPremiumSide, "x")), KindDomain},
		{"item error", &ItemError{Index: 2, Category: "Side", Err: Structural("chips_type", "required")}, KindStructural},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
			assert.Equal(t, tt.want != KindNone, IsFailure(tt.err))
		})
	}
}

func TestItemError_UnwrapsToFailure(t *testing.T) {
	err := fmt.Errorf("validate: %w", &ItemError{
		Index:    1,
		Category: "Salad",
		Err:      Violation(RuleGardenBacon, "bacon not allowed on Garden"),
	})

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, RuleGardenBacon, domainErr.Rule)

	var itemErr *ItemError
	require.True(t, errors.As(err, &itemErr))
	assert.Equal(t, 1, itemErr.Index)
	assert.Contains(t, err.Error(), "item[1] (Salad)")
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "quantity: must be at least 1", Structural("quantity", "must be at least 1").Error())
	assert.Equal(t, "unknown field", Structural("", "unknown field").Error())
	assert.Equal(t, "size: \"HUGE\" is not a valid option",
		Structuralf("size", "%q is not a valid option", "HUGE").Error())

	recErr := &ReconciliationError{
		Claimed:  decimal.RequireFromString("22.87"),
		Computed: decimal.RequireFromString("22.88"),
	}
	assert.Equal(t, "order price does not match: claimed 22.87, computed 22.88", recErr.Error())

	tempErr := &TemporalError{Rule: RuleStoreClosed, Message: "store is closed on this date", PickupAt: time.Now()}
	assert.Equal(t, "store is closed on this date", tempErr.Error())
}
