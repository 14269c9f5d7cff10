//go:build !integration

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevesplace/order-service/internal/domain/validation"
)

type closureFunc func(ctx context.Context, day time.Time) (bool, error)

func (f closureFunc) IsClosedOn(ctx context.Context, day time.Time) (bool, error) { return f(ctx, day) }

func neverClosed(context.Context, time.Time) (bool, error) { return false, nil }

const (
	comboTwo   = `{"type":"Combo","quantity":2,"side":{"name":"FRENCH_FRIES","size":"REGULAR"},"drink":{"name":"COKE","size":"REGULAR"}}`
	bltTwo     = `{"type":"Sandwich","quantity":2,"size":"REGULAR","bread":"WHITE","meat":"BLT"}`
	pickupNoon = "2026-05-07T16:00:00Z"
)

func rawItems(items ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(items))
	for i, s := range items {
		out[i] = json.RawMessage(s)
	}
	return out
}

func validRequest() OrderRequest {
	return OrderRequest{
		CustomerName: "Steve",
		PhoneNumber:  "7045551234",
		Items:        rawItems(comboTwo, bltTwo),
		ClaimedPrice: decimal.RequireFromString("22.00"),
		PickupAt:     pickupNoon,
	}
}

func newValidator(t *testing.T, closures ClosureChecker) *OrderValidatorService {
	t.Helper()
	return NewOrderValidator(NewItemFactory(nil), newYorkHours(t), closures,
		WithFeeRate(decimal.RequireFromString("0.04")))
}

func TestOrderValidator_Validate(t *testing.T) {
	validator := newValidator(t, closureFunc(neverClosed))

	t.Run("cash order reconciles to the item total", func(t *testing.T) {
		result, err := validator.Validate(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, "22.00", result.Total.StringFixed(2))
		assert.Equal(t, "22.00", result.Order.Total().StringFixed(2))
		assert.Equal(t, 2, result.Order.Len())
		assert.Equal(t, "America/New_York", result.PickupAt.Location().String())
		assert.Equal(t, 12, result.PickupAt.Hour())
	})

	t.Run("card order reconciles to the total with fee", func(t *testing.T) {
		req := validRequest()
		req.CardPayment = true
		req.ClaimedPrice = decimal.RequireFromString("22.88")

		result, err := validator.Validate(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "22.88", result.Total.StringFixed(2))
	})

	t.Run("naive pickup time is read as UTC", func(t *testing.T) {
		req := validRequest()
		req.PickupAt = "2026-05-07T16:00:00"

		result, err := validator.Validate(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 12, result.PickupAt.Hour())
	})
}

func TestOrderValidator_Failures(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*OrderRequest)
		wantKind validation.Kind
		wantRule validation.Rule
	}{
		{
			name:     "name too long",
			modify:   func(r *OrderRequest) { r.CustomerName = strings.Repeat("a", MaxCustomerNameLength+1) },
			wantKind: validation.KindDomain,
			wantRule: validation.RuleContactName,
		},
		{
			name:     "phone with separators",
			modify:   func(r *OrderRequest) { r.PhoneNumber = "704-555-1234" },
			wantKind: validation.KindDomain,
			wantRule: validation.RuleContactPhone,
		},
		{
			name:     "phone too short",
			modify:   func(r *OrderRequest) { r.PhoneNumber = "555123" },
			wantKind: validation.KindDomain,
			wantRule: validation.RuleContactPhone,
		},
		{
			name:     "no items",
			modify:   func(r *OrderRequest) { r.Items = nil },
			wantKind: validation.KindStructural,
		},
		{
			name: "invalid item",
			modify: func(r *OrderRequest) {
				r.Items = rawItems(comboTwo, `{"type":"Salad","quantity":1,"choice":"GARDEN","toppings":["BACON"]}`)
			},
			wantKind: validation.KindDomain,
			wantRule: validation.RuleGardenBacon,
		},
		{
			name:     "pickup before opening",
			modify:   func(r *OrderRequest) { r.PickupAt = "2026-05-07T06:00:00-04:00" },
			wantKind: validation.KindTemporal,
			wantRule: validation.RuleOutsideHours,
		},
		{
			name:     "pickup a second after closing",
			modify:   func(r *OrderRequest) { r.PickupAt = "2026-05-07T17:30:01-04:00" },
			wantKind: validation.KindTemporal,
			wantRule: validation.RuleOutsideHours,
		},
		{
			name:     "pickup on the closed weekday",
			modify:   func(r *OrderRequest) { r.PickupAt = "2026-05-10T16:00:00Z" },
			wantKind: validation.KindTemporal,
			wantRule: validation.RuleStoreClosed,
		},
		{
			name:     "unreadable pickup time",
			modify:   func(r *OrderRequest) { r.PickupAt = "noon" },
			wantKind: validation.KindTemporal,
			wantRule: validation.RuleBadPickupTime,
		},
		{
			name:     "claimed price off by one cent",
			modify:   func(r *OrderRequest) { r.ClaimedPrice = decimal.RequireFromString("21.99") },
			wantKind: validation.KindReconciliation,
		},
		{
			name: "card order claiming the cash price",
			modify: func(r *OrderRequest) {
				r.CardPayment = true
			},
			wantKind: validation.KindReconciliation,
		},
		{
			name: "contact is checked before items",
			modify: func(r *OrderRequest) {
				r.PhoneNumber = ""
				r.Items = nil
			},
			wantKind: validation.KindDomain,
			wantRule: validation.RuleContactPhone,
		},
		{
			name: "items are checked before pickup",
			modify: func(r *OrderRequest) {
				r.Items = rawItems(`{"type":"Hotdog","quantity":0,"dog_type":"BEEF"}`)
				r.PickupAt = "2026-05-07T06:00:00-04:00"
			},
			wantKind: validation.KindStructural,
		},
		{
			name: "pickup is checked before price",
			modify: func(r *OrderRequest) {
				r.PickupAt = "2026-05-07T06:00:00-04:00"
				r.ClaimedPrice = decimal.Zero
			},
			wantKind: validation.KindTemporal,
			wantRule: validation.RuleOutsideHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			closures := func(_ context.Context, day time.Time) (bool, error) {
				return day.Weekday() == time.Sunday, nil
			}
			validator := newValidator(t, closureFunc(closures))
			req := validRequest()
			tt.modify(&req)

			result, err := validator.Validate(context.Background(), req)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantKind, validation.KindOf(err))
			if tt.wantRule == "" {
				return
			}
			var de *validation.DomainError
			var te *validation.TemporalError
			switch {
			case errors.As(err, &de):
				assert.Equal(t, tt.wantRule, de.Rule)
			case errors.As(err, &te):
				assert.Equal(t, tt.wantRule, te.Rule)
			default:
				t.Fatalf("no rule on %T", err)
			}
		})
	}
}

func TestOrderValidator_ItemErrorLocatesTheItem(t *testing.T) {
	req := validRequest()
	req.Items = rawItems(comboTwo, bltTwo, `{"type":"Drink","quantity":1,"name":"COKE","size":"GALLON"}`)

	_, err := newValidator(t, closureFunc(neverClosed)).Validate(context.Background(), req)

	var itemErr *validation.ItemError
	require.ErrorAs(t, err, &itemErr)
	assert.Equal(t, 2, itemErr.Index)
	assert.Equal(t, "Drink", itemErr.Category)
	var se *validation.StructuralError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "size", se.Field)
}

func TestOrderValidator_ReconciliationCarriesAmounts(t *testing.T) {
	req := validRequest()
	req.CardPayment = true
	req.ClaimedPrice = decimal.RequireFromString("22.87")

	_, err := newValidator(t, closureFunc(neverClosed)).Validate(context.Background(), req)

	var re *validation.ReconciliationError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "22.88", re.Computed.StringFixed(2))
	assert.Equal(t, "22.87", re.Claimed.StringFixed(2))
	assert.True(t, re.CardPayment)
}

func TestOrderValidator_ClosureLookupFailure(t *testing.T) {
	lookupErr := errors.New("circuit breaker is open")
	failing := func(context.Context, time.Time) (bool, error) { return false, lookupErr }

	_, err := newValidator(t, closureFunc(failing)).Validate(context.Background(), validRequest())

	assert.ErrorIs(t, err, lookupErr)
	assert.Equal(t, validation.KindNone, validation.KindOf(err))
}
