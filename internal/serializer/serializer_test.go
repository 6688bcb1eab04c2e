package serializer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerialize_DecimalAndDate(t *testing.T) {
	record := map[string]any{
		"price":     decimal.RequireFromString("12345.00"),
		"createdAt": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	out := Serialize(record).(map[string]any)

	assert.Equal(t, float64(12345), out["price"])
	assert.Equal(t, "2024-01-01T00:00:00.000Z", out["createdAt"])
}

func TestSerialize_NonUTCTimeNormalizedToZ(t *testing.T) {
	loc := time.FixedZone("CAT", 2*60*60)
	out := Serialize(time.Date(2024, 1, 1, 2, 0, 0, 0, loc))

	assert.Equal(t, "2024-01-01T00:00:00.000Z", out)
}

func TestSerialize_Idempotent(t *testing.T) {
	record := map[string]any{
		"price":     decimal.NewFromFloat(9999.5),
		"createdAt": time.Date(2023, 7, 14, 10, 30, 0, 0, time.UTC),
		"nested": map[string]any{
			"tags":  []any{"one", 2, nil},
			"ratio": 0.5,
		},
	}

	once := Serialize(record)
	twice := Serialize(once)

	assert.Equal(t, once, twice)
}

func TestSerialize_PrimitivesPassThrough(t *testing.T) {
	assert.Nil(t, Serialize(nil))
	assert.Equal(t, "hello", Serialize("hello"))
	assert.Equal(t, 42, Serialize(42))
	assert.Equal(t, 3.14, Serialize(3.14))
	assert.Equal(t, true, Serialize(true))
}

func TestSerialize_SlicesMappedElementWise(t *testing.T) {
	in := []any{
		decimal.NewFromInt(100),
		time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
		"plain",
	}

	out := Serialize(in).([]any)

	require.Len(t, out, 3)
	assert.Equal(t, float64(100), out[0])
	assert.Equal(t, "2024-02-02T00:00:00.000Z", out[1])
	assert.Equal(t, "plain", out[2])
}

func TestSerialize_StructWalkedByJSONTags(t *testing.T) {
	type seller struct {
		Name string `json:"name"`
	}
	type listing struct {
		ID        string          `json:"id"`
		Price     decimal.Decimal `json:"price"`
		CreatedAt time.Time       `json:"createdAt"`
		Seller    *seller         `json:"seller,omitempty"`
		Hidden    string          `json:"-"`
		internal  string
	}

	in := listing{
		ID:        "car-1",
		Price:     decimal.RequireFromString("18750000.00"),
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Seller:    &seller{Name: "Mary Phiri"},
		Hidden:    "secret",
		internal:  "secret",
	}

	out := Serialize(in).(map[string]any)

	assert.Equal(t, "car-1", out["id"])
	assert.Equal(t, float64(18750000), out["price"])
	assert.Equal(t, "2024-01-01T00:00:00.000Z", out["createdAt"])
	assert.Equal(t, map[string]any{"name": "Mary Phiri"}, out["seller"])
	assert.NotContains(t, out, "Hidden")
	assert.NotContains(t, out, "internal")
}

func TestSerialize_OmitEmptySkipsZeroValues(t *testing.T) {
	type record struct {
		Always string `json:"always"`
		Maybe  string `json:"maybe,omitempty"`
	}

	out := Serialize(record{Always: ""}).(map[string]any)

	assert.Contains(t, out, "always")
	assert.NotContains(t, out, "maybe")
}

func TestSerialize_DoesNotMutateInput(t *testing.T) {
	when := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	record := map[string]any{
		"price": decimal.NewFromInt(500),
		"at":    when,
		"list":  []any{decimal.NewFromInt(1)},
	}

	_ = Serialize(record)

	assert.IsType(t, decimal.Decimal{}, record["price"])
	assert.Equal(t, when, record["at"])
	assert.IsType(t, decimal.Decimal{}, record["list"].([]any)[0])
}

func TestISOTime(t *testing.T) {
	assert.Equal(t, "2024-01-01T00:00:00.000Z",
		ISOTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12-31T23:59:59.999Z",
		ISOTime(time.Date(2024, 12, 31, 23, 59, 59, 999_000_000, time.UTC)))
}
