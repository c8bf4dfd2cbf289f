package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	t.Run("PlainDate", func(t *testing.T) {
		assert.Equal(t, "January 2, 2026", Date("2026-01-02"))
	})

	t.Run("RFC3339Timestamp", func(t *testing.T) {
		assert.Equal(t, "March 15, 2026", Date("2026-03-15T09:30:00Z"))
	})

	t.Run("TimestampWithoutZone", func(t *testing.T) {
		assert.Equal(t, "March 15, 2026", Date("2026-03-15T09:30:00.123456"))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", Date(""))
	})

	t.Run("MalformedReturnedAsIs", func(t *testing.T) {
		assert.Equal(t, "not-a-date", Date("not-a-date"))
	})
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"Zero", 0, "Rs 0"},
		{"SmallWhole", 500, "Rs 500"},
		{"Thousands", 1500, "Rs 1,500"},
		{"Millions", 1234567, "Rs 1,234,567"},
		{"Fractional", 1234.5, "Rs 1,234.50"},
		{"FloatNoise", 999.9999999, "Rs 1,000"},
		{"Negative", -2500, "Rs -2,500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.amount))
		})
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Afternoon", "13:05", "1:05 PM"},
		{"Noon", "12:00", "12:00 PM"},
		{"Midnight", "0:30", "12:30 AM"},
		{"Morning", "09:15", "9:15 AM"},
		{"Empty", "", ""},
		{"Malformed", "nope", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Time(tt.in))
		})
	}
}

func TestSpaceCamelCase(t *testing.T) {
	assert.Equal(t, "spare Tyre", SpaceCamelCase("spareTyre"))
	assert.Equal(t, "jack", SpaceCamelCase("jack"))
	assert.Equal(t, "floor Mats Set", SpaceCamelCase("floorMatsSet"))
	assert.Equal(t, "", SpaceCamelCase(""))
}
