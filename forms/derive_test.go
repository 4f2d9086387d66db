package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDerivePercentage(t *testing.T) {
	schema, err := SchemaFor(VariantFirstYear)
	require.NoError(t, err)

	tests := []struct {
		name   string
		values map[string]string
		want   string // expected sscPercentage, "" means key absent
	}{
		{
			name:   "exact",
			values: map[string]string{"sscTotalMarks": "450", "sscMaxMarks": "500"},
			want:   "90.00",
		},
		{
			name:   "rounds to two decimals",
			values: map[string]string{"sscTotalMarks": "1", "sscMaxMarks": "3"},
			want:   "33.33",
		},
		{
			name:   "zero divisor leaves field unchanged",
			values: map[string]string{"sscTotalMarks": "450", "sscMaxMarks": "0"},
			want:   "",
		},
		{
			name:   "absent divisor leaves field unchanged",
			values: map[string]string{"sscTotalMarks": "450"},
			want:   "",
		},
		{
			name:   "non-numeric divisor leaves field unchanged",
			values: map[string]string{"sscTotalMarks": "450", "sscMaxMarks": "five hundred"},
			want:   "",
		},
		{
			name:   "negative divisor leaves field unchanged",
			values: map[string]string{"sscTotalMarks": "450", "sscMaxMarks": "-500"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema.Derive(tt.values)
			got, ok := tt.values["sscPercentage"]
			if tt.want == "" {
				require.False(t, ok, "derived field must not be written")
				return
			}
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveKeepsPriorValueOnBadInput(t *testing.T) {
	schema, err := SchemaFor(VariantFirstYear)
	require.NoError(t, err)

	values := map[string]string{
		"sscTotalMarks": "450",
		"sscMaxMarks":   "500",
	}
	schema.Derive(values)
	require.Equal(t, "90.00", values["sscPercentage"])

	// Divisor becomes invalid: the previously derived value stays.
	values["sscMaxMarks"] = "0"
	schema.Derive(values)
	require.Equal(t, "90.00", values["sscPercentage"])
}
