package lyrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		count    int
		expected int
		wantErr  bool
	}{
		{name: "first", raw: "1", count: 3, expected: 0},
		{name: "last with spaces", raw: " 3 ", count: 3, expected: 2},
		{name: "zero", raw: "0", count: 3, wantErr: true},
		{name: "negative", raw: "-1", count: 3, wantErr: true},
		{name: "above count", raw: "4", count: 3, wantErr: true},
		{name: "not a number", raw: "two", count: 3, wantErr: true},
		{name: "empty", raw: "", count: 3, wantErr: true},
		{name: "empty list", raw: "1", count: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			index, err := ParseSelection(tt.raw, tt.count)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInput)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, index)
		})
	}
}

func TestParseSelection_EveryIndexInRange(t *testing.T) {
	t.Parallel()

	const count = 10

	for choice := 1; choice <= count; choice++ {
		index, err := ParseSelection(string(rune('0'+choice%10)), count)
		if choice == count {
			// "0" is never a valid choice.
			require.ErrorIs(t, err, ErrInput)

			continue
		}

		require.NoError(t, err)
		assert.Equal(t, choice-1, index)
	}
}

func TestParseYesNo(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"y", "Y", "yes", " YES "} {
		answer, err := ParseYesNo(raw)
		require.NoError(t, err, raw)
		assert.True(t, answer, raw)
	}

	for _, raw := range []string{"n", "no", "", "  "} {
		answer, err := ParseYesNo(raw)
		require.NoError(t, err, raw)
		assert.False(t, answer, raw)
	}

	_, err := ParseYesNo("maybe")
	require.ErrorIs(t, err, ErrInput)
}

func TestIsCancel(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancel("q"))
	assert.True(t, IsCancel(" Q "))
	assert.False(t, IsCancel("0"))
	assert.False(t, IsCancel(""))
}
