package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	t.Run("full date", func(t *testing.T) {
		got, err := ParsePeriod("2024-02-01")
		require.NoError(t, err)
		require.Equal(t, NewDate(2024, 2, 1), got)
	})

	t.Run("month only", func(t *testing.T) {
		got, err := ParsePeriod("2024-02")
		require.NoError(t, err)
		require.Equal(t, NewDate(2024, 2, 1), got)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParsePeriod("Feb")
		require.Error(t, err)
	})
}
