package rental

import (
	"math"
	"testing"

	"boardcamp/model"

	"github.com/stretchr/testify/require"
)

func TestDelayFee(t *testing.T) {
	r := model.Rental{
		RentDate:      model.NewDate(2024, 2, 27),
		DaysRented:    3,
		OriginalPrice: 30,
	}
	require.Equal(t, model.NewDate(2024, 3, 1), DueDate(r), "leap year february")

	tests := []struct {
		name     string
		returned model.Date
		late     int
		fee      int64
	}{
		{"same day", model.NewDate(2024, 2, 27), 0, 0},
		{"on due date", model.NewDate(2024, 3, 1), 0, 0},
		{"one day late", model.NewDate(2024, 3, 2), 1, 30},
		{"two days late", model.NewDate(2024, 3, 3), 2, 60},
		{"ten days late", model.NewDate(2024, 3, 11), 10, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.late, LateDays(r, tt.returned))
			require.Equal(t, tt.fee, DelayFee(r, tt.returned))
		})
	}
}

func TestDelayFee_Saturates(t *testing.T) {
	r := model.Rental{
		RentDate:      model.NewDate(2024, 1, 1),
		DaysRented:    1,
		OriginalPrice: math.MaxInt64 / 2,
	}
	require.Equal(t, int64(math.MaxInt64/2), DelayFee(r, model.NewDate(2024, 1, 3)))
	require.Equal(t, int64(math.MaxInt64), DelayFee(r, model.NewDate(2024, 1, 5)))
}
