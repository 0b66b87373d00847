package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2021, time.June, 20)
	b, err := json.Marshal(Rental{RentDate: d})
	require.NoError(t, err)
	require.Contains(t, string(b), `"rentDate":"2021-06-20"`)
	require.Contains(t, string(b), `"returnDate":null`)

	var r Rental
	require.NoError(t, json.Unmarshal([]byte(`{"rentDate":"2021-06-20","returnDate":"2021-06-25"}`), &r))
	require.Equal(t, d, r.RentDate)
	require.NotNil(t, r.ReturnDate)
	require.Equal(t, 5, r.ReturnDate.DaysSince(d))

	require.Error(t, json.Unmarshal([]byte(`{"rentDate":"20/06/2021"}`), &r))
}

func TestDateOf_DropsClock(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	d := DateOf(time.Date(2024, 3, 10, 23, 59, 0, 0, loc))
	require.Equal(t, NewDate(2024, 3, 10), d)
	require.Equal(t, "2024-03-10", d.String())
	require.Equal(t, -1, NewDate(2024, 3, 9).DaysSince(d))
	require.Equal(t, NewDate(2024, 4, 1), NewDate(2024, 3, 30).AddDays(2))
}

func TestDate_PgRoundTrip(t *testing.T) {
	d := NewDate(1992, 10, 5)
	v, err := d.DateValue()
	require.NoError(t, err)
	require.True(t, v.Valid)

	var back Date
	require.NoError(t, back.ScanDate(v))
	require.Equal(t, d, back)

	require.NoError(t, back.ScanDate(pgtype.Date{}))
	require.True(t, back.IsZero())

	require.Error(t, back.ScanDate(pgtype.Date{Valid: true, InfinityModifier: pgtype.Infinity}))
}

func TestRentalState(t *testing.T) {
	r := Rental{}
	require.Equal(t, RentalOpen, r.State())
	require.False(t, r.Deletable())

	d := NewDate(2024, 1, 1)
	r.ReturnDate = &d
	require.Equal(t, RentalClosed, r.State())
	require.True(t, r.Deletable())

	require.True(t, CanTransition(RentalOpen, RentalClosed))
	require.False(t, CanTransition(RentalClosed, RentalOpen))
	require.False(t, CanTransition(RentalClosed, RentalClosed))
	require.False(t, CanTransition(RentalOpen, RentalOpen))
}
