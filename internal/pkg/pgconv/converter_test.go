//go:build unit

package pgconv_test

import (
	"testing"

	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "250.00", "4.25", "1.2500", "-3.5", "123456789.99"} {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)
			got, err := pgconv.DecimalFromNumeric(pgconv.NumericFromDecimal(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}

	_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Valid: true, NaN: true})
	assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)

	ptr, err := pgconv.DecimalPtrFromNumeric(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Nil(t, ptr)
}

func TestTimeOfDayRoundTrip(t *testing.T) {
	tod := daytime.MustParse("17:45:30")
	got, err := pgconv.TimeOfDayFromPgtype(pgconv.TimeOfDayToPgtype(tod))
	require.NoError(t, err)
	assert.Equal(t, tod, got)
}

func TestDateRoundTrip(t *testing.T) {
	d := daytime.MustParseDate("2025-02-28")
	assert.True(t, d.Equal(pgconv.DateFromPgtype(pgconv.DateToPgtype(d))))
	assert.Nil(t, pgconv.DatePtrFromPgtype(pgtype.Date{}))
}
