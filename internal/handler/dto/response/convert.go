package response

import (
	"time"

	"pitch-booking/internal/pkg/daytime"
	"pitch-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Dates and money leave the API as strings: time.Time fields copied into a
// string become YYYY-MM-DD, decimals become fixed two-place amounts.
var converters = []copier.TypeConverter{
	{
		SrcType: time.Time{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return daytime.FormatDate(src.(time.Time)), nil
		},
	},
	{
		SrcType: decimal.Decimal{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return src.(decimal.Decimal).StringFixed(2), nil
		},
	},
}

func copyInto(dst, src any) {
	// copier only fails on mismatched kinds, i.e. a broken DTO definition.
	if err := copier.CopyWithOption(dst, src, copier.Option{Converters: converters}); err != nil {
		panic(err)
	}
}

func mapAll[S any, D any](src []S, fn func(S) D) []D {
	out := make([]D, len(src))
	for i, s := range src {
		out[i] = fn(s)
	}
	return out
}

func money(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}

// Page is the envelope for keyset-paginated listings.
type Page[T any] struct {
	Results    []T     `json:"results"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

func NewPage[T any](results []T, next *queries.Cursor) Page[T] {
	p := Page[T]{Results: results}
	if next != nil && next.After != "" {
		p.NextCursor = &next.After
	}
	return p
}
