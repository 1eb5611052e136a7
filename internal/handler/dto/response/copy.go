package response

import (
	"elearning-storefront/internal/pkg/errs"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Money leaves the API as a JSON number.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: float64(0),
			Fn: func(src any) (any, error) {
				d, ok := src.(decimal.Decimal)
				if !ok {
					return nil, errs.New("expected decimal.Decimal")
				}
				return d.InexactFloat64(), nil
			},
		},
	},
}

func copyInto(to, from any) error {
	if err := copier.CopyWithOption(to, from, copyOption); err != nil {
		return errs.Wrap(err, "copy response dto")
	}
	return nil
}

func money(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
