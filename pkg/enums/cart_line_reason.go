package enums

import "fmt"

// CartLineReason explains why a reconciled cart line differs from what the
// client submitted.
type CartLineReason string

const (
	// CartLineReasonMissing is set when the product (or the requested
	// style/size under it) no longer exists in the catalog.
	CartLineReasonMissing CartLineReason = "MISSING"
	// CartLineReasonOOS is set when the requested size has no stock.
	CartLineReasonOOS CartLineReason = "OOS"
	// CartLineReasonQtyAdjusted is set when the quantity was clamped to stock.
	CartLineReasonQtyAdjusted CartLineReason = "QTY_ADJUSTED"
	// CartLineReasonStructureFixed is set when the submitted line was
	// structurally invalid and normalized into a terminal marker.
	CartLineReasonStructureFixed CartLineReason = "STRUCTURE_FIXED"
	// CartLineReasonNoPrice is set when no positive price could be resolved
	// for the size in the requested country.
	CartLineReasonNoPrice CartLineReason = "NO_PRICE"
)

var validCartLineReasons = []CartLineReason{
	CartLineReasonMissing,
	CartLineReasonOOS,
	CartLineReasonQtyAdjusted,
	CartLineReasonStructureFixed,
	CartLineReasonNoPrice,
}

// String implements fmt.Stringer.
func (c CartLineReason) String() string {
	return string(c)
}

// IsValid reports whether the value is known.
func (c CartLineReason) IsValid() bool {
	for _, candidate := range validCartLineReasons {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCartLineReason converts raw input into a CartLineReason.
func ParseCartLineReason(value string) (CartLineReason, error) {
	for _, candidate := range validCartLineReasons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart line reason %q", value)
}
