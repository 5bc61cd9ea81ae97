package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/modaline/storefront-backend/pkg/db/models"
	"github.com/modaline/storefront-backend/pkg/types"
)

// Quote is the fully resolved price for one size in one country. UnitPrice is
// the discounted per-unit price before shipping; amounts stay at native
// decimal precision so callers can aggregate before rounding.
type Quote struct {
	BasePrice   decimal.Decimal `json:"basePrice"`
	DiscountPct decimal.Decimal `json:"discountPct"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Shipping    decimal.Decimal `json:"shipping"`
	Total       decimal.Decimal `json:"total"`
}

// Resolve computes the price of the size addressed by (styleIndex, sizeLabel)
// for a shopper in the given country. Resolution is pure: the same variant
// snapshot, country and groups always produce the same quote.
//
// Base price precedence is group override, then country override, then the
// size's base price. The discount percentage comes from the size when set
// (an explicit 0 overrides the style) and from the style otherwise. The
// variant's flat shipping fee is applied per unit on top of the discounted
// price.
//
// The second return value is false when the style index or size label does
// not resolve to a size on the variant.
func Resolve(variant *models.ProductVariant, styleIndex int, sizeLabel, country string, groups types.CountryGroups) (Quote, bool) {
	size, ok := findSize(variant, styleIndex, sizeLabel)
	if !ok {
		return Quote{}, false
	}
	style := styleAt(variant, styleIndex)

	base := basePriceFor(size, strings.ToUpper(strings.TrimSpace(country)), groups)
	pct := discountPctFor(style, size)

	unit := applyDiscount(base, pct)
	shipping := variant.ShippingFee

	return Quote{
		BasePrice:   base,
		DiscountPct: pct,
		UnitPrice:   unit,
		Shipping:    shipping,
		Total:       unit.Add(shipping),
	}, true
}

// ResolveBulk resolves the same size for several countries at once, e.g. for
// price previews. Countries that resolve are keyed by their upper-cased code;
// the boolean result is false only when the size itself cannot be found.
func ResolveBulk(variant *models.ProductVariant, styleIndex int, sizeLabel string, countries []string, groups types.CountryGroups) (map[string]Quote, bool) {
	if _, ok := findSize(variant, styleIndex, sizeLabel); !ok {
		return nil, false
	}

	quotes := make(map[string]Quote, len(countries))
	for _, country := range countries {
		code := strings.ToUpper(strings.TrimSpace(country))
		if code == "" {
			continue
		}
		if quote, ok := Resolve(variant, styleIndex, sizeLabel, code, groups); ok {
			quotes[code] = quote
		}
	}
	return quotes, true
}

// findSize locates the size addressed by the zero-based style position and
// the trimmed size label.
func findSize(variant *models.ProductVariant, styleIndex int, sizeLabel string) (*models.ProductSize, bool) {
	style := styleAt(variant, styleIndex)
	if style == nil {
		return nil, false
	}
	label := strings.TrimSpace(sizeLabel)
	if label == "" {
		return nil, false
	}
	for i := range style.Sizes {
		if strings.TrimSpace(style.Sizes[i].Label) == label {
			return &style.Sizes[i], true
		}
	}
	return nil, false
}

func styleAt(variant *models.ProductVariant, styleIndex int) *models.ProductStyle {
	if variant == nil || styleIndex < 0 {
		return nil
	}
	for i := range variant.Styles {
		if variant.Styles[i].Position == styleIndex {
			return &variant.Styles[i]
		}
	}
	return nil
}

// basePriceFor applies the override precedence: a group override for any
// group the country belongs to wins, then a country override, then the base
// price. Group membership is unambiguous because CountryGroups rejects
// countries mapped to more than one group.
func basePriceFor(size *models.ProductSize, country string, groups types.CountryGroups) decimal.Decimal {
	if country != "" {
		for _, override := range size.GroupOverrides {
			if groups.Contains(override.Group, country) {
				return override.Price
			}
		}
		for _, override := range size.CountryOverrides {
			if strings.EqualFold(strings.TrimSpace(override.Country), country) {
				return override.Price
			}
		}
	}
	return size.BasePrice
}

// discountPctFor returns the size discount when present (NULL inherits the
// style's discount; explicit 0 suppresses it).
func discountPctFor(style *models.ProductStyle, size *models.ProductSize) decimal.Decimal {
	if size.DiscountPct != nil {
		return *size.DiscountPct
	}
	if style != nil {
		return style.DiscountPct
	}
	return decimal.Zero
}

// applyDiscount computes base − base·pct/100, clamped at zero. The result is
// not rounded; rounding happens at line-total boundaries.
func applyDiscount(base, pct decimal.Decimal) decimal.Decimal {
	if pct.IsZero() {
		return base
	}
	discounted := base.Sub(base.Mul(pct).Div(types.Hundred))
	if discounted.IsNegative() {
		return decimal.Zero
	}
	return discounted
}
