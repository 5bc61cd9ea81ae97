package cartdto

// SyncCartRequest is the full cart payload submitted by the storefront. Cart
// must be present (an empty array clears the cart); countryGroups is the
// per-request group map used for regional price overrides.
type SyncCartRequest struct {
	Cart          []SyncCartLine      `json:"cart" validate:"required"`
	Country       string              `json:"country,omitempty" validate:"omitempty,len=2"`
	CountryGroups map[string][]string `json:"countryGroups,omitempty"`
}

// SyncCartLine is one loosely-shaped submitted line. Older clients omit the
// structured fields and send the legacy composite uid instead.
type SyncCartLine struct {
	ProductID string   `json:"productId,omitempty"`
	Style     *int     `json:"style,omitempty"`
	Size      string   `json:"size,omitempty"`
	Qty       *float64 `json:"qty,omitempty"`
	LegacyUID string   `json:"legacyUid,omitempty"`
}
