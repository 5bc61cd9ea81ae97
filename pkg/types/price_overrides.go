package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// CountryOverride substitutes a size's base price for a single country.
type CountryOverride struct {
	Country string          `json:"country"`
	Price   decimal.Decimal `json:"price"`
}

// CountryOverrides is a slice marshaled as JSONB.
type CountryOverrides []CountryOverride

// Value serializes the overrides to JSON.
func (c CountryOverrides) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

// Scan decodes JSONB into the override slice.
func (c *CountryOverrides) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded CountryOverrides
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*c = decoded
	return nil
}

// GroupOverride substitutes a size's base price for a named country group.
type GroupOverride struct {
	Group string          `json:"group"`
	Price decimal.Decimal `json:"price"`
}

// GroupOverrides is a slice marshaled as JSONB.
type GroupOverrides []GroupOverride

// Value serializes the overrides to JSON.
func (g GroupOverrides) Value() (driver.Value, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(g)
}

// Scan decodes JSONB into the override slice.
func (g *GroupOverrides) Scan(value interface{}) error {
	if value == nil {
		*g = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded GroupOverrides
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*g = decoded
	return nil
}

func asJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported scan type %T", value)
	}
}
