package cart

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// SyncLine is one loosely-shaped line as submitted by the client. Older
// clients send a composite LegacyUID instead of the structured fields.
type SyncLine struct {
	ProductID  string
	StyleIndex *int
	SizeLabel  string
	Qty        *float64
	LegacyUID  string
}

// normalizedLine is the validated reference the reconciler works on. Invalid
// lines are kept (not dropped) so every submitted line yields exactly one
// reconciled line in the response.
type normalizedLine struct {
	ProductID    uuid.UUID
	StyleIndex   int
	SizeLabel    string
	RequestedQty int
	Invalid      bool
}

// normalizeLine converts a submitted line into a validated reference,
// recovering product identity from the legacy composite uid
// `<productId>_<styleIndex>[_<sizeIndex>]` when the structured fields are
// missing or malformed.
func normalizeLine(raw SyncLine) normalizedLine {
	productID, productOK := parseProductID(raw.ProductID)
	styleIndex := raw.StyleIndex

	if !productOK || styleIndex == nil {
		if legacyID, legacyStyle, ok := parseLegacyUID(raw.LegacyUID); ok {
			if !productOK {
				productID = legacyID
				productOK = true
			}
			if styleIndex == nil {
				idx := legacyStyle
				styleIndex = &idx
			}
		}
	}

	line := normalizedLine{
		SizeLabel:    strings.TrimSpace(raw.SizeLabel),
		RequestedQty: normalizeQty(raw.Qty),
	}

	if !productOK || styleIndex == nil || line.SizeLabel == "" {
		line.Invalid = true
		if productOK {
			line.ProductID = productID
		}
		if styleIndex != nil {
			line.StyleIndex = *styleIndex
		}
		return line
	}

	line.ProductID = productID
	line.StyleIndex = *styleIndex
	return line
}

// normalizeQty floors the submitted quantity and clamps it to at least 1;
// absent or non-positive values default to 1.
func normalizeQty(qty *float64) int {
	if qty == nil {
		return 1
	}
	floored := int(math.Floor(*qty))
	if floored < 1 {
		return 1
	}
	return floored
}

func parseProductID(value string) (uuid.UUID, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(trimmed)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseLegacyUID splits `<productId>_<styleIndex>[_<sizeIndex>]`. The first
// segment must be a canonical product id and the second an integer; the
// optional size segment is ignored because sizes are addressed by label.
func parseLegacyUID(uid string) (uuid.UUID, int, bool) {
	trimmed := strings.TrimSpace(uid)
	if trimmed == "" {
		return uuid.Nil, 0, false
	}
	segments := strings.Split(trimmed, "_")
	if len(segments) < 2 {
		return uuid.Nil, 0, false
	}
	id, ok := parseProductID(segments[0])
	if !ok {
		return uuid.Nil, 0, false
	}
	styleIndex, err := strconv.Atoi(segments[1])
	if err != nil {
		return uuid.Nil, 0, false
	}
	return id, styleIndex, true
}
