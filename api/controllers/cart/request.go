package cart

import (
	cartdto "github.com/modaline/storefront-backend/api/controllers/cart/dto"
	"github.com/modaline/storefront-backend/internal/cart"
	"github.com/modaline/storefront-backend/pkg/types"
)

func toSyncCartInput(payload cartdto.SyncCartRequest) cart.SyncCartInput {
	var lines []cart.SyncLine
	if payload.Cart != nil {
		lines = make([]cart.SyncLine, 0, len(payload.Cart))
		for _, line := range payload.Cart {
			lines = append(lines, cart.SyncLine{
				ProductID:  line.ProductID,
				StyleIndex: line.Style,
				SizeLabel:  line.Size,
				Qty:        line.Qty,
				LegacyUID:  line.LegacyUID,
			})
		}
	}

	return cart.SyncCartInput{
		Lines:         lines,
		Country:       payload.Country,
		CountryGroups: types.CountryGroups(payload.CountryGroups),
	}
}
