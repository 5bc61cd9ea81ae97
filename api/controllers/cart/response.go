package cart

import (
	cartdto "github.com/modaline/storefront-backend/api/controllers/cart/dto"
	cartsvc "github.com/modaline/storefront-backend/internal/cart"
	"github.com/modaline/storefront-backend/pkg/db/models"
)

func newSyncCartResponse(result *cartsvc.SyncCartResult) cartdto.SyncCartResponse {
	lines := make([]cartdto.SyncCartResponseLine, 0, len(result.Lines))
	for _, line := range result.Lines {
		reasons := make([]string, 0, len(line.Reasons))
		for _, reason := range line.Reasons {
			reasons = append(reasons, reason.String())
		}
		lines = append(lines, cartdto.SyncCartResponseLine{
			ProductID:     line.ProductID,
			Style:         line.StyleIndex,
			Size:          line.SizeLabel,
			Name:          line.Name,
			Image:         line.Image,
			RequestedQty:  line.RequestedQty,
			AvailableQty:  line.AvailableQty,
			ReconciledQty: line.ReconciledQty,
			UnitPrice:     line.UnitPrice,
			UnitShipping:  line.UnitShipping,
			LineTotal:     line.LineTotal,
			LineShipping:  line.LineShipping,
			Changed:       line.Changed,
			Reasons:       reasons,
		})
	}

	return cartdto.SyncCartResponse{
		Lines:      lines,
		Subtotal:   result.Totals.Subtotal,
		Shipping:   result.Totals.Shipping,
		Total:      result.Totals.Total,
		AnyChanged: result.Totals.AnyChanged,
		Saved:      result.Saved,
	}
}

func newCartView(record *models.CartRecord) cartdto.CartView {
	lines := make([]cartdto.CartViewLine, 0, len(record.Lines))
	for _, line := range record.Lines {
		lines = append(lines, cartdto.CartViewLine{
			ProductID:    line.ProductID,
			Style:        line.StyleIndex,
			Size:         line.SizeLabel,
			Name:         line.Name,
			Image:        line.Image,
			Qty:          line.Qty,
			UnitPrice:    line.UnitPrice,
			UnitShipping: line.UnitShipping,
			LineTotal:    line.LineTotal,
			LineShipping: line.LineShipping,
		})
	}

	return cartdto.CartView{
		ID:        record.ID,
		Lines:     lines,
		Subtotal:  record.Subtotal,
		Shipping:  record.Shipping,
		Total:     record.Total,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
