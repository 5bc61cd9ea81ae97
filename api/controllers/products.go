package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/modaline/storefront-backend/api/responses"
	"github.com/modaline/storefront-backend/api/validators"
	"github.com/modaline/storefront-backend/internal/catalog"
	pkgerrors "github.com/modaline/storefront-backend/pkg/errors"
	"github.com/modaline/storefront-backend/pkg/logger"
	"github.com/modaline/storefront-backend/pkg/types"
)

// PricePreviewRequest addresses one size and the countries to quote.
type PricePreviewRequest struct {
	Style         int                 `json:"style" validate:"min=0"`
	Size          string              `json:"size" validate:"required"`
	Countries     []string            `json:"countries" validate:"required,min=1,dive,len=2"`
	CountryGroups map[string][]string `json:"countryGroups,omitempty"`
}

// ProductPricePreview resolves per-country quotes for one size of a product.
func ProductPricePreview(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload PricePreviewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.PricePreview(r.Context(), catalog.PricePreviewInput{
			VariantID:     productID,
			StyleIndex:    payload.Style,
			SizeLabel:     payload.Size,
			Countries:     payload.Countries,
			CountryGroups: types.CountryGroups(payload.CountryGroups),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
