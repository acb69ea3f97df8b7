package httpserver

import (
	"fmt"
	"strconv"

	"github.com/fairprice/ppp-pricing/internal/core/domain/pricing"
)

// renderPriceMarkup produces the HTML fragment the storefront swaps into
// cached pages. Currency symbols and locale formatting belong to the
// host platform's formatter, so amounts render bare.
func renderPriceMarkup(q pricing.PairQuote) string {
	if q.DiscountActive {
		return fmt.Sprintf(
			`<span class="price"><del aria-hidden="true">%s</del> <ins>%s</ins></span>`,
			formatAmount(q.RegularPrice), formatAmount(q.SalePrice),
		)
	}
	return fmt.Sprintf(`<span class="price">%s</span>`, formatAmount(q.RegularPrice))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
