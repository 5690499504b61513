package pricing

import "github.com/shopspring/decimal"

// ProjectQuantity converts a user-entered measurement (e.g. roof area) into a
// count of physical units using the product's quantity converter. A missing
// form input is passed in as zero and projects to zero, never an error.
func ProjectQuantity(formValue, quantityConverter decimal.Decimal) decimal.Decimal {
	return formValue.Mul(quantityConverter)
}

// IsActiveQuantity reports whether a projected quantity puts the product in
// the offer.
func IsActiveQuantity(quantity decimal.Decimal) bool {
	return quantity.IsPositive()
}
