package analysis

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// gte alone would already reject NaN, but the explicit rule names the
	// actual requirement.
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// moneyField carries the validation rules for a single money cell.
type moneyField struct {
	Amount float64 `validate:"finite,gte=0"`
}

// DataIntegrityError reports a money value an analysis refused to aggregate:
// negative, NaN (unparseable in the source cell), or infinite.
type DataIntegrityError struct {
	Organization string
	Amount       float64
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("invalid money_raised for organization %q: %v", e.Organization, e.Amount)
}

// checkMoney validates one money value, attributing failures to the
// organization that owns the row.
func checkMoney(organization string, amount float64) error {
	if err := validate.Struct(moneyField{Amount: amount}); err != nil {
		return &DataIntegrityError{Organization: organization, Amount: amount}
	}
	return nil
}
