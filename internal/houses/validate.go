package houses

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
)

// DefaultObliquity is the mean obliquity of the ecliptic at J2000.0, used
// when a caller does not supply one.
const DefaultObliquity = 23.4392911

// Params carries the numeric inputs of a calculation, in degrees (altitude
// in metres).
type Params struct {
	LocalSiderealTime float64 `validate:"finite"`
	Latitude          float64 `validate:"finite,gte=-90,lte=90"`
	Obliquity         float64 `validate:"finite,gt=0,lt=90"`
	Altitude          float64 `validate:"finite"`
}

// paramRules maps struct fields to their external name and expected range.
var paramRules = map[string]struct {
	name string
	want string
}{
	"LocalSiderealTime": {"local sidereal time", "a finite number of degrees"},
	"Latitude":          {"latitude", "a finite number of degrees in [-90, 90]"},
	"Obliquity":         {"obliquity", "a finite number of degrees in (0, 90)"},
	"Altitude":          {"altitude", "a finite number of metres"},
}

// paramsValidate is shared by all calls; validator.Validate is safe for
// concurrent use once its validations are registered.
var paramsValidate *validator.Validate

func init() {
	paramsValidate = validator.New(validator.WithRequiredStructEnabled())
	_ = paramsValidate.RegisterValidation("finite", validateFinite)
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks the generic domain of every parameter and returns the first
// violation as an InvalidParameter error. System-specific latitude limits
// are checked later by the systems themselves.
func Validate(p Params) error {
	err := paramsValidate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	first := verrs[0]
	rule, ok := paramRules[first.StructField()]
	if !ok {
		rule.name, rule.want = first.Field(), first.Tag()
	}
	value, _ := first.Value().(float64)
	return invalidParameter(rule.name, rule.want, value)
}
