package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Matching quiz urgency
	validate.RegisterValidation("urgency", oneOf("emergency", "this_week", "this_month", "flexible"))

	// Matching quiz budget band
	validate.RegisterValidation("budget_band", oneOf("budget", "mid", "premium", "any"))

	// Matching quiz priority
	validate.RegisterValidation("match_priority", oneOf("quality", "speed", "price", "reviews"))

	// Provider pricing tier ($ .. $$$$)
	validate.RegisterValidation("pricing_tier", oneOf("$", "$$", "$$$", "$$$$"))

	// Quote request timeline
	validate.RegisterValidation("quote_timeline", oneOf("asap", "this_week", "next_week", "this_month", "flexible", ""))

	// Quote request budget bracket
	validate.RegisterValidation("quote_budget", oneOf("under_100", "100_500", "500_1000", "1000_5000", "5000_plus", "not_sure", ""))

	// Preferred contact method
	validate.RegisterValidation("contact_pref", oneOf("email", "phone", "either", ""))
}

func oneOf(allowed ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "url":
			errors[field] = "Invalid URL format"
		case "uuid":
			errors[field] = "Invalid identifier"
		case "urgency":
			errors[field] = "Invalid urgency. Must be: emergency, this_week, this_month, or flexible"
		case "budget_band":
			errors[field] = "Invalid budget. Must be: budget, mid, premium, or any"
		case "match_priority":
			errors[field] = "Invalid priority. Must be: quality, speed, price, or reviews"
		case "pricing_tier":
			errors[field] = "Invalid pricing tier. Must be: $, $$, $$$, or $$$$"
		case "quote_timeline":
			errors[field] = "Invalid timeline"
		case "quote_budget":
			errors[field] = "Invalid budget bracket"
		case "contact_pref":
			errors[field] = "Invalid contact preference. Must be: email, phone, or either"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
