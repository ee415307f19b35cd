package validation

import (
	"fmt"
	"strings"

	"pos-backend-api/models"

	"github.com/go-playground/validator/v10"
)

// FieldError pairs one offending field with a human-readable message
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects every violation found in a payload. Checks never stop at
// the first bad field; the caller gets the whole list at once.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = validator.New()

const (
	MinUsernameLen = 3
	MinPasswordLen = 6
)

func checkUsername(username string) *FieldError {
	if len(username) < MinUsernameLen {
		return &FieldError{"username", fmt.Sprintf("must be at least %d characters", MinUsernameLen)}
	}
	return nil
}

func checkEmail(email string) *FieldError {
	if err := validate.Var(email, "email"); err != nil {
		return &FieldError{"email", "must be a valid email address"}
	}
	return nil
}

func checkPassword(password string) *FieldError {
	if len(password) < MinPasswordLen {
		return &FieldError{"password", fmt.Sprintf("must be at least %d characters", MinPasswordLen)}
	}
	return nil
}

func checkRole(role string) *FieldError {
	switch models.UserRole(role) {
	case models.RoleAdmin, models.RoleCashier:
		return nil
	}
	return &FieldError{"role", "must be one of: admin, cashier"}
}

func checkCategory(category string) *FieldError {
	switch models.MenuCategory(category) {
	case models.CategoryFood, models.CategoryBeverages, models.CategoryDesserts:
		return nil
	}
	return &FieldError{"category", "must be one of: Food, Beverages, Desserts"}
}

func checkPrice(price float64) *FieldError {
	if price <= 0 {
		return &FieldError{"price", "must be greater than 0"}
	}
	return nil
}

func collect(errs Errors, fe *FieldError) Errors {
	if fe != nil {
		errs = append(errs, *fe)
	}
	return errs
}

// UserFields validates a registration payload. Nil pointers mean the field
// was absent from the request and are skipped here; required-ness is the
// handler's concern.
func UserFields(username, email, password, role *string) Errors {
	var errs Errors
	if username != nil {
		errs = collect(errs, checkUsername(*username))
	}
	if email != nil {
		errs = collect(errs, checkEmail(*email))
	}
	if password != nil {
		errs = collect(errs, checkPassword(*password))
	}
	if role != nil {
		errs = collect(errs, checkRole(*role))
	}
	return errs
}

// MenuItemFields validates menu create/update payloads, skipping absent fields
func MenuItemFields(name, category *string, price *float64) Errors {
	var errs Errors
	if name != nil && strings.TrimSpace(*name) == "" {
		errs = append(errs, FieldError{"name", "must not be empty"})
	}
	if category != nil {
		errs = collect(errs, checkCategory(*category))
	}
	if price != nil {
		errs = collect(errs, checkPrice(*price))
	}
	return errs
}

// OrderType validates the dine-in/takeaway discriminator
func OrderType(orderType string) Errors {
	switch models.OrderType(orderType) {
	case models.TypeDineIn, models.TypeTakeAway:
		return nil
	}
	return Errors{{"order_type", "must be one of: Dine_In, Take_Away"}}
}
