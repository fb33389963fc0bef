package main

import (
	"regexp"
	"strings"

	"debtsvc/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// ValidationError aggregates every violated field constraint of a form into
// a single client-facing message.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

// OWASP email validation regexp: local-part chars, dotted domain, 2-7 letter TLD.
var emailRE = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("customeremail", func(fl validator.FieldLevel) bool {
		return emailRE.MatchString(fl.Field().String())
	})
	v.RegisterStructValidation(debtFormStructLevel, DebtForm{})
	return v
}

// CustomerForm is the external input shape for customer create/update.
// Blank means absent here: whitespace-only strings fail the same way empty
// ones do.
type CustomerForm struct {
	Name     string `json:"name" validate:"required,notblank"`
	Surname  string `json:"surname" validate:"required,notblank"`
	Country  string `json:"country" validate:"required,notblank"`
	Email    string `json:"email" validate:"required,customeremail"`
	Password string `json:"password" validate:"required,notblank"`
}

// DebtForm is the external input shape for debt create/update. Pointer
// fields distinguish "absent" from zero values.
type DebtForm struct {
	Amount     *decimal.Decimal `json:"amount" validate:"required"`
	Currency   string           `json:"currency" validate:"required,notblank,len=3"`
	DueDate    *models.Date     `json:"dueDate" validate:"required"`
	CustomerID *uint            `json:"customerId" validate:"required"`
}

func debtFormStructLevel(sl validator.StructLevel) {
	form := sl.Current().Interface().(DebtForm)
	if form.Amount != nil && form.Amount.IsNegative() {
		sl.ReportError(form.Amount, "Amount", "Amount", "min", "")
	}
}

var validationMessages = map[string]string{
	"CustomerForm.Name.required":       "Name cannot be empty",
	"CustomerForm.Name.notblank":       "Name cannot be empty",
	"CustomerForm.Surname.required":    "Surname cannot be empty",
	"CustomerForm.Surname.notblank":    "Surname cannot be empty",
	"CustomerForm.Country.required":    "Country cannot be empty",
	"CustomerForm.Country.notblank":    "Country cannot be empty",
	"CustomerForm.Email.required":      "Email cannot be empty",
	"CustomerForm.Email.customeremail": "Email is not valid",
	"CustomerForm.Password.required":   "Password cannot be empty",
	"CustomerForm.Password.notblank":   "Password cannot be empty",
	"DebtForm.Amount.required":         "Amount must not be null",
	"DebtForm.Amount.min":              "Amount cannot be negative",
	"DebtForm.Currency.required":       "Currency cannot be empty",
	"DebtForm.Currency.notblank":       "Currency cannot be empty",
	"DebtForm.Currency.len":            "Currency code should be exactly 3 symbols",
	"DebtForm.DueDate.required":        "Date must not be null",
	"DebtForm.CustomerID.required":     "Customer ID must not be null",
}

// runValidation checks a form and joins every violation into one message:
// "Error occurred. <msg>. <msg>".
func runValidation(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if m, found := validationMessages[fe.Namespace()+"."+fe.Tag()]; found {
			msgs = append(msgs, m)
		} else {
			msgs = append(msgs, fe.Error())
		}
	}
	return &ValidationError{msg: "Error occurred. " + strings.Join(msgs, ". ")}
}

func (f CustomerForm) Validate() error { return runValidation(f) }

func (f DebtForm) Validate() error { return runValidation(f) }
