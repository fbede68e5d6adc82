package services

import (
	"bank-lab/domain"
	"bank-lab/errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails on an empty tag or a nil function.
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return domain.ValidCPF(fl.Field().String())
	})
	return v
}

// CreateClientRequest only constrains the CPF; name, birth date and address
// are free text.
type CreateClientRequest struct {
	CPF       string `validate:"required,cpf"`
	Name      string
	BirthDate string
	Address   string
}

// ValidateCreateClient maps a CPF failure to ErrInvalidCPF.
func ValidateCreateClient(req CreateClientRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fe := range fieldErrors {
		if fe.Field() == "CPF" {
			return errors.ErrInvalidCPF
		}
	}
	return err
}
