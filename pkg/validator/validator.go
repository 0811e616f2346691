// Package validator registers custom binding rules on gin's validator engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/healthnet/admin-api/internal/model"
)

// Register installs the custom rules. Call once at startup before any
// request binding happens.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("role", validRole)
}

func validRole(fl validator.FieldLevel) bool {
	return model.Role(fl.Field().String()).Valid()
}
