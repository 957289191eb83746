package handlers

import (
	"shop-backoffice-backend/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs custom payload validations on gin's binding
// engine. Call once at startup.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
			method := fl.Field().String()
			return method == models.MethodCash || method == models.MethodCheck
		})
		v.RegisterValidation("app_role", func(fl validator.FieldLevel) bool {
			role := fl.Field().String()
			return role == models.RoleAdmin || role == models.RoleSales
		})
	}
}
