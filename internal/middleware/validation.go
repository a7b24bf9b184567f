package middleware

import (
	"learnhub/internal/domain"
	"learnhub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const ModuleIDKey = "validated_module_id"

// ValidationMiddleware validates path parameters before handlers run.
type ValidationMiddleware struct {
	validator *validation.Validator
}

func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	if v == nil {
		v = validation.NewValidator()
	}
	return &ValidationMiddleware{validator: v}
}

// ValidateModuleID parses :moduleId and stores it in the request locals.
func (vm *ValidationMiddleware) ValidateModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, errs := vm.validator.ParseModuleID(c.Params("moduleId"))
		if len(errs) > 0 {
			return errs // handled by ErrorHandler
		}
		c.Locals(ModuleIDKey, id)
		return c.Next()
	}
}

// ModuleIDFromCtx returns the id stored by ValidateModuleID.
func ModuleIDFromCtx(c *fiber.Ctx) (int64, error) {
	id, ok := c.Locals(ModuleIDKey).(int64)
	if !ok {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("moduleId")}
	}
	return id, nil
}
