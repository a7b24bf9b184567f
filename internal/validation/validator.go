package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"learnhub/internal/domain"
	"learnhub/internal/dto"

	"github.com/go-playground/validator/v10"
)

// Validator checks request DTOs and reports failures as domain.ValidationErrors.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{validate: v}
}

// Struct validates any tagged struct.
func (v *Validator) Struct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{Field: "body", Code: domain.CodeValidation, Message: err.Error()}}
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, toValidationError(fe))
	}
	return out
}

// fieldPath drops the root struct name: "CreateQuizRequest.questions[0].text" -> "questions[0].text".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func toValidationError(fe validator.FieldError) domain.ValidationError {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required", "notblank":
		return domain.NewMissingFieldError(field)
	case "min", "max", "gt", "gte", "lt", "lte":
		return domain.NewOutOfRangeError(field, fe.Value(), fe.Tag()+"="+fe.Param())
	default:
		return domain.NewInvalidFormatError(field, fe.Value())
	}
}

func (v *Validator) ValidateCreateQuizRequest(req *dto.CreateQuizRequest) domain.ValidationErrors {
	return v.Struct(req)
}

// ValidateUpdateQuizRequest also rejects an explicit empty questions array,
// which would otherwise delete every question.
func (v *Validator) ValidateUpdateQuizRequest(req *dto.UpdateQuizRequest) domain.ValidationErrors {
	errs := v.Struct(req)
	if req.Questions != nil && len(req.Questions) == 0 {
		errs = append(errs, domain.NewOutOfRangeError("questions", 0, "min=1"))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (v *Validator) ValidateSubmissionRequest(req *dto.QuizSubmissionRequest) domain.ValidationErrors {
	return v.Struct(req)
}

// ParseModuleID validates a path identifier.
func (v *Validator) ParseModuleID(raw string) (int64, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, domain.ValidationErrors{domain.NewMissingFieldError("moduleId")}
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("moduleId", raw)}
	}
	if id <= 0 {
		return 0, domain.ValidationErrors{domain.NewOutOfRangeError("moduleId", id, "gt=0")}
	}
	return id, nil
}
