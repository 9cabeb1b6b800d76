package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/campuskit/coursegen-service/internal/models"
)

// Validator wraps struct-tag validation with the domain's custom tags.
type Validator struct {
	structValidator *validator.Validate
	mcqValidator    *MCQValidator
}

// New creates the shared validator instance.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator: structValidator,
		mcqValidator:    NewMCQValidator(),
	}
}

// ValidateStruct validates struct tags only.
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// MCQ returns the MCQ item validator.
func (v *Validator) MCQ() *MCQValidator {
	return v.mcqValidator
}

func validateQuestionType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == string(models.QuestionTypeIA) || value == string(models.QuestionTypeESE)
}

func validateGenerationMode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == string(models.ModeInitial) || value == string(models.ModeEdit)
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("question_type", validateQuestionType)
	validate.RegisterValidation("generation_mode", validateGenerationMode)

	// Error messages report json field names instead of Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
