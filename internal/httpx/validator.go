package httpx

import (
	"fmt"
	"reflect"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
)

var validate *validator.Validate

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`)

	// +375 (OO) ddd-dd-dd with a Belarusian mobile operator code.
	byPhoneRe = regexp.MustCompile(`^\+375 \((29|25|44|33)\) \d{3}-\d{2}-\d{2}$`)
)

// messageTag overrides the generated message for any failing rule on a
// top-level field.
const messageTag = "errmsg"

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("password_strength", validatePasswordStrength)
	_ = validate.RegisterValidation("by_phone", validateBelarusPhone)
}

// validateBelarusPhone accepts an empty value so that clearing a phone
// passes validation.
func validateBelarusPhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	return phone == "" || byPhoneRe.MatchString(phone)
}

func validatePasswordStrength(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}
	return upperRe.MatchString(password) &&
		lowerRe.MatchString(password) &&
		digitRe.MatchString(password) &&
		specialRe.MatchString(password)
}

// ValidateStruct runs struct tag validation and returns one detail per
// failing field, keyed by the snake_case field name.
func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	details := make([]ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		field := strcase.ToSnake(fe.Field())
		label := humanize(field)
		param := fe.Param()

		message := fieldMessage(s, fe)
		if message == "" {
			message = tagMessage(fe, label, param)
		}

		details = append(details, ErrorDetail{Field: field, Message: message})
	}
	return details
}

func fieldMessage(s any, fe validator.FieldError) string {
	t := reflect.TypeOf(s)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ""
	}
	if f, ok := t.FieldByName(fe.StructField()); ok {
		return f.Tag.Get(messageTag)
	}
	return ""
}

func tagMessage(fe validator.FieldError, label, param string) string {
	var message string
	switch fe.Tag() {
	case "required":
		message = fmt.Sprintf("%s is required", label)
	case "email":
		message = fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		message = fmt.Sprintf("%s must be at least %s characters", label, param)
	case "max":
		message = fmt.Sprintf("%s must be at most %s characters", label, param)
	case "oneof":
		message = fmt.Sprintf("%s must be one of [%s]", label, param)
	case "password_strength":
		message = fmt.Sprintf("%s must be at least 8 characters with uppercase, lowercase, number, and special character", label)
	case "gte", "lte":
		message = fmt.Sprintf("%s is out of range", label)
	case "len":
		message = fmt.Sprintf("%s must be exactly %s characters", label, param)
	case "number":
		message = fmt.Sprintf("%s must contain digits only", label)
	case "datetime":
		message = fmt.Sprintf("%s must match %s", label, param)
	case "by_phone":
		message = fmt.Sprintf("%s must look like +375 (29) 123-45-67", label)
	default:
		message = fmt.Sprintf("%s is invalid", label)
	}
	return message
}

func humanize(snake string) string {
	s := []rune(strcase.ToDelimited(snake, ' '))
	if len(s) == 0 {
		return ""
	}
	s[0] = unicode.ToUpper(s[0])
	return string(s)
}
