package profile

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/readmeforge/internal/icons"
	"github.com/readmeforge/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	namePattern           = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	githubUsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
)

// FieldErrors 以字段路径（如 socials.website）为键记录校验失败原因。
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation error"
	}
	keys := make([]string, 0, len(e))
	for key := range e {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, e[key]))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// validatorInstance 初始化并返回共享的校验器。
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
			return namePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("github_username", func(fl validator.FieldLevel) bool {
			return githubUsernamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("stats_theme", func(fl validator.FieldLevel) bool {
			return theme.IsValid(fl.Field().String())
		})

		_ = v.RegisterValidation("icon_service", func(fl validator.FieldLevel) bool {
			raw := fl.Field().String()
			parsed, ok := icons.ParseService(raw)
			return ok && string(parsed) == raw
		})

		v.RegisterStructValidation(func(sl validator.StructLevel) {
			p := sl.Current().Interface().(Profile)
			if !icons.SupportsStyle(p.IconService, p.IconStyle) {
				sl.ReportError(p.IconStyle, "techIconsStyle", "IconStyle", "icon_style", string(p.IconService))
			}
		}, Profile{})

		validateInst = v
	})

	return validateInst
}

// Validate 按表单规则校验资料，失败时返回 FieldErrors。
func Validate(p Profile) error {
	err := validatorInstance().Struct(p)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make(FieldErrors, len(validationErrs))
	for _, fe := range validationErrs {
		path := fieldPath(fe.Namespace())
		if _, exists := fields[path]; exists {
			continue
		}
		fields[path] = messageFor(path, fe)
	}
	return fields
}

func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

var requiredMessages = map[string]string{
	"name":           "Name is required",
	"githubUsername": "GitHub username is required",
	"role":           "Please select a role",
	"domain":         "Domain is required",
	"bio":            "Bio must be at least 10 characters",
	"techStack":      "Please select at least one technology",
	"statsTheme":     "Please select a theme",
	"iconService":    "Please select an icon service",
}

var maxMessages = map[string]string{
	"name":             "Name must be less than 50 characters",
	"githubUsername":   "GitHub username must be less than 39 characters",
	"domain":           "Domain must be less than 100 characters",
	"companyName":      "Company name must be less than 100 characters",
	"collegeName":      "College name must be less than 100 characters",
	"bio":              "Bio must be less than 500 characters",
	"techStack":        "Tech stack is too long",
	"socials.linkedin": "LinkedIn username must be less than 50 characters",
	"socials.twitter":  "Twitter handle must be less than 15 characters",
	"quote":            "Quote must be less than 200 characters",
}

func messageFor(path string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		if msg, ok := requiredMessages[path]; ok {
			return msg
		}
		return "This field is required"
	case "max":
		if msg, ok := maxMessages[path]; ok {
			return msg
		}
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "min":
		if path == "bio" {
			return "Bio must be at least 10 characters"
		}
		return fmt.Sprintf("Must be at least %s characters", fe.Param())
	case "alphaspace":
		return "Name can only contain letters and spaces"
	case "github_username":
		return "GitHub username can only contain letters, numbers, and hyphens"
	case "oneof":
		return "Please select a role"
	case "url":
		return "Please enter a valid URL"
	case "email":
		return "Please enter a valid email address"
	case "stats_theme":
		return "Please select a theme"
	case "icon_service":
		return "Please select an icon service"
	case "icon_style":
		return fmt.Sprintf("Icon style is not supported by %s", icons.Config(icons.Service(fe.Param())).Name)
	default:
		return "Invalid value"
	}
}

// IsValidGitHubUsername mirrors the form rule for quick client-side style checks.
func IsValidGitHubUsername(username string) bool {
	return githubUsernamePattern.MatchString(username) && len(username) <= 39
}

// IsValidEmail 使用与表单相同的校验器判断邮箱格式。
func IsValidEmail(email string) bool {
	return validatorInstance().Var(email, "required,email") == nil
}

// IsValidURL reports whether raw is an absolute URL accepted by the form.
func IsValidURL(raw string) bool {
	return validatorInstance().Var(raw, "required,url") == nil
}
