package contract

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Bounds applied to string fields and lists so a hostile artifact cannot
// blow up memory or log output.
const (
	maxStringLength = 10000
	maxListItems    = 1000
	maxTicketIDLen  = 50
	maxVersionLen   = 20
)

// semverRe accepts basic SemVer (major.minor.patch) only: no pre-release or
// build metadata, and leading zeros are rejected per the SemVer spec.
var semverRe = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)$`)

// dateRe validates format only, not calendar validity; "2025-02-30" passes.
var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validate is the shared validator instance with the contract-specific
// checks registered. Safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tag names; these are constants.
	_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
		return semverRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return dateRe.MatchString(fl.Field().String())
	})
	// Report artifact field names (yaml tags), not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// formatValidationError renders validator errors with field paths and
// reasons, one per line, so a failing artifact points at the exact field.
func formatValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var sb strings.Builder
	sb.WriteString("validation errors:")
	for _, fe := range verrs {
		path := fe.Namespace()
		// Drop the leading struct name; artifact consumers see field paths.
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		sb.WriteString(fmt.Sprintf("\n  - %s: failed '%s'", path, fe.Tag()))
		if fe.Param() != "" {
			sb.WriteString(fmt.Sprintf("=%s", fe.Param()))
		}
	}
	return fmt.Errorf("%s", sb.String())
}
