// Package validation holds the request rules shared by the campus DTOs and the
// mapping from rule failures to caller-facing messages.
package validation

import (
	"errors"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/campus/internal/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// missingCodes are the rule codes reported as "<field> required".
var missingCodes = []string{
	validation.ErrRequired.Code(),
	validation.ErrNilOrNotEmpty.Code(),
	"validation_not_blank",
}

// WrapValidationError converts a validation failure into an ErrInvalidInput carrying a
// caller-facing message. When any field is missing the message lists the missing fields
// in fieldOrder ("title and start_date required"); otherwise it reports the first
// offending field. Fields absent from fieldOrder are listed after it, alphabetically.
func WrapValidationError(err error, fieldOrder ...string) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}

	fields := orderedFields(errs, fieldOrder)

	var missing []string
	for _, field := range fields {
		if isMissing(errs[field]) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, JoinFields(missing)+" required")
	}

	field := fields[0]
	return apperrors.WithMessage(apperrors.ErrInvalidInput, field+" "+errs[field].Error())
}

// JoinFields renders a field list as "a", "a and b" or "a, b and c".
func JoinFields(fields []string) string {
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	default:
		return strings.Join(fields[:len(fields)-1], ", ") + " and " + fields[len(fields)-1]
	}
}

func orderedFields(errs validation.Errors, fieldOrder []string) []string {
	fields := make([]string, 0, len(errs))
	for _, field := range fieldOrder {
		if _, ok := errs[field]; ok {
			fields = append(fields, field)
		}
	}

	var rest []string
	for field := range errs {
		if !slices.Contains(fields, field) {
			rest = append(rest, field)
		}
	}
	slices.Sort(rest)

	return append(fields, rest...)
}

func isMissing(err error) bool {
	var verr validation.Error
	if errors.As(err, &verr) {
		return slices.Contains(missingCodes, verr.Code())
	}
	return false
}

// PasswordStrength enforces a minimum length counted in runes. A password made of
// whitespace only is rejected.
type PasswordStrength struct {
	MinLength int
}

// Validate implements validation.Rule. Empty values are left to Required.
func (p PasswordStrength) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password", "must be a string")
	}
	if s == "" {
		return nil
	}
	if utf8.RuneCountInString(s) < p.MinLength {
		return validation.NewError(
			"validation_password_min_length",
			"must be at least "+strconv.Itoa(p.MinLength)+" characters",
		)
	}
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_password_blank", "must not be blank")
	}
	return nil
}

// Email accepts addresses of the form local@domain.tld.
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank rejects strings that are empty after trimming.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// OneOf restricts a string to a fixed vocabulary. Empty values pass so defaults can apply.
func OneOf(values ...string) validation.Rule {
	allowed := make([]any, len(values))
	for i, v := range values {
		allowed[i] = v
	}
	return validation.In(allowed...).Error("must be one of " + strings.Join(values, ", "))
}

// timestampLayouts are the accepted date formats, from most to least precise.
var timestampLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// ParseTimestamp reads an RFC 3339 timestamp, an HTML datetime-local value or a
// bare date. Values without a zone are taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("must be a valid date")
}

// Timestamp accepts strings that ParseTimestamp can read.
var Timestamp = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := ParseTimestamp(s)
		return err == nil
	},
	validation.NewError("validation_timestamp", "must be a valid date"),
)

// UUID accepts canonical UUID strings.
var UUID = validation.NewStringRuleWithError(
	func(s string) bool {
		return uuid.Validate(s) == nil
	},
	validation.NewError("validation_uuid", "must be a valid id"),
)
