// Package leads relays consultation requests to the Public Submission API.
//
// Submissions are normalized, checked for required fields and basic format,
// tagged with a submission id and sent exactly once. The relay never
// retries; a failed submission is reported to the caller and recorded in
// the audit log without contact details.
package leads

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/states"
)

// DefaultSource tags submissions that do not name their form.
const DefaultSource = "website"

// Lead is a consultation request as entered by a visitor.
type Lead struct {
	FullName  string `json:"full_name" validate:"required,min=2,max=120"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Mobile    string `json:"mobile" validate:"required,in_mobile"`
	Address   string `json:"address,omitempty" validate:"omitempty,max=500"`
	Pincode   string `json:"pincode,omitempty" validate:"omitempty,in_pincode"`
	StateSlug string `json:"state_slug,omitempty" validate:"omitempty,state_slug"`
	Source    string `json:"source,omitempty" validate:"omitempty,max=64,source_tag"`
}

var (
	mobilePattern  = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	sourcePattern  = regexp.MustCompile(`^[a-z0-9][a-z0-9_\-]*$`)
)

// validate is the package-level validator instance used for lead validation.
var validate = newValidator(states.Default())

func newValidator(table *states.Table) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("in_mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("in_pincode", func(fl validator.FieldLevel) bool {
		return pincodePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("source_tag", func(fl validator.FieldLevel) bool {
		return sourcePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("state_slug", func(fl validator.FieldLevel) bool {
		return table.Has(fl.Field().String())
	})
	return v
}

// Normalize trims every field, lowercases email, state and source, and
// reduces an all-digit mobile number to its ten national digits when it
// carries a +91 or 0 prefix.
func Normalize(l Lead) Lead {
	l.FullName = strings.Join(strings.Fields(l.FullName), " ")
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
	l.Mobile = normalizeMobile(l.Mobile)
	l.Address = strings.TrimSpace(l.Address)
	l.Pincode = strings.ReplaceAll(strings.TrimSpace(l.Pincode), " ", "")
	l.StateSlug = strings.ToLower(strings.TrimSpace(l.StateSlug))
	l.Source = strings.ToLower(strings.TrimSpace(l.Source))
	return l
}

// normalizeMobile drops a leading + and the separators people type between
// digit groups. Any other character is kept so validation rejects it.
func normalizeMobile(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "+")
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '-', '(', ')', '.':
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if !allDigits(out) {
		return out
	}
	switch {
	case len(out) == 12 && strings.HasPrefix(out, "91"):
		return out[2:]
	case len(out) == 11 && strings.HasPrefix(out, "0"):
		return out[1:]
	}
	return out
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Validate checks a normalized lead. On failure it returns E_INVALID_LEAD
// with the offending fields (json names, in form order) in details.
func Validate(l Lead) error {
	return validateWith(validate, l)
}

func validateWith(v *validator.Validate, l Lead) error {
	err := v.Struct(l)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(errors.EInternal, "lead validation failed", err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return errors.NewWithDetails(errors.EInvalidLead, "invalid "+strings.Join(fields, ", "), map[string]string{
		"field":  fields[0],
		"fields": strings.Join(fields, ","),
		"hint":   hintFor(verrs[0]),
	})
}

func hintFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "enter a valid email address"
	case "in_mobile":
		return "enter a 10-digit Indian mobile number"
	case "in_pincode":
		return "enter a 6-digit pincode"
	case "state_slug":
		return "state must be one of: " + strings.Join(states.AllSlugs(), ", ")
	}
	return ""
}

// InvalidFields returns the field list recorded on an E_INVALID_LEAD error.
func InvalidFields(err error) []string {
	ae, ok := errors.AsAppError(err)
	if !ok || ae.Code != errors.EInvalidLead || ae.Details["fields"] == "" {
		return nil
	}
	return strings.Split(ae.Details["fields"], ",")
}
