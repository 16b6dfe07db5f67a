package validation

import "strings"

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

// Email checks shape only, and only when a value was given: blank contact
// fields are defaulted downstream, not rejected.
func Email(field, value string, v Violations) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 || strings.Contains(value, " ") {
		v[field] = "invalid_email"
	}
}

// Phone accepts digits with common separators, minimum 6 digits, and only
// validates non-blank values.
func Phone(field, value string, v Violations) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	digits := 0
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '+' || r == '(' || r == ')':
		default:
			v[field] = "invalid_phone"
			return
		}
	}
	if digits < 6 {
		v[field] = "invalid_phone"
	}
}
