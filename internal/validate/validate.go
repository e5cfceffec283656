package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/sj-cantos/launchpad-jia/internal/sanitize"
	"github.com/sj-cantos/launchpad-jia/pkg/model"
)

// Error is a field-level validation failure. The message names the
// offending field and the violated rule, and is safe to return to the
// client verbatim.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// String requires v to be a non-empty string of at most max characters
// and returns it trimmed.
func String(v any, field string, max int) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errf("%s must be a string", field)
	}
	if strings.TrimSpace(s) == "" {
		return "", errf("%s cannot be empty", field)
	}
	if len([]rune(s)) > max {
		return "", errf("%s exceeds maximum length of %d characters", field, max)
	}
	return strings.TrimSpace(s), nil
}

// OptionalString treats nil and the empty string as absent. Any other
// value must satisfy String.
func OptionalString(v any, field string, max int) (string, error) {
	if v == nil {
		return "", nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return "", nil
	}
	return String(v, field, max)
}

// Number treats nil, null, and the empty string as absent (nil result,
// no error). Numeric strings parse the way JS Number() would, since the
// form has historically submitted salary inputs as strings.
func Number(v any, field string, min, max float64) (*float64, error) {
	if v == nil {
		return nil, nil
	}

	var num float64
	switch n := v.(type) {
	case float64:
		num = n
	case int:
		num = float64(n)
	case int64:
		num = float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, errf("%s must be a valid number", field)
		}
		num = f
	case string:
		if strings.TrimSpace(n) == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil, errf("%s must be a valid number", field)
		}
		num = f
	default:
		return nil, errf("%s must be a valid number", field)
	}

	// ParseFloat accepts "NaN" and "Inf"; neither survives a range check
	// or a JSON response, so both are rejected outright.
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return nil, errf("%s must be a valid number", field)
	}

	if num < min {
		return nil, errf("%s must be at least %s", field, strconv.FormatFloat(min, 'f', -1, 64))
	}
	if num > max {
		return nil, errf("%s must not exceed %s", field, strconv.FormatFloat(max, 'f', -1, 64))
	}
	return &num, nil
}

// Bool passes nil through as absent and rejects any non-boolean value.
func Bool(v any, field string) (*bool, error) {
	if v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, errf("%s must be a boolean", field)
	}
	return &b, nil
}

// Actor accepts either a plain display string or a structured identity
// object with name/email/image sub-fields. Unrecognized sub-fields are
// dropped.
func Actor(v any, field string) (model.Actor, error) {
	switch a := v.(type) {
	case string:
		name, err := String(a, field, 100)
		if err != nil {
			return model.Actor{}, err
		}
		return model.Actor{Name: sanitize.PlainTrimmed(name)}, nil
	case map[string]any:
		name, err := String(a["name"], field+" name", 100)
		if err != nil {
			return model.Actor{}, err
		}
		actor := model.Actor{Name: sanitize.PlainTrimmed(name)}

		if email, err := OptionalString(a["email"], field+" email", 100); err != nil {
			return model.Actor{}, err
		} else if email != "" {
			if !emailPattern.MatchString(email) {
				return model.Actor{}, errf("%s email is not a valid email address", field)
			}
			actor.Email = sanitize.PlainTrimmed(email)
		}

		if image, err := OptionalString(a["image"], field+" image", 500); err != nil {
			return model.Actor{}, err
		} else if image != "" {
			u, err := url.Parse(image)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return model.Actor{}, errf("%s image is not a valid URL", field)
			}
			actor.Image = image
		}

		return actor, nil
	default:
		return model.Actor{}, errf("%s must be a string or an identity object", field)
	}
}
