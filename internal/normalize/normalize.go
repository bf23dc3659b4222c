// Package normalize turns the heterogeneous payload shapes the frontend sends
// into canonical values. Every function is pure: raw JSON in, value or
// rejection out, no persistence involved.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	camelBoundary1 = regexp.MustCompile("(.)([A-Z][a-z]+)")
	camelBoundary2 = regexp.MustCompile("([a-z0-9])([A-Z])")
)

// CamelToSnake converts camelCase keys to snake_case. Keys without upper-case
// letters pass through unchanged.
func CamelToSnake(name string) string {
	if !strings.ContainsFunc(name, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return name
	}
	s := camelBoundary1.ReplaceAllString(name, "${1}_${2}")
	return strings.ToLower(camelBoundary2.ReplaceAllString(s, "${1}_${2}"))
}

// SnakeBody rewrites the top-level keys of a JSON object to snake_case,
// leaving values untouched. Non-object bodies are returned as-is.
func SnakeBody(body []byte) []byte {
	res := gjson.ParseBytes(body)
	if !res.IsObject() {
		return body
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	res.ForEach(func(key, value gjson.Result) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(CamelToSnake(key.String()))
		buf.Write(k)
		buf.WriteByte(':')
		buf.WriteString(value.Raw)
		return true
	})
	buf.WriteByte('}')
	return buf.Bytes()
}

// Field returns the first existing key out of the given candidates.
func Field(obj gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := obj.Get(k); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

var degreeLevelAliases = map[string]string{
	"Masters":         "Master's",
	"Master's Degree": "Master's",
	"Doctoral":        "Doctorate",
	"Doctoral Degree": "Doctorate",
	"PhD":             "Doctorate",
	"Ph.D":            "Doctorate",
	"Ph.D.":           "Doctorate",
}

// DegreeLevel maps UI aliases onto the two canonical values. Matching is
// case-sensitive; unmapped input passes through for choice validation to
// reject.
func DegreeLevel(raw string) string {
	val := strings.TrimSpace(raw)
	if mapped, ok := degreeLevelAliases[val]; ok {
		return mapped
	}
	return val
}

// DepartmentRef is the canonical form of a department reference. Exactly one
// of ID and Name is set; the zero value means null.
type DepartmentRef struct {
	ID   *uint
	Name string
}

func (r DepartmentRef) IsNull() bool {
	return r.ID == nil && r.Name == ""
}

// DepartmentField accepts a numeric ID, a numeric string, an object carrying
// an "id" key, a department name string, an empty string, or null.
func DepartmentField(v gjson.Result) DepartmentRef {
	switch {
	case !v.Exists(), v.Type == gjson.Null:
		return DepartmentRef{}
	case v.Type == gjson.Number:
		return idRef(uint(v.Int()))
	case v.IsObject():
		return DepartmentField(v.Get("id"))
	case v.Type == gjson.String:
		s := strings.TrimSpace(v.String())
		if s == "" {
			return DepartmentRef{}
		}
		if n, err := strconv.ParseUint(s, 10, 64); err == nil {
			return idRef(uint(n))
		}
		return DepartmentRef{Name: s}
	default:
		return DepartmentRef{}
	}
}

func idRef(id uint) DepartmentRef {
	if id == 0 {
		return DepartmentRef{}
	}
	return DepartmentRef{ID: &id}
}

var ErrNotANumber = errors.New("must be a valid number")

// Credits resolves the course credit value from its alias keys, in order:
// credits, then creditHours, then credit_hours.
func Credits(course gjson.Result) (*float64, error) {
	v := Field(course, "credits", "creditHours", "credit_hours")
	switch {
	case !v.Exists(), v.Type == gjson.Null:
		return nil, nil
	case v.Type == gjson.Number:
		f := v.Float()
		return &f, nil
	case v.Type == gjson.String:
		s := strings.TrimSpace(v.String())
		if s == "" {
			return nil, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, ErrNotANumber
		}
		return &f, nil
	default:
		return nil, ErrNotANumber
	}
}

var ErrNotAYear = errors.New("must be a valid year")

// Year coerces year fields: empty string and null become nil, anything else
// must parse as an integer.
func Year(v gjson.Result) (*int, error) {
	switch {
	case !v.Exists(), v.Type == gjson.Null:
		return nil, nil
	case v.Type == gjson.Number:
		y := int(v.Int())
		return &y, nil
	case v.Type == gjson.String:
		s := strings.TrimSpace(v.String())
		if s == "" {
			return nil, nil
		}
		y, err := strconv.Atoi(s)
		if err != nil {
			return nil, ErrNotAYear
		}
		return &y, nil
	default:
		return nil, ErrNotAYear
	}
}

// WorkPreference tolerates a JSON list, a JSON-encoded list string, or a
// comma-separated string, and always lands on a list.
func WorkPreference(v gjson.Result) []string {
	switch {
	case !v.Exists(), v.Type == gjson.Null:
		return []string{}
	case v.IsArray():
		out := []string{}
		v.ForEach(func(_, item gjson.Result) bool {
			out = append(out, item.String())
			return true
		})
		return out
	case v.Type == gjson.String:
		s := v.String()
		parsed := gjson.Parse(s)
		if parsed.IsArray() {
			return WorkPreference(parsed)
		}
		out := []string{}
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return []string{}
	}
}
