// Package validator holds the request predicates shared by every handler.
package validator

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Titles accepted for an author, matched case-sensitively
var Titles = []interface{}{"Mr", "Mrs", "Miss", "Mast"}

// EmailPattern requires local@domain with a final 2-3 character label
var EmailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

// IsPresent reports whether value is set. Nil values, nil pointers and
// strings that are empty after trimming are absent; every other value,
// including false and 0, counts as present.
func IsPresent(value interface{}) bool {
	if value == nil {
		return false
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) != ""
	case reflect.Slice, reflect.Map:
		return !v.IsNil()
	}
	return true
}

// IsValidTitle checks title against the fixed salutation set
func IsValidTitle(title string) bool {
	return validation.Validate(title,
		validation.Required,
		validation.In(Titles...),
	) == nil
}

// IsValidEmail checks email against EmailPattern
func IsValidEmail(email string) bool {
	return validation.Validate(email,
		validation.Required,
		validation.Match(EmailPattern),
	) == nil
}

// IsNonEmptyObject reports whether a decoded JSON object has at least one key
func IsNonEmptyObject(body map[string]json.RawMessage) bool {
	return len(body) > 0
}

// IsValidObjectID reports whether id is a syntactically valid store reference
func IsValidObjectID(id string) bool {
	return primitive.IsValidObjectID(strings.TrimSpace(id))
}

// SplitList turns "a, b ,c" into [a b c], dropping empty items
func SplitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}
