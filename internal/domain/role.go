package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Role is the account category being registered
type Role string

const (
	RolePatient  Role = "patient"
	RoleDriver   Role = "driver"
	RoleHospital Role = "hospital"
	RolePolice   Role = "police"
)

// DefaultRole is selected when a new form is opened
const DefaultRole = RolePatient

// Roles returns all roles in display order
func Roles() []Role {
	return []Role{RolePatient, RoleDriver, RoleHospital, RolePolice}
}

// ParseRole converts a raw value into a Role
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Roles() {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// Title returns the role name with its first letter capitalized
func (r Role) Title() string {
	s := string(r)
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
