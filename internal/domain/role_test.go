package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Role
		expectError bool
	}{
		{name: "patient", input: "patient", expected: RolePatient},
		{name: "driver", input: "driver", expected: RoleDriver},
		{name: "hospital", input: "hospital", expected: RoleHospital},
		{name: "police", input: "police", expected: RolePolice},
		{name: "mixed case with spaces", input: "  Police ", expected: RolePolice},
		{name: "unknown", input: "admin", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := ParseRole(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, role)
		})
	}
}

func TestRole_Title(t *testing.T) {
	tests := []struct {
		role     Role
		expected string
	}{
		{RolePatient, "Patient"},
		{RoleDriver, "Driver"},
		{RoleHospital, "Hospital"},
		{RolePolice, "Police"},
		{Role(""), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.Title())
		})
	}
}

func TestRoles_Order(t *testing.T) {
	assert.Equal(t, []Role{RolePatient, RoleDriver, RoleHospital, RolePolice}, Roles())
	assert.Equal(t, RolePatient, DefaultRole)
}

func TestForm_Request(t *testing.T) {
	form := Form{
		UserType:        RoleHospital,
		Email:           "st.mary@example.com",
		Username:        "st_mary",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
	}

	req := form.Request()

	assert.Equal(t, SignupRequest{
		Username: "st_mary",
		Email:    "st.mary@example.com",
		Password: "hunter2hunter2",
		UserType: RoleHospital,
	}, req)
}

func TestNewForm_DefaultsToPatient(t *testing.T) {
	assert.Equal(t, RolePatient, NewForm().UserType)
}
