package domain

// Form holds the values typed into the signup form
type Form struct {
	UserType        Role
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
}

// NewForm returns an empty form with the default role selected
func NewForm() Form {
	return Form{UserType: DefaultRole}
}

// SignupRequest is the JSON payload sent to the signup endpoint
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType Role   `json:"user_type"`
}

// Request projects the form onto the wire payload
func (f Form) Request() SignupRequest {
	return SignupRequest{
		Username: f.Username,
		Email:    f.Email,
		Password: f.Password,
		UserType: f.UserType,
	}
}

// Field identifies a text input of the form
type Field string

const (
	FieldNone            Field = ""
	FieldUsername        Field = "username"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirm_password"
)

// Fields returns the text inputs in prompt order
func Fields() []Field {
	return []Field{FieldUsername, FieldEmail, FieldPassword, FieldConfirmPassword}
}

// ParseField converts callback data into a Field
func ParseField(s string) (Field, bool) {
	for _, f := range Fields() {
		if string(f) == s {
			return f, true
		}
	}
	return FieldNone, false
}

// Label returns the human readable field name
func (f Field) Label() string {
	switch f {
	case FieldUsername:
		return "Username"
	case FieldEmail:
		return "Email Address"
	case FieldPassword:
		return "Password"
	case FieldConfirmPassword:
		return "Confirm Password"
	default:
		return ""
	}
}

// Secret reports whether the field value must be masked
func (f Field) Secret() bool {
	return f == FieldPassword || f == FieldConfirmPassword
}

// Value returns the current value of a field
func (f Form) Value(field Field) string {
	switch field {
	case FieldUsername:
		return f.Username
	case FieldEmail:
		return f.Email
	case FieldPassword:
		return f.Password
	case FieldConfirmPassword:
		return f.ConfirmPassword
	default:
		return ""
	}
}

// Set stores a value into a field
func (f *Form) Set(field Field, value string) {
	switch field {
	case FieldUsername:
		f.Username = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	case FieldConfirmPassword:
		f.ConfirmPassword = value
	}
}
