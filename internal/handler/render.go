package handler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ersbot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

const (
	cardTitle       = "👤 Create Account"
	cardSubtitle    = "Sign up to access the Emergency Response System"
	submittingLabel = "⏳ Signing up…"
	emptyValue      = "—"
)

// roleButtonText marks the selected role; exactly one role is selected
func roleButtonText(role, selected domain.Role) string {
	if role == selected {
		return "● " + role.Title()
	}
	return "○ " + role.Title()
}

// submitLabel is the text of the submit control
func submitLabel(sub domain.Submission, role domain.Role) string {
	if sub.Submitting() {
		return submittingLabel
	}
	return "Sign Up as " + role.Title()
}

// bannerText renders the error or success banner, empty when neither is set
func bannerText(sub domain.Submission) string {
	switch {
	case sub.ErrorMessage != "":
		return "⚠️ Error\n" + sub.ErrorMessage
	case sub.SuccessMessage != "":
		return "✅ Success\n" + sub.SuccessMessage
	default:
		return ""
	}
}

func fieldValue(form domain.Form, field domain.Field) string {
	value := form.Value(field)
	if value == "" {
		return emptyValue
	}
	if field.Secret() {
		return strings.Repeat("•", utf8.RuneCountInString(value))
	}
	return value
}

func promptText(field domain.Field) string {
	switch field {
	case domain.FieldNone:
		return ""
	case domain.FieldEmail:
		return "✏️ Send your email address"
	case domain.FieldConfirmPassword:
		return "✏️ Send your password again to confirm it"
	default:
		return "✏️ Send your " + strings.ToLower(field.Label())
	}
}

// cardText renders the form message
func cardText(s domain.Session) string {
	var b strings.Builder

	b.WriteString(cardTitle + "\n")
	b.WriteString(cardSubtitle + "\n\n")
	fmt.Fprintf(&b, "Role: %s\n", s.Form.UserType.Title())
	for _, field := range domain.Fields() {
		fmt.Fprintf(&b, "%s: %s\n", field.Label(), fieldValue(s.Form, field))
	}

	if banner := bannerText(s.Submission); banner != "" {
		b.WriteString("\n" + banner + "\n")
	}
	if prompt := promptText(s.Awaiting); prompt != "" {
		b.WriteString("\n" + prompt + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// cardMarkup renders the role toggles, field buttons, submit control and login link
func cardMarkup(s domain.Session) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	roles := domain.Roles()
	roleBtn := func(r domain.Role) tele.Btn {
		return markup.Data(roleButtonText(r, s.Form.UserType), btnRole.Unique, string(r))
	}
	fieldBtn := func(f domain.Field) tele.Btn {
		text := f.Label()
		if f == s.Awaiting {
			text = "✏️ " + text
		}
		return markup.Data(text, btnField.Unique, string(f))
	}

	markup.Inline(
		markup.Row(roleBtn(roles[0]), roleBtn(roles[1])),
		markup.Row(roleBtn(roles[2]), roleBtn(roles[3])),
		markup.Row(fieldBtn(domain.FieldUsername), fieldBtn(domain.FieldEmail)),
		markup.Row(fieldBtn(domain.FieldPassword), fieldBtn(domain.FieldConfirmPassword)),
		markup.Row(markup.Data(submitLabel(s.Submission, s.Form.UserType), btnSubmit.Unique)),
		markup.Row(markup.Data(btnLogin.Text, btnLogin.Unique)),
	)
	return markup
}

// loginScreen renders the message shown when the user is sent to login
func loginScreen(loginURL string) (string, *tele.ReplyMarkup) {
	text := "🔐 Log in\n\nUse your username and password to log in to the Emergency Response System."
	if loginURL == "" {
		return text, nil
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.URL("Open login page", loginURL)))
	return text, markup
}

// statusText describes the registration linked to a Telegram account
func statusText(u *domain.User) string {
	if u == nil || !u.Registered() {
		return "No account has been registered from this Telegram account yet.\n\nSend /start to sign up."
	}
	return fmt.Sprintf(
		"✅ Registered as %s (%s) on %s.\n\nSend /login to log in.",
		u.RegisteredUsername,
		u.UserType.Title(),
		u.RegisteredAt.Format("2 Jan 2006"),
	)
}
