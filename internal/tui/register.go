package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/mentem-portal/internal/service"
	"github.com/MKhiriev/mentem-portal/internal/validators"
	"github.com/MKhiriev/mentem-portal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Text inputs of the signup form, in tab order.
const (
	fieldFirstName = iota
	fieldLastName
	fieldEmail
	fieldPassword
	fieldRepeat
	fieldDOB
	fieldZip
	fieldInsurance
	fieldEmergencyName
	fieldEmergencyPhone
	textFieldCount
)

var registerLabels = [textFieldCount]string{
	fieldFirstName:      "First name",
	fieldLastName:       "Last name",
	fieldEmail:          "Email",
	fieldPassword:       "Password",
	fieldRepeat:         "Repeat password",
	fieldDOB:            "Date of birth",
	fieldZip:            "Zip code",
	fieldInsurance:      "Insurance company",
	fieldEmergencyName:  "Emergency contact name",
	fieldEmergencyPhone: "Emergency phone",
}

// choiceField is a fixed set of options cycled with left and right.
type choiceField struct {
	label   string
	options []string
	idx     int
}

func (c choiceField) value() string {
	return c.options[c.idx]
}

func (c *choiceField) move(delta int) {
	c.idx = (c.idx + delta + len(c.options)) % len(c.options)
}

// RegisterModel is the Bubble Tea model for the signup screen. The text
// inputs come first in tab order, followed by the gender and service
// preference choices. On success a [RegisterSuccessNotice] is sent to the
// menu and the form is cleared; signing up does not log in.
type RegisterModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	validator validators.Validator

	inputs     []textinput.Model
	choices    []choiceField
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	inputs := make([]textinput.Model, textFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = strings.ToLower(registerLabels[i])
		inputs[i].Width = 40
	}
	inputs[fieldEmail].CharLimit = 254
	inputs[fieldDOB].Placeholder = "yyyy-mm-dd"
	inputs[fieldEmergencyPhone].Placeholder = "+15551234567"
	for _, i := range []int{fieldPassword, fieldRepeat} {
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
		inputs[i].CharLimit = 256
	}
	inputs[0].Focus()

	return &RegisterModel{
		ctx:       ctx,
		auth:      auth,
		validator: validators.NewPortalValidator(),
		inputs:    inputs,
		choices: []choiceField{
			{label: "Gender", options: []string{"male", "female", "other"}},
			{label: "Service preference", options: []string{"online", "in-person"}},
		},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult]: clears the submitting state; on error, populates
//     errMsg; on success, resets the form and navigates to the menu.
//   - esc: cancels and navigates back to the menu.
//   - tab / shift+tab: move focus across inputs and choices.
//   - left / right: change the focused choice.
//   - enter: validates the form and dispatches the async signup command.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageMenu,
				Payload: RegisterSuccessNotice{Email: result.Email},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "left", "right":
			if c := m.focusedChoice(); c != nil {
				if keyMsg.String() == "left" {
					c.move(-1)
				} else {
					c.move(1)
				}
				return m, nil
			}
		case "enter":
			if m.submitting {
				return m, nil
			}

			req, problem := m.request()
			if problem != "" {
				m.errMsg = problem
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field                   │ Value\n")
	b.WriteString("────────────────────────┼────────────────────────────────────\n")
	for i, input := range m.inputs {
		label := registerLabels[i]
		if requiredFields[i] {
			label += " *"
		}
		b.WriteString(fmt.Sprintf("%-23s │ [", label))
		b.WriteString(input.View())
		b.WriteString("]\n")
	}
	for i, c := range m.choices {
		cursor := " "
		if m.focus == len(m.inputs)+i {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%-23s │%s< %s >\n", c.label, cursor, c.value()))
	}

	if m.submitting {
		b.WriteString("\n[Sign up...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error:"))
		b.WriteString(" ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ←/→: change choice │ enter: submit")
}

// requiredFields are the inputs the portal refuses to sign up without.
var requiredFields = map[int]bool{
	fieldFirstName: true,
	fieldEmail:     true,
	fieldPassword:  true,
	fieldRepeat:    true,
	fieldDOB:       true,
	fieldZip:       true,
}

// request builds the signup body or explains what is wrong with the form.
func (m *RegisterModel) request() (models.SignupRequest, string) {
	values := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		values[i] = strings.TrimSpace(input.Value())
		if i == fieldPassword || i == fieldRepeat {
			values[i] = input.Value()
		}
		if values[i] == "" && requiredFields[i] {
			return models.SignupRequest{}, registerLabels[i] + " is required"
		}
	}
	if values[fieldPassword] != values[fieldRepeat] {
		return models.SignupRequest{}, "Passwords do not match"
	}

	req := models.SignupRequest{
		FirstName:         values[fieldFirstName],
		LastName:          values[fieldLastName],
		Email:             values[fieldEmail],
		Password:          values[fieldPassword],
		Gender:            m.choices[0].value(),
		DOB:               values[fieldDOB],
		ZipCode:           values[fieldZip],
		InsuranceCompany:  values[fieldInsurance],
		ServicePreference: m.choices[1].value(),
		EmergencyName:     values[fieldEmergencyName],
		EmergencyPhone:    values[fieldEmergencyPhone],
	}
	if err := m.validator.Validate(m.ctx, req); err != nil {
		return models.SignupRequest{}, signupErrorText(err)
	}

	return req, ""
}

func (m *RegisterModel) cmdRegister(req models.SignupRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		_, err := auth.Signup(ctx, req)
		return RegisterResult{Email: req.Email, Err: err}
	}
}

func (m *RegisterModel) focusedChoice() *choiceField {
	i := m.focus - len(m.inputs)
	if i < 0 || i >= len(m.choices) {
		return nil
	}
	return &m.choices[i]
}

func (m *RegisterModel) setFocus(next int) {
	total := len(m.inputs) + len(m.choices)
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (next + total) % total
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	for i := range m.choices {
		m.choices[i].idx = 0
	}
	m.setFocus(0)
}

func signupErrorText(err error) string {
	switch {
	case errors.Is(err, validators.ErrInvalidEmail):
		return "Invalid email address"
	case errors.Is(err, validators.ErrPasswordTooShort):
		return fmt.Sprintf("Password must be at least %d characters", validators.MinSignupPasswordLength)
	case errors.Is(err, validators.ErrInvalidEmergencyPhone):
		return "Invalid phone number"
	}
	return err.Error()
}
