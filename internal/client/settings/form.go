package settings

import "errors"

// Form field names accepted by SetField.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldCurrentPassword = "currentPassword"
	FieldNewPassword     = "newPassword"
	FieldConfirmPassword = "confirmPassword"
)

var (
	ErrFieldReadOnly = errors.New("field is read-only")
	ErrUnknownField  = errors.New("unknown field")
)

// FormState is the flat form backing the screen. Email is display only.
type FormState struct {
	FirstName       string
	LastName        string
	Email           string
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// State is what observers receive after every mutation.
type State struct {
	Form               FormState
	ProfileBusy        bool
	PasswordBusy       bool
	EmailNotifications bool
}

func formFromIdentity(id *Identity) FormState {
	if id == nil {
		return FormState{}
	}
	return FormState{FirstName: id.FirstName, LastName: id.LastName, Email: id.Email}
}

func (f *FormState) field(name string) (*string, error) {
	switch name {
	case FieldFirstName:
		return &f.FirstName, nil
	case FieldLastName:
		return &f.LastName, nil
	case FieldCurrentPassword:
		return &f.CurrentPassword, nil
	case FieldNewPassword:
		return &f.NewPassword, nil
	case FieldConfirmPassword:
		return &f.ConfirmPassword, nil
	case FieldEmail:
		return nil, ErrFieldReadOnly
	default:
		return nil, ErrUnknownField
	}
}

func (f *FormState) clearPasswords() {
	f.CurrentPassword = ""
	f.NewPassword = ""
	f.ConfirmPassword = ""
}
