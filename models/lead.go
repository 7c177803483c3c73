package models

import (
	"encoding/json"
	"errors"
	"strings"
)

// LeadField identifies one input of the contact form
type LeadField string

const (
	LeadFieldName  LeadField = "name"
	LeadFieldPhone LeadField = "phone"
	LeadFieldEmail LeadField = "email"
)

// LeadFields lists the contact form inputs in display order
var LeadFields = []LeadField{LeadFieldName, LeadFieldPhone, LeadFieldEmail}

var ErrUnknownLeadField = errors.New("unknown lead field")

// ParseLeadField maps a form input name to a LeadField
func ParseLeadField(s string) (LeadField, error) {
	switch LeadField(strings.ToLower(strings.TrimSpace(s))) {
	case LeadFieldName:
		return LeadFieldName, nil
	case LeadFieldPhone:
		return LeadFieldPhone, nil
	case LeadFieldEmail:
		return LeadFieldEmail, nil
	}
	return "", ErrUnknownLeadField
}

// LeadSubmission is the visitor's contact request as sent to the lead endpoint.
// Its JSON form is the flat object {"name","phone","email"}.
type LeadSubmission struct {
	Name  string `json:"name" form:"name"`
	Phone string `json:"phone" form:"phone"`
	Email string `json:"email" form:"email"`
}

// Get returns the value of one field
func (l LeadSubmission) Get(field LeadField) string {
	switch field {
	case LeadFieldName:
		return l.Name
	case LeadFieldPhone:
		return l.Phone
	case LeadFieldEmail:
		return l.Email
	}
	return ""
}

// Set replaces the value of one field. Any string is accepted, including empty.
func (l *LeadSubmission) Set(field LeadField, value string) error {
	switch field {
	case LeadFieldName:
		l.Name = value
	case LeadFieldPhone:
		l.Phone = value
	case LeadFieldEmail:
		l.Email = value
	default:
		return ErrUnknownLeadField
	}
	return nil
}

// Complete reports whether every field is non-empty
func (l LeadSubmission) Complete() bool {
	return l.Name != "" && l.Phone != "" && l.Email != ""
}

// IsEmpty reports whether every field is empty
func (l LeadSubmission) IsEmpty() bool {
	return l.Name == "" && l.Phone == "" && l.Email == ""
}

// Truthy is a JSON flag read the way a browser script tests it: false, 0, ""
// and null are false, every other value is true.
type Truthy bool

func (t *Truthy) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*t = false
	case bool:
		*t = Truthy(x)
	case float64:
		*t = x != 0
	case string:
		*t = x != ""
	default:
		*t = true
	}
	return nil
}

// LeadResponse is the JSON reply of the lead endpoint
type LeadResponse struct {
	Success   Truthy `json:"success"`
	Error     string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
	LeadID    *int64 `json:"lead_id,omitempty"`
	EmailSent bool   `json:"email_sent,omitempty"`
}
