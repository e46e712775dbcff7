package schema

import "time"

const (
	SettingsCollection = "settings"

	// SettingsDocID is the fixed _id of the singleton settings document.
	SettingsDocID = "settings"
)

// Individual is an employee eligible for selection on the feedback form.
type Individual struct {
	Name        string `json:"name" bson:"name"`
	Designation string `json:"designation" bson:"designation"`
}

// ClientDefaults are the contact values the public form is pre-filled with.
type ClientDefaults struct {
	Email              string `json:"email" bson:"email"`
	FirstName          string `json:"first_name" bson:"first_name"`
	LastName           string `json:"last_name" bson:"last_name"`
	PhoneNumber        string `json:"phone_number" bson:"phone_number"`
	OrganizationName   string `json:"organization_name" bson:"organization_name"`
	CompanyName        string `json:"company_name" bson:"company_name"`
	CompanyEmail       string `json:"company_email" bson:"company_email"`
	CompanyPhoneNumber string `json:"company_phone_number" bson:"company_phone_number"`
}

// Settings is the one admin-managed configuration document that drives the
// public feedback form. At most one document exists; its absence is valid and
// renders the form with empty option sets.
type Settings struct {
	ID             string         `json:"-" bson:"_id,omitempty"`
	ClientDefaults ClientDefaults `json:"client_defaults" bson:"client_defaults"`

	// FeedbackQuestions keeps insertion order: it defines both display order
	// and the rating keys of a submission.
	FeedbackQuestions []string `json:"feedback_questions" bson:"feedback_questions"`

	// First element of each option list is the default selection.
	TitleOptions      []string `json:"title_options" bson:"title_options"`
	NewsletterOptions []string `json:"newsletter_options" bson:"newsletter_options"`

	IndividualsList []Individual `json:"individuals_list" bson:"individuals_list"`
	ServicesList    []string     `json:"services_list" bson:"services_list"`

	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
