// Package form holds the in-memory model of one in-progress feedback
// submission. Which fields are required is not fixed at build time: it depends
// on the client type and on the admin-configured settings snapshot the model
// was created from (selected employees times custom questions).
package form

import (
	"fmt"

	"github.com/somireddylaw/feedback-api/schema"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrRatingOutOfRange       = fmt.Errorf("rating out of range")
	ErrIndividualNotSelected  = fmt.Errorf("individual not selected")
	ErrUnknownRecommendOption = fmt.Errorf("unknown recommend option")
)

// Model is one form session. It is owned by exactly one client session and is
// never shared; a fresh instance is created on form load and after submission.
type Model struct {
	ClientType schema.ClientType

	Title     string
	Email     string
	FirstName string
	LastName  string

	CompanyName        string
	CompanyEmail       string
	CompanyPhoneNumber string

	OrganizationName string
	PhoneNumber      string

	Services    []string
	Individuals []string

	// ratings and feedbacks are keyed by individual; ratings is further keyed
	// by the question text. Entries exist only for currently selected
	// individuals.
	Ratings   map[string]map[string]int
	Feedbacks map[string]string

	Recommend           schema.Recommendation
	SubscribeNewsletter bool
	TermsAccepted       bool
}

// New builds a model pre-populated from the settings snapshot: the first title
// option becomes the default title and contact fields copy the admin-configured
// defaults. No services, individuals or ratings are selected yet.
func New(settings schema.Settings, clientType schema.ClientType) *Model {
	m := &Model{
		ClientType:         clientType,
		Email:              settings.ClientDefaults.Email,
		FirstName:          settings.ClientDefaults.FirstName,
		LastName:           settings.ClientDefaults.LastName,
		PhoneNumber:        settings.ClientDefaults.PhoneNumber,
		OrganizationName:   settings.ClientDefaults.OrganizationName,
		CompanyName:        settings.ClientDefaults.CompanyName,
		CompanyEmail:       settings.ClientDefaults.CompanyEmail,
		CompanyPhoneNumber: settings.ClientDefaults.CompanyPhoneNumber,
		Services:           []string{},
		Individuals:        []string{},
		Ratings:            map[string]map[string]int{},
		Feedbacks:          map[string]string{},
	}

	if len(settings.TitleOptions) > 0 {
		m.Title = settings.TitleOptions[0]
	}

	return m
}

// ToggleService adds the service if absent, removes it if present.
func (m *Model) ToggleService(name string) {
	for i, s := range m.Services {
		if s == name {
			m.Services = append(m.Services[:i], m.Services[i+1:]...)
			return
		}
	}
	m.Services = append(m.Services, name)
}

// ToggleIndividual adds the individual if absent, removes it if present.
// Removing an individual drops every rating and the feedback comment keyed by
// it, so re-adding the individual later starts with a clean slate.
func (m *Model) ToggleIndividual(name string) {
	for i, ind := range m.Individuals {
		if ind == name {
			m.Individuals = append(m.Individuals[:i], m.Individuals[i+1:]...)
			delete(m.Ratings, name)
			delete(m.Feedbacks, name)
			return
		}
	}
	m.Individuals = append(m.Individuals, name)
}

// SetRating records a score for one (individual, question) cell. Only that
// exact cell is written: other individuals and questions are untouched even
// when their names contain one another as substrings.
func (m *Model) SetRating(individual, question string, rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrRatingOutOfRange
	}
	if !m.selected(individual) {
		return ErrIndividualNotSelected
	}

	if m.Ratings[individual] == nil {
		m.Ratings[individual] = map[string]int{}
	}
	m.Ratings[individual][question] = rating
	return nil
}

// SetComment records the free-text feedback for one selected individual.
func (m *Model) SetComment(individual, text string) error {
	if !m.selected(individual) {
		return ErrIndividualNotSelected
	}
	m.Feedbacks[individual] = text
	return nil
}

func (m *Model) SetRecommend(r schema.Recommendation) error {
	switch r {
	case schema.RecommendYes, schema.RecommendNo, schema.RecommendMaybe:
		m.Recommend = r
		return nil
	}
	return ErrUnknownRecommendOption
}

func (m *Model) selected(individual string) bool {
	for _, ind := range m.Individuals {
		if ind == individual {
			return true
		}
	}
	return false
}

// Record normalizes the model into the document to be persisted. The identity
// email of a corporate submission is the company email; the two identity
// fields are never both set.
func (m *Model) Record() schema.Feedback {
	record := schema.Feedback{
		ClientType:          m.ClientType,
		Title:               m.Title,
		OrganizationName:    m.OrganizationName,
		PhoneNumber:         m.PhoneNumber,
		Services:            append([]string{}, m.Services...),
		Individuals:         append([]string{}, m.Individuals...),
		Ratings:             map[string]map[string]int{},
		Feedbacks:           map[string]string{},
		Recommend:           m.Recommend,
		SubscribeNewsletter: m.SubscribeNewsletter,
		TermsAccepted:       m.TermsAccepted,
	}

	if m.ClientType == schema.ClientTypeCorporate {
		record.Email = m.CompanyEmail
		record.CompanyName = m.CompanyName
		record.CompanyEmail = m.CompanyEmail
		record.CompanyPhoneNumber = m.CompanyPhoneNumber
	} else {
		record.Email = m.Email
		record.FirstName = m.FirstName
		record.LastName = m.LastName
	}

	for ind, byQuestion := range m.Ratings {
		scores := make(map[string]int, len(byQuestion))
		for q, r := range byQuestion {
			scores[q] = r
		}
		record.Ratings[ind] = scores
	}
	for ind, text := range m.Feedbacks {
		record.Feedbacks[ind] = text
	}

	return record
}
