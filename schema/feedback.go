package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FeedbackCollection = "feedback"
)

type ClientType string

const (
	ClientTypeIndividual ClientType = "Individual"
	ClientTypeCorporate  ClientType = "Corporate"
)

type Recommendation string

const (
	RecommendYes   Recommendation = "Yes"
	RecommendNo    Recommendation = "No"
	RecommendMaybe Recommendation = "Maybe"
)

// Feedback is a single client submission. The email field is the unique
// identity of a record: for corporate clients it holds the company email.
type Feedback struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientType ClientType         `json:"client_type" bson:"client_type"`

	Email     string `json:"email" bson:"email"`
	Title     string `json:"title" bson:"title"`
	FirstName string `json:"first_name" bson:"first_name"`
	LastName  string `json:"last_name" bson:"last_name"`

	CompanyName        string `json:"company_name" bson:"company_name"`
	CompanyEmail       string `json:"company_email" bson:"company_email"`
	CompanyPhoneNumber string `json:"company_phone_number" bson:"company_phone_number"`

	OrganizationName string `json:"organization_name" bson:"organization_name"`
	PhoneNumber      string `json:"phone_number" bson:"phone_number"`

	Services    []string `json:"services" bson:"services"`
	Individuals []string `json:"individuals" bson:"individuals"`

	// Ratings maps individual -> question -> score (1 to 5). Questions are
	// keyed by their full text so reordering the admin question list never
	// shifts a stored response.
	Ratings   map[string]map[string]int `json:"ratings" bson:"ratings"`
	Feedbacks map[string]string         `json:"feedbacks" bson:"feedbacks"`

	Recommend           Recommendation `json:"recommend" bson:"recommend"`
	SubscribeNewsletter bool           `json:"subscribe_newsletter" bson:"subscribe_newsletter"`
	TermsAccepted       bool           `json:"terms_accepted" bson:"terms_accepted"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// DisplayName returns the name shown on the admin dashboard for a record.
func (f Feedback) DisplayName() string {
	if f.ClientType == ClientTypeCorporate {
		return f.CompanyName
	}
	if f.FirstName == "" {
		return f.LastName
	}
	if f.LastName == "" {
		return f.FirstName
	}
	return f.FirstName + " " + f.LastName
}

// IndividualRatingStat is the aggregated dashboard view of how one employee
// has been rated across all submissions.
type IndividualRatingStat struct {
	Individual    string  `json:"individual" bson:"_id"`
	Submissions   int     `json:"submissions" bson:"submissions"`
	AverageRating float64 `json:"average_rating" bson:"average_rating"`
}
