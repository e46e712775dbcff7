package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/somireddylaw/feedback-api/schema"
)

var testSettings = schema.Settings{
	ClientDefaults: schema.ClientDefaults{
		OrganizationName: "Somireddy Law Group PLLC",
		PhoneNumber:      "555-0100",
	},
	FeedbackQuestions: []string{"Q1", "Q2"},
	TitleOptions:      []string{"Mr.", "Ms.", "Dr."},
	NewsletterOptions: []string{"Weekly", "Monthly"},
	IndividualsList: []schema.Individual{
		{Name: "Alice", Designation: "Attorney"},
		{Name: "Bob", Designation: "Paralegal"},
	},
	ServicesList: []string{"Immigration", "Corporate Law"},
}

func newCompleteModel(t *testing.T, clientType schema.ClientType) *Model {
	t.Helper()

	m := New(testSettings, clientType)
	m.Email = "client@example.com"
	m.FirstName = "Jane"
	m.LastName = "Doe"
	m.CompanyName = "Acme Inc."
	m.CompanyEmail = "legal@acme.example"
	m.CompanyPhoneNumber = "555-0111"
	m.PhoneNumber = "555-0122"
	m.TermsAccepted = true

	m.ToggleService("Immigration")
	m.ToggleIndividual("Alice")

	assert.NoError(t, m.SetRecommend(schema.RecommendYes))
	assert.NoError(t, m.SetRating("Alice", "Q1", 5))
	assert.NoError(t, m.SetRating("Alice", "Q2", 4))
	assert.NoError(t, m.SetComment("Alice", "Great communication."))

	return m
}

func TestNewModelDefaults(t *testing.T) {
	m := New(testSettings, schema.ClientTypeIndividual)

	assert.Equal(t, "Mr.", m.Title)
	assert.Equal(t, "Somireddy Law Group PLLC", m.OrganizationName)
	assert.Equal(t, "555-0100", m.PhoneNumber)
	assert.Empty(t, m.Services)
	assert.Empty(t, m.Individuals)
	assert.Empty(t, m.Ratings)
	assert.Empty(t, m.Feedbacks)
}

func TestNewModelWithoutTitleOptions(t *testing.T) {
	m := New(schema.Settings{}, schema.ClientTypeIndividual)
	assert.Empty(t, m.Title)
}

func TestValidateCompleteModel(t *testing.T) {
	m := newCompleteModel(t, schema.ClientTypeIndividual)
	assert.Empty(t, m.Validate(testSettings))
}

func TestValidateRequiresFirstNameForIndividuals(t *testing.T) {
	m := newCompleteModel(t, schema.ClientTypeIndividual)
	m.FirstName = ""

	errs := m.Validate(testSettings)
	assert.Contains(t, errs, "first_name")
}

func TestValidateCorporateDoesNotRequireFirstName(t *testing.T) {
	m := newCompleteModel(t, schema.ClientTypeCorporate)
	m.FirstName = ""

	errs := m.Validate(testSettings)
	assert.Empty(t, errs)
}

func TestValidateCorporateRequiredFields(t *testing.T) {
	m := newCompleteModel(t, schema.ClientTypeCorporate)
	m.CompanyName = ""
	m.CompanyEmail = ""
	m.CompanyPhoneNumber = ""

	errs := m.Validate(testSettings)
	assert.Contains(t, errs, "company_name")
	assert.Contains(t, errs, "company_email")
	assert.Contains(t, errs, "company_phone_number")
	assert.NotContains(t, errs, "first_name")
	assert.NotContains(t, errs, "last_name")
}

func TestValidateMissingRatingsAreDistinctErrors(t *testing.T) {
	m := newCompleteModel(t, schema.ClientTypeIndividual)
	m.ToggleIndividual("Bob")

	// Alice keeps her ratings and comment; Bob has neither.
	delete(m.Ratings, "Alice")

	errs := m.Validate(testSettings)

	var ratingErrors []string
	for field := range errs {
		if strings.HasPrefix(field, "ratings.") {
			ratingErrors = append(ratingErrors, field)
		}
	}

	// 2 individuals x 2 questions, none rated
	assert.Len(t, ratingErrors, 4)
	assert.Contains(t, errs, "ratings.Alice.Q1")
	assert.Contains(t, errs, "ratings.Alice.Q2")
	assert.Contains(t, errs, "ratings.Bob.Q1")
	assert.Contains(t, errs, "ratings.Bob.Q2")
	assert.Contains(t, errs, "feedbacks.Bob")
}

func TestValidateErrorsAreReplacedBetweenRuns(t *testing.T) {
	m := newCompleteModel(t, schema.ClientTypeIndividual)
	m.PhoneNumber = ""

	errs := m.Validate(testSettings)
	assert.Contains(t, errs, "phone_number")

	m.PhoneNumber = "555-0122"
	errs = m.Validate(testSettings)
	assert.NotContains(t, errs, "phone_number")
	assert.Empty(t, errs)
}

func TestValidateRecommendOptions(t *testing.T) {
	m := newCompleteModel(t, schema.ClientTypeIndividual)

	m.Recommend = ""
	assert.Contains(t, m.Validate(testSettings), "recommend")

	m.Recommend = schema.Recommendation("Absolutely")
	assert.Contains(t, m.Validate(testSettings), "recommend")

	m.Recommend = schema.RecommendMaybe
	assert.NotContains(t, m.Validate(testSettings), "recommend")
}

func TestToggleIndividualPurgesResponses(t *testing.T) {
	m := newCompleteModel(t, schema.ClientTypeIndividual)

	m.ToggleIndividual("Alice")

	assert.NotContains(t, m.Individuals, "Alice")
	assert.NotContains(t, m.Ratings, "Alice")
	assert.NotContains(t, m.Feedbacks, "Alice")

	// re-adding starts clean, prior values do not resurrect
	m.ToggleIndividual("Alice")
	assert.Contains(t, m.Individuals, "Alice")
	assert.Empty(t, m.Ratings["Alice"])
	assert.Empty(t, m.Feedbacks["Alice"])
}

func TestToggleServiceAddsAndRemoves(t *testing.T) {
	m := New(testSettings, schema.ClientTypeIndividual)

	m.ToggleService("Immigration")
	assert.Equal(t, []string{"Immigration"}, m.Services)

	m.ToggleService("Immigration")
	assert.Empty(t, m.Services)
}

func TestSetRatingBounds(t *testing.T) {
	m := newCompleteModel(t, schema.ClientTypeIndividual)

	assert.Equal(t, ErrRatingOutOfRange, m.SetRating("Alice", "Q1", 0))
	assert.Equal(t, ErrRatingOutOfRange, m.SetRating("Alice", "Q1", 6))
	assert.Equal(t, ErrIndividualNotSelected, m.SetRating("Bob", "Q1", 3))
	assert.NoError(t, m.SetRating("Alice", "Q1", 1))
}

func TestSetRatingTouchesExactCellOnly(t *testing.T) {
	settings := testSettings
	settings.FeedbackQuestions = []string{"Q1", "Q1-extended"}

	m := New(settings, schema.ClientTypeIndividual)
	m.ToggleIndividual("Alice")
	m.ToggleIndividual("Alice-Marie")

	assert.NoError(t, m.SetRating("Alice", "Q1-extended", 2))
	assert.NoError(t, m.SetRating("Alice-Marie", "Q1", 5))

	// names containing the other as a prefix must not collide
	assert.Equal(t, map[string]int{"Q1-extended": 2}, m.Ratings["Alice"])
	assert.Equal(t, map[string]int{"Q1": 5}, m.Ratings["Alice-Marie"])
}

func TestRecordNormalization(t *testing.T) {
	m := newCompleteModel(t, schema.ClientTypeCorporate)
	record := m.Record()

	assert.Equal(t, "legal@acme.example", record.Email)
	assert.Equal(t, "legal@acme.example", record.CompanyEmail)
	assert.Empty(t, record.FirstName)
	assert.Empty(t, record.LastName)

	m = newCompleteModel(t, schema.ClientTypeIndividual)
	record = m.Record()

	assert.Equal(t, "client@example.com", record.Email)
	assert.Empty(t, record.CompanyEmail)
	assert.Equal(t, "Jane", record.FirstName)
	assert.Equal(t, 5, record.Ratings["Alice"]["Q1"])
	assert.Equal(t, "Great communication.", record.Feedbacks["Alice"])
}

func TestRecordCopiesAreIndependent(t *testing.T) {
	m := newCompleteModel(t, schema.ClientTypeIndividual)
	record := m.Record()

	record.Ratings["Alice"]["Q1"] = 1
	record.Services[0] = "changed"

	assert.Equal(t, 5, m.Ratings["Alice"]["Q1"])
	assert.Equal(t, "Immigration", m.Services[0])
}
