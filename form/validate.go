package form

import "github.com/somireddylaw/feedback-api/schema"

// Errors maps a field path to its message. An empty map means the candidate
// is valid.
type Errors map[string]string

// Validate checks a candidate record against the required-field set derived
// from its client type and the given settings snapshot. It is a pure function:
// it has no side effects, and every run produces a complete, fresh error map,
// so it can be re-run after any mutation.
//
// Questions are resolved by value from the snapshot, never by list index, so a
// concurrent admin-side delete that reindexes the question list cannot make a
// stale session reference a shifted question.
func Validate(settings schema.Settings, candidate schema.Feedback) Errors {
	errs := Errors{}

	if candidate.ClientType == schema.ClientTypeCorporate {
		if candidate.CompanyEmail == "" {
			errs["company_email"] = "Company Email is required"
		}
		if candidate.CompanyName == "" {
			errs["company_name"] = "Company Name is required"
		}
		if candidate.CompanyPhoneNumber == "" {
			errs["company_phone_number"] = "Company Phone Number is required"
		}
	} else {
		if candidate.Email == "" {
			errs["email"] = "Email is required"
		}
		if candidate.Title == "" {
			errs["title"] = "Title is required"
		}
		if candidate.FirstName == "" {
			errs["first_name"] = "First Name is required"
		}
		if candidate.LastName == "" {
			errs["last_name"] = "Last Name is required"
		}
	}

	if candidate.PhoneNumber == "" {
		errs["phone_number"] = "Phone number is required"
	}
	if len(candidate.Services) == 0 {
		errs["services"] = "At least one service must be selected"
	}
	if len(candidate.Individuals) == 0 {
		errs["individuals"] = "At least one individual must be selected"
	}

	switch candidate.Recommend {
	case schema.RecommendYes, schema.RecommendNo, schema.RecommendMaybe:
	default:
		errs["recommend"] = "Recommendation is required"
	}

	if !candidate.TermsAccepted {
		errs["terms_accepted"] = "You must accept the terms and conditions"
	}

	// One distinct error per missing (individual, question) pair, not a
	// single aggregate error.
	for _, ind := range candidate.Individuals {
		for _, q := range settings.FeedbackQuestions {
			rating, ok := candidate.Ratings[ind][q]
			if !ok || rating < MinRating || rating > MaxRating {
				errs["ratings."+ind+"."+q] = `Response for "` + q + `" under ` + ind + ` is required`
			}
		}

		if candidate.Feedbacks[ind] == "" {
			errs["feedbacks."+ind] = "Feedback for " + ind + " is required"
		}
	}

	return errs
}

// Validate runs Validate against the model's normalized record.
func (m *Model) Validate(settings schema.Settings) Errors {
	return Validate(settings, m.Record())
}
