package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/somireddylaw/feedback-api/external/mailer"
	"github.com/somireddylaw/feedback-api/form"
	"github.com/somireddylaw/feedback-api/schema"
	"github.com/somireddylaw/feedback-api/store"
)

// notificationTimeout bounds the post-submission email dispatch. There is no
// background task queue: the emails are sent before the handler returns, but a
// slow SMTP server must not hang the request.
const notificationTimeout = 5 * time.Second

// createFeedback accepts a normalized submission, re-validates it against the
// current settings snapshot, persists it and dispatches the advisory emails.
func (s *Server) createFeedback(c *gin.Context) {
	var params schema.Feedback

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.ClientType == "" {
		params.ClientType = schema.ClientTypeIndividual
	}
	// corporate submissions identify themselves by the company email
	if params.ClientType == schema.ClientTypeCorporate {
		params.Email = params.CompanyEmail
	}

	settings, err := s.mongoStore.GetSettings()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if errs := form.Validate(settings, params); len(errs) > 0 {
		abortWithValidationErrors(c, http.StatusBadRequest, errorValidationFailed, errs)
		return
	}

	id, err := s.mongoStore.CreateFeedback(params)
	if err != nil {
		switch err {
		case store.ErrDuplicateSubmission:
			abortWithEncoding(c, http.StatusConflict, errorDuplicateSubmission)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	stored, err := s.mongoStore.GetFeedbackByEmail(params.Email)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	// the record is already durable; notification failures are advisory only
	dispatchNotifications(c.Request.Context(), s.notifier, *stored)

	c.JSON(http.StatusCreated, gin.H{
		"id":       id,
		"feedback": stored,
	})
}

// dispatchNotifications sends the submitter confirmation and the admin alert.
// The two sends are independent: a failure of one never suppresses the other,
// and neither failure is surfaced to the submitting client.
func dispatchNotifications(ctx context.Context, notifier mailer.Notifier, record schema.Feedback) {
	ctx, cancel := context.WithTimeout(ctx, notificationTimeout)
	defer cancel()

	if err := notifier.SendSubmitterConfirmation(ctx, record); err != nil {
		log.WithField("email", record.Email).WithError(err).Error("fail to send submitter confirmation")
	}
	if err := notifier.SendAdminAlert(ctx, record); err != nil {
		log.WithField("email", record.Email).WithError(err).Error("fail to send admin alert")
	}
}

// notifyFormOpened emails the administrator that a client opened the form.
func (s *Server) notifyFormOpened(c *gin.Context) {
	var params struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		FormURL   string `json:"form_url" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), notificationTimeout)
	defer cancel()

	name := params.FirstName + " " + params.LastName
	if err := s.notifier.SendFormOpenedAlert(ctx, name, params.FormURL); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// listFeedback returns all records, or those matching exactly one of the
// supported filters.
func (s *Server) listFeedback(c *gin.Context) {
	var params struct {
		Email            string `form:"email"`
		Name             string `form:"name"`
		OrganizationName string `form:"organizationName"`
	}

	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	switch {
	case params.Email != "":
		feedback, err := s.mongoStore.GetFeedbackByEmail(params.Email)
		if err != nil {
			if err == store.ErrFeedbackNotFound {
				abortWithEncoding(c, http.StatusNotFound, errorRecordNotFound)
				return
			}
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"feedbacks": []schema.Feedback{*feedback}})

	case params.Name != "":
		feedbacks, err := s.mongoStore.SearchFeedbackByName(params.Name)
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"feedbacks": feedbacks})

	case params.OrganizationName != "":
		feedbacks, err := s.mongoStore.SearchFeedbackByOrganization(params.OrganizationName)
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"feedbacks": feedbacks})

	default:
		feedbacks, err := s.mongoStore.ListFeedback()
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"feedbacks": feedbacks})
	}
}

// feedbackSuggestions returns partial-match values for admin search
// autocompletion. Exactly one filter parameter is consulted.
func (s *Server) feedbackSuggestions(c *gin.Context) {
	var params struct {
		Email            string `form:"email"`
		Name             string `form:"name"`
		OrganizationName string `form:"organizationName"`
	}

	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var field, term string
	switch {
	case params.Email != "":
		field, term = "email", params.Email
	case params.Name != "":
		field, term = "name", params.Name
	case params.OrganizationName != "":
		field, term = "organization_name", params.OrganizationName
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	suggestions, err := s.mongoStore.SearchFieldSuggestions(field, term)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (s *Server) feedbackByDateRange(c *gin.Context) {
	var params struct {
		StartDate string `form:"startDate" binding:"required"`
		EndDate   string `form:"endDate" binding:"required"`
	}

	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	start, err := time.Parse("2006-01-02", params.StartDate)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	end, err := time.Parse("2006-01-02", params.EndDate)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if end.Before(start) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	feedbacks, err := s.mongoStore.ListFeedbackByDateRange(start, end)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedbacks": feedbacks})
}

func (s *Server) feedbackStats(c *gin.Context) {
	stats, err := s.mongoStore.GetIndividualRatingStats()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (s *Server) updateFeedback(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params schema.Feedback
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	feedback, err := s.mongoStore.UpdateFeedback(id, params)
	if err != nil {
		switch err {
		case store.ErrFeedbackNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRecordNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": feedback})
}

func (s *Server) deleteFeedback(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.DeleteFeedback(id); err != nil {
		switch err {
		case store.ErrFeedbackNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRecordNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
