package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/somireddylaw/feedback-api/schema"
	"github.com/somireddylaw/feedback-api/store"
)

// getSettings returns the settings document the public form is rendered
// from. When no document exists yet the response carries empty option sets.
func (s *Server) getSettings(c *gin.Context) {
	settings, err := s.mongoStore.GetSettings()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// updateSettings replaces the settings document wholesale. Last write wins.
func (s *Server) updateSettings(c *gin.Context) {
	var params schema.Settings

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	settings, err := s.mongoStore.UpdateSettings(params)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (s *Server) listQuestions(c *gin.Context) {
	questions, err := s.mongoStore.ListQuestions()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (s *Server) addQuestion(c *gin.Context) {
	var params struct {
		Question string `json:"question" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	questions, err := s.mongoStore.AddQuestion(params.Question)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (s *Server) updateQuestion(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		Question string `json:"question" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	questions, err := s.mongoStore.UpdateQuestion(index, params.Question)
	if err != nil {
		switch err {
		case store.ErrQuestionNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRecordNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (s *Server) deleteQuestion(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	questions, err := s.mongoStore.DeleteQuestion(index)
	if err != nil {
		switch err {
		case store.ErrQuestionNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRecordNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (s *Server) replaceIndividuals(c *gin.Context) {
	var params struct {
		UpdatedList []schema.Individual `json:"updated_list"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.ReplaceIndividuals(params.UpdatedList); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) replaceServices(c *gin.Context) {
	var params struct {
		UpdatedList []string `json:"updated_list"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.ReplaceServices(params.UpdatedList); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
