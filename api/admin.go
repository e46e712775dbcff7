package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somireddylaw/feedback-api/store"
)

// adminLogin verifies the administrator credentials and issues a bearer token.
func (s *Server) adminLogin(c *gin.Context) {
	var params struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.VerifyAdminCredentials(params.Email, params.Password); err != nil {
		switch err {
		case store.ErrInvalidCredentials:
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	token, err := s.issueAdminToken(params.Email)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// changeAdminPassword rotates the password of the authenticated administrator.
func (s *Server) changeAdminPassword(c *gin.Context) {
	email := c.GetString("requester")

	var params struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.UpdateAdminPassword(email, params.CurrentPassword, params.NewPassword); err != nil {
		switch err {
		case store.ErrInvalidCredentials:
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
		case store.ErrAdminAccountNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorRecordNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
