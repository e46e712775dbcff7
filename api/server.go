package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somireddylaw/feedback-api/external/mailer"
	"github.com/somireddylaw/feedback-api/store"
)

// Server is the API server of the feedback service.
type Server struct {
	router *gin.Engine

	mongoStore store.MongoStore
	notifier   mailer.Notifier

	jwtSecret  []byte
	adminEmail string

	traceMode bool
}

func NewServer(
	mongoStore store.MongoStore,
	notifier mailer.Notifier,
	jwtSecret []byte,
	adminEmail string,
	traceMode bool,
) *Server {
	r := gin.New()

	return &Server{
		router:     r,
		mongoStore: mongoStore,
		notifier:   notifier,
		jwtSecret:  jwtSecret,
		adminEmail: adminEmail,
		traceMode:  traceMode,
	}
}

func (s *Server) Run(addr string) error {
	s.setupRouter()
	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	return srv.ListenAndServe()
}

func (s *Server) setupRouter() {
	r := s.router
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(s.DumpRequest)

	r.GET("/healthz", s.healthz)

	r.GET("/settings", s.getSettings)
	r.POST("/feedback", s.createFeedback)
	r.POST("/feedback/notify-open", s.notifyFormOpened)
	r.POST("/admin/login", s.adminLogin)

	admin := r.Group("/", s.authorized())
	{
		admin.POST("/settings", s.updateSettings)
		admin.GET("/settings/questions", s.listQuestions)
		admin.POST("/settings/questions", s.addQuestion)
		admin.PUT("/settings/questions/:index", s.updateQuestion)
		admin.DELETE("/settings/questions/:index", s.deleteQuestion)
		admin.POST("/settings/individuals", s.replaceIndividuals)
		admin.POST("/settings/services", s.replaceServices)

		admin.GET("/feedback", s.listFeedback)
		admin.GET("/feedback/suggestions", s.feedbackSuggestions)
		admin.GET("/feedback/date-range", s.feedbackByDateRange)
		admin.GET("/feedback/stats", s.feedbackStats)
		admin.PUT("/feedback/:id", s.updateFeedback)
		admin.DELETE("/feedback/:id", s.deleteFeedback)

		admin.POST("/admin/change-password", s.changeAdminPassword)
	}
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
