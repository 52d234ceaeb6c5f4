package api

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zhassan-dev/resume-screener/internal/report"
	"github.com/zhassan-dev/resume-screener/services"
)

// maxUploadSize bounds a single request body (resumes are small documents).
const maxUploadSize = 32 << 20

// API holds dependencies for API handlers, primarily the screening pipeline.
type API struct {
	screener services.Screener
	log      *zap.Logger
}

// NewAPI creates a new API handler structure.
func NewAPI(screener services.Screener, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	return &API{screener: screener, log: log}
}

// SetupRoutes defines all the API routes for the resume screener.
func SetupRoutes(router *gin.Engine, screener services.Screener, log *zap.Logger) {
	apiHandler := NewAPI(screener, log)

	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxUploadSize))

	routes := router.Group("/api")
	{
		routes.GET("/health", apiHandler.HealthHandler)
		routes.POST("/upload", apiHandler.UploadHandler)            // Process a single resume
		routes.POST("/upload-batch", apiHandler.UploadBatchHandler) // Process many resumes at once
		routes.GET("/candidates", apiHandler.ListCandidatesHandler)
		routes.POST("/filter", apiHandler.FilterHandler) // Bulk reclassification
		routes.POST("/send-emails", apiHandler.SendEmailsHandler)
		routes.GET("/export-csv", apiHandler.ExportCSVHandler)
		routes.DELETE("/candidates/:id", apiHandler.DeleteCandidateHandler)
		routes.POST("/threshold", apiHandler.UpdateThresholdHandler)
	}
}

// HealthHandler reports liveness plus the current screening state.
func (api *API) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"threshold":  api.screener.Threshold(),
		"candidates": len(api.screener.Candidates()),
	})
}

// UploadHandler processes a single resume upload with an optional job
// description form field.
func (api *API) UploadHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "No file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Failed to open upload: "+err.Error())
		return
	}
	defer file.Close()

	jobDescription := c.PostForm("jobDescription")

	candidate, err := api.screener.Ingest(c.Request.Context(), services.Upload{
		Filename: fileHeader.Filename,
		Content:  file,
	}, jobDescription)
	if err != nil {
		SendPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "candidate": candidate})
}

// UploadBatchHandler processes multiple resumes at once. Individual file
// failures are skipped; the response reports processed vs skipped counts.
func (api *API) UploadBatchHandler(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Invalid multipart form: "+err.Error())
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "No files provided")
		return
	}

	jobDescription := c.Request.FormValue("jobDescription")

	uploads := make([]services.Upload, 0, len(fileHeaders))
	openFiles := make([]multipart.File, 0, len(fileHeaders))
	defer func() {
		for _, f := range openFiles {
			_ = f.Close()
		}
	}()

	for _, header := range fileHeaders {
		file, err := header.Open()
		if err != nil {
			SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, "Failed to open upload: "+err.Error())
			return
		}
		openFiles = append(openFiles, file)
		uploads = append(uploads, services.Upload{Filename: header.Filename, Content: file})
	}

	result := api.screener.IngestBatch(c.Request.Context(), uploads, jobDescription)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"processed":  result.Processed,
		"skipped":    result.Skipped,
		"candidates": result.Candidates,
	})
}

// ListCandidatesHandler returns all processed candidates in insertion order.
func (api *API) ListCandidatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"candidates": api.screener.Candidates()})
}

// FilterRequest is the bulk reclassification payload.
type FilterRequest struct {
	JobDescription string   `json:"jobDescription"`
	MinScore       *float64 `json:"minScore"`
}

// FilterHandler re-scores every stored candidate against a new job
// description and threshold.
func (api *API) FilterHandler(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	minScore := api.screener.Threshold()
	if req.MinScore != nil {
		minScore = *req.MinScore
	}

	candidates, err := api.screener.Reclassify(c.Request.Context(), req.JobDescription, minScore)
	if err != nil {
		SendPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "candidates": candidates})
}

// SendEmailsRequest selects which candidates get a decision email.
type SendEmailsRequest struct {
	SendTo string `json:"sendTo"`
}

// SendEmailsHandler runs a notification pass over stored candidates.
func (api *API) SendEmailsHandler(c *gin.Context) {
	var req SendEmailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if req.SendTo == "" {
		req.SendTo = string(services.NotifyAll)
	}

	result, err := api.screener.Notify(c.Request.Context(), services.NotifyFilter(req.SendTo))
	if err != nil {
		SendPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sent": result.Sent, "failed": result.Failed})
}

// ExportCSVHandler streams the candidates report as a CSV attachment.
func (api *API) ExportCSVHandler(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="candidates_report.csv"`)

	if err := report.WriteCSV(c.Writer, api.screener.Candidates()); err != nil {
		api.log.Error("csv export failed", zap.Error(err))
	}
}

// DeleteCandidateHandler removes a candidate by id. Deleting an absent id
// still succeeds.
func (api *API) DeleteCandidateHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "Invalid candidate id")
		return
	}

	api.screener.Remove(id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UpdateThresholdRequest carries the new default threshold.
type UpdateThresholdRequest struct {
	Threshold *float64 `json:"threshold"`
}

// UpdateThresholdHandler updates the default threshold for future uploads.
// Existing classifications are untouched until an explicit filter pass.
func (api *API) UpdateThresholdHandler(c *gin.Context) {
	var req UpdateThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if req.Threshold == nil {
		SendError(c, http.StatusBadRequest, ErrorCodeValidationFailed, "threshold is required")
		return
	}

	if err := api.screener.SetThreshold(*req.Threshold); err != nil {
		SendPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "threshold": api.screener.Threshold()})
}
