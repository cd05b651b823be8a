package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"groupform-server-go/db"
	"groupform-server-go/export"
	"groupform-server-go/grouping"
	"groupform-server-go/models"
	"groupform-server-go/pipeline"
)

// APIHandler holds the dependencies for API handlers
type APIHandler struct {
	Store            db.RosterStore
	Service          *pipeline.Service
	DefaultGroupSize int
	logger           *zap.Logger
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(store db.RosterStore, service *pipeline.Service, defaultGroupSize int, logger *zap.Logger) *APIHandler {
	if defaultGroupSize <= 0 {
		defaultGroupSize = grouping.DefaultGroupSize
	}
	return &APIHandler{
		Store:            store,
		Service:          service,
		DefaultGroupSize: defaultGroupSize,
		logger:           logger,
	}
}

// GroupsResponse is the JSON body for a grouping run.
type GroupsResponse struct {
	GroupSize       int                 `json:"groupSize"`
	Groups          []models.GroupTable `json:"groups"`
	Stats           []models.GroupStats `json:"stats"`
	Text            string              `json:"text"`
	Commentary      string              `json:"commentary,omitempty"`
	CommentaryError string              `json:"commentaryError,omitempty"`
}

// FormGroupsRequest is the JSON body for POST /api/groups.
type FormGroupsRequest struct {
	Students   []models.Student `json:"students"`
	GroupSize  *int             `json:"groupSize"` // Omitted uses the default size
	Commentary *bool            `json:"commentary"`
}

// --- Roster Handlers ---

// UploadRoster handles POST /api/rosters
func (h *APIHandler) UploadRoster(c *gin.Context) {
	file, header, err := c.Request.FormFile("file") // "file" is the name attribute in the form
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error retrieving uploaded file: " + err.Error()})
		return
	}
	defer file.Close()

	h.logger.Info("received roster upload", zap.String("filename", header.Filename), zap.Int64("size", header.Size))

	students, err := db.ImportRosterFromExcel(file, h.logger)
	if err != nil {
		h.logger.Warn("failed to import roster", zap.String("filename", header.Filename), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read roster: " + err.Error()})
		return
	}

	roster := models.Roster{
		ID:         uuid.NewString(),
		Source:     header.Filename,
		Students:   students,
		UploadedAt: time.Now().UTC(),
	}
	if err := h.Store.Save(c.Request.Context(), roster); err != nil {
		h.logger.Error("failed to store roster", zap.String("rosterId", roster.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store roster"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"rosterId": roster.ID,
		"count":    len(students),
		"students": students,
	})
}

// GetRoster handles GET /api/rosters/:rosterId
func (h *APIHandler) GetRoster(c *gin.Context) {
	roster, ok := h.loadRoster(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, roster)
}

// DeleteRoster handles DELETE /api/rosters/:rosterId
func (h *APIHandler) DeleteRoster(c *gin.Context) {
	rosterID := c.Param("rosterId")
	if err := h.Store.Delete(c.Request.Context(), rosterID); err != nil {
		h.logger.Error("failed to delete roster", zap.String("rosterId", rosterID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete roster"})
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Grouping Handlers ---

// FormRosterGroups handles POST /api/rosters/:rosterId/groups
func (h *APIHandler) FormRosterGroups(c *gin.Context) {
	groupSize, ok := h.groupSizeParam(c)
	if !ok {
		return
	}
	roster, ok := h.loadRoster(c)
	if !ok {
		return
	}
	withCommentary := c.DefaultQuery("commentary", "true") != "false"

	h.form(c, roster.Students, groupSize, withCommentary)
}

// FormGroups handles POST /api/groups with the roster in the request body
func (h *APIHandler) FormGroups(c *gin.Context) {
	var req FormGroupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	groupSize := h.DefaultGroupSize
	if req.GroupSize != nil {
		groupSize = *req.GroupSize
	}
	withCommentary := req.Commentary == nil || *req.Commentary

	h.form(c, req.Students, groupSize, withCommentary)
}

func (h *APIHandler) form(c *gin.Context, students []models.Student, groupSize int, withCommentary bool) {
	res, err := h.Service.Form(c.Request.Context(), students, groupSize, pipeline.Options{SkipCommentary: !withCommentary})
	if err != nil {
		if errors.Is(err, grouping.ErrInvalidGroupSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("grouping failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to form groups"})
		return
	}

	resp := GroupsResponse{
		GroupSize:  groupSize,
		Groups:     res.Tables,
		Stats:      res.Stats,
		Text:       res.Text,
		Commentary: res.Commentary,
	}
	if res.CommentaryErr != nil {
		resp.CommentaryError = res.CommentaryErr.Error()
	}
	c.JSON(http.StatusOK, resp)
}

// ExportRosterGroups handles GET /api/rosters/:rosterId/groups/export
func (h *APIHandler) ExportRosterGroups(c *gin.Context) {
	groupSize, ok := h.groupSizeParam(c)
	if !ok {
		return
	}
	roster, ok := h.loadRoster(c)
	if !ok {
		return
	}

	res, err := h.Service.Group(roster.Students, groupSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := h.Service.Export(&buf, res); err != nil {
		if errors.Is(err, export.ErrNoGroups) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Roster has no students to export"})
			return
		}
		h.logger.Error("export failed", zap.String("rosterId", roster.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.DefaultFilename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// --- Helpers ---

// loadRoster writes an error response and returns false when the roster is
// unavailable.
func (h *APIHandler) loadRoster(c *gin.Context) (*models.Roster, bool) {
	rosterID := c.Param("rosterId")
	if rosterID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Roster ID is required"})
		return nil, false
	}

	roster, err := h.Store.Get(c.Request.Context(), rosterID)
	if err != nil {
		h.logger.Error("failed to load roster", zap.String("rosterId", rosterID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load roster"})
		return nil, false
	}
	if roster == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": db.ErrRosterNotFound.Error()})
		return nil, false
	}
	return roster, true
}

func (h *APIHandler) groupSizeParam(c *gin.Context) (int, bool) {
	raw := c.Query("size")
	if raw == "" {
		return h.DefaultGroupSize, true
	}
	size, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer"})
		return 0, false
	}
	return size, true
}

// --- Ping Handler ---
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Pong!"})
}
