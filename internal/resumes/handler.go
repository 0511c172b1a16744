package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"staffing-backend/internal/shared/server/middleware"
	"staffing-backend/internal/shared/server/respond"
)

const (
	maxUploadSize = 10 << 20 // 10MB
	maxTextLength = 200000
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc      *Service
	validate *validator.Validate
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc, validate: validator.New()}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.POST("/resumes/parse", h.parseText)
	rg.GET("/resumes/current", h.current)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.DELETE("/resumes/:id", h.delete)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, respond.CodeValidation, "file exceeds 10MB", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "unable to read file", nil)
		return
	}
	defer file.Close()

	res, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		h.writeError(c, err, "failed to upload resume")
		return
	}

	c.Set("resumeId", res.ID)
	respond.Created(c, "/api/v1/resumes/"+res.ID, toResponse(res))
}

type parseTextRequest struct {
	Text string `json:"text" validate:"required,max=200000"`
}

func (h *Handler) parseText(c *gin.Context) {
	var req parseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "invalid request body", nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "text is required and must be at most "+strconv.Itoa(maxTextLength)+" characters", validationDetails(err))
		return
	}

	parsed, err := h.Svc.ParseText(c.Request.Context(), req.Text)
	if err != nil {
		h.writeError(c, err, "failed to parse resume")
		return
	}

	respond.JSON(c, http.StatusOK, parsed)
}

func (h *Handler) current(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	res, err := h.Svc.Current(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "failed to fetch resume")
		return
	}

	c.Set("resumeId", res.ID)
	respond.JSON(c, http.StatusOK, toResponse(res))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	res, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, err, "failed to fetch resume")
		return
	}

	c.Set("resumeId", res.ID)
	respond.JSON(c, http.StatusOK, toResponse(res))
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0

	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.writeError(c, err, "failed to list resumes")
		return
	}

	resp := make([]ResumeSummary, 0, len(items))
	for _, res := range items {
		resp = append(resp, toSummary(res))
	}

	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, err, "failed to delete resume")
		return
	}

	c.Set("resumeId", id)
	respond.NoContent(c)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, respond.CodeNotFound, "resume not found", nil)
	case errors.Is(err, ErrUnsupportedFile):
		respond.Error(c, http.StatusUnsupportedMediaType, respond.CodeUnsupportedFile, "only PDF, DOCX and plain text resumes are supported", nil)
	case errors.Is(err, ErrEmptyText), errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, respond.CodeInternal, fallback, nil)
	}
}

func validationDetails(err error) []gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, gin.H{"field": fe.Field(), "rule": fe.Tag()})
	}
	return out
}
