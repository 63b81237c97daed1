package v1

import (
	"net/http"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := protected.Group("/resume")
	resumes.Use(requireCandidate())
	{
		resumes.GET("", handler.List)
		resumes.POST("/upload", handler.Upload)
		resumes.PUT("/active/:id", handler.SetActive)
		resumes.DELETE("/:id", handler.Delete)
	}
}

// requireCandidate gates the resume routes; employers have no resumes.
func requireCandidate() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(string(domain.KeyAccountRole))
		if role != string(domain.RoleCandidate) {
			c.Error(apperror.Forbidden("Access denied: User is not a candidate"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// List godoc
// @Summary      List resumes
// @Tags         resume
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /resume [get]
// @Security     BearerAuth
func (h *ResumeHandler) List(c *gin.Context) {
	candidateID := c.GetString(string(domain.KeyAccountID))
	resumes, err := h.resumeUC.List(c.Request.Context(), candidateID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resumes retrieved", resumes)
}

// Upload godoc
// @Summary      Upload a resume
// @Description  Multipart upload; the first resume for a candidate becomes active.
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file    true   "Resume file (PDF or Word)"
// @Param        title   formData  string  false  "Display title"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /resume/upload [post]
// @Security     BearerAuth
func (h *ResumeHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("Resume file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	candidateID := c.GetString(string(domain.KeyAccountID))
	resume, err := h.resumeUC.Upload(
		c.Request.Context(),
		candidateID,
		c.PostForm("title"),
		fileHeader.Filename,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume uploaded successfully", resume)
}

// SetActive godoc
// @Summary      Mark a resume active
// @Tags         resume
// @Produce      json
// @Param        id  path  string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resume/active/{id} [put]
// @Security     BearerAuth
func (h *ResumeHandler) SetActive(c *gin.Context) {
	candidateID := c.GetString(string(domain.KeyAccountID))
	if err := h.resumeUC.SetActive(c.Request.Context(), candidateID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Active resume updated", nil)
}

// Delete godoc
// @Summary      Delete a resume
// @Tags         resume
// @Produce      json
// @Param        id  path  string  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resume/{id} [delete]
// @Security     BearerAuth
func (h *ResumeHandler) Delete(c *gin.Context) {
	candidateID := c.GetString(string(domain.KeyAccountID))
	if err := h.resumeUC.Delete(c.Request.Context(), candidateID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume deleted", nil)
}
