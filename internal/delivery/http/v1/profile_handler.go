package v1

import (
	"net/http"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := protected.Group("/profile")
	{
		profile.GET("", handler.GetOwnProfile)
		profile.PUT("", handler.UpdateCandidateProfile)
		profile.PUT("/employer", handler.UpdateEmployerProfile)
	}
}

// GetOwnProfile godoc
// @Summary      Get own profile
// @Description  Return the authenticated account (candidate or employer), without the password hash.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	account, exists := c.Get(string(domain.KeyAccount))
	if !exists {
		c.Error(apperror.Unauthorized("User not authenticated"))
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", account)
}

// UpdateCandidateProfile godoc
// @Summary      Update candidate profile
// @Description  Partially update the candidate profile. Only submitted whitelisted fields change.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        update  body      domain.CandidateProfileUpdate  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateCandidateProfile(c *gin.Context) {
	role := c.GetString(string(domain.KeyAccountRole))
	if role != string(domain.RoleCandidate) {
		c.Error(apperror.Forbidden("Access denied: User is not a candidate"))
		return
	}

	var upd domain.CandidateProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	accountID := c.GetString(string(domain.KeyAccountID))
	candidate, changed, err := h.profileUC.UpdateCandidateProfile(c.Request.Context(), accountID, upd)
	if err != nil {
		c.Error(err)
		return
	}

	msg := "Candidate profile updated successfully"
	if !changed {
		msg = "No changes detected in profile."
	}
	response.Success(c, http.StatusOK, msg, candidate)
}

// UpdateEmployerProfile godoc
// @Summary      Update employer profile
// @Description  Partially update the employer profile. Mandatory fields must all be present and non-blank.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        update  body      domain.EmployerProfileUpdate  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /profile/employer [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateEmployerProfile(c *gin.Context) {
	role := c.GetString(string(domain.KeyAccountRole))
	if role != string(domain.RoleEmployer) {
		c.Error(apperror.Forbidden("Access denied: User is not an employer"))
		return
	}

	var upd domain.EmployerProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	accountID := c.GetString(string(domain.KeyAccountID))
	employer, changed, err := h.profileUC.UpdateEmployerProfile(c.Request.Context(), accountID, upd)
	if err != nil {
		c.Error(err)
		return
	}

	msg := "Employer profile updated successfully"
	if !changed {
		msg = "No changes submitted."
	}
	response.Success(c, http.StatusOK, msg, employer)
}
