package v1

import (
	"net/http"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/register", handler.RegisterCandidate)
		auth.POST("/register/employer", handler.RegisterEmployer)
		auth.POST("/login", handler.Login)
	}
}

type RegisterCandidateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterEmployerRequest struct {
	CompanyName            string `json:"companyName" binding:"required"`
	HiringManagerFirstName string `json:"hiringManagerFirstName" binding:"required"`
	HiringManagerLastName  string `json:"hiringManagerLastName" binding:"required"`
	HiringManagerPhone     string `json:"hiringManagerPhone" binding:"omitempty,valid_phone"`
	Email                  string `json:"email" binding:"required,email"`
	Password               string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterCandidate godoc
// @Summary      Candidate Registration
// @Description  Register a new candidate account with email and password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterCandidateRequest  true  "Registration Details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) RegisterCandidate(c *gin.Context) {
	var req RegisterCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Validation failed").WithDetails(validation.FormatValidationErrors(err)))
		return
	}

	tok, candidate, err := h.authUC.RegisterCandidate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", gin.H{
		"token": tok,
		"user":  candidate,
	})
}

// RegisterEmployer godoc
// @Summary      Employer Registration
// @Description  Register a new employer account with company and hiring manager details.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterEmployerRequest  true  "Registration Details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register/employer [post]
func (h *AuthHandler) RegisterEmployer(c *gin.Context) {
	var req RegisterEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Validation failed").WithDetails(validation.FormatValidationErrors(err)))
		return
	}

	tok, employer, err := h.authUC.RegisterEmployer(c.Request.Context(), domain.RegisterEmployerInput{
		CompanyName:            req.CompanyName,
		HiringManagerFirstName: req.HiringManagerFirstName,
		HiringManagerLastName:  req.HiringManagerLastName,
		HiringManagerPhone:     req.HiringManagerPhone,
		Email:                  req.Email,
		Password:               req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", gin.H{
		"token": tok,
		"user":  employer,
	})
}

// Login godoc
// @Summary      Login
// @Description  Authenticate a candidate or employer with one credential pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Validation failed").WithDetails(validation.FormatValidationErrors(err)))
		return
	}

	tok, account, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": tok,
		"user":  account,
	})
}
