// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snpzone/skillhunt/internal/app/models/dto"
	"github.com/snpzone/skillhunt/internal/app/services"
	"github.com/snpzone/skillhunt/internal/middleware"
	"github.com/snpzone/skillhunt/internal/pkg/auth"
)

// CompanyController handles company registration, sessions and job postings.
type CompanyController struct {
	companyService     *services.CompanyService
	studentService     *services.StudentService
	jobService         *services.JobService
	applicationService *services.ApplicationService
	jwtService         *auth.JWTService
	logger             zerolog.Logger
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(
	companyService *services.CompanyService,
	studentService *services.StudentService,
	jobService *services.JobService,
	applicationService *services.ApplicationService,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *CompanyController {
	return &CompanyController{
		companyService:     companyService,
		studentService:     studentService,
		jobService:         jobService,
		applicationService: applicationService,
		jwtService:         jwtService,
		logger:             logger,
	}
}

// SendOTP starts a company registration and mails the challenge code.
func (c *CompanyController) SendOTP(ctx *gin.Context) {
	var req dto.CompanySendOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid company send-otp payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "companyName and officialEmail are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.companyService.SendOTP(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewSuccessResponse("OTP sent to official email"),
	})
}

// VerifyOTP validates the challenge code submitted by a company.
func (c *CompanyController) VerifyOTP(ctx *gin.Context) {
	var req dto.CompanyVerifyOTPRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid company verify-otp payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "officialEmail and otp are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.companyService.VerifyOTP(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewSuccessResponse("Email verified successfully"),
	})
}

// CompleteRegistration applies the company profile and activates the account.
func (c *CompanyController) CompleteRegistration(ctx *gin.Context) {
	var req dto.CompanyCompleteRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid company complete-registration payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "officialEmail is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.companyService.CompleteRegistration(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewSuccessResponse("Registration completed successfully"),
	})
}

// SendLoginPassword mails a fresh login password to the company.
func (c *CompanyController) SendLoginPassword(ctx *gin.Context) {
	var req dto.CompanySendLoginPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "officialEmail is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.companyService.SendLoginPassword(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewSuccessResponse("Login password sent to official email"),
	})
}

// Login authenticates a company and sets the session cookie.
func (c *CompanyController) Login(ctx *gin.Context) {
	var req dto.CompanyLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "officialEmail and password are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	company, err := c.companyService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, _, err := c.jwtService.GenerateSessionToken(auth.KindCompany, company.ID, company.Email)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to generate company session token")
		middleware.HandleAPIError(ctx, err)
		return
	}

	setSessionCookie(ctx, middleware.CompanyCookieName, token, int(c.jwtService.SessionExpiry().Seconds()))

	c.logger.Info().Int64("companyID", company.ID).Msg("Company logged in")
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: company})
}

// CheckSession reports whether the request carries a valid company session.
func (c *CompanyController) CheckSession(ctx *gin.Context) {
	checkSession(ctx, c.jwtService, auth.KindCompany)
}

// Logout clears the company session cookie. Tokens are not revocable, so
// clearing the cookie is the whole logout.
func (c *CompanyController) Logout(ctx *gin.Context) {
	clearSessionCookie(ctx, middleware.CompanyCookieName)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.NewSuccessResponse("Logged out successfully"),
	})
}

// CreateJob posts a new job for the logged-in company.
func (c *CompanyController) CreateJob(ctx *gin.Context) {
	companyID, ok := middleware.RecordIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "jobRoleName is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.jobService.Create(ctx.Request.Context(), companyID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: job})
}

// ListJobs returns the logged-in company's postings.
func (c *CompanyController) ListJobs(ctx *gin.Context) {
	companyID, ok := middleware.RecordIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	jobs, err := c.jobService.ListByCompany(ctx.Request.Context(), companyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: jobs})
}

// GetJob returns one of the company's postings by its public job ID.
func (c *CompanyController) GetJob(ctx *gin.Context) {
	job, err := c.jobService.GetByJobID(ctx.Request.Context(), ctx.Param("jobId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: job})
}

// GetStudent returns an applicant's record by public student ID.
func (c *CompanyController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetByStudentID(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: student})
}

// ListApplications returns all applications to the company's postings.
func (c *CompanyController) ListApplications(ctx *gin.Context) {
	companyID, ok := middleware.RecordIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	apps, err := c.applicationService.ListByCompany(ctx.Request.Context(), companyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: apps})
}

// GetProfile returns the logged-in company's own record.
func (c *CompanyController) GetProfile(ctx *gin.Context) {
	companyID, ok := middleware.RecordIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	company, err := c.companyService.GetByID(ctx.Request.Context(), companyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: company})
}
