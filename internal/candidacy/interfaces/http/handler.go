// Package http 候选人申请的 HTTP 接口
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ubvoting/election/internal/candidacy/application"
	"github.com/ubvoting/election/internal/candidacy/domain"
	"github.com/ubvoting/election/pkg/logger"
	"github.com/ubvoting/election/pkg/metrics"
)

// ApplicationHandler 负责处理候选人申请相关的 HTTP 请求
type ApplicationHandler struct {
	command *application.ApplicationCommand
	query   *application.ApplicationQuery
	metrics *metrics.Metrics
}

// NewApplicationHandler 创建 HTTP 处理器实例
func NewApplicationHandler(command *application.ApplicationCommand, query *application.ApplicationQuery, m *metrics.Metrics) *ApplicationHandler {
	return &ApplicationHandler{command: command, query: query, metrics: m}
}

// RegisterRoutes 将处理器方法绑定到 Gin 路由引擎
func (h *ApplicationHandler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/candidate-applications")
	{
		api.POST("", h.SubmitApplication)
		api.GET("", h.ListApplications)
		api.GET("/:id", h.GetApplication)
		api.PUT("/:id", h.ReviewApplication)
	}
}

// SubmitApplicationRequest 提交申请请求。前端使用 camelCase 字段。
type SubmitApplicationRequest struct {
	StudentID       string `json:"studentId" binding:"required"`
	StudentName     string `json:"studentName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Position        string `json:"position" binding:"required"`
	Party           string `json:"party"`
	PartyName       string `json:"partyName"`
	Manifesto       string `json:"manifesto"`
	Qualifications  string `json:"qualifications"`
	Achievements    string `json:"achievements"`
	CampaignPromise string `json:"campaignPromise"`
	YearOfStudy     string `json:"yearOfStudy"`
	Faculty         string `json:"faculty"`
}

// ReviewApplicationRequest 审核申请请求
type ReviewApplicationRequest struct {
	Status          string `json:"status" binding:"required,oneof=approved rejected"`
	ReviewedBy      string `json:"reviewed_by" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}

// SubmitApplication 提交候选人申请
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applicationID, err := h.command.SubmitApplication(c.Request.Context(), application.SubmitApplicationCommand{
		StudentID:       req.StudentID,
		StudentName:     req.StudentName,
		Email:           req.Email,
		Position:        req.Position,
		Party:           req.Party,
		PartyName:       req.PartyName,
		Manifesto:       req.Manifesto,
		Qualifications:  req.Qualifications,
		Achievements:    req.Achievements,
		CampaignPromise: req.CampaignPromise,
		YearOfStudy:     req.YearOfStudy,
		Faculty:         req.Faculty,
	})
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to submit application", "student_id", req.StudentID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.metrics != nil {
		h.metrics.ApplicationsSubmittedTotal.Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Application submitted successfully",
		"application_id": applicationID,
		"status":         "pending",
	})
}

// ListApplications 返回全部申请，可按 status 过滤
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	status := c.Query("status")

	apps, err := h.query.ListApplications(c.Request.Context(), status)
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list applications", "status", status, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, apps)
}

// GetApplication 返回单条申请
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	applicationID := c.Param("id")

	app, err := h.query.GetApplication(c.Request.Context(), applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		logger.Error(c.Request.Context(), "Failed to get application", "application_id", applicationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app)
}

// ReviewApplication 应用审核决定
func (h *ApplicationHandler) ReviewApplication(c *gin.Context) {
	applicationID := c.Param("id")

	var req ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.command.ReviewApplication(c.Request.Context(), application.ReviewApplicationCommand{
		ApplicationID:   applicationID,
		Status:          req.Status,
		ReviewedBy:      req.ReviewedBy,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		logger.Error(c.Request.Context(), "Failed to review application", "application_id", applicationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.metrics != nil {
		h.metrics.ApplicationsReviewedTotal.Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Application " + req.Status + " successfully",
		"application_id": applicationID,
	})
}
