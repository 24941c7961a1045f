package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

func (s *Server) SubscriptionStatus(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	status, err := s.subscriptionSvc.Status(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": status})
}

type subscriptionPlanRequest struct {
	Plan string `json:"plan"`
}

func (s *Server) CreateSubscriptionPayment(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req subscriptionPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	record, err := s.subscriptionSvc.CreatePayment(c.Request.Context(), userID, req.Plan)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": record})
}

type initiateSubscriptionRequest struct {
	PaymentID string `json:"payment_id"`
}

func (s *Server) InitiateSubscription(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req initiateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	paymentID, err := snowflake.ParseString(req.PaymentID)
	if err != nil || paymentID == 0 {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.subscriptionSvc.Initiate(c.Request.Context(), userID, paymentID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

func (s *Server) ListSubscriptionPayments(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	payments, err := s.subscriptionSvc.ListPayments(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": payments})
}

type paymeeCallbackRequest struct {
	Token  string `json:"token" form:"token"`
	Status string `json:"status" form:"status"`
}

// PaymeeCallback settles a checkout from the gateway notification. The
// gateway sends token and status either as JSON or as query params.
func (s *Server) PaymeeCallback(c *gin.Context) {
	var req paymeeCallbackRequest
	_ = c.ShouldBindJSON(&req)
	if req.Token == "" {
		req.Token = c.Query("token")
	}
	if req.Status == "" {
		req.Status = c.Query("status")
	}
	if req.Token == "" || req.Status == "" {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.subscriptionSvc.HandleCallback(c.Request.Context(), req.Token, req.Status); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "callback processed"})
}
