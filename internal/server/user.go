package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	accountdomain "github.com/souhiir1/invoicing-backend/internal/account/domain"
)

func (s *Server) GetProfile(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	user, err := s.accountSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

type changePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

func (s *Server) ChangePassword(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.accountSvc.ChangePassword(c.Request.Context(), userID, req.NewPassword); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

type updateProfileRequest struct {
	Email           *string `json:"email"`
	FullName        *string `json:"full_name"`
	Tel             *string `json:"tel"`
	Adresse         *string `json:"adresse"`
	MatriculeFiscal *string `json:"matricule_fiscal"`
	Image           *string `json:"image"`
	Logo            *string `json:"logo"`
}

func (s *Server) UpdateProfile(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	user, err := s.accountSvc.UpdateProfile(c.Request.Context(), userID, accountdomain.ProfileUpdate{
		Email:           req.Email,
		FullName:        req.FullName,
		Tel:             req.Tel,
		Adresse:         req.Adresse,
		MatriculeFiscal: req.MatriculeFiscal,
		Image:           req.Image,
		Logo:            req.Logo,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

func (s *Server) DeleteAccount(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	if err := s.accountSvc.DeleteAccount(c.Request.Context(), userID); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
