package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	clientdomain "github.com/souhiir1/invoicing-backend/internal/client/domain"
)

type upsertClientRequest struct {
	Name             string          `json:"name"`
	Company          string          `json:"company"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	MatriculeFiscale string          `json:"matricule_fiscale"`
	SoldeIni         decimal.Decimal `json:"solde_ini"`
}

func (r upsertClientRequest) toDomain() clientdomain.UpsertClientRequest {
	return clientdomain.UpsertClientRequest{
		Name:             r.Name,
		Company:          r.Company,
		Email:            r.Email,
		Phone:            r.Phone,
		Address:          r.Address,
		MatriculeFiscale: r.MatriculeFiscale,
		SoldeIni:         r.SoldeIni,
	}
}

func parseClientID(c *gin.Context, param string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(c.Param(param))
	if err != nil || id == 0 {
		return 0, clientdomain.ErrInvalidID
	}
	return id, nil
}

func (s *Server) ListClients(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	clients, err := s.clientSvc.List(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": clients})
}

func (s *Server) ListClientsWithMeta(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	rows, err := s.clientSvc.ListWithMeta(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (s *Server) CreateClient(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req upsertClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	created, err := s.clientSvc.Create(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func (s *Server) GetClient(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := parseClientID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	found, err := s.clientSvc.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": found})
}

func (s *Server) GetClientDetails(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := parseClientID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	details, err := s.clientSvc.Details(c.Request.Context(), userID, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": details})
}

func (s *Server) UpdateClient(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := parseClientID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req upsertClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	updated, err := s.clientSvc.Update(c.Request.Context(), userID, id, req.toDomain())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

func (s *Server) DeleteClient(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := parseClientID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.clientSvc.Delete(c.Request.Context(), userID, id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}
