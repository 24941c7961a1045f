package server

import (
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	projectdomain "github.com/souhiir1/invoicing-backend/internal/project/domain"
)

type upsertProjectRequest struct {
	Name        string          `json:"name"`
	ClientID    *string         `json:"client_id"`
	Description string          `json:"description"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	Amount      decimal.Decimal `json:"amount"`
	Remise      decimal.Decimal `json:"remise"`
	FinalAmount decimal.Decimal `json:"final_amount"`
	Commentaire string          `json:"commentaire"`
}

func (r upsertProjectRequest) toDomain() (projectdomain.UpsertProjectRequest, error) {
	clientID, err := parseOptionalID(r.ClientID)
	if err != nil {
		return projectdomain.UpsertProjectRequest{}, projectdomain.ErrInvalidID
	}
	startDate, err := parseOptionalDate(r.StartDate)
	if err != nil {
		return projectdomain.UpsertProjectRequest{}, err
	}
	endDate, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return projectdomain.UpsertProjectRequest{}, err
	}

	return projectdomain.UpsertProjectRequest{
		Name:        r.Name,
		ClientID:    clientID,
		Description: r.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Amount:      r.Amount,
		Remise:      r.Remise,
		FinalAmount: r.FinalAmount,
		Commentaire: r.Commentaire,
	}, nil
}

// parseOptionalID treats nil and "" as absent.
func parseOptionalID(raw *string) (*snowflake.ID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := snowflake.ParseString(*raw)
	if err != nil || id == 0 {
		return nil, invalidRequestError()
	}
	return &id, nil
}

// parseOptionalDate accepts a bare date or RFC 3339; "" means absent.
func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, invalidRequestError()
	}
	return &t, nil
}

func (s *Server) ListProjects(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	rows, err := s.projectSvc.List(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (s *Server) ListProjectsByClient(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	clientID, err := snowflake.ParseString(c.Param("clientId"))
	if err != nil || clientID == 0 {
		AbortWithError(c, projectdomain.ErrInvalidID)
		return
	}

	rows, err := s.projectSvc.ListByClient(c.Request.Context(), userID, clientID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (s *Server) CreateProject(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req upsertProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	input, err := req.toDomain()
	if err != nil {
		AbortWithError(c, err)
		return
	}

	created, err := s.projectSvc.Create(c.Request.Context(), userID, input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func (s *Server) UpdateProject(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := snowflake.ParseString(c.Param("id"))
	if err != nil || id == 0 {
		AbortWithError(c, projectdomain.ErrInvalidID)
		return
	}

	var req upsertProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	input, err := req.toDomain()
	if err != nil {
		AbortWithError(c, err)
		return
	}

	updated, err := s.projectSvc.Update(c.Request.Context(), userID, id, input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

type updateProjectStatusRequest struct {
	Statut string `json:"statut"`
}

func (s *Server) UpdateProjectStatus(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := snowflake.ParseString(c.Param("id"))
	if err != nil || id == 0 {
		AbortWithError(c, projectdomain.ErrInvalidID)
		return
	}

	var req updateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.projectSvc.UpdateStatus(c.Request.Context(), userID, id, req.Statut); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "statut updated"})
}

func (s *Server) DeleteProject(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := snowflake.ParseString(c.Param("id"))
	if err != nil || id == 0 {
		AbortWithError(c, projectdomain.ErrInvalidID)
		return
	}

	if err := s.projectSvc.Delete(c.Request.Context(), userID, id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}
