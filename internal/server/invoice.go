package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	invoicedomain "github.com/souhiir1/invoicing-backend/internal/invoice/domain"
)

type invoiceItemRequest struct {
	Article string          `json:"article"`
	Qte     decimal.Decimal `json:"qte"`
	PrixHT  decimal.Decimal `json:"prix_ht"`
	TVA     decimal.Decimal `json:"tva"`
	Remise  decimal.Decimal `json:"remise"`
	PrixTTC decimal.Decimal `json:"prix_ttc"`
}

type upsertInvoiceRequest struct {
	ClientID      *string              `json:"client_id"`
	ProjectID     *string              `json:"project_id"`
	RefFacture    string               `json:"ref_facture"`
	DateEmission  string               `json:"date_emission"`
	DateEcheance  string               `json:"date_echeance"`
	TotalHT       decimal.Decimal      `json:"total_ht"`
	Remise        decimal.Decimal      `json:"remise"`
	TVA           decimal.Decimal      `json:"tva"`
	Timbre        decimal.Decimal      `json:"timbre"`
	TotalTTC      decimal.Decimal      `json:"total_ttc"`
	Statut        string               `json:"statut"`
	PaymentStatus string               `json:"payment_status"`
	PaymentMethod string               `json:"payment_method"`
	Items         []invoiceItemRequest `json:"items"`
}

func (r upsertInvoiceRequest) toDomain() (invoicedomain.UpsertInvoiceRequest, error) {
	clientID, err := parseOptionalID(r.ClientID)
	if err != nil {
		return invoicedomain.UpsertInvoiceRequest{}, err
	}
	projectID, err := parseOptionalID(r.ProjectID)
	if err != nil {
		return invoicedomain.UpsertInvoiceRequest{}, err
	}
	dateEmission, err := parseOptionalDate(r.DateEmission)
	if err != nil {
		return invoicedomain.UpsertInvoiceRequest{}, err
	}
	dateEcheance, err := parseOptionalDate(r.DateEcheance)
	if err != nil {
		return invoicedomain.UpsertInvoiceRequest{}, err
	}

	items := make([]invoicedomain.ItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, invoicedomain.ItemInput{
			Article: item.Article,
			Qte:     item.Qte,
			PrixHT:  item.PrixHT,
			TVA:     item.TVA,
			Remise:  item.Remise,
			PrixTTC: item.PrixTTC,
		})
	}

	return invoicedomain.UpsertInvoiceRequest{
		ClientID:      clientID,
		ProjectID:     projectID,
		RefFacture:    r.RefFacture,
		DateEmission:  dateEmission,
		DateEcheance:  dateEcheance,
		TotalHT:       r.TotalHT,
		Remise:        r.Remise,
		TVA:           r.TVA,
		Timbre:        r.Timbre,
		TotalTTC:      r.TotalTTC,
		Statut:        r.Statut,
		PaymentStatus: r.PaymentStatus,
		PaymentMethod: r.PaymentMethod,
		Items:         items,
	}, nil
}

func parseInvoiceID(c *gin.Context, param string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(c.Param(param))
	if err != nil || id == 0 {
		return 0, invoicedomain.ErrInvalidID
	}
	return id, nil
}

func (s *Server) NextInvoiceRef(c *gin.Context) {
	ref, err := s.invoiceSvc.NextReference(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ref": ref})
}

func (s *Server) ListInvoices(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	rows, err := s.invoiceSvc.List(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func (s *Server) GetInvoice(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := parseInvoiceID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	detail, err := s.invoiceSvc.Get(c.Request.Context(), userID, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": detail})
}

func (s *Server) CreateInvoice(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req upsertInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	input, err := req.toDomain()
	if err != nil {
		AbortWithError(c, err)
		return
	}

	created, err := s.invoiceSvc.Create(c.Request.Context(), userID, input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := parseInvoiceID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req upsertInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	input, err := req.toDomain()
	if err != nil {
		AbortWithError(c, err)
		return
	}

	updated, err := s.invoiceSvc.Update(c.Request.Context(), userID, id, input)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": updated})
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := parseInvoiceID(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.invoiceSvc.Delete(c.Request.Context(), userID, id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
}
