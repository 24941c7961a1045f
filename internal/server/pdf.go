package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	clientdomain "github.com/souhiir1/invoicing-backend/internal/client/domain"
	"github.com/souhiir1/invoicing-backend/internal/providers/pdf"
)

func (s *Server) InvoicePDF(c *gin.Context) {
	userID, ok := s.userID(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	id, err := parseInvoiceID(c, "invoiceId")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	detail, err := s.invoiceSvc.Get(c.Request.Context(), userID, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	seller, err := s.accountSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var billed clientdomain.Client
	if detail.ClientID != nil {
		billed, err = s.clientSvc.GetByID(c.Request.Context(), userID, *detail.ClientID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
	}

	data := pdf.InvoiceData{
		Reference:    detail.RefFacture,
		IssueDate:    formatDate(detail.DateEmission),
		DueDate:      formatDate(detail.DateEcheance),
		PaymentState: detail.PaymentStatus,

		SellerName:      seller.FullName,
		SellerAddress:   seller.Adresse,
		SellerMatricule: seller.MatriculeFiscal,
		SellerPhone:     seller.Tel,

		ClientName:      billed.Name,
		ClientAddress:   billed.Address,
		ClientMatricule: billed.MatriculeFiscale,

		TotalHT:  detail.TotalHT.StringFixed(3),
		Remise:   detail.Remise.StringFixed(3),
		TVA:      detail.TVA.StringFixed(3),
		Timbre:   detail.Timbre.StringFixed(3),
		TotalTTC: detail.TotalTTC.StringFixed(3),
	}
	for _, item := range detail.Items {
		data.Items = append(data.Items, pdf.LineItem{
			Article: item.Article,
			Qty:     item.Qte.String(),
			UnitHT:  item.PrixHT.StringFixed(3),
			TVA:     item.TVA.StringFixed(3),
			Remise:  item.Remise.StringFixed(3),
			UnitTTC: item.PrixTTC.StringFixed(3),
		})
	}

	doc, err := s.pdfProvider.GenerateInvoice(c.Request.Context(), data)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="facture-`+detail.RefFacture+`.pdf"`)
	c.DataFromReader(http.StatusOK, -1, "application/pdf", doc, nil)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}
