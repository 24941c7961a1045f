package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type InvoiceData struct {
	Reference    string
	IssueDate    string
	DueDate      string
	PaymentState string

	SellerName      string
	SellerAddress   string
	SellerMatricule string
	SellerPhone     string

	ClientName      string
	ClientAddress   string
	ClientMatricule string

	Items []LineItem

	TotalHT  string
	Remise   string
	TVA      string
	Timbre   string
	TotalTTC string
}

type LineItem struct {
	Article string
	Qty     string
	UnitHT  string
	TVA     string
	Remise  string
	UnitTTC string
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, data InvoiceData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} / {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Facture "+data.Reference, props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(18,
		col.New(6).Add(
			text.New("Date d'émission : "+data.IssueDate, props.Text{Top: 0}),
			text.New("Date d'échéance : "+data.DueDate, props.Text{Top: 4}),
			text.New("Statut : "+data.PaymentState, props.Text{Top: 8}),
		),
		col.New(6),
	)

	m.AddRow(36,
		col.New(6).Add(
			text.New(data.SellerName, props.Text{Style: fontstyle.Bold}),
			text.New(data.SellerAddress, props.Text{Top: 5}),
			text.New("MF : "+data.SellerMatricule, props.Text{Top: 9}),
			text.New(data.SellerPhone, props.Text{Top: 13}),
		),
		col.New(6).Add(
			text.New("Facturé à", props.Text{Style: fontstyle.Bold}),
			text.New(data.ClientName, props.Text{Top: 5}),
			text.New(data.ClientAddress, props.Text{Top: 9}),
			text.New("MF : "+data.ClientMatricule, props.Text{Top: 13}),
		),
	)

	m.AddRow(10,
		text.NewCol(4, "Article", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Qté", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Prix HT", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(1, "TVA", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Remise", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Prix TTC", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range data.Items {
		m.AddRow(9,
			text.NewCol(4, item.Article, props.Text{Size: 9}),
			text.NewCol(1, item.Qty, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.UnitHT, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(1, item.TVA, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.Remise, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, item.UnitTTC, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total HT", props.Text{Size: 9}),
		text.NewCol(2, data.TotalHT, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Remise", props.Text{Size: 9}),
		text.NewCol(2, data.Remise, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "TVA", props.Text{Size: 9}),
		text.NewCol(2, data.TVA, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Timbre", props.Text{Size: 9}),
		text.NewCol(2, data.Timbre, props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total TTC", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, data.TotalTTC, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}
