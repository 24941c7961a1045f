package providers

import (
	"github.com/souhiir1/invoicing-backend/internal/providers/email"
	"github.com/souhiir1/invoicing-backend/internal/providers/payment"
	"github.com/souhiir1/invoicing-backend/internal/providers/pdf"
	"go.uber.org/fx"
)

var Module = fx.Module("providers",
	email.Module,
	payment.Module,
	pdf.Module,
)
