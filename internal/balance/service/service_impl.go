package service

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/souhiir1/invoicing-backend/internal/balance/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// paidStatuses are the payment_status variants that mark an invoice as
// settled. Comparison is on the lower-cased stored value.
var paidStatuses = []string{"payé", "payée"}

type Params struct {
	fx.In

	DB  *gorm.DB
	Log *zap.Logger
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(p Params) domain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("balance.service"),
	}
}

type soldeRow struct {
	SoldeIni decimal.NullDecimal
}

type unpaidRow struct {
	TotalUnpaid decimal.NullDecimal
}

func (s *Service) Recompute(ctx context.Context, clientID, userID snowflake.ID) (decimal.Decimal, error) {
	var newSolde decimal.Decimal

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ini soldeRow
		res := tx.Raw(
			`SELECT solde_ini FROM clients WHERE id = ? AND user_id = ?`,
			clientID, userID,
		).Scan(&ini)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrClientNotFound
		}

		soldeIni := decimal.Zero
		if ini.SoldeIni.Valid {
			soldeIni = ini.SoldeIni.Decimal
		}

		var unpaid unpaidRow
		if err := tx.Raw(
			`SELECT COALESCE(SUM(total_ttc), 0) AS total_unpaid
			 FROM invoices
			 WHERE client_id = ?
			 AND LOWER(payment_status) NOT IN (?, ?)`,
			clientID, paidStatuses[0], paidStatuses[1],
		).Scan(&unpaid).Error; err != nil {
			return err
		}

		totalUnpaid := decimal.Zero
		if unpaid.TotalUnpaid.Valid {
			totalUnpaid = unpaid.TotalUnpaid.Decimal
		}

		newSolde = soldeIni.Add(totalUnpaid)

		return tx.Exec(
			`UPDATE clients SET solde = ? WHERE id = ? AND user_id = ?`,
			newSolde, clientID, userID,
		).Error
	})
	if err != nil {
		s.log.Error("recompute client solde",
			zap.String("client_id", clientID.String()),
			zap.Error(err),
		)
		return decimal.Zero, err
	}

	s.log.Info("client solde updated",
		zap.String("client_id", clientID.String()),
		zap.String("solde", newSolde.String()),
	)
	return newSolde, nil
}
