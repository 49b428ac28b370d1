// Package sales implementa el registro y la baja de ventas. Todo el flujo de
// registro ocurre dentro de una transacción: o persisten la venta, la nota
// sintetizada y el cambio de estado de la unidad, o no persiste nada.
package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/domain"
	"github.com/agroventas/crm-api/internal/domain/authz"
	"github.com/agroventas/crm-api/internal/domain/entity"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

// SaleUseCase casos de uso de ventas. Las lecturas usan los repos sueltos; las
// escrituras pasan por el TxRunner.
type SaleUseCase struct {
	tx       TxRunner
	saleRepo repository.SaleRepository
	noteRepo repository.CustomerNoteRepository
	policy   authz.Policy
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx TxRunner, saleRepo repository.SaleRepository, noteRepo repository.CustomerNoteRepository, policy authz.Policy) *SaleUseCase {
	return &SaleUseCase{tx: tx, saleRepo: saleRepo, noteRepo: noteRepo, policy: policy}
}

// Register registra una venta. En una sola transacción: verifica permisos
// sobre el cliente, inserta la venta, sintetiza la nota SALE, enlaza ambas y,
// si se indicó unidad, la marca como vendida.
func (uc *SaleUseCase) Register(ctx context.Context, caller crm.Identity, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCurrency(in.Currency) {
		return nil, domain.ErrInvalidInput
	}

	sale := &entity.SaleRecord{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		UserID:     caller.UserID,
		SoldUnitID: in.SoldUnitID,
		Amount:     in.Amount.Round(2),
		Currency:   in.Currency,
		Model:      in.Model,
		HP:         in.HP,
		Notes:      in.Notes,
		CreatedAt:  time.Now(),
	}

	err := uc.tx.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		noteRepo repository.CustomerNoteRepository,
		unitRepo repository.SoldUnitRepository,
		customerRepo repository.CustomerRepository,
	) error {
		customer, err := customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		if !uc.policy.CanManage(caller.UserID, caller.Role, customer.CreatedBy, customer.AssignedTo) {
			return domain.ErrForbidden
		}

		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		note := &entity.CustomerNote{
			ID:         uuid.New().String(),
			CustomerID: in.CustomerID,
			UserID:     caller.UserID,
			Texto:      saleNoteText(sale),
			ActionType: entity.ActionSale,
			CreatedAt:  sale.CreatedAt,
		}
		if err := noteRepo.Create(note); err != nil {
			return err
		}

		// En despliegues sin la columna note_id el repo devuelve nil y la
		// venta queda sin enlace directo; cualquier otro error aborta la
		// transacción.
		if err := saleRepo.SetNoteID(sale.ID, note.ID); err != nil {
			return err
		}
		sale.NoteID = note.ID

		if in.SoldUnitID != "" {
			unit, err := unitRepo.GetByID(in.SoldUnitID)
			if err != nil {
				return err
			}
			if unit == nil {
				return domain.ErrNotFound
			}
			if err := unitRepo.UpdateStatus(unit.ID, entity.UnitStatusSold); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List lista ventas paginadas, más recientes primero.
func (uc *SaleUseCase) List(page dto.PageRequest) ([]*dto.SaleResponse, error) {
	page.DefaultPage()
	list, err := uc.saleRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Delete borra una venta y su nota enlazada. Sin enlace directo cae a la nota
// SALE más reciente del cliente; filas legadas pueden no tener ninguna. El
// estado de la unidad no se revierte.
func (uc *SaleUseCase) Delete(ctx context.Context, caller crm.Identity, id string) error {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	if !uc.policy.IsPrivileged(caller.Role) && sale.UserID != caller.UserID {
		return domain.ErrForbidden
	}

	return uc.tx.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		noteRepo repository.CustomerNoteRepository,
		_ repository.SoldUnitRepository,
		_ repository.CustomerRepository,
	) error {
		if err := saleRepo.Delete(id); err != nil {
			return err
		}
		noteID := sale.NoteID
		if noteID == "" {
			note, err := noteRepo.LatestSaleNote(sale.CustomerID)
			if err != nil {
				return err
			}
			if note != nil {
				noteID = note.ID
			}
		}
		if noteID != "" {
			if err := noteRepo.Delete(noteID); err != nil {
				return err
			}
		}
		return nil
	})
}

// saleNoteText arma el texto de la nota sintetizada.
func saleNoteText(sale *entity.SaleRecord) string {
	text := fmt.Sprintf("Venta: $%s %s. Modelo: %s %s",
		sale.Amount.StringFixed(2), sale.Currency, sale.Model, sale.Notes)
	return strings.TrimSpace(text)
}

func toSaleResponse(s *entity.SaleRecord) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		UserID:     s.UserID,
		SoldUnitID: s.SoldUnitID,
		NoteID:     s.NoteID,
		Amount:     s.Amount,
		Currency:   s.Currency,
		Model:      s.Model,
		HP:         s.HP,
		Notes:      s.Notes,
		CreatedAt:  s.CreatedAt,
	}
}
