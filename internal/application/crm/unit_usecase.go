package crm

import (
	"time"

	"github.com/google/uuid"

	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/domain"
	"github.com/agroventas/crm-api/internal/domain/authz"
	"github.com/agroventas/crm-api/internal/domain/entity"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

// UnitUseCase casos de uso de unidades vendidas. Cada unidad pertenece a
// exactamente un cliente o un punto de venta.
type UnitUseCase struct {
	repo         repository.SoldUnitRepository
	customerRepo repository.CustomerRepository
	posRepo      repository.POSRepository
	policy       authz.Policy
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(
	repo repository.SoldUnitRepository,
	customerRepo repository.CustomerRepository,
	posRepo repository.POSRepository,
	policy authz.Policy,
) *UnitUseCase {
	return &UnitUseCase{repo: repo, customerRepo: customerRepo, posRepo: posRepo, policy: policy}
}

// CreateForCustomer crea una unidad propiedad de un cliente.
func (uc *UnitUseCase) CreateForCustomer(caller Identity, customerID string, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if !uc.policy.CanManage(caller.UserID, caller.Role, customer.CreatedBy, customer.AssignedTo) {
		return nil, domain.ErrForbidden
	}
	return uc.create(customerID, "", in)
}

// CreateForPOS crea una unidad propiedad de un punto de venta.
func (uc *UnitUseCase) CreateForPOS(caller Identity, posID string, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	pos, err := uc.posRepo.GetByID(posID)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, domain.ErrNotFound
	}
	if !uc.policy.CanManage(caller.UserID, caller.Role, pos.CreatedBy, pos.AssignedTo) {
		return nil, domain.ErrForbidden
	}
	return uc.create("", posID, in)
}

func (uc *UnitUseCase) create(customerID, posID string, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.UnitStatusEnUso
	}
	now := time.Now()
	unit := &entity.SoldUnit{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		POSID:      posID,
		Brand:      in.Brand,
		Model:      in.Model,
		Year:       in.Year,
		HP:         in.HP,
		Status:     status,
		Hours:      in.Hours,
		Comments:   in.Comments,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// ListByCustomer lista las unidades de un cliente.
func (uc *UnitUseCase) ListByCustomer(customerID string) ([]*dto.UnitResponse, error) {
	list, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toUnitResponses(list), nil
}

// ListByPOS lista las unidades de un punto de venta.
func (uc *UnitUseCase) ListByPOS(posID string) ([]*dto.UnitResponse, error) {
	list, err := uc.repo.ListByPOS(posID)
	if err != nil {
		return nil, err
	}
	return toUnitResponses(list), nil
}

// Update modifica una unidad, incluido el pase manual de estado (EN_USO ->
// RETIRED). El permiso se evalúa contra el dueño de la unidad.
func (uc *UnitUseCase) Update(caller Identity, id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkOwnerAccess(caller, unit); err != nil {
		return nil, err
	}
	unit.Brand = in.Brand
	unit.Model = in.Model
	unit.Year = in.Year
	unit.HP = in.HP
	unit.Status = in.Status
	unit.Hours = in.Hours
	unit.Comments = in.Comments
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// Delete elimina una unidad.
func (uc *UnitUseCase) Delete(caller Identity, id string) error {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrNotFound
	}
	if err := uc.checkOwnerAccess(caller, unit); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

// checkOwnerAccess resuelve el dueño (cliente o POS) y aplica la política.
func (uc *UnitUseCase) checkOwnerAccess(caller Identity, unit *entity.SoldUnit) error {
	var createdBy, assignedTo string
	switch {
	case unit.CustomerID != "":
		customer, err := uc.customerRepo.GetByID(unit.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		createdBy, assignedTo = customer.CreatedBy, customer.AssignedTo
	case unit.POSID != "":
		pos, err := uc.posRepo.GetByID(unit.POSID)
		if err != nil {
			return err
		}
		if pos == nil {
			return domain.ErrNotFound
		}
		createdBy, assignedTo = pos.CreatedBy, pos.AssignedTo
	}
	if !uc.policy.CanManage(caller.UserID, caller.Role, createdBy, assignedTo) {
		return domain.ErrForbidden
	}
	return nil
}

func toUnitResponses(list []*entity.SoldUnit) []*dto.UnitResponse {
	out := make([]*dto.UnitResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUnitResponse(u))
	}
	return out
}

func toUnitResponse(u *entity.SoldUnit) *dto.UnitResponse {
	return &dto.UnitResponse{
		ID:         u.ID,
		CustomerID: u.CustomerID,
		POSID:      u.POSID,
		Brand:      u.Brand,
		Model:      u.Model,
		Year:       u.Year,
		HP:         u.HP,
		Status:     u.Status,
		Hours:      u.Hours,
		Comments:   u.Comments,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
