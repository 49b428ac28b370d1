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

// POSUseCase casos de uso de puntos de venta. Misma política que clientes.
type POSUseCase struct {
	repo   repository.POSRepository
	policy authz.Policy
}

// NewPOSUseCase construye el caso de uso.
func NewPOSUseCase(repo repository.POSRepository, policy authz.Policy) *POSUseCase {
	return &POSUseCase{repo: repo, policy: policy}
}

// Create crea un punto de venta propiedad del llamador.
func (uc *POSUseCase) Create(caller Identity, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	assigned := in.AssignedTo
	if assigned == "" {
		assigned = caller.UserID
	}
	now := time.Now()
	pos := &entity.PointOfSale{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Company:    in.Company,
		Phone:      in.Phone,
		Email:      in.Email,
		Localidad:  in.Localidad,
		Sector:     in.Sector,
		Type:       entity.TypePOS,
		AssignedTo: assigned,
		CreatedBy:  caller.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(pos); err != nil {
		return nil, err
	}
	return toPOSResponse(pos), nil
}

// List lista puntos de venta con el mismo filtro de visibilidad que clientes.
func (uc *POSUseCase) List(caller Identity, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.PointOfSale
		err  error
	)
	if uc.policy.IsPrivileged(caller.Role) {
		list, err = uc.repo.List(page.Limit, page.Offset)
	} else {
		list, err = uc.repo.ListByUser(caller.UserID, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPOSResponse(p))
	}
	return out, nil
}

// Update modifica un punto de venta. Requiere rol privilegiado o propiedad.
func (uc *POSUseCase) Update(caller Identity, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	pos, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pos == nil {
		return nil, domain.ErrNotFound
	}
	if !uc.policy.CanManage(caller.UserID, caller.Role, pos.CreatedBy, pos.AssignedTo) {
		return nil, domain.ErrForbidden
	}
	pos.Name = in.Name
	pos.Company = in.Company
	pos.Phone = in.Phone
	pos.Email = in.Email
	pos.Localidad = in.Localidad
	pos.Sector = in.Sector
	if in.AssignedTo != "" {
		pos.AssignedTo = in.AssignedTo
	}
	pos.UpdatedAt = time.Now()
	if err := uc.repo.Update(pos); err != nil {
		return nil, err
	}
	return toPOSResponse(pos), nil
}

// Delete elimina un punto de venta.
func (uc *POSUseCase) Delete(caller Identity, id string) error {
	pos, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if pos == nil {
		return domain.ErrNotFound
	}
	if !uc.policy.CanManage(caller.UserID, caller.Role, pos.CreatedBy, pos.AssignedTo) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toPOSResponse(p *entity.PointOfSale) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:         p.ID,
		Name:       p.Name,
		Company:    p.Company,
		Phone:      p.Phone,
		Email:      p.Email,
		Localidad:  p.Localidad,
		Sector:     p.Sector,
		Type:       p.Type,
		AssignedTo: p.AssignedTo,
		CreatedBy:  p.CreatedBy,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
