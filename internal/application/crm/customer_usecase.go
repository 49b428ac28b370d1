// Package crm contiene los casos de uso de clientes, puntos de venta,
// unidades, notas, agenda y el import masivo.
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

// Identity identidad del llamador autenticado, extraída del token.
type Identity struct {
	UserID string
	Role   string
}

// CustomerUseCase casos de uso de clientes.
type CustomerUseCase struct {
	repo   repository.CustomerRepository
	policy authz.Policy
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, policy authz.Policy) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, policy: policy}
}

// Create crea un cliente propiedad del llamador. Si no se indica asignado, el
// cliente queda asignado al creador.
func (uc *CustomerUseCase) Create(caller Identity, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	assigned := in.AssignedTo
	if assigned == "" {
		assigned = caller.UserID
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Company:    in.Company,
		Phone:      in.Phone,
		Email:      in.Email,
		Localidad:  in.Localidad,
		Sector:     in.Sector,
		Type:       entity.TypeClient,
		AssignedTo: assigned,
		CreatedBy:  caller.UserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes. Roles privilegiados ven todo; el resto solo los que
// crearon o tienen asignados.
func (uc *CustomerUseCase) List(caller Identity, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Customer
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
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update modifica un cliente. Requiere rol privilegiado o propiedad.
func (uc *CustomerUseCase) Update(caller Identity, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if !uc.policy.CanManage(caller.UserID, caller.Role, customer.CreatedBy, customer.AssignedTo) {
		return nil, domain.ErrForbidden
	}
	customer.Name = in.Name
	customer.Company = in.Company
	customer.Phone = in.Phone
	customer.Email = in.Email
	customer.Localidad = in.Localidad
	customer.Sector = in.Sector
	if in.AssignedTo != "" {
		customer.AssignedTo = in.AssignedTo
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Assign reasigna el cliente a otro usuario. Solo roles privilegiados.
func (uc *CustomerUseCase) Assign(caller Identity, id string, in dto.AssignCustomerRequest) error {
	if !uc.policy.IsPrivileged(caller.Role) {
		return domain.ErrForbidden
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateAssigned(id, in.AssignedTo)
}

// Delete elimina un cliente si nada lo referencia. El pre-chequeo devuelve los
// conteos al caller; la constraint FK cubre la carrera entre chequeo y borrado.
func (uc *CustomerUseCase) Delete(caller Identity, id string) (entity.CustomerRefs, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return entity.CustomerRefs{}, err
	}
	if customer == nil {
		return entity.CustomerRefs{}, domain.ErrNotFound
	}
	if !uc.policy.CanManage(caller.UserID, caller.Role, customer.CreatedBy, customer.AssignedTo) {
		return entity.CustomerRefs{}, domain.ErrForbidden
	}
	refs, err := uc.repo.CountRefs(id)
	if err != nil {
		return entity.CustomerRefs{}, err
	}
	if refs.Total() > 0 {
		return refs, domain.ErrCustomerInUse
	}
	return refs, uc.repo.Delete(id)
}

// BulkDelete borra varios clientes. Los que tienen referencias o no pasan la
// verificación de permisos quedan intactos y se reportan como omitidos.
func (uc *CustomerUseCase) BulkDelete(caller Identity, in dto.BulkDeleteRequest) (*dto.BulkDeleteResponse, error) {
	out := &dto.BulkDeleteResponse{Skipped: []string{}}
	for _, id := range in.IDs {
		if _, err := uc.Delete(caller, id); err != nil {
			out.Skipped = append(out.Skipped, id)
			continue
		}
		out.Deleted++
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Company:    c.Company,
		Phone:      c.Phone,
		Email:      c.Email,
		Localidad:  c.Localidad,
		Sector:     c.Sector,
		Type:       c.Type,
		AssignedTo: c.AssignedTo,
		CreatedBy:  c.CreatedBy,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
