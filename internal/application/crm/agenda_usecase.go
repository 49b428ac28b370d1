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

// AgendaUseCase casos de uso de la agenda personal.
type AgendaUseCase struct {
	repo   repository.AgendaRepository
	policy authz.Policy
}

// NewAgendaUseCase construye el caso de uso.
func NewAgendaUseCase(repo repository.AgendaRepository, policy authz.Policy) *AgendaUseCase {
	return &AgendaUseCase{repo: repo, policy: policy}
}

// Create crea un ítem de agenda del llamador. Status por defecto pendiente.
func (uc *AgendaUseCase) Create(caller Identity, in dto.CreateAgendaRequest) (*dto.AgendaResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.AgendaPendiente
	}
	now := time.Now()
	item := &entity.AgendaItem{
		ID:          uuid.New().String(),
		UserID:      caller.UserID,
		Title:       in.Title,
		Description: in.Description,
		ScheduledAt: in.ScheduledAt,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toAgendaResponse(item), nil
}

// List lista la agenda. Roles privilegiados ven todo; el resto solo lo propio.
func (uc *AgendaUseCase) List(caller Identity, page dto.PageRequest) ([]*dto.AgendaResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.AgendaItem
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
	out := make([]*dto.AgendaResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAgendaResponse(a))
	}
	return out, nil
}

// Update modifica un ítem. Requiere rol privilegiado o ser el dueño. El
// estado es libremente asignable, sin orden obligado.
func (uc *AgendaUseCase) Update(caller Identity, id string, in dto.UpdateAgendaRequest) (*dto.AgendaResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if !uc.policy.CanManage(caller.UserID, caller.Role, item.UserID, "") {
		return nil, domain.ErrForbidden
	}
	item.Title = in.Title
	item.Description = in.Description
	item.ScheduledAt = in.ScheduledAt
	item.Status = in.Status
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toAgendaResponse(item), nil
}

// Delete elimina un ítem. Misma política que Update.
func (uc *AgendaUseCase) Delete(caller Identity, id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	if !uc.policy.CanManage(caller.UserID, caller.Role, item.UserID, "") {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toAgendaResponse(a *entity.AgendaItem) *dto.AgendaResponse {
	return &dto.AgendaResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Title:       a.Title,
		Description: a.Description,
		ScheduledAt: a.ScheduledAt,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
