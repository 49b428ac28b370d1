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

// NoteUseCase casos de uso de notas de actividad, siempre en el ámbito de un
// cliente.
type NoteUseCase struct {
	repo         repository.CustomerNoteRepository
	customerRepo repository.CustomerRepository
	policy       authz.Policy
}

// NewNoteUseCase construye el caso de uso.
func NewNoteUseCase(repo repository.CustomerNoteRepository, customerRepo repository.CustomerRepository, policy authz.Policy) *NoteUseCase {
	return &NoteUseCase{repo: repo, customerRepo: customerRepo, policy: policy}
}

// Create crea una nota atribuida al llamador sobre el cliente indicado.
// ActionType por defecto NOTE si se omitió.
func (uc *NoteUseCase) Create(caller Identity, customerID string, in dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	actionType := in.ActionType
	if actionType == "" {
		actionType = entity.ActionNote
	}
	note := &entity.CustomerNote{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		UserID:        caller.UserID,
		Texto:         in.Texto,
		FechaVisita:   in.FechaVisita,
		ProximosPasos: in.ProximosPasos,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		ActionType:    actionType,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(note); err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

// List lista las notas de un cliente, más recientes primero.
func (uc *NoteUseCase) List(customerID string, page dto.PageRequest) ([]*dto.NoteResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCustomer(customerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NoteResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNoteResponse(n))
	}
	return out, nil
}

// Delete elimina una nota. Requiere rol privilegiado o ser el autor.
func (uc *NoteUseCase) Delete(caller Identity, customerID, noteID string) error {
	note, err := uc.repo.GetByID(noteID)
	if err != nil {
		return err
	}
	if note == nil || note.CustomerID != customerID {
		return domain.ErrNotFound
	}
	if !uc.policy.CanManage(caller.UserID, caller.Role, note.UserID, "") {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(noteID)
}

// RecentActivity feed global de actividad para el dashboard.
func (uc *NoteUseCase) RecentActivity(limit int) ([]*dto.NoteResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	list, err := uc.repo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NoteResponse, 0, len(list))
	for _, n := range list {
		out = append(out, toNoteResponse(n))
	}
	return out, nil
}

func toNoteResponse(n *entity.CustomerNote) *dto.NoteResponse {
	return &dto.NoteResponse{
		ID:            n.ID,
		CustomerID:    n.CustomerID,
		UserID:        n.UserID,
		Texto:         n.Texto,
		FechaVisita:   n.FechaVisita,
		ProximosPasos: n.ProximosPasos,
		Latitude:      n.Latitude,
		Longitude:     n.Longitude,
		ActionType:    n.ActionType,
		CreatedAt:     n.CreatedAt,
	}
}
