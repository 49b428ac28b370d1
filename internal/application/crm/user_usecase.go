package crm

import (
	"github.com/agroventas/crm-api/internal/application/auth"
	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/domain"
	"github.com/agroventas/crm-api/internal/domain/authz"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

// UserUseCase listado de usuarios, restringido a roles privilegiados.
type UserUseCase struct {
	repo   repository.UserRepository
	policy authz.Policy
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, policy authz.Policy) *UserUseCase {
	return &UserUseCase{repo: repo, policy: policy}
}

// List lista usuarios. Solo roles privilegiados.
func (uc *UserUseCase) List(caller Identity, page dto.PageRequest) ([]*dto.UserResponse, error) {
	if !uc.policy.IsPrivileged(caller.Role) {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}
