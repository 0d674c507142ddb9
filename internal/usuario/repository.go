// internal/usuario/repository.go
package usuario

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/TechMarket/api-vendas/internal/apperr"
	"github.com/TechMarket/api-vendas/internal/banco"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(ctx context.Context, u *Usuario) error {
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		if banco.EhViolacaoUnicidade(err) {
			return apperr.RegraDeNegocio("Username já existe")
		}
		return apperr.Interno(err, "Erro ao criar usuário")
	}
	return nil
}

func (r *Repository) ListarTodos(ctx context.Context) ([]Usuario, error) {
	var usuarios []Usuario
	if err := r.DB.WithContext(ctx).Order("id").Find(&usuarios).Error; err != nil {
		return nil, apperr.Interno(err, "Erro ao buscar usuários")
	}
	return usuarios, nil
}

func (r *Repository) BuscarPorID(ctx context.Context, id uint) (*Usuario, error) {
	var u Usuario
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NaoEncontrado("Usuário não encontrado")
		}
		return nil, apperr.Interno(err, "Erro ao buscar usuário")
	}
	return &u, nil
}

// BuscarPorNomeDeUsuario alimenta o login. Not-found sai como NaoEncontrado
// e cabe ao chamador não revelar qual campo falhou.
func (r *Repository) BuscarPorNomeDeUsuario(ctx context.Context, nome string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.WithContext(ctx).Where("nome_de_usuario = ?", nome).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NaoEncontrado("Usuário não encontrado")
		}
		return nil, apperr.Interno(err, "Erro ao buscar usuário")
	}
	return &u, nil
}

func (r *Repository) Atualizar(ctx context.Context, u *Usuario) error {
	if err := r.DB.WithContext(ctx).Save(u).Error; err != nil {
		if banco.EhViolacaoUnicidade(err) {
			return apperr.RegraDeNegocio("Username já existe")
		}
		return apperr.Interno(err, "Erro ao atualizar usuário")
	}
	return nil
}

func (r *Repository) Deletar(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&Usuario{}, id)
	if res.Error != nil {
		if banco.EhViolacaoChaveEstrangeira(res.Error) {
			return apperr.RegraDeNegocio("Usuário possui dependências e não pode ser removido")
		}
		return apperr.Interno(res.Error, "Erro ao remover usuário")
	}
	if res.RowsAffected == 0 {
		return apperr.NaoEncontrado("Usuário não encontrado")
	}
	return nil
}
