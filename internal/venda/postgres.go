// internal/venda/postgres.go
package venda

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/TechMarket/api-vendas/internal/apperr"
	"github.com/TechMarket/api-vendas/internal/produto"
	"github.com/TechMarket/api-vendas/internal/usuario"
)

// RepositorioGorm implementa Repository sobre o Postgres via gorm.
type RepositorioGorm struct {
	DB *gorm.DB
}

func NewRepositorioGorm(db *gorm.DB) *RepositorioGorm {
	return &RepositorioGorm{DB: db}
}

func (r *RepositorioGorm) EmTransacao(ctx context.Context, fn func(tx Repository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&RepositorioGorm{DB: tx})
	})
}

func (r *RepositorioGorm) BuscarUsuario(ctx context.Context, id uint) (*usuario.Usuario, error) {
	var u usuario.Usuario
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Interno(err, "Erro ao buscar usuário")
	}
	return &u, nil
}

func (r *RepositorioGorm) BuscarProduto(ctx context.Context, id uint) (*produto.Produto, error) {
	var p produto.Produto
	if err := r.DB.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Interno(err, "Erro ao buscar produto")
	}
	return &p, nil
}

func (r *RepositorioGorm) BaixarEstoque(ctx context.Context, produtoID uint, quantidade int) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&produto.Produto{}).
		Where("id = ? AND estoque >= ?", produtoID, quantidade).
		UpdateColumn("estoque", gorm.Expr("estoque - ?", quantidade))
	if res.Error != nil {
		return 0, apperr.Interno(res.Error, "Erro ao atualizar estoque")
	}
	return res.RowsAffected, nil
}

func (r *RepositorioGorm) CriarVenda(ctx context.Context, v *Venda) error {
	if err := r.DB.WithContext(ctx).Create(v).Error; err != nil {
		return apperr.Interno(err, "Erro ao criar venda")
	}
	return nil
}

func (r *RepositorioGorm) comJuncoes(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Preload("Usuario").
		Preload("Itens", func(db *gorm.DB) *gorm.DB { return db.Order("itens_venda.id") }).
		Preload("Itens.Produto")
}

func (r *RepositorioGorm) BuscarPorID(ctx context.Context, id uint) (*Venda, error) {
	var v Venda
	if err := r.comJuncoes(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Interno(err, "Erro ao buscar venda")
	}
	return &v, nil
}

func (r *RepositorioGorm) ListarTodas(ctx context.Context) ([]Venda, error) {
	var vendas []Venda
	if err := r.comJuncoes(ctx).Order("created_at DESC").Find(&vendas).Error; err != nil {
		return nil, apperr.Interno(err, "Erro ao buscar vendas")
	}
	return vendas, nil
}

func (r *RepositorioGorm) ListarPorUsuario(ctx context.Context, usuarioID uint) ([]Venda, error) {
	var vendas []Venda
	err := r.comJuncoes(ctx).Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").Find(&vendas).Error
	if err != nil {
		return nil, apperr.Interno(err, "Erro ao buscar vendas do usuário")
	}
	return vendas, nil
}

func (r *RepositorioGorm) AtualizarCampos(ctx context.Context, id uint, entrada AtualizarVendaInput) (*Venda, error) {
	campos := map[string]any{}
	if entrada.Cliente != nil {
		campos["cliente"] = *entrada.Cliente
	}
	if entrada.Total != nil {
		campos["total"] = *entrada.Total
	}
	if entrada.MetodoPagamento != nil {
		campos["metodo_pagamento"] = *entrada.MetodoPagamento
	}

	if len(campos) > 0 {
		res := r.DB.WithContext(ctx).Model(&Venda{}).Where("id = ?", id).Updates(campos)
		if res.Error != nil {
			return nil, apperr.Interno(res.Error, "Erro ao atualizar venda")
		}
		if res.RowsAffected == 0 {
			return nil, apperr.NaoEncontrado("Venda não encontrada")
		}
	}

	v, err := r.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apperr.NaoEncontrado("Venda não encontrada")
	}
	return v, nil
}

func (r *RepositorioGorm) Deletar(ctx context.Context, id uint) error {
	return r.EmTransacao(ctx, func(tx Repository) error {
		db := tx.(*RepositorioGorm).DB
		if err := db.WithContext(ctx).Where("venda_id = ?", id).Delete(&ItemVenda{}).Error; err != nil {
			return apperr.Interno(err, "Erro ao remover venda")
		}
		res := db.WithContext(ctx).Delete(&Venda{}, id)
		if res.Error != nil {
			return apperr.Interno(res.Error, "Erro ao remover venda")
		}
		if res.RowsAffected == 0 {
			return apperr.NaoEncontrado("Venda não encontrada")
		}
		return nil
	})
}
