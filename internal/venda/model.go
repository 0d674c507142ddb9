// internal/venda/model.go
package venda

import (
	"time"

	"github.com/TechMarket/api-vendas/internal/produto"
	"github.com/TechMarket/api-vendas/internal/usuario"
)

type MetodoPagamento string

const (
	CartaoCredito MetodoPagamento = "credit_card"
	CartaoDebito  MetodoPagamento = "debit_card"
	Dinheiro      MetodoPagamento = "cash"
	Pix           MetodoPagamento = "pix"
)

func (m MetodoPagamento) Valido() bool {
	switch m {
	case CartaoCredito, CartaoDebito, Dinheiro, Pix:
		return true
	}
	return false
}

// Venda é o pedido fechado de um usuário. Itens guardam o retrato do produto
// no momento da compra.
type Venda struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	Cliente         string           `gorm:"size:255;not null" json:"client"`
	Total           float64          `gorm:"not null" json:"total"`
	MetodoPagamento MetodoPagamento  `gorm:"size:20;not null" json:"paymentMethod"`
	UsuarioID       uint             `gorm:"not null;index" json:"userId"`
	Usuario         *usuario.Usuario `gorm:"foreignKey:UsuarioID;constraint:OnDelete:RESTRICT" json:"user,omitempty"`
	Itens           []ItemVenda      `gorm:"foreignKey:VendaID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func (Venda) TableName() string { return "vendas" }

// ItemVenda referencia o produto mas não o acompanha: nome, preço e
// quantidade aqui são o registro histórico da venda e ficam intactos mesmo
// que o produto mude depois.
type ItemVenda struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	VendaID    uint             `gorm:"not null;index" json:"-"`
	ProdutoID  uint             `gorm:"not null;index" json:"productId"`
	Nome       string           `gorm:"size:255;not null" json:"name"`
	Preco      float64          `gorm:"not null" json:"price"`
	Quantidade int              `gorm:"not null" json:"quantity"`
	Produto    *produto.Produto `gorm:"foreignKey:ProdutoID;constraint:OnDelete:RESTRICT" json:"product,omitempty"`
}

func (ItemVenda) TableName() string { return "itens_venda" }
