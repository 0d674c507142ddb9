// internal/produto/model.go
package produto

import "time"

// Produto é o item de catálogo. O estoque nunca fica negativo: além das
// validações de entrada, o banco carrega um CHECK e a baixa de estoque da
// venda é condicional.
type Produto struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Preco     float64   `gorm:"not null" json:"price"`
	Estoque   int       `gorm:"not null;default:0;check:estoque >= 0" json:"stock"`
	Categoria string    `gorm:"size:255;not null" json:"category"`
	Descricao *string   `gorm:"size:1000" json:"description,omitempty"`
	ImageURL  *string   `gorm:"size:1000" json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Produto) TableName() string { return "produtos" }

// Filtro restringe a listagem do catálogo.
type Filtro struct {
	Busca     string
	Categoria string
	PrecoMin  *float64
	PrecoMax  *float64
}
