// internal/venda/dto.go
package venda

// ItemVendaInput é a linha do carrinho como o cliente enviou. Nome e preço
// são comparados com o produto vivo antes de qualquer baixa de estoque.
type ItemVendaInput struct {
	ProdutoID  int     `json:"productId"`
	Nome       string  `json:"name"`
	Preco      float64 `json:"price"`
	Quantidade int     `json:"quantity"`
}

type CriarVendaInput struct {
	Cliente         string           `json:"client"`
	Total           float64          `json:"total"`
	MetodoPagamento MetodoPagamento  `json:"paymentMethod"`
	Itens           []ItemVendaInput `json:"items"`
}

// AtualizarVendaInput altera só os campos administrativos. Itens e estoque
// nunca mudam por aqui.
type AtualizarVendaInput struct {
	Cliente         *string          `json:"client"`
	Total           *float64         `json:"total"`
	MetodoPagamento *MetodoPagamento `json:"paymentMethod"`
}
