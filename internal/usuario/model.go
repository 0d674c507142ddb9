// internal/usuario/model.go
package usuario

import "time"

const (
	PapelAdmin   = "admin"
	PapelUsuario = "user"
)

// Usuario é a conta que autentica na loja. A senha guarda apenas o hash
// bcrypt e nunca sai em resposta alguma.
type Usuario struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	NomeDeUsuario string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Senha         string    `gorm:"size:255;not null" json:"-"`
	Papel         string    `gorm:"size:20;not null;default:user" json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (Usuario) TableName() string { return "usuarios" }

// PapelValido aceita apenas os papéis conhecidos.
func PapelValido(papel string) bool {
	return papel == PapelAdmin || papel == PapelUsuario
}
