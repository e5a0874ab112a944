// /internal/model/cliente.go
package model

import "time"

// Cliente representa um cliente cadastrado na loja.
// O campo Senha guarda sempre o hash bcrypt, nunca o texto puro.
type Cliente struct {
	ID        uint   `gorm:"primaryKey"`
	Nome      string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Senha     string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
