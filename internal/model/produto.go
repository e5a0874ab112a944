// /internal/model/produto.go
package model

import "time"

// Produto representa um item do estoque da loja.
type Produto struct {
	ID          uint    `gorm:"primaryKey"`
	NomeProduto string  `gorm:"not null;size:255"`
	Preco       float64 `gorm:"not null"` // preço de custo
	PrecoVenda  float64 `gorm:"not null"`
	Validade    time.Time
	Quantidade  int `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
