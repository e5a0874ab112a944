// /internal/repository/cliente_repository.go
package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/mcarvalho/controle-loja/internal/model"
)

// ClienteRepository concentra o acesso à tabela de clientes.
// O *gorm.DB é injetado na construção; não há handle global.
type ClienteRepository struct {
	DB *gorm.DB
}

func NewClienteRepository(db *gorm.DB) *ClienteRepository {
	return &ClienteRepository{DB: db}
}

// BuscarPorEmail retorna o cliente com o e-mail informado.
// Quando não existe, o erro é gorm.ErrRecordNotFound.
func (r *ClienteRepository) BuscarPorEmail(email string) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.DB.Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClienteRepository) BuscarPorID(id uint) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClienteRepository) Criar(c *model.Cliente) error {
	return r.DB.Create(c).Error
}

// IsDuplicateEmail reconhece violações do índice único de e-mail.
// A verificação prévia no cadastro é apenas cortesia; a restrição do
// banco é quem garante a unicidade de fato.
func IsDuplicateEmail(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
