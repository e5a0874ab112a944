// /internal/repository/produto_repository.go
package repository

import (
	"gorm.io/gorm"

	"github.com/mcarvalho/controle-loja/internal/model"
)

// ProdutoRepository concentra o acesso à tabela de produtos.
type ProdutoRepository struct {
	DB *gorm.DB
}

func NewProdutoRepository(db *gorm.DB) *ProdutoRepository {
	return &ProdutoRepository{DB: db}
}

func (r *ProdutoRepository) Criar(p *model.Produto) error {
	return r.DB.Create(p).Error
}

func (r *ProdutoRepository) ListarTodos() ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.DB.Order("created_at desc").Find(&produtos).Error
	return produtos, err
}

// BuscarPorNome faz busca por substring sem diferenciar maiúsculas de
// minúsculas. LOWER + LIKE funciona igual no Postgres e no SQLite usado
// nos testes.
func (r *ProdutoRepository) BuscarPorNome(termo string) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.DB.
		Where("LOWER(nome_produto) LIKE LOWER(?)", "%"+termo+"%").
		Order("created_at desc").
		Find(&produtos).Error
	return produtos, err
}

func (r *ProdutoRepository) BuscarPorID(id uint) (*model.Produto, error) {
	var p model.Produto
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
