// /internal/database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mcarvalho/controle-loja/internal/model"
)

// Connect abre a conexão com o Postgres a partir da URL completa e
// roda as migrações. O handle é devolvido para ser injetado nos
// repositórios; não existe variável global de banco.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao banco de dados: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate cria/atualiza as tabelas dos modelos da aplicação. O índice
// único de email em Cliente nasce aqui e é a garantia real contra
// cadastro duplicado.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Cliente{}, &model.Produto{}); err != nil {
		return fmt.Errorf("falha ao executar migrações: %w", err)
	}
	return nil
}
