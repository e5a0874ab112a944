// /internal/database/seed.go
package database

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/mcarvalho/controle-loja/internal/auth"
	"github.com/mcarvalho/controle-loja/internal/model"
)

// SeedAdmin garante que o cliente administrador exista. Idempotente:
// se o e-mail já está cadastrado, não faz nada.
func SeedAdmin(db *gorm.DB) error {
	var cliente model.Cliente
	err := db.Where("email = ?", "admin@controleloja.com").First(&cliente).Error

	if err == nil {
		log.Println("Cliente administrador já existe.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	log.Println("Cliente administrador não encontrado, criando um novo...")
	senhaHash, err := auth.HashSenha("senhaforte123")
	if err != nil {
		return err
	}

	admin := model.Cliente{
		Nome:  "Administrador",
		Email: "admin@controleloja.com",
		Senha: senhaHash,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Cliente administrador criado com sucesso.")
	return nil
}
