// /internal/auth/hasher.go
package auth

import "golang.org/x/crypto/bcrypt"

// HashSenha retorna o hash bcrypt da senha em texto puro.
// O custo padrão do bcrypt (10) gera um salt aleatório por chamada.
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	return string(hash), err
}

// VerificarSenha compara o hash bcrypt com a senha em texto puro.
// Hash malformado conta como senha errada, nunca como pânico ou erro.
func VerificarSenha(hash, senha string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	return err == nil
}
