// /internal/auth/authenticator.go
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcarvalho/controle-loja/internal/model"
)

// ErrCredenciaisInvalidas é o único erro visível para quem chama o
// autenticador. E-mail desconhecido e senha errada retornam o mesmo
// valor para não entregar quais contas existem.
var ErrCredenciaisInvalidas = errors.New("e-mail ou senha inválidos")

// ClienteBuscador é o que o autenticador precisa da camada de
// persistência. O ClienteRepository satisfaz a interface.
type ClienteBuscador interface {
	BuscarPorEmail(email string) (*model.Cliente, error)
}

// Authenticator verifica credenciais submetidas no login. Hoje só
// existe a estratégia local (e-mail + hash no banco), mas o handler de
// login depende apenas da interface.
type Authenticator interface {
	Autenticar(email, senha string) (*model.Cliente, error)
}

// ClienteLocal autentica contra os clientes cadastrados no banco.
type ClienteLocal struct {
	Clientes ClienteBuscador
}

func NewClienteLocal(clientes ClienteBuscador) *ClienteLocal {
	return &ClienteLocal{Clientes: clientes}
}

// hashFalso mantém o custo do bcrypt mesmo quando o e-mail não existe,
// para a duração da requisição não denunciar contas cadastradas.
const hashFalso = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (a *ClienteLocal) Autenticar(email, senha string) (*model.Cliente, error) {
	cliente, err := a.Clientes.BuscarPorEmail(email)

	hash := hashFalso
	if err == nil {
		hash = cliente.Senha
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))

	if err != nil || compareErr != nil {
		return nil, ErrCredenciaisInvalidas
	}
	return cliente, nil
}
