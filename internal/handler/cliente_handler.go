// /internal/handler/cliente_handler.go
package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"

	"github.com/mcarvalho/controle-loja/internal/auth"
	"github.com/mcarvalho/controle-loja/internal/model"
	"github.com/mcarvalho/controle-loja/internal/repository"
)

// SessionName é o nome do cookie de sessão usado pelo app inteiro.
const SessionName = "controle-loja-session"

// ClienteHandler agrupa as rotas de cadastro, login, dashboard e logout.
type ClienteHandler struct {
	Store    *sessions.CookieStore
	Clientes *repository.ClienteRepository
	Auth     auth.Authenticator
}

// lerFlashes consome as mensagens one-shot da sessão e persiste a
// remoção. Deve ser chamada apenas por handlers que vão renderizar.
func lerFlashes(c *gin.Context, store *sessions.CookieStore) (success, errs []interface{}) {
	session, _ := store.Get(c.Request, SessionName)
	success = session.Flashes("success")
	errs = session.Flashes("error")
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("AVISO: erro ao salvar sessão ao ler flashes: %v", err)
	}
	return success, errs
}

// ShowCadastroPage renderiza a página de cadastro e exibe flash messages.
func (h *ClienteHandler) ShowCadastroPage(c *gin.Context) {
	flashesSuccess, flashesError := lerFlashes(c, h.Store)

	c.HTML(http.StatusOK, "cadastro.html", gin.H{
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}

// ProcessCadastroForm valida e processa o formulário de cadastro.
// Todas as falhas de validação são acumuladas e exibidas juntas; nada
// é persistido enquanto houver erro.
func (h *ClienteHandler) ProcessCadastroForm(c *gin.Context) {
	nome := c.PostForm("nome")
	email := c.PostForm("email")
	senha := c.PostForm("senha")
	senha2 := c.PostForm("senha2")

	var erros []string
	if nome == "" {
		erros = append(erros, "Nome inválido!")
	}
	if email == "" {
		erros = append(erros, "E-mail inválido!")
	}
	if senha == "" {
		erros = append(erros, "Senha inválida!")
	} else if len(senha) < 4 {
		erros = append(erros, "Senha muito curta!")
	}
	if senha != senha2 {
		erros = append(erros, "Senhas diferentes, tente novamente!")
	}

	if len(erros) > 0 {
		c.HTML(http.StatusOK, "cadastro.html", gin.H{"Erros": erros})
		return
	}

	// Verifica se já existe um cliente com o mesmo e-mail. É só uma
	// cortesia para a mensagem inline: quem garante unicidade é o
	// índice único no banco.
	_, err := h.Clientes.BuscarPorEmail(email)
	if err == nil {
		erros = append(erros, "E-mail já cadastrado!")
		c.HTML(http.StatusOK, "cadastro.html", gin.H{"Erros": erros})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Erro ao verificar cliente existente: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	senhaHash, err := auth.HashSenha(senha)
	if err != nil {
		log.Printf("Erro ao gerar hash da senha: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", nil)
		return
	}

	novoCliente := model.Cliente{
		Nome:  nome,
		Email: email,
		Senha: senhaHash,
	}
	if err := h.Clientes.Criar(&novoCliente); err != nil {
		if repository.IsDuplicateEmail(err) {
			// Outro cadastro venceu a corrida entre a verificação e o
			// insert; trata como o caso de e-mail repetido normal.
			erros = append(erros, "E-mail já cadastrado!")
			c.HTML(http.StatusOK, "cadastro.html", gin.H{"Erros": erros})
			return
		}
		log.Printf("Erro ao criar cliente: %v", err)
		session, _ := h.Store.Get(c.Request, SessionName)
		session.AddFlash("Houve um erro ao criar o usuário, tente novamente!", "error")
		session.Save(c.Request, c.Writer)
		c.Redirect(http.StatusFound, "/cadastro")
		return
	}

	session, _ := h.Store.Get(c.Request, SessionName)
	session.AddFlash("Cliente criado com sucesso!", "success")
	session.Save(c.Request, c.Writer)
	c.Redirect(http.StatusFound, "/login")
}

// ShowLoginPage renderiza a página de login e exibe flash messages.
func (h *ClienteHandler) ShowLoginPage(c *gin.Context) {
	flashesSuccess, flashesError := lerFlashes(c, h.Store)

	c.HTML(http.StatusOK, "login.html", gin.H{
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}

// ProcessLoginForm autentica o cliente via a estratégia injetada.
// Qualquer falha (e-mail desconhecido ou senha errada) produz a mesma
// mensagem genérica.
func (h *ClienteHandler) ProcessLoginForm(c *gin.Context) {
	session, _ := h.Store.Get(c.Request, SessionName)
	email := c.PostForm("email")
	senha := c.PostForm("senha")

	cliente, err := h.Auth.Autenticar(email, senha)
	if err != nil {
		session.AddFlash("E-mail ou senha inválidos.", "error")
		session.Save(c.Request, c.Writer)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session.Values["clienteID"] = cliente.ID
	session.Values["clienteNome"] = cliente.Nome
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("ERRO ao salvar sessão de login: %v", err)
		session.AddFlash("Erro ao iniciar a sessão. Tente novamente.", "error")
		_ = session.Save(c.Request, c.Writer)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowDashboard renderiza o painel com o estado de autenticação atual.
func (h *ClienteHandler) ShowDashboard(c *gin.Context) {
	session, _ := h.Store.Get(c.Request, SessionName)
	_, isAuthenticated := session.Values["clienteID"].(uint)
	clienteNome, _ := session.Values["clienteNome"].(string)

	flashesSuccess := session.Flashes("success")
	flashesError := session.Flashes("error")
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("AVISO: erro ao salvar sessão em ShowDashboard: %v", err)
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"IsAuthenticated": isAuthenticated,
		"ClienteNome":     clienteNome,
		"FlashesSuccess":  flashesSuccess,
		"FlashesError":    flashesError,
	})
}

// Logout encerra a sessão autenticada e volta para a página inicial.
func (h *ClienteHandler) Logout(c *gin.Context) {
	session, _ := h.Store.Get(c.Request, SessionName)
	delete(session.Values, "clienteID")
	delete(session.Values, "clienteNome")
	session.AddFlash("Deslogado com sucesso!", "success")

	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("Erro ao salvar sessão de logout: %v", err)
		session.AddFlash("Erro ao deslogar", "error")
		_ = session.Save(c.Request, c.Writer)
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.Redirect(http.StatusFound, "/")
}
