// /internal/handler/produto_handler.go
package handler

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/mcarvalho/controle-loja/internal/model"
	"github.com/mcarvalho/controle-loja/internal/repository"
)

// ProdutoHandler agrupa as rotas de cadastro, pesquisa e edição de
// produtos do dashboard.
type ProdutoHandler struct {
	Store    *sessions.CookieStore
	Produtos *repository.ProdutoRepository
}

// parseValidade aceita o formato do <input type="date"> e, como
// alternativa, RFC 3339 completo.
func parseValidade(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ShowCadastroProdutoPage renderiza o formulário de produto. O mesmo
// template exibe os resultados da pesquisa quando houver.
func (h *ProdutoHandler) ShowCadastroProdutoPage(c *gin.Context) {
	flashesSuccess, flashesError := lerFlashes(c, h.Store)

	c.HTML(http.StatusOK, "cadproduto.html", gin.H{
		"FlashesSuccess": flashesSuccess,
		"FlashesError":   flashesError,
	})
}

// ProcessCadastroProdutoForm valida e persiste um novo produto. As
// falhas de validação são acumuladas; nenhum registro parcial é criado.
func (h *ProdutoHandler) ProcessCadastroProdutoForm(c *gin.Context) {
	nomeProduto := c.PostForm("nomeproduto")
	precoStr := c.PostForm("preco")
	precoVendaStr := c.PostForm("precovenda")
	validadeStr := c.PostForm("validade")
	quantidadeStr := c.PostForm("quantidade")

	var erros []string

	if nomeProduto == "" {
		erros = append(erros, "Nome do produto inválido!")
	}

	preco, err := strconv.ParseFloat(precoStr, 64)
	if precoStr == "" || err != nil || math.IsNaN(preco) || math.IsInf(preco, 0) {
		erros = append(erros, "Preço inválido!")
	}

	precoVenda, err := strconv.ParseFloat(precoVendaStr, 64)
	if precoVendaStr == "" || err != nil || math.IsNaN(precoVenda) || math.IsInf(precoVenda, 0) {
		erros = append(erros, "Preço de venda inválido!")
	}

	validade, err := parseValidade(validadeStr)
	if validadeStr == "" || err != nil {
		erros = append(erros, "Validade inválida!")
	}

	quantidade, err := strconv.Atoi(quantidadeStr)
	if quantidadeStr == "" || err != nil {
		erros = append(erros, "Quantidade inválida!")
	}

	if len(erros) > 0 {
		c.HTML(http.StatusOK, "cadproduto.html", gin.H{"Erros": erros})
		return
	}

	novoProduto := model.Produto{
		NomeProduto: nomeProduto,
		Preco:       preco,
		PrecoVenda:  precoVenda,
		Validade:    validade,
		Quantidade:  quantidade,
	}

	session, _ := h.Store.Get(c.Request, SessionName)
	if err := h.Produtos.Criar(&novoProduto); err != nil {
		log.Printf("Erro ao cadastrar o produto: %v", err)
		session.AddFlash("Erro ao cadastrar o produto", "error")
		session.Save(c.Request, c.Writer)
		c.Redirect(http.StatusFound, "/cadastrarproduto")
		return
	}

	session.AddFlash("Produto cadastrado com sucesso!", "success")
	session.Save(c.Request, c.Writer)
	c.Redirect(http.StatusFound, "/cadastrarproduto")
}

// SearchProdutos pesquisa produtos por substring do nome, sem
// diferenciar maiúsculas. Sem termo de pesquisa, lista tudo. Lista
// vazia não é erro: vira apenas o aviso "nenhum produto encontrado".
func (h *ProdutoHandler) SearchProdutos(c *gin.Context) {
	pesquisar := c.Query("pesquisar")

	var (
		produtos []model.Produto
		err      error
		errorMsg string
	)
	if pesquisar != "" {
		produtos, err = h.Produtos.BuscarPorNome(pesquisar)
		if err == nil && len(produtos) == 0 {
			errorMsg = "Nenhum produto encontrado."
		}
	} else {
		produtos, err = h.Produtos.ListarTodos()
	}

	if err != nil {
		log.Printf("Erro ao pesquisar os produtos: %v", err)
		session, _ := h.Store.Get(c.Request, SessionName)
		session.AddFlash("Erro ao pesquisar os produtos", "error")
		session.Save(c.Request, c.Writer)
		c.Redirect(http.StatusFound, "/cadastrarproduto")
		return
	}

	c.HTML(http.StatusOK, "cadproduto.html", gin.H{
		"Produtos": produtos,
		"ErrorMsg": errorMsg,
	})
}

// ShowEditProdutoPage renderiza o formulário de edição, pré-preenchido
// quando um id válido é informado na query string.
func (h *ProdutoHandler) ShowEditProdutoPage(c *gin.Context) {
	data := gin.H{}

	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err == nil {
			if produto, err := h.Produtos.BuscarPorID(uint(id)); err == nil {
				data["Produto"] = produto
			}
		}
	}

	c.HTML(http.StatusOK, "editproduto.html", data)
}

// ProcessEditProdutoForm ainda não persiste nada.
// TODO: implementar a atualização de produto quando a tela de edição
// for concluída.
func (h *ProdutoHandler) ProcessEditProdutoForm(c *gin.Context) {
	session, _ := h.Store.Get(c.Request, SessionName)
	session.AddFlash("Edição de produto em construção.", "error")
	session.Save(c.Request, c.Writer)
	c.Redirect(http.StatusFound, "/cadastrarproduto")
}
