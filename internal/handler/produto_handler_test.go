// /internal/handler/produto_handler_test.go
package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mcarvalho/controle-loja/internal/model"
)

func countProdutos(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.Produto{}).Count(&count).Error)
	return count
}

func seedProdutos(t *testing.T, db *gorm.DB) {
	t.Helper()
	validade := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, nome := range []string{"Widget", "WIDGET-2", "Parafuso"} {
		require.NoError(t, db.Create(&model.Produto{
			NomeProduto: nome,
			Preco:       10.5,
			PrecoVenda:  15.0,
			Validade:    validade,
			Quantidade:  3,
		}).Error)
	}
}

func TestShowCadastroProdutoPage(t *testing.T) {
	router := setupRouter(t, setupTestDB(t))

	recorder := getPage(router, "/cadastrarproduto", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "<title>Cadastrar Produto - Controle de Loja</title>")
}

func TestProcessCadastroProdutoForm(t *testing.T) {
	t.Run("preço não numérico falha sem persistir", func(t *testing.T) {
		db := setupTestDB(t)
		router := setupRouter(t, db)

		form := url.Values{
			"nomeproduto": {"Widget"},
			"preco":       {"abc"},
			"precovenda":  {"15.0"},
			"validade":    {"2025-01-01"},
			"quantidade":  {"3"},
		}
		recorder := postForm(router, "/cadastrarproduto", form, nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Preço inválido!")
		assert.EqualValues(t, 0, countProdutos(t, db), "nenhum registro parcial pode ser criado")
	})

	t.Run("formulário vazio acumula todos os erros", func(t *testing.T) {
		db := setupTestDB(t)
		router := setupRouter(t, db)

		recorder := postForm(router, "/cadastrarproduto", url.Values{}, nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		body := recorder.Body.String()
		assert.Contains(t, body, "Nome do produto inválido!")
		assert.Contains(t, body, "Preço inválido!")
		assert.Contains(t, body, "Preço de venda inválido!")
		assert.Contains(t, body, "Validade inválida!")
		assert.Contains(t, body, "Quantidade inválida!")
		assert.EqualValues(t, 0, countProdutos(t, db))
	})

	t.Run("quantidade fracionária é rejeitada", func(t *testing.T) {
		db := setupTestDB(t)
		router := setupRouter(t, db)

		form := url.Values{
			"nomeproduto": {"Widget"},
			"preco":       {"10.5"},
			"precovenda":  {"15.0"},
			"validade":    {"2025-01-01"},
			"quantidade":  {"3.5"},
		}
		recorder := postForm(router, "/cadastrarproduto", form, nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Quantidade inválida!")
		assert.EqualValues(t, 0, countProdutos(t, db))
	})

	t.Run("sucesso persiste e volta ao formulário", func(t *testing.T) {
		db := setupTestDB(t)
		router := setupRouter(t, db)

		form := url.Values{
			"nomeproduto": {"Widget"},
			"preco":       {"10.5"},
			"precovenda":  {"15.0"},
			"validade":    {"2025-01-01"},
			"quantidade":  {"3"},
		}
		recorder := postForm(router, "/cadastrarproduto", form, nil)

		assert.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "/cadastrarproduto", recorder.Header().Get("Location"))

		var produto model.Produto
		require.NoError(t, db.Where("nome_produto = ?", "Widget").First(&produto).Error)
		assert.Equal(t, 3, produto.Quantidade, "quantidade deve ser persistida como inteiro")
		assert.Equal(t, 10.5, produto.Preco)
		assert.Equal(t, 15.0, produto.PrecoVenda)
		assert.Equal(t, 2025, produto.Validade.Year(), "validade deve ser normalizada para data")

		// O formulário seguinte exibe o flash de sucesso.
		formPage := getPage(router, "/cadastrarproduto", recorder.Result().Cookies())
		assert.Contains(t, formPage.Body.String(), "Produto cadastrado com sucesso!")
	})
}

func TestSearchProdutos(t *testing.T) {
	t.Run("substring sem diferenciar maiúsculas", func(t *testing.T) {
		db := setupTestDB(t)
		router := setupRouter(t, db)
		seedProdutos(t, db)

		recorder := getPage(router, "/pesquisarproduto?pesquisar=wid", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		body := recorder.Body.String()
		assert.Contains(t, body, "Widget")
		assert.Contains(t, body, "WIDGET-2")
		assert.NotContains(t, body, "Parafuso")
	})

	t.Run("sem termo lista todos os produtos", func(t *testing.T) {
		db := setupTestDB(t)
		router := setupRouter(t, db)
		seedProdutos(t, db)

		recorder := getPage(router, "/pesquisarproduto", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		body := recorder.Body.String()
		assert.Contains(t, body, "Widget")
		assert.Contains(t, body, "WIDGET-2")
		assert.Contains(t, body, "Parafuso")
	})

	t.Run("nenhum resultado mostra aviso, não erro", func(t *testing.T) {
		db := setupTestDB(t)
		router := setupRouter(t, db)
		seedProdutos(t, db)

		recorder := getPage(router, "/pesquisarproduto?pesquisar=inexistente", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Nenhum produto encontrado.")
	})
}

func TestShowEditProdutoPage(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(t, db)
	seedProdutos(t, db)

	var produto model.Produto
	require.NoError(t, db.Where("nome_produto = ?", "Widget").First(&produto).Error)

	recorder := getPage(router, "/editarproduto?id="+strconv.FormatUint(uint64(produto.ID), 10), nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `value="Widget"`)
}

func TestProcessEditProdutoForm_NaoPersiste(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(t, db)
	seedProdutos(t, db)

	form := url.Values{
		"nomeproduto": {"Widget Renomeado"},
		"preco":       {"99.9"},
		"precovenda":  {"120.0"},
		"validade":    {"2026-01-01"},
		"quantidade":  {"10"},
	}
	recorder := postForm(router, "/editarproduto", form, nil)

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/cadastrarproduto", recorder.Header().Get("Location"))

	var count int64
	db.Model(&model.Produto{}).Where("nome_produto = ?", "Widget Renomeado").Count(&count)
	assert.EqualValues(t, 0, count, "a edição ainda não grava nada")
	assert.EqualValues(t, 3, countProdutos(t, db))
}
