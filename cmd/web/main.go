// /cmd/web/main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"

	"github.com/mcarvalho/controle-loja/internal/auth"
	"github.com/mcarvalho/controle-loja/internal/config"
	"github.com/mcarvalho/controle-loja/internal/database"
	"github.com/mcarvalho/controle-loja/internal/handler"
	"github.com/mcarvalho/controle-loja/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.SeedAdmin(db); err != nil {
		log.Fatal("Falha ao criar o cliente administrador: ", err)
	}

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	clienteRepo := repository.NewClienteRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	autenticador := auth.NewClienteLocal(clienteRepo)

	clienteHandler := &handler.ClienteHandler{Store: store, Clientes: clienteRepo, Auth: autenticador}
	produtoHandler := &handler.ProdutoHandler{Store: store, Produtos: produtoRepo}
	homeHandler := &handler.HomeHandler{Store: store}

	router := gin.Default()
	router.LoadHTMLGlob("internal/view/templates/*")

	router.GET("/", homeHandler.ShowHomePage)

	// Cadastro e autenticação de clientes
	router.GET("/cadastro", clienteHandler.ShowCadastroPage)
	router.POST("/cadastro", clienteHandler.ProcessCadastroForm)
	router.GET("/login", clienteHandler.ShowLoginPage)
	router.POST("/login/cliente", clienteHandler.ProcessLoginForm)
	router.GET("/dashboard", clienteHandler.ShowDashboard)
	router.GET("/sair", clienteHandler.Logout)

	// Funções do dashboard
	router.GET("/cadastrarproduto", produtoHandler.ShowCadastroProdutoPage)
	router.POST("/cadastrarproduto", produtoHandler.ProcessCadastroProdutoForm)
	router.GET("/pesquisarproduto", produtoHandler.SearchProdutos)
	router.GET("/editarproduto", produtoHandler.ShowEditProdutoPage)
	router.POST("/editarproduto", produtoHandler.ProcessEditProdutoForm)

	log.Printf("Servidor rodando na porta %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Erro ao iniciar o servidor: ", err)
	}
}
