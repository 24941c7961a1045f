package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/souhiir1/invoicing-backend/internal/account"
	accountdomain "github.com/souhiir1/invoicing-backend/internal/account/domain"
	"github.com/souhiir1/invoicing-backend/internal/auth"
	"github.com/souhiir1/invoicing-backend/internal/auth/token"
	"github.com/souhiir1/invoicing-backend/internal/balance"
	"github.com/souhiir1/invoicing-backend/internal/client"
	clientdomain "github.com/souhiir1/invoicing-backend/internal/client/domain"
	"github.com/souhiir1/invoicing-backend/internal/config"
	"github.com/souhiir1/invoicing-backend/internal/invoice"
	invoicedomain "github.com/souhiir1/invoicing-backend/internal/invoice/domain"
	"github.com/souhiir1/invoicing-backend/internal/project"
	projectdomain "github.com/souhiir1/invoicing-backend/internal/project/domain"
	"github.com/souhiir1/invoicing-backend/internal/providers"
	"github.com/souhiir1/invoicing-backend/internal/providers/pdf"
	"github.com/souhiir1/invoicing-backend/internal/subscription"
	subscriptiondomain "github.com/souhiir1/invoicing-backend/internal/subscription/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	auth.Module,
	providers.Module,
	account.Module,
	balance.Module,
	client.Module,
	project.Module,
	invoice.Module,
	subscription.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger) *gin.Engine {
	return NewEngine(log)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	db              *gorm.DB
	genID           *snowflake.Node
	signer          *token.Signer
	accountSvc      accountdomain.Service
	clientSvc       clientdomain.Service
	projectSvc      projectdomain.Service
	invoiceSvc      invoicedomain.Service
	subscriptionSvc subscriptiondomain.Service
	pdfProvider     pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	DB              *gorm.DB
	GenID           *snowflake.Node
	Signer          *token.Signer
	AccountSvc      accountdomain.Service
	ClientSvc       clientdomain.Service
	ProjectSvc      projectdomain.Service
	InvoiceSvc      invoicedomain.Service
	SubscriptionSvc subscriptiondomain.Service
	PDFProvider     pdf.Provider
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		db:              p.DB,
		genID:           p.GenID,
		signer:          p.Signer,
		accountSvc:      p.AccountSvc,
		clientSvc:       p.ClientSvc,
		projectSvc:      p.ProjectSvc,
		invoiceSvc:      p.InvoiceSvc,
		subscriptionSvc: p.SubscriptionSvc,
		pdfProvider:     p.PDFProvider,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)
	authGroup.POST("/forgot-password", s.ForgotPassword)
	authGroup.POST("/reset-password", s.ResetPassword)

	// Gateway callback carries no bearer token.
	api.POST("/subscription/paymee-callback", s.PaymeeCallback)

	protected := api.Group("")
	protected.Use(s.AuthRequired())

	protected.GET("/users/me", s.GetProfile)
	protected.PUT("/users/change-password", s.ChangePassword)
	protected.PUT("/users/profile", s.UpdateProfile)
	protected.DELETE("/users/profile", s.DeleteAccount)

	protected.GET("/clients", s.ListClients)
	protected.GET("/clients/with-meta", s.ListClientsWithMeta)
	protected.POST("/clients", s.CreateClient)
	protected.GET("/clients/:id", s.GetClient)
	protected.PUT("/clients/:id", s.UpdateClient)
	protected.DELETE("/clients/:id", s.DeleteClient)
	protected.GET("/clients/:id/details", s.GetClientDetails)

	protected.GET("/projects", s.ListProjects)
	protected.POST("/projects", s.CreateProject)
	protected.PUT("/projects/:id", s.UpdateProject)
	protected.DELETE("/projects/:id", s.DeleteProject)
	protected.PUT("/projects/:id/statut", s.UpdateProjectStatus)
	protected.GET("/projects/byClient/:clientId", s.ListProjectsByClient)

	protected.GET("/invoices/nextRef", s.NextInvoiceRef)
	protected.GET("/invoices", s.ListInvoices)
	protected.POST("/invoices", s.CreateInvoice)
	protected.GET("/invoices/:id", s.GetInvoice)
	protected.PUT("/invoices/:id", s.UpdateInvoice)
	protected.DELETE("/invoices/:id", s.DeleteInvoice)

	protected.GET("/pdf/:invoiceId", s.InvoicePDF)

	protected.GET("/subscription/status", s.SubscriptionStatus)
	protected.POST("/subscription/create-payment", s.CreateSubscriptionPayment)
	protected.POST("/subscription/initiate", s.InitiateSubscription)
	protected.GET("/subscription/payments", s.ListSubscriptionPayments)
}
