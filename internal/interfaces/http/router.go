package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	depositUC "crowdfund/internal/application/deposit/usecases"
	documentUC "crowdfund/internal/application/document/usecases"
	organizationUC "crowdfund/internal/application/organization/usecases"
	projectUC "crowdfund/internal/application/project/usecases"
	userUC "crowdfund/internal/application/user/usecases"
	walletUC "crowdfund/internal/application/wallet/usecases"
	"crowdfund/internal/domain/blockchain"
	"crowdfund/internal/infrastructure/auth"
	"crowdfund/internal/infrastructure/config"
	"crowdfund/internal/infrastructure/email"
	"crowdfund/internal/infrastructure/ratelimit"
	"crowdfund/internal/infrastructure/repository"
	"crowdfund/internal/interfaces/http/handlers"
	"crowdfund/internal/interfaces/http/middleware"
	"crowdfund/internal/shared/db"
	"crowdfund/internal/shared/logger"
	"crowdfund/internal/shared/utils"
)

// Router wires repositories, use cases and handlers into a gin engine.
type Router struct {
	engine         *gin.Engine
	cfg            *config.Config
	authMiddleware *middleware.AuthMiddleware
	authRateLimit  gin.HandlerFunc

	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	walletHandler       *handlers.WalletHandler
	depositHandler      *handlers.DepositHandler
	documentHandler     *handlers.DocumentHandler
	organizationHandler *handlers.OrganizationHandler
	projectHandler      *handlers.ProjectHandler
}

// NewRouter builds the full dependency graph on top of the given database
// handle, redis client and blockchain gateway.
func NewRouter(
	gormDB *gorm.DB,
	redisClient *redis.Client,
	gateway blockchain.Gateway,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(gormDB)
	mailTokenRepo := repository.NewMailTokenRepository(gormDB)
	walletRepo := repository.NewWalletRepository(gormDB)
	depositRepo := repository.NewDepositRepository(gormDB)
	organizationRepo := repository.NewOrganizationRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	documentRepo := repository.NewDocumentRepository(gormDB)
	txInfoRepo := repository.NewTransactionInfoRepository(gormDB)

	txMgr := db.NewTransactionManager(gormDB)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	mailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
		Enabled:     cfg.Email.Enabled,
	}, log.Named("email"))

	registerUC := userUC.NewRegisterUserUseCase(userRepo, mailTokenRepo, hasher, mailService, log)
	loginUC := userUC.NewLoginUserUseCase(userRepo, hasher, jwtService, log)
	confirmEmailUC := userUC.NewConfirmEmailUseCase(userRepo, mailTokenRepo, log)
	resendUC := userUC.NewResendConfirmationUseCase(userRepo, mailTokenRepo, mailService, log)
	getUserUC := userUC.NewGetUserUseCase(userRepo, log)
	listUsersUC := userUC.NewListUsersUseCase(userRepo, log)
	updateUserUC := userUC.NewUpdateUserUseCase(userRepo, log)
	deleteUserUC := userUC.NewDeleteUserUseCase(userRepo, log)

	createWalletUC := walletUC.NewCreateUserWalletUseCase(walletRepo, gateway, log)
	getWalletUC := walletUC.NewGetWalletUseCase(walletRepo, gateway, log)
	generateOrgTxUC := walletUC.NewGenerateOrganizationWalletTxUseCase(organizationRepo, walletRepo, txInfoRepo, gateway, log)
	generateProjTxUC := walletUC.NewGenerateProjectWalletTxUseCase(projectRepo, organizationRepo, walletRepo, txInfoRepo, gateway, log)
	confirmWalletTxUC := walletUC.NewConfirmWalletTxUseCase(walletRepo, organizationRepo, projectRepo, gateway, txMgr, log)

	createDepositUC := depositUC.NewCreateDepositUseCase(depositRepo, walletRepo, txMgr, log)
	deleteDepositUC := depositUC.NewDeleteDepositUseCase(depositRepo, log)
	approveDepositUC := depositUC.NewApproveDepositUseCase(depositRepo, documentRepo, userRepo, txMgr, mailService, log)
	generateMintUC := depositUC.NewGenerateMintTxUseCase(depositRepo, txInfoRepo, gateway, log)
	confirmMintUC := depositUC.NewConfirmMintTxUseCase(depositRepo, gateway, txMgr, log)
	listDepositsUC := depositUC.NewListDepositsUseCase(depositRepo, log)
	listUserDepositsUC := depositUC.NewListUserDepositsUseCase(depositRepo, log)
	getByReferenceUC := depositUC.NewGetDepositByReferenceUseCase(depositRepo, log)

	getDocumentUC := documentUC.NewGetDocumentUseCase(documentRepo, log)

	createOrgUC := organizationUC.NewCreateOrganizationUseCase(organizationRepo, log)
	getOrgUC := organizationUC.NewGetOrganizationUseCase(organizationRepo, log)
	listOrgsUC := organizationUC.NewListOrganizationsUseCase(organizationRepo, log)
	approveOrgUC := organizationUC.NewApproveOrganizationUseCase(organizationRepo, log)

	createProjectUC := projectUC.NewCreateProjectUseCase(projectRepo, organizationRepo, log)
	getProjectUC := projectUC.NewGetProjectUseCase(projectRepo, walletRepo, gateway, log)
	listProjectsUC := projectUC.NewListProjectsUseCase(projectRepo, log)
	addProjectImageUC := projectUC.NewAddProjectImageUseCase(projectRepo, documentRepo, log)

	authRateLimit := noopMiddleware()
	if cfg.RateLimit.Enabled && redisClient != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		authRateLimit = middleware.RateLimit(limiter, ratelimit.Limits{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		})
	}

	return &Router{
		engine:         engine,
		cfg:            cfg,
		authMiddleware: middleware.NewAuthMiddleware(jwtService, log),
		authRateLimit:  authRateLimit,

		authHandler:         handlers.NewAuthHandler(registerUC, loginUC, confirmEmailUC, resendUC, log),
		userHandler:         handlers.NewUserHandler(getUserUC, listUsersUC, updateUserUC, deleteUserUC, log),
		walletHandler:       handlers.NewWalletHandler(createWalletUC, getWalletUC, generateOrgTxUC, generateProjTxUC, confirmWalletTxUC, log),
		depositHandler:      handlers.NewDepositHandler(createDepositUC, deleteDepositUC, approveDepositUC, generateMintUC, confirmMintUC, listDepositsUC, listUserDepositsUC, getByReferenceUC, log),
		documentHandler:     handlers.NewDocumentHandler(getDocumentUC, log),
		organizationHandler: handlers.NewOrganizationHandler(createOrgUC, getOrgUC, listOrgsUC, approveOrgUC, log),
		projectHandler:      handlers.NewProjectHandler(createProjectUC, getProjectUC, listProjectsUC, addProjectImageUC, log),
	}
}

// SetupRoutes registers all routes and global middleware.
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery(log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.OKResponse(c, gin.H{"status": "ok"})
	})

	r.setupAuthRoutes()
	r.setupUserRoutes()
	r.setupWalletRoutes()
	r.setupDepositRoutes()
	r.setupDocumentRoutes()
	r.setupOrganizationRoutes()
	r.setupProjectRoutes()
}

func (r *Router) setupAuthRoutes() {
	authGroup := r.engine.Group("/auth")
	{
		authGroup.POST("/register", r.authRateLimit, r.authHandler.Register)
		authGroup.POST("/login", r.authRateLimit, r.authHandler.Login)
		authGroup.GET("/confirm", r.authHandler.ConfirmEmail)
		authGroup.POST("/resend-confirmation", r.authRateLimit, r.authMiddleware.RequireAuth(), r.authHandler.ResendConfirmation)
	}
}

func (r *Router) setupUserRoutes() {
	users := r.engine.Group("/users")
	users.Use(r.authMiddleware.RequireAuth())
	{
		users.GET("/me", r.userHandler.Me)
		users.PATCH("/me", r.userHandler.UpdateProfile)

		users.GET("", middleware.RequireAdmin(), r.userHandler.ListUsers)
		users.DELETE("/:id", middleware.RequireAdmin(), r.userHandler.DeleteUser)
	}
}

func (r *Router) setupWalletRoutes() {
	wallets := r.engine.Group("/wallets")
	wallets.Use(r.authMiddleware.RequireAuth())
	{
		wallets.POST("", r.walletHandler.CreateWallet)
		wallets.GET("/me", r.walletHandler.GetMyWallet)

		wallets.POST("/organizations/:id/tx", r.walletHandler.GenerateOrganizationWalletTx)
		wallets.POST("/organizations/:id/confirm", r.walletHandler.ConfirmOrganizationWalletTx)
		wallets.POST("/projects/:id/tx", r.walletHandler.GenerateProjectWalletTx)
		wallets.POST("/projects/:id/confirm", r.walletHandler.ConfirmProjectWalletTx)
	}
}

func (r *Router) setupDepositRoutes() {
	deposits := r.engine.Group("/deposits")
	deposits.Use(r.authMiddleware.RequireAuth())
	{
		deposits.POST("", r.depositHandler.CreateDeposit)
		deposits.GET("/me", r.depositHandler.ListMyDeposits)
		deposits.POST("/:id/mint/tx", r.depositHandler.GenerateMintTx)
		deposits.POST("/:id/mint/confirm", r.depositHandler.ConfirmMintTx)

		deposits.GET("", middleware.RequireAdmin(), r.depositHandler.ListDeposits)
		deposits.GET("/by-reference", middleware.RequireAdmin(), r.depositHandler.GetDepositByReference)
		deposits.POST("/:id/approve", middleware.RequireAdmin(), r.depositHandler.ApproveDeposit)
		deposits.DELETE("/:id", middleware.RequireAdmin(), r.depositHandler.DeleteDeposit)
	}
}

func (r *Router) setupDocumentRoutes() {
	documents := r.engine.Group("/documents")
	documents.Use(r.authMiddleware.RequireAuth(), middleware.RequireAdmin())
	{
		documents.GET("/:id", r.documentHandler.DownloadDocument)
	}
}

func (r *Router) setupOrganizationRoutes() {
	organizations := r.engine.Group("/organizations")
	organizations.Use(r.authMiddleware.RequireAuth())
	{
		organizations.POST("", r.organizationHandler.CreateOrganization)
		organizations.GET("", r.organizationHandler.ListOrganizations)
		organizations.GET("/:id", r.organizationHandler.GetOrganization)

		organizations.POST("/:id/approve", middleware.RequireAdmin(), r.organizationHandler.ApproveOrganization)
	}
}

func (r *Router) setupProjectRoutes() {
	projects := r.engine.Group("/projects")
	projects.Use(r.authMiddleware.RequireAuth())
	{
		projects.POST("", r.projectHandler.CreateProject)
		projects.GET("", r.projectHandler.ListProjects)
		projects.GET("/:id", r.projectHandler.GetProject)
		projects.POST("/:id/images", r.projectHandler.AddProjectImage)
	}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func noopMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
	}
}
