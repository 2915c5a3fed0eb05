package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Zane16/Foodies-Web-sub000/configs"
	"github.com/Zane16/Foodies-Web-sub000/controllers"
	"github.com/Zane16/Foodies-Web-sub000/middlewares"
	"github.com/Zane16/Foodies-Web-sub000/pkg/identity"
	"github.com/Zane16/Foodies-Web-sub000/pkg/mailer"
	"github.com/Zane16/Foodies-Web-sub000/repository"
	"github.com/Zane16/Foodies-Web-sub000/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// External-ish collaborators
	idsvc := identity.NewLocalService(db, cfg.JWTSecret, cfg.AppBaseURL, cfg.JWTTTL, cfg.RefreshTTL)
	mail := mailer.LogMailer{}

	// Services
	authSvc := services.NewAuthService(userRepo, idsvc, cfg.JWTSecret, cfg.JWTTTL)
	appSvc := services.NewApplicationService(appRepo)
	provSvc := &services.ProvisioningService{
		DB:         db,
		Apps:       appRepo,
		Users:      userRepo,
		Orgs:       orgRepo,
		Identity:   idsvc,
		Mail:       mail,
		InviteTTL:  cfg.InviteTTL,
		AppBaseURL: cfg.AppBaseURL,
	}
	accountSvc := &services.AccountService{
		DB:       db,
		Users:    userRepo,
		Apps:     appRepo,
		Vendors:  vendorRepo,
		Identity: idsvc,
	}
	lifecycleSvc := services.NewLifecycleService(db, userRepo, vendorRepo, idsvc)
	schoolSvc := services.NewSchoolService(userRepo, vendorRepo)
	delivererSvc := services.NewDelivererService(orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	appCtrl := controllers.NewApplicationController(appSvc, provSvc, userRepo)
	accountCtrl := controllers.NewAccountController(accountSvc)
	adminCtrl := controllers.NewAdminController(userRepo, appRepo, vendorRepo, lifecycleSvc)
	superCtrl := controllers.NewSuperAdminController(userRepo, lifecycleSvc, schoolSvc)
	vendorCtrl := controllers.NewVendorController(userRepo, vendorRepo, lifecycleSvc)
	delivererCtrl := controllers.NewDelivererController(userRepo, lifecycleSvc, delivererSvc)
	uploadCtrl := controllers.NewUploadController(cfg.UploadDir, cfg.AppBaseURL)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/accept-invite", accountCtrl.AcceptInvite)
		a.POST("/set-password", accountCtrl.SetPassword)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/complete-setup", accountCtrl.CompleteSetup)
	}

	// Applications
	r.POST("/applications", appCtrl.Submit)
	r.GET("/applications", auth("admin", "superadmin"), appCtrl.List)
	r.POST("/applications/:id/approve", auth("admin", "superadmin"), appCtrl.Approve)
	r.POST("/applications/:id/decline", auth("admin", "superadmin"), appCtrl.Decline)

	// Admin (organization-scoped)
	admin := r.Group("/admin", auth("admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/users", adminCtrl.ListUsers)
		admin.PATCH("/users/:id", adminCtrl.PatchUser)
	}

	// SuperAdmin (platform-wide)
	super := r.Group("/superadmin", auth("superadmin"))
	{
		super.PATCH("/users/:id", superCtrl.PatchUser)
	}
	r.GET("/schools", auth("superadmin"), superCtrl.Schools)

	// Vendors / deliverers (management)
	r.GET("/vendors", auth("admin", "superadmin"), vendorCtrl.List)
	r.PATCH("/vendors/:id", auth("admin", "superadmin"), vendorCtrl.Patch)
	r.PATCH("/deliverers/:id", auth("admin", "superadmin"), delivererCtrl.Patch)

	// Partner Deliverer
	partnerDeliverer := r.Group("/partner/deliverer", auth("deliverer"))
	{
		partnerDeliverer.GET("/stats", delivererCtrl.MyStats)
	}

	// Uploads
	r.POST("/upload-image", auth(), uploadCtrl.UploadImage)
}
