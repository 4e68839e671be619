package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/storeops-go/internal/api/handlers"
	"github.com/linskybing/storeops-go/internal/api/middleware"
	"github.com/linskybing/storeops-go/internal/config"
	"github.com/linskybing/storeops-go/internal/domain/item"
	"github.com/linskybing/storeops-go/internal/metrics"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/storeops-go/docs"
)

// NewRouter builds the engine with the shared middleware and every route.
func NewRouter(h *handlers.Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORSMiddleware(config.CorsAllowedOrigins))
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	authMiddleware := middleware.NewAuth()

	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws", h.WebSocket.Connect)

	api := r.Group("/api")
	api.GET("/health", handlers.Health)
	api.GET("/ws", h.WebSocket.Connect)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.User.Register)
		authGroup.POST("/login", h.User.Login)
		authGroup.POST("/logout", h.User.Logout)
		authGroup.POST("/reset-password", middleware.JWTAuthMiddleware(), h.User.ResetPassword)
	}

	auth := api.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		users := auth.Group("/users")
		{
			users.GET("", h.User.ListUsers)
			users.GET("/profile", h.User.GetProfile)
			users.PATCH("/profile", h.User.UpdateProfile)
			users.GET("/roles", h.User.Roles)
			users.PUT("/:id/role", authMiddleware.SuperAdmin(), h.User.UpdateRole)
			users.DELETE("/:id", authMiddleware.SuperAdmin(), h.User.DeleteUser)
		}
		auth.POST("/roles/assign/:userId", authMiddleware.SuperAdmin(), h.User.AssignRole)

		forms := auth.Group("/forms")
		{
			forms.POST("/submit", h.Form.SubmitForm)
			forms.GET("/user", h.Form.GetMyForms)
			forms.GET("/metadata", h.Form.GetMetadata)
			forms.GET("/:id/status", h.Form.GetForm)
			forms.PATCH("/:id/status", h.Form.UpdateFormStatus)
		}

		dashboard := auth.Group("/dashboard")
		{
			dashboard.POST("/move-form", h.Dashboard.MoveForm)
			dashboard.GET("/moved-forms", h.Dashboard.GetMovedForms)
			dashboard.GET("/forms", authMiddleware.Managers(), h.Dashboard.GetAllForms)
			dashboard.GET("/user-forms", h.Dashboard.GetUserForms)
			dashboard.GET("/stats", h.Dashboard.GetStats)
		}

		alerts := auth.Group("/alerts")
		{
			alerts.GET("/all", authMiddleware.SuperAdmin(), h.Alert.GetAllAlerts)
			alerts.GET("/user", h.Alert.GetUserAlerts)
			alerts.PATCH("/user/:id/status", h.Alert.UpdateAlertStatus)
			alerts.PATCH("/user/:id/read", h.Alert.MarkAlertRead)
		}

		auth.GET("/audit/logs", authMiddleware.SuperAdmin(), h.Audit.GetAuditLogs)

		catalogRoutes(auth, h, authMiddleware.Managers())
		itemRoutes(auth, h, authMiddleware.Managers())
	}
}

func catalogRoutes(auth *gin.RouterGroup, h *handlers.Handlers, write gin.HandlerFunc) {
	categories := auth.Group("/categories")
	{
		categories.GET("", h.Category.ListCategories)
		categories.GET("/options", h.Category.GetCategoryOptions)
		categories.GET("/options/type", handlers.GetTypeOptions)
		categories.GET("/public", h.Category.GetPublicCategories)
		categories.GET("/by-type/:type", h.Category.GetCategoriesByType)
		categories.GET("/stats", h.Category.GetCategoryStats)
		categories.GET("/:id", h.Category.GetCategory)
		categories.POST("", write, h.Category.CreateCategory)
		categories.PUT("/:id", write, h.Category.UpdateCategory)
		categories.DELETE("/:id", write, h.Category.DeleteCategory)
	}

	actions := auth.Group("/actions")
	{
		actions.GET("", h.Action.ListActions)
		actions.GET("/options/type", handlers.GetTypeOptions)
		actions.GET("/public", h.Action.GetPublicActions)
		actions.GET("/by-type/:type", h.Action.GetActionsByType)
		actions.GET("/stats", h.Action.GetActionStats)
		actions.GET("/:id", h.Action.GetAction)
		actions.POST("", write, h.Action.CreateAction)
		actions.PUT("/:id", write, h.Action.UpdateAction)
		actions.DELETE("/:id", write, h.Action.DeleteAction)
	}

	reasonCodes := auth.Group("/reason-codes")
	{
		reasonCodes.GET("", h.ReasonCode.ListReasonCodes)
		reasonCodes.GET("/public", h.ReasonCode.GetPublicReasonCodes)
		reasonCodes.GET("/:id", h.ReasonCode.GetReasonCode)
		reasonCodes.POST("", write, h.ReasonCode.CreateReasonCode)
		reasonCodes.PUT("/:id", write, h.ReasonCode.UpdateReasonCode)
		reasonCodes.DELETE("/:id", write, h.ReasonCode.DeleteReasonCode)
	}

	units := auth.Group("/units-of-measure")
	{
		units.GET("", h.UnitOfMeasure.ListUnits)
		units.GET("/options", h.UnitOfMeasure.GetUnitOptions)
		units.GET("/public", h.UnitOfMeasure.GetPublicUnits)
		units.GET("/:id", h.UnitOfMeasure.GetUnit)
		units.POST("", write, h.UnitOfMeasure.CreateUnit)
		units.PUT("/:id", write, h.UnitOfMeasure.UpdateUnit)
		units.DELETE("/:id", write, h.UnitOfMeasure.DeleteUnit)
	}

	packaging := auth.Group("/packaging")
	{
		packaging.GET("", h.Packaging.ListPackaging)
		packaging.GET("/options", h.Packaging.GetPackagingOptions)
		packaging.GET("/public", h.Packaging.GetPublicPackaging)
		packaging.GET("/:id", h.Packaging.GetPackaging)
		packaging.POST("", write, h.Packaging.CreatePackaging)
		packaging.PUT("/:id", write, h.Packaging.UpdatePackaging)
		packaging.DELETE("/:id", write, h.Packaging.DeletePackaging)
	}
}

func itemRoutes(auth *gin.RouterGroup, h *handlers.Handlers, write gin.HandlerFunc) {
	inventory := auth.Group("/inventory")
	{
		inventory.GET("", h.Inventory.ListInventory)
		inventory.GET("/stats", h.Inventory.GetInventoryStats)
		inventory.GET("/essential", h.Inventory.GetEssentialItems)
		inventory.GET("/perishable", h.Inventory.GetPerishableItems)
		inventory.GET("/status/:status", h.Inventory.GetItemsByStatus)
		inventory.GET("/options/units", h.Inventory.GetInventoryUnitOptions)
		inventory.GET("/:id", h.Inventory.GetInventoryItem)
		inventory.POST("", write, h.Inventory.CreateInventoryItem)
		inventory.PUT("/:id", write, h.Inventory.UpdateInventoryItem)
		inventory.DELETE("/:id", write, h.Inventory.DeleteInventoryItem)
	}

	equipment := auth.Group("/equipment")
	{
		equipment.GET("", h.Equipment.ListEquipment)
		equipment.GET("/stats", h.Equipment.GetEquipmentStats)
		equipment.GET("/public", h.Equipment.GetPublicEquipment)
		equipment.GET("/category/:category", h.Equipment.GetEquipmentByCategory)
		equipment.GET("/options/category", h.Equipment.GetEquipmentCategoryOptions)
		equipment.GET("/options/subcategory", h.Equipment.GetEquipmentSubcategoryOptions)
		equipment.GET("/:id", h.Equipment.GetEquipmentItem)
		equipment.POST("", write, h.Equipment.CreateEquipmentItem)
		equipment.PUT("/:id", write, h.Equipment.UpdateEquipmentItem)
		equipment.DELETE("/:id", write, h.Equipment.DeleteEquipmentItem)
	}

	opAlerts := auth.Group("/operational-alerts")
	{
		opAlerts.GET("", h.OperationalAlert.ListOperationalAlerts)
		opAlerts.GET("/stats", h.OperationalAlert.GetOperationalAlertStats)
		opAlerts.GET("/category/:value", h.OperationalAlert.ListByField("category"))
		opAlerts.GET("/subcategory/:value", h.OperationalAlert.ListByField("subcategory"))
		opAlerts.GET("/action/:value", h.OperationalAlert.ListByField("action_needed"))
		opAlerts.GET("/options", h.OperationalAlert.GetOperationalAlertOptions)
		opAlerts.GET("/options/category", h.OperationalAlert.OptionsFor(func(o item.OperationalAlertOptions) []string { return o.Categories }))
		opAlerts.GET("/options/subcategory", h.OperationalAlert.OptionsFor(func(o item.OperationalAlertOptions) []string { return o.Subcategories }))
		opAlerts.GET("/options/action-needed", h.OperationalAlert.OptionsFor(func(o item.OperationalAlertOptions) []string { return o.ActionsNeeded }))
		opAlerts.GET("/:id", h.OperationalAlert.GetOperationalAlert)
		opAlerts.POST("", write, h.OperationalAlert.CreateOperationalAlert)
		opAlerts.PUT("/:id", write, h.OperationalAlert.UpdateOperationalAlert)
		opAlerts.DELETE("/:id", write, h.OperationalAlert.DeleteOperationalAlert)
	}
}
