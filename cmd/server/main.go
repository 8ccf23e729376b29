package main

import (
	"log"

	"github.com/Ani07-05/brickdash/internal/config"
	"github.com/Ani07-05/brickdash/internal/database"
	"github.com/Ani07-05/brickdash/internal/handlers"
	"github.com/Ani07-05/brickdash/internal/middleware"
	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/repository"
	"github.com/Ani07-05/brickdash/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed sample catalog and workforce data on an empty database
	if err := database.Seed(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	db := database.GetDB()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	rotationRepo := repository.NewRotationRepository(db)
	payrollRepo := repository.NewPayrollRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, db)
	rotationService := services.NewRotationService(rotationRepo, employeeRepo)
	taskService := services.NewTaskService(taskRepo, employeeRepo, rotationService)
	orderService := services.NewOrderService(orderRepo, productRepo, db)
	inventoryService := services.NewInventoryService(inventoryRepo, productRepo, db)
	attendanceService := services.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollService := services.NewPayrollService(payrollRepo, attendanceRepo, employeeRepo)
	dashboardService := services.NewDashboardService(db, orderRepo, productRepo, taskRepo, attendanceRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo, db)
	productHandler := handlers.NewProductHandler(productRepo)
	orderHandler := handlers.NewOrderHandler(orderService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	taskHandler := handlers.NewTaskHandler(taskService)
	rotationHandler := handlers.NewRotationHandler(rotationService)
	payrollHandler := handlers.NewPayrollHandler(payrollService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	r := gin.Default()

	// Setup cookie-backed session middleware
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions("brickdash_session", store))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "BrickDash API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Dashboard (any authenticated user)
		api.GET("/dashboard", middleware.RequireAuth(), dashboardHandler.Stats)

		// Product catalog
		products := api.Group("/products")
		products.Use(middleware.RequireAuth())
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", middleware.RequireRole(models.RoleManager), productHandler.CreateProduct)
			products.PUT("/:id", middleware.RequireRole(models.RoleManager), productHandler.UpdateProduct)
			products.DELETE("/:id", middleware.RequireRole(models.RoleManager), productHandler.DeleteProduct)
		}

		// Orders
		orders := api.Group("/orders")
		orders.Use(middleware.RequireAuth())
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("", orderHandler.CreateOrder)
			orders.PUT("/:id", orderHandler.UpdateOrder)
			orders.DELETE("/:id", middleware.RequireRole(models.RoleManager), orderHandler.DeleteOrder)
		}

		// Inventory: stock adjustments and production batches
		inventory := api.Group("/inventory")
		inventory.Use(middleware.RequireAuth())
		{
			inventory.GET("/logs", inventoryHandler.ListLogs)
			inventory.POST("/adjust", middleware.RequireRole(models.RoleManager, models.RoleSupervisor), inventoryHandler.AdjustStock)
			inventory.GET("/batches", inventoryHandler.ListBatches)
			inventory.POST("/batches", middleware.RequireRole(models.RoleManager, models.RoleSupervisor), inventoryHandler.CreateBatch)
			inventory.POST("/batches/:batchId/advance", middleware.RequireRole(models.RoleManager, models.RoleSupervisor), inventoryHandler.AdvanceBatch)
		}

		// Workforce directory
		employees := api.Group("/employees")
		employees.Use(middleware.RequireAuth())
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.POST("", middleware.RequireRole(models.RoleManager, models.RoleSupervisor), employeeHandler.CreateEmployee)
			employees.PUT("/:id", middleware.RequireRole(models.RoleManager, models.RoleSupervisor), employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", middleware.RequireRole(models.RoleManager, models.RoleSupervisor), employeeHandler.DeactivateEmployee)
		}

		// Attendance registry
		attendance := api.Group("/attendance")
		attendance.Use(middleware.RequireAuth())
		{
			attendance.GET("/registry", attendanceHandler.Registry)
			attendance.GET("/records", attendanceHandler.Records)
			attendance.POST("", middleware.RequireRole(models.RoleManager, models.RoleSupervisor), attendanceHandler.Save)
			attendance.POST("/mark-all", middleware.RequireRole(models.RoleManager, models.RoleSupervisor), attendanceHandler.MarkAll)
		}

		// Tasks
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Task rotation suggestion engine
		rotation := api.Group("/task-rotation")
		rotation.Use(middleware.RequireAuth())
		{
			rotation.GET("/suggest", rotationHandler.Suggest)
			rotation.POST("/log", rotationHandler.LogAssignment)
			rotation.GET("/matrix", rotationHandler.Matrix)
		}

		// Payroll
		payroll := api.Group("/payroll")
		payroll.Use(middleware.RequireAuth(), middleware.RequireRole(models.RoleManager))
		{
			payroll.POST("/generate", payrollHandler.Generate)
			payroll.GET("/report", payrollHandler.Report)
			payroll.POST("/:id/pay", payrollHandler.MarkPaid)
			payroll.GET("/export", payrollHandler.ExportCSV)
		}
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
