package main

import (
	"log"
	"strings"

	"kasirpos-backend/internal/auth"
	"kasirpos-backend/internal/catalog"
	"kasirpos-backend/internal/checkout"
	"kasirpos-backend/internal/config"
	"kasirpos-backend/internal/customer"
	"kasirpos-backend/internal/database"
	"kasirpos-backend/internal/models"
	"kasirpos-backend/internal/notification"
	"kasirpos-backend/internal/purchasing"
	"kasirpos-backend/internal/report"
	"kasirpos-backend/internal/settings"
	"kasirpos-backend/internal/shift"
	"kasirpos-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	carts := checkout.NewStore()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Put("/auth/password", auth.ChangePasswordHandler())

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	// User management
	adminRoutes.Post("/users", auth.CreateUserHandler())
	adminRoutes.Get("/users", auth.ListUsersHandler())

	// Product management
	adminRoutes.Post("/products", catalog.CreateProductHandler())
	adminRoutes.Put("/products/:id", catalog.UpdateProductHandler())
	adminRoutes.Delete("/products/:id", catalog.DeleteProductHandler())
	adminRoutes.Post("/products/import", catalog.BulkImportProductsHandler())

	// Category management
	adminRoutes.Post("/categories", catalog.CreateCategoryHandler())
	adminRoutes.Put("/categories/:id", catalog.UpdateCategoryHandler())
	adminRoutes.Delete("/categories/:id", catalog.DeleteCategoryHandler())

	// Settings
	adminRoutes.Put("/settings/:key", settings.UpdateSettingHandler())
	adminRoutes.Delete("/settings/:key", settings.ResetSettingHandler())

	// Catalog
	protected.Get("/products", catalog.ListProductsHandler())
	protected.Get("/products/:id", catalog.GetProductHandler())
	protected.Get("/categories", catalog.ListCategoriesHandler())

	// Customers
	protected.Get("/customers", customer.ListCustomersHandler())
	protected.Post("/customers", customer.CreateCustomerHandler())
	protected.Get("/customers/:id", customer.GetCustomerHandler())
	protected.Get("/customers/:id/stats", customer.CustomerStatsHandler())
	protected.Put("/customers/:id", customer.UpdateCustomerHandler())
	protected.Delete("/customers/:id", customer.DeleteCustomerHandler())

	// Suppliers
	protected.Get("/suppliers", purchasing.ListSuppliersHandler())
	protected.Post("/suppliers", purchasing.CreateSupplierHandler())
	protected.Get("/suppliers/:id", purchasing.GetSupplierHandler())
	protected.Put("/suppliers/:id", purchasing.UpdateSupplierHandler())
	protected.Delete("/suppliers/:id", purchasing.DeleteSupplierHandler())

	// Purchase invoices & payments
	protected.Post("/invoices", purchasing.CreateInvoiceHandler())
	protected.Get("/invoices", purchasing.ListInvoicesHandler())
	protected.Get("/invoices/:id", purchasing.GetInvoiceHandler())
	protected.Post("/invoices/:id/payments", purchasing.RecordPaymentHandler())
	protected.Get("/invoices/:id/payments", purchasing.ListPaymentsHandler())

	// Shifts
	protected.Post("/shifts/open", shift.OpenShiftHandler())
	protected.Post("/shifts/close", shift.CloseShiftHandler())
	protected.Get("/shifts/current", shift.CurrentShiftHandler())
	protected.Get("/shifts/status", shift.ShiftStatusHandler())
	protected.Get("/shifts", shift.ListShiftsHandler())

	// Cart
	protected.Get("/cart", checkout.GetCartHandler(carts))
	protected.Post("/cart/items", checkout.AddToCartHandler(carts))
	protected.Put("/cart/items/:productId", checkout.UpdateQuantityHandler(carts))
	protected.Delete("/cart/items/:productId", checkout.RemoveFromCartHandler(carts))
	protected.Delete("/cart", checkout.ClearCartHandler(carts))
	protected.Put("/cart/discount", checkout.SetDiscountHandler(carts))
	protected.Put("/cart/customer", checkout.SelectCustomerHandler(carts))

	// Checkout & transactions
	protected.Post("/cart/checkout", checkout.CheckoutHandler(carts))
	protected.Get("/transactions", checkout.ListTransactionsHandler())
	protected.Get("/transactions/:id", checkout.GetTransactionHandler())

	// Saved orders
	protected.Post("/saved-orders", checkout.SaveOrderHandler(carts))
	protected.Get("/saved-orders", checkout.ListSavedOrdersHandler())
	protected.Post("/saved-orders/:id/load", checkout.LoadSavedOrderHandler(carts))

	// Waste entries
	protected.Post("/waste", stock.CreateWasteHandler())
	protected.Get("/waste", stock.ListWasteHandler())
	protected.Get("/waste/export", stock.ExportWasteHandler())

	// Stock counts & movements
	protected.Post("/opname", stock.CreateOpnameHandler())
	protected.Get("/opname", stock.ListOpnameHandler())
	protected.Get("/stock-movements", stock.ListMovementsHandler())

	// Notifications
	protected.Get("/notifications", notification.ListNotificationsHandler())
	protected.Put("/notifications/:id/read", notification.MarkAsReadHandler())
	protected.Put("/notifications/read-all", notification.MarkAllAsReadHandler())
	protected.Delete("/notifications/:id", notification.DeleteNotificationHandler())

	// Settings (read side)
	protected.Get("/settings/:key", settings.GetSettingHandler())

	// Reports
	protected.Get("/reports/sales/daily", report.GetDailySalesReportHandler())
	protected.Get("/reports/sales/weekly", report.GetWeeklySalesReportHandler())
	protected.Get("/reports/sales/monthly", report.GetMonthlySalesReportHandler())
	protected.Get("/reports/sales/export", report.ExportSalesHandler())
	protected.Get("/reports/top-products", report.GetTopProductsHandler())
	protected.Get("/reports/shifts/:id", report.GetShiftReportHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
