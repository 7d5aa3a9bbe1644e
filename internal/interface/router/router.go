package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/cache"
	"github.com/Hiro-mackay/gc-rental/internal/infrastructure/di"
	"github.com/Hiro-mackay/gc-rental/internal/interface/presenter"
)

// Router はルート定義を管理します
type Router struct {
	echo        *echo.Echo
	handlers    *di.Handlers
	middlewares *di.Middlewares
}

// NewRouter は新しいRouterを作成します
func NewRouter(e *echo.Echo, handlers *di.Handlers, middlewares *di.Middlewares) *Router {
	return &Router{
		echo:        e,
		handlers:    handlers,
		middlewares: middlewares,
	}
}

// Setup は全てのルートを設定します
func (r *Router) Setup() {
	r.setupHealthRoutes()
	r.setupAPIRoutes()
	r.setupAdminPageRoutes()
}

// setupHealthRoutes はヘルスチェックルートを設定します
func (r *Router) setupHealthRoutes() {
	if r.handlers.Health == nil {
		return
	}
	r.echo.GET("/health", r.handlers.Health.Check)
	r.echo.GET("/ready", r.handlers.Health.Ready)
}

// setupAPIRoutes はAPIルートを設定します
func (r *Router) setupAPIRoutes() {
	api := r.echo.Group("/api/v1")

	// Debug route
	api.GET("/", func(c echo.Context) error {
		return presenter.OK(c, map[string]string{
			"message": "GC Rental API v1",
		})
	})

	r.setupAuthRoutes(api)
	r.setupApartmentRoutes(api)
	r.setupBookingRoutes(api)
	r.setupAdminAPIRoutes(api)
}

// setupAuthRoutes は認証関連ルートを設定します
func (r *Router) setupAuthRoutes(api *echo.Group) {
	authGroup := api.Group("/auth")

	// Public auth routes
	authGroup.POST("/register", r.handlers.Auth.Register,
		r.middlewares.RateLimit.ByIP(cache.RateLimitAuthRegister))
	authGroup.POST("/login", r.handlers.Auth.Login,
		r.middlewares.RateLimit.ByIP(cache.RateLimitAuthLogin))
	authGroup.POST("/refresh", r.handlers.Auth.Refresh)
	authGroup.POST("/logout", r.handlers.Auth.Logout)

	// Meは未認証でも200を返すため、オプショナル認証を使用する
	authGroup.GET("/me", r.handlers.Auth.Me, r.middlewares.JWTAuth.OptionalSession())
}

// setupApartmentRoutes は公開物件ルートを設定します
func (r *Router) setupApartmentRoutes(api *echo.Group) {
	apartmentsGroup := api.Group("/apartments")
	apartmentsGroup.GET("", r.handlers.Apartment.List)
	apartmentsGroup.GET("/:id", r.handlers.Apartment.Get)
}

// setupBookingRoutes は予約ルートを設定します（要認証）
func (r *Router) setupBookingRoutes(api *echo.Group) {
	bookingsGroup := api.Group("/bookings", r.middlewares.JWTAuth.RequireSession())
	bookingsGroup.POST("", r.handlers.Booking.Create,
		r.middlewares.RateLimit.ByUser(cache.RateLimitBookingCreate))
	bookingsGroup.GET("", r.handlers.Booking.ListMine)
}

// setupAdminAPIRoutes は管理APIルートを設定します（要管理者）
func (r *Router) setupAdminAPIRoutes(api *echo.Group) {
	adminGroup := api.Group("/admin", r.middlewares.JWTAuth.RequireAdmin())

	// 物件管理
	adminGroup.GET("/apartments", r.handlers.Apartment.ListAll)
	adminGroup.POST("/apartments", r.handlers.Apartment.Create)
	adminGroup.POST("/apartments/description", r.handlers.Apartment.GenerateDescription)
	adminGroup.PATCH("/apartments/:id", r.handlers.Apartment.Update)
	adminGroup.DELETE("/apartments/:id", r.handlers.Apartment.Delete)
	adminGroup.POST("/apartments/:id/photos", r.handlers.Apartment.CreatePhotoUpload)

	// 予約管理
	adminGroup.GET("/bookings", r.handlers.Booking.ListAll)
}

// setupAdminPageRoutes は管理画面ページルートを設定します
// AdminGateはサーバー全体に適用されるため、ここではハンドラーの登録のみ行います
func (r *Router) setupAdminPageRoutes() {
	r.echo.GET("/admin", r.handlers.AdminPage.Serve)
	r.echo.GET("/admin/*", r.handlers.AdminPage.Serve)
}
