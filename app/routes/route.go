package routes

import (
	"net/http"

	"github.com/aureliajewels/jewelry-cms/app/configs"
	"github.com/aureliajewels/jewelry-cms/app/handlers"
	"github.com/aureliajewels/jewelry-cms/app/helpers"
	"github.com/aureliajewels/jewelry-cms/app/middlewares"
	"github.com/aureliajewels/jewelry-cms/app/models"
	"github.com/aureliajewels/jewelry-cms/app/repositories"
	"github.com/aureliajewels/jewelry-cms/app/services"
	"github.com/aureliajewels/jewelry-cms/app/utils/sessions"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// NewRouter wires the full /api/<resource> table: public reads plus
// session-guarded mutations on the same paths, wrapped in CSRF protection.
func NewRouter(db *gorm.DB, env configs.ENV, sessionStore sessions.SessionStore) http.Handler {
	router := newRouter(db, env, sessionStore)

	csrfMiddleware := csrf.Protect(
		[]byte(env.CSRFKey),
		csrf.Secure(env.APP_ENV == "production"),
		csrf.Path("/"),
	)
	return csrfMiddleware(router)
}

func newRouter(db *gorm.DB, env configs.ENV, sessionStore sessions.SessionStore) *mux.Router {
	rnd := handlers.NewRender()
	uploader := helpers.NewUploader(env.UploadDir, env.UploadBaseURL)

	categoryRepo := repositories.NewCategoryRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	distributorRepo := repositories.NewDistributorRepository(db)
	productRepo := repositories.NewProductRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	subscriptionRepo := repositories.NewSubscriptionRepository(db)

	categoryService := services.NewCategoryService(categoryRepo)
	mailer := services.NewMailer(services.MailerConfig{
		Host:     env.EmailHost,
		Port:     env.EmailPort,
		Username: env.EmailUsername,
		Password: env.EmailPassword,
		From:     env.EmailFrom,
	})

	categoryHandler := handlers.NewCategoryHandler(categoryService, uploader, rnd)
	authHandler := handlers.NewAuthHandler(adminRepo, sessionStore, rnd)
	adminHandler := handlers.NewAdminAccountHandler(adminRepo, rnd)
	distributorHandler := handlers.NewDistributorHandler(distributorRepo, sessionStore, rnd)
	productHandler := handlers.NewProductHandler(productRepo, uploader, rnd)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, rnd)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionRepo, services.NewExportService(), mailer, rnd)

	bannerHandler := handlers.NewContentHandler("Banner",
		repositories.NewContentRepository[models.Banner](db), handlers.BindBanner, uploader, rnd)
	heroHandler := handlers.NewContentHandler("Hero section",
		repositories.NewContentRepository[models.HeroSection](db), handlers.BindHeroSection, uploader, rnd)
	serviceHandler := handlers.NewContentHandler("Service",
		repositories.NewContentRepository[models.Service](db), handlers.BindService, uploader, rnd)
	testimonialHandler := handlers.NewContentHandler("Testimonial",
		repositories.NewContentRepository[models.Testimonial](db), handlers.BindTestimonial, uploader, rnd)
	videoHandler := handlers.NewContentHandler("Video",
		repositories.NewContentRepository[models.Video](db), handlers.BindVideo, uploader, rnd)

	adminAuth := middlewares.AdminAuthMiddleware(adminRepo, sessionStore, rnd)
	guard := func(h http.HandlerFunc) http.Handler { return adminAuth(h) }

	router := mux.NewRouter()
	router.Use(middlewares.RequestLoggerMiddleware)

	router.PathPrefix(env.UploadBaseURL + "/").Handler(
		http.StripPrefix(env.UploadBaseURL+"/", http.FileServer(http.Dir(env.UploadDir))))

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/csrf", authHandler.CSRFToken).Methods("GET")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.Handle("/auth/me", guard(authHandler.Me)).Methods("GET")

	api.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	api.Handle("/categories", guard(categoryHandler.Create)).Methods("POST")
	api.Handle("/categories/with-subcategories", guard(categoryHandler.CreateWithSubcategories)).Methods("POST")
	api.HandleFunc("/categories/{id}", categoryHandler.Get).Methods("GET")
	api.Handle("/categories/{id}", guard(categoryHandler.Update)).Methods("PUT")
	api.Handle("/categories/{id}", guard(categoryHandler.Delete)).Methods("DELETE")
	api.Handle("/categories/{id}/toggle", guard(categoryHandler.Toggle)).Methods("PATCH")
	api.Handle("/categories/{id}/subcategories", guard(categoryHandler.CreateSubcategory)).Methods("POST")
	api.Handle("/subcategories/{id}", guard(categoryHandler.UpdateSubcategory)).Methods("PUT")
	api.Handle("/subcategories/{id}", guard(categoryHandler.DeleteSubcategory)).Methods("DELETE")
	api.Handle("/subcategories/{id}/toggle", guard(categoryHandler.ToggleSubcategory)).Methods("PATCH")

	mountContent(api, guard, "banners", bannerHandler)
	mountContent(api, guard, "hero-sections", heroHandler)
	mountContent(api, guard, "services", serviceHandler)
	mountContent(api, guard, "testimonials", testimonialHandler)
	mountContent(api, guard, "videos", videoHandler)

	// Storefront review listing matches on ?productId=; the dashboard list is
	// the same path without it.
	api.HandleFunc("/reviews", reviewHandler.PublicList).Methods("GET").Queries("productId", "{productId}")
	api.Handle("/reviews", guard(reviewHandler.List)).Methods("GET")
	api.Handle("/reviews", guard(reviewHandler.Create)).Methods("POST")
	api.Handle("/reviews/{id}", guard(reviewHandler.Update)).Methods("PUT")
	api.Handle("/reviews/{id}", guard(reviewHandler.Delete)).Methods("DELETE")
	api.Handle("/reviews/{id}/toggle", guard(reviewHandler.Toggle)).Methods("PATCH")

	api.HandleFunc("/newsletter", subscriptionHandler.Subscribe).Methods("POST")
	api.Handle("/newsletter/subscriptions", guard(subscriptionHandler.List)).Methods("GET")
	api.Handle("/newsletter/subscriptions/export", guard(subscriptionHandler.Export)).Methods("GET")
	api.Handle("/newsletter/subscriptions/{id}", guard(subscriptionHandler.Delete)).Methods("DELETE")
	api.Handle("/newsletter/subscriptions/{id}/toggle", guard(subscriptionHandler.Toggle)).Methods("PATCH")

	api.Handle("/admins", guard(adminHandler.List)).Methods("GET")
	api.Handle("/admins", guard(adminHandler.Create)).Methods("POST")
	api.Handle("/admins/{id}", guard(adminHandler.Update)).Methods("PUT")
	api.Handle("/admins/{id}", guard(adminHandler.Delete)).Methods("DELETE")
	api.Handle("/admins/{id}/toggle", guard(adminHandler.Toggle)).Methods("PATCH")

	api.HandleFunc("/distributors/register", distributorHandler.Register).Methods("POST")
	api.HandleFunc("/distributors/login", distributorHandler.Login).Methods("POST")
	api.HandleFunc("/distributors/logout", distributorHandler.Logout).Methods("POST")
	api.Handle("/distributors", guard(distributorHandler.List)).Methods("GET")
	api.Handle("/distributors/{id}", guard(distributorHandler.Update)).Methods("PUT")
	api.Handle("/distributors/{id}", guard(distributorHandler.Delete)).Methods("DELETE")
	api.Handle("/distributors/{id}/toggle", guard(distributorHandler.Toggle)).Methods("PATCH")

	// Public catalog reads; dashboard gets the inactive rows and id lookups
	// under /admin/products.
	api.HandleFunc("/products", productHandler.PublicList).Methods("GET")
	api.HandleFunc("/products/{slug}", productHandler.GetBySlug).Methods("GET")
	api.Handle("/products", guard(productHandler.Create)).Methods("POST")
	api.Handle("/products/{id}", guard(productHandler.Update)).Methods("PUT")
	api.Handle("/products/{id}", guard(productHandler.Delete)).Methods("DELETE")
	api.Handle("/products/{id}/toggle", guard(productHandler.Toggle)).Methods("PATCH")
	api.Handle("/admin/products", guard(productHandler.List)).Methods("GET")
	api.Handle("/admin/products/{id}", guard(productHandler.Get)).Methods("GET")

	return router
}

// mountContent registers one content resource: public active-only listing
// under /content plus the guarded uniform CRUD table.
func mountContent[T any, PT repositories.ContentPtr[T]](api *mux.Router, guard func(http.HandlerFunc) http.Handler, path string, h *handlers.ContentHandler[T, PT]) {
	api.HandleFunc("/content/"+path, h.PublicList).Methods("GET")
	api.Handle("/"+path, guard(h.List)).Methods("GET")
	api.Handle("/"+path, guard(h.Create)).Methods("POST")
	api.Handle("/"+path+"/{id}", guard(h.Update)).Methods("PUT")
	api.Handle("/"+path+"/{id}", guard(h.Delete)).Methods("DELETE")
	api.Handle("/"+path+"/{id}/toggle", guard(h.Toggle)).Methods("PATCH")
}
