package api

import (
	"log"
	"net/http"
	"time"

	"storecopy-backend/internal/config"
	"storecopy-backend/internal/handlers"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterDependencies holds all the dependencies required by the router setup,
// primarily handlers and configuration.
type RouterDependencies struct {
	AuthHandler       *handlers.AuthHandler
	GenerationHandler *handlers.GenerationHandler
	ContentHandler    *handlers.ContentHandler
	StoreHandler      *handlers.StoreHandler
	ProductHandler    *handlers.ProductHandler
	UploadHandler     *handlers.UploadHandler
	Config            *config.Config
}

// NewRouter creates and configures the main Chi router for the application.
func NewRouter(deps RouterDependencies) *chi.Mux {
	r := chi.NewRouter()

	// --- Base Middleware Stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// --- CORS Configuration ---
	// Adjust AllowedOrigins for your frontend deployment(s)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173", "https://*.vercel.app"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Requested-With"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// --- Public Routes (No JWT Required) ---
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/v1/auth", func(r chi.Router) {
		if deps.AuthHandler == nil {
			panic("AuthHandler dependency is nil in router setup")
		}
		r.Post("/signup", deps.AuthHandler.HandleSignup)
		r.Post("/login", deps.AuthHandler.HandleLogin)
		r.Post("/forgot-password", deps.AuthHandler.HandleForgotPassword)
		r.Post("/reset-password", deps.AuthHandler.HandleResetPassword)
	})

	// --- Static Uploads ---
	// Serves locally stored images. Behind a CDN or object store this
	// route is simply never hit.
	uploadsFS := http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.Config.UploadDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, r *http.Request) {
		uploadsFS.ServeHTTP(w, r)
	})

	// --- Authenticated Routes (JWT Required) ---
	r.Route("/v1", func(r chi.Router) {
		r.Use(JwtAuthMiddleware(deps.Config.JWTSecret))

		// --- Mount Generation Routes ---
		if deps.GenerationHandler != nil {
			r.Route("/generate", func(r chi.Router) {
				r.Post("/image", deps.GenerationHandler.HandleGenerateWithImage)
				r.Post("/text", deps.GenerationHandler.HandleGenerateWithoutImage)
				r.Post("/context", deps.GenerationHandler.HandleGenerateWithContext)
			})
		} else {
			log.Println("WARN: GenerationHandler dependency is nil, skipping /v1/generate routes.")
		}

		// --- Mount Saved Content Routes ---
		if deps.ContentHandler != nil {
			r.Route("/contents", func(r chi.Router) {
				r.Post("/", deps.ContentHandler.HandleSaveContent)
				r.Get("/", deps.ContentHandler.HandleListContent)
				r.Get("/count", deps.ContentHandler.HandleCountContent)
				r.Delete("/{contentID}", deps.ContentHandler.HandleDeleteContent)
			})
		} else {
			log.Println("WARN: ContentHandler dependency is nil, skipping /v1/contents routes.")
		}

		// --- Mount Store Profile Routes ---
		if deps.StoreHandler != nil {
			r.Route("/stores", func(r chi.Router) {
				r.Get("/me", deps.StoreHandler.HandleGetStore)
				r.Put("/me", deps.StoreHandler.HandleUpdateStore)
			})
		} else {
			log.Println("WARN: StoreHandler dependency is nil, skipping /v1/stores routes.")
		}

		// --- Mount Product Routes ---
		if deps.ProductHandler != nil {
			r.Route("/products", func(r chi.Router) {
				r.Post("/", deps.ProductHandler.HandleCreateProduct)
				r.Get("/", deps.ProductHandler.HandleListProducts)
				r.Get("/{productID}", deps.ProductHandler.HandleGetProduct)
				r.Put("/{productID}", deps.ProductHandler.HandleUpdateProduct)
				r.Delete("/{productID}", deps.ProductHandler.HandleDeleteProduct)
			})
		} else {
			log.Println("WARN: ProductHandler dependency is nil, skipping /v1/products routes.")
		}

		// --- Mount Upload Routes ---
		if deps.UploadHandler != nil {
			r.Post("/uploads", deps.UploadHandler.HandleUploadImage)
		} else {
			log.Println("WARN: UploadHandler dependency is nil, skipping /v1/uploads route.")
		}
	})

	return r
}
