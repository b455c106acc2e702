package routes

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/shramana263/neighbourlink/app/controllers"
	"github.com/shramana263/neighbourlink/app/middleware"
	"github.com/shramana263/neighbourlink/app/repositories"
	"github.com/shramana263/neighbourlink/app/services"
	"github.com/shramana263/neighbourlink/app/ws"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// Options tunes SetupRoutes. Zero values fall back to sensible defaults.
type Options struct {
	TokenTTL       time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// SetupRoutes wires repositories, services and controllers over the given
// store and returns the router plus the notification hub. The caller owns
// running the hub (`go hub.Run()`).
func SetupRoutes(db *badger.DB, opts Options) (*mux.Router, *ws.Hub) {
	if opts.RateLimitRPS <= 0 {
		opts.RateLimitRPS = 1.0 / 3.0
	}
	if opts.RateLimitBurst < 1 {
		opts.RateLimitBurst = 3
	}

	hub := ws.NewHub()

	// Repositories.
	postRepo := repositories.NewBadgerPostRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)
	sessionRepo := repositories.NewBadgerSessionRepository(db)
	skillRepo := repositories.NewBadgerSkillRepository(db)
	volunteerRepo := repositories.NewBadgerVolunteerRepository(db)
	businessRepo := repositories.NewBadgerBusinessRepository(db)
	notificationRepo := repositories.NewBadgerNotificationRepository(db)

	// Services.
	authService := services.NewAuthService(userRepo, sessionRepo, opts.TokenTTL)
	notificationService := services.NewNotificationService(notificationRepo, hub)
	postService := services.NewPostService(postRepo)
	responderService := services.NewResponderService(postRepo, userRepo, notificationService)
	communityService := services.NewCommunityService(skillRepo, volunteerRepo, businessRepo)

	// Controllers.
	authController := controllers.NewAuthController(authService)
	postController := controllers.NewPostController(postService, responderService)
	communityController := controllers.NewCommunityController(communityService)
	notificationController := controllers.NewNotificationController(notificationService)

	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
			return
		}
		http.NotFound(w, r)
	})

	requireAuth := middleware.RequireAuth(authService)
	limiter := middleware.NewIPRateLimiter(rate.Limit(opts.RateLimitRPS), opts.RateLimitBurst)
	rateLimit := middleware.RateLimit(limiter)

	api := router.PathPrefix("/api").Subrouter()

	// Auth endpoints
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authController.Register).Methods("POST")
	auth.HandleFunc("/login", authController.Login).Methods("POST")
	auth.HandleFunc("/logout", authController.Logout).Methods("POST")
	auth.Handle("/me", requireAuth(http.HandlerFunc(authController.Me))).Methods("GET")

	// Posts endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.Handle("", requireAuth(rateLimit(http.HandlerFunc(postController.Create)))).Methods("POST")
	posts.Handle("/{id}", requireAuth(http.HandlerFunc(postController.Edit))).Methods("PUT")
	posts.Handle("/{id}", requireAuth(http.HandlerFunc(postController.Delete))).Methods("DELETE")

	// Responder workflow endpoints
	posts.Handle("/{id}/respond", requireAuth(http.HandlerFunc(postController.Respond))).Methods("POST")
	posts.Handle("/{id}/accept", requireAuth(http.HandlerFunc(postController.Accept))).Methods("POST")

	// Skills endpoints
	api.HandleFunc("/skills", communityController.SkillsIndex).Methods("GET")
	api.Handle("/skills", requireAuth(http.HandlerFunc(communityController.SkillsCreate))).Methods("POST")

	// Volunteers endpoints
	api.HandleFunc("/volunteers", communityController.VolunteersIndex).Methods("GET")
	api.Handle("/volunteers", requireAuth(http.HandlerFunc(communityController.VolunteersCreate))).Methods("POST")

	// Businesses endpoints
	api.HandleFunc("/businesses", communityController.BusinessesIndex).Methods("GET")
	api.Handle("/businesses", requireAuth(http.HandlerFunc(communityController.BusinessesCreate))).Methods("POST")
	api.Handle("/businesses/{id}", requireAuth(http.HandlerFunc(communityController.BusinessesEdit))).Methods("PUT")

	// Notifications endpoints
	api.Handle("/notifications", requireAuth(http.HandlerFunc(notificationController.Index))).Methods("GET")
	api.Handle("/notifications/{id}/read", requireAuth(http.HandlerFunc(notificationController.MarkRead))).Methods("POST")

	// Websocket notification stream. Browsers cannot set headers on
	// websocket dials, so the token rides the query string.
	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		user, err := authService.Resolve(middleware.BearerToken(r))
		if err != nil {
			http.Error(w, "not signed in", http.StatusUnauthorized)
			return
		}
		ws.ServeWs(hub, user.ID, w, r)
	})

	return router, hub
}
