package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/inkwell-press/inkwell/internal/blog/service"
	"github.com/inkwell-press/inkwell/internal/blog/store"
	"github.com/inkwell-press/inkwell/pkg/httpx"
	"github.com/inkwell-press/inkwell/pkg/jwtx"
	"github.com/inkwell-press/inkwell/pkg/slogx"

	_ "github.com/inkwell-press/inkwell/api/blog" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier      jwtx.Verifier
	buildVersion  string
	startTime     time.Time
	logger        *slog.Logger
	secureCookies bool

	// Uploads serves stored cover files when the local asset driver is
	// active. Nil when assets live elsewhere (for example S3).
	Uploads http.Handler

	store          store.Store
	UserService    *service.UserService
	SessionService *service.SessionService
	PostService    *service.PostService

	MaxUploadBytes int64
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	allowOrigin string,
	secureCookies bool,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		verifier:      verifier,
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		secureCookies: secureCookies,
		store:         st,
		logger:        logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(allowOrigin),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerPosts()
	r.registerSystem()

	if r.Uploads != nil {
		r.Mux.Handle("GET /uploads/", r.Uploads)
	}

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Inkwell Publishing API
//	@version		0.1.0
//	@description	Multi-author publishing backend: account registration, cookie
//	@description	sessions and author-bound post management with cover uploads.
//
//	@contact.name	Inkwell Press
//	@contact.url	https://github.com/inkwell-press/inkwell
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	// POST /register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.Mux.Handle("POST /register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{
		UserService:    r.UserService,
		SessionService: r.SessionService,
		SecureCookies:  r.secureCookies,
	}
	r.Mux.Handle("POST /login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Profile echoes the verified session identity. Registered for both
	// verbs the web client uses.
	profileHandler := &ProfileHandler{}
	securedProfile := httpx.Chain(profileHandler,
		httpx.SessionMiddleware(r.verifier),
		httpx.RateLimitByAccount(httpx.LenientLimit),
	)
	r.Mux.Handle("GET /profile", securedProfile)
	r.Mux.Handle("POST /profile", securedProfile)

	// POST /logout - clears the cookie, no session required
	logoutHandler := &LogoutHandler{SecureCookies: r.secureCookies}
	r.Mux.Handle("POST /logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPosts() {
	// Public reads - high limit
	listHandler := &PostListHandler{PostService: r.PostService}
	r.Mux.Handle("GET /post",
		httpx.Chain(listHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	getHandler := &PostGetHandler{PostService: r.PostService}
	r.Mux.Handle("GET /post/{id}",
		httpx.Chain(getHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Mutations require a session - moderate rate limit by account
	createHandler := &PostCreateHandler{
		PostService:    r.PostService,
		MaxUploadBytes: r.MaxUploadBytes,
	}
	r.Mux.Handle("POST /post",
		httpx.Chain(createHandler,
			httpx.SessionMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)

	updateHandler := &PostUpdateHandler{
		PostService:    r.PostService,
		MaxUploadBytes: r.MaxUploadBytes,
	}
	r.Mux.Handle("PUT /post/{id}",
		httpx.Chain(updateHandler,
			httpx.SessionMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)

	deleteHandler := &PostDeleteHandler{PostService: r.PostService}
	r.Mux.Handle("DELETE /delete/{id}",
		httpx.Chain(deleteHandler,
			httpx.SessionMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
