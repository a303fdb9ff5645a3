package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/wanderlist/wanderlist/internal/api/service"
	"github.com/wanderlist/wanderlist/internal/api/store"
	"github.com/wanderlist/wanderlist/pkg/httpx"
	"github.com/wanderlist/wanderlist/pkg/jwtx"
	"github.com/wanderlist/wanderlist/pkg/mapsdk"
	"github.com/wanderlist/wanderlist/pkg/slogx"

	_ "github.com/wanderlist/wanderlist/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	MapService        *service.MapService
	MembershipService *service.MembershipService
	InviteService     *service.InviteService
	ProfileService    *service.ProfileService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerMaps()
	r.registerInvites()
	r.registerProfile()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Wanderlist Map Sharing API
//	@version		0.1.0
//	@description	Collaborative map sharing: maps, memberships, shareable invite tokens
//	@description	and per-user active-map state.
//	@description
//	@description				Authentication is delegated to the identity provider; every
//	@description				protected endpoint expects its bearer token and identifies the
//	@description				caller by the subject claim.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// ensureProfile lazily creates the caller's profile row on first
// authenticated contact. Must run after AuthnMiddleware.
func (r *Router) ensureProfile() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := req.Context()
			if _, err := r.ProfileService.EnsureProfile(ctx, httpx.UserIDFromContext(ctx)); err != nil {
				slogx.FromContext(ctx).Error("failed to ensure profile", "err", err)
				writeError(w, http.StatusInternalServerError, mapsdk.CodeServerError, "Internal server error")
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

// secured wraps a handler with authentication, profile bootstrap, and a
// per-user rate limit.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier), // verify JWT (iss/exp)
		r.ensureProfile(),
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerMaps() {
	maps := &MapsHandler{MapService: r.MapService}
	members := &MembersHandler{MembershipService: r.MembershipService}

	r.Mux.Handle("POST /v1/maps", r.secured(http.HandlerFunc(maps.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/maps", r.secured(http.HandlerFunc(maps.HandleList), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/maps/{id}", r.secured(http.HandlerFunc(maps.HandleRename), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/maps/{id}", r.secured(http.HandlerFunc(maps.HandleDelete), httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/maps/{id}/members", r.secured(http.HandlerFunc(members.HandleList), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/maps/{id}/members/me", r.secured(http.HandlerFunc(members.HandleLeave), httpx.ModerateLimit))
}

func (r *Router) registerInvites() {
	createHandler := &InviteCreateHandler{InviteService: r.InviteService}
	listHandler := &InviteListHandler{InviteService: r.InviteService}
	redeemHandler := &InviteRedeemHandler{InviteService: r.InviteService}

	r.Mux.Handle("POST /v1/invites", r.secured(createHandler, httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/maps/{id}/invites", r.secured(listHandler, httpx.ModerateLimit))

	// Redemption burns constrained-use tokens, so it gets the strict tier
	// keyed by IP and user together.
	r.Mux.Handle("POST /v1/invites/redeem",
		httpx.Chain(redeemHandler,
			httpx.AuthnMiddleware(r.verifier),
			r.ensureProfile(),
			httpx.RateLimitMiddleware(httpx.StrictLimit,
				httpx.CompositeKeyExtractor(":", httpx.IPKeyExtractor, httpx.UserIDKeyExtractor)),
		),
	)
}

func (r *Router) registerProfile() {
	h := &ProfileHandler{ProfileService: r.ProfileService}

	r.Mux.Handle("GET /v1/profile", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/profile/active-map", r.secured(http.HandlerFunc(h.HandleSetActiveMap), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
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
