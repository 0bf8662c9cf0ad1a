// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/dalemusser/quillpad/internal/app/features/about"
	errorsfeature "github.com/dalemusser/quillpad/internal/app/features/errors"
	groupsfeature "github.com/dalemusser/quillpad/internal/app/features/groups"
	healthfeature "github.com/dalemusser/quillpad/internal/app/features/health"
	homefeature "github.com/dalemusser/quillpad/internal/app/features/home"
	loginfeature "github.com/dalemusser/quillpad/internal/app/features/login"
	logoutfeature "github.com/dalemusser/quillpad/internal/app/features/logout"
	postsfeature "github.com/dalemusser/quillpad/internal/app/features/posts"
	profilefeature "github.com/dalemusser/quillpad/internal/app/features/profile"
	signupfeature "github.com/dalemusser/quillpad/internal/app/features/signup"
	userstore "github.com/dalemusser/quillpad/internal/app/store/users"
	"github.com/dalemusser/quillpad/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. Quillpad initializes the template
// engine, applies session middleware, and mounts the feed, authoring,
// comment and identity routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// LoadSessionUser fetches fresh user data on each request, so
	// profile renames take effect immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Uploaded post images
	if appCfg.UploadPath != "" {
		r.Handle(appCfg.UploadURL+"/*", fileserver.Handler(appCfg.UploadURL, appCfg.UploadPath))
	}

	// Feeds
	homeHandler := homefeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	groupsHandler := groupsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/groups", groupsfeature.Routes(groupsHandler, sessionMgr))
	r.Mount("/group", groupsfeature.FeedRoutes(groupsHandler))

	profileHandler := profilefeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler))

	// Posts, authoring and comments
	postsHandler := postsfeature.NewHandler(deps.MongoDatabase, appCfg.UploadPath, errLog, logger)
	r.Mount("/posts", postsfeature.Routes(postsHandler, sessionMgr))
	r.Mount("/create", postsfeature.CreateRoutes(postsHandler, sessionMgr))

	// Identity
	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	signupHandler := signupfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, logger)
	r.Mount("/signup", signupfeature.Routes(signupHandler))

	// Static pages and error fallbacks
	aboutHandler := aboutfeature.NewHandler()
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
