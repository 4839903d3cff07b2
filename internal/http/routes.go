package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/yamadaken1/jikoboard/internal/auth"
	"github.com/yamadaken1/jikoboard/internal/board"
	"github.com/yamadaken1/jikoboard/internal/config"
	"github.com/yamadaken1/jikoboard/internal/gen"
	"github.com/yamadaken1/jikoboard/internal/ws"
)

const (
	// One Gemini-backed request per 3 seconds per IP.
	genRateLimitRPS   = rate.Limit(1.0 / 3.0)
	genRateLimitBurst = 1
)

// SetupRoutes configures all application routes and middleware.
func SetupRoutes(router *gin.Engine, cfg config.Config, authSvc *auth.Service, boardSvc *board.Service, generator gen.Generator, hub *ws.Hub) {

	env := &Env{Auth: authSvc, Board: boardSvc, Gen: generator, Hub: hub}

	// --- Middleware ---

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("jikoboard_session", store))

	limiter := NewIPRateLimiter(genRateLimitRPS, genRateLimitBurst)
	go func() {
		for {
			time.Sleep(10 * time.Minute)
			limiter.Cleanup(10 * time.Minute)
		}
	}()

	// --- Auth ---

	router.POST("/register", env.Register)
	router.POST("/login", env.Login)
	router.GET("/logout", env.Logout)
	router.GET("/api/me", env.Me)

	// --- Generation (rate limited per IP) ---

	router.POST("/suggest_question", RateLimitMiddleware(limiter), env.SuggestQuestion)
	router.POST("/generate_extra_questions", RateLimitMiddleware(limiter), env.GenerateExtraQuestions)
	router.POST("/generate_intro", RateLimitMiddleware(limiter), env.GenerateIntro)

	// --- Board ---

	router.GET("/api/intros", env.ListIntros)

	authed := router.Group("/", RequireLogin())
	{
		authed.POST("/local_save", env.CreatePost)
		authed.POST("/react/:id", env.React)
		authed.POST("/comment/:id", env.Comment)
		authed.DELETE("/delete_intro/:id", env.DeleteIntro)
		authed.DELETE("/delete_comment/:id/:cid", env.DeleteComment)
	}

	// --- WebSocket ---

	router.GET("/ws", func(c *gin.Context) {
		ws.ServeWs(hub, c.Writer, c.Request)
	})

	// --- Frontend ---
	// Must come after the API routes.
	router.StaticFile("/", "./static/index.html")
	router.StaticFile("/board", "./static/board.html")
	router.Static("/static", "./static")
}
