package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/geunssam/jumprope-competition-manager-sub000/config"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/api/handler"
	"github.com/geunssam/jumprope-competition-manager-sub000/internal/api/middleware"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/jwt"
	"github.com/geunssam/jumprope-competition-manager-sub000/pkg/redis"
)

// Setup Gin 라우트 엔진을 초기화해 반환한다
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB — 명단/점수 JSON 에 충분

	// ── 헬스 체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 인증 모듈 (인증 불필요)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 접속 코드 공개 조회 (학생/학부모용, 인증 없음, 무차별 대입 방지)
		v1.GET("/lookup/:code", middleware.RateLimit(rdb, 30, time.Minute), h.Record.Lookup)

		// 인증이 필요한 라우트
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 인증 모듈 (인증 필요)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 종목 템플릿 모듈
			events := authorized.Group("/events")
			{
				events.GET("", h.Event.List)
				events.GET("/:id", h.Event.Get)
				events.POST("", middleware.RoleAuth("admin", "teacher"), h.Event.Create)
				events.PATCH("/:id", middleware.RoleAuth("admin", "teacher"), h.Event.Update)
				events.DELETE("/:id", middleware.RoleAuth("admin"), h.Event.Delete)
			}

			// 학급 모듈
			classes := authorized.Group("/classes")
			{
				classes.GET("", h.Class.List)
				classes.GET("/:id", h.Class.Get)
				classes.POST("", middleware.RoleAuth("admin", "teacher"), h.Class.Create)
				classes.PUT("/:id/roster", middleware.RoleAuth("admin", "teacher"), h.Class.UpdateRoster)
				classes.DELETE("/:id", middleware.RoleAuth("admin"), h.Class.Delete)

				// 점수/참가자/팀 (학급 결과 문서 단위)
				classes.PUT("/:id/results/:eventId/scores", middleware.RoleAuth("admin", "teacher"), h.Score.SetIndividualScore)
				classes.PUT("/:id/results/:eventId/team-scores", middleware.RoleAuth("admin", "teacher"), h.Score.SetTeamScore)
				classes.PUT("/:id/results/:eventId/participants", middleware.RoleAuth("admin", "teacher"), h.Score.SetParticipants)
				classes.POST("/:id/results/:eventId/teams", middleware.RoleAuth("admin", "teacher"), h.Score.CreateTeam)
				classes.DELETE("/:id/results/:eventId/teams/:teamId", middleware.RoleAuth("admin", "teacher"), h.Score.DeleteTeam)
				classes.DELETE("/:id/results/:eventId", middleware.RoleAuth("admin", "teacher"), h.Score.ResetResults)
			}

			// 학년 설정 / 순위 / 실시간 모듈
			grades := authorized.Group("/grades")
			{
				grades.GET("/:grade/config", h.GradeConfig.GetEffective)
				grades.PUT("/:grade/events/:eventId/selection", middleware.RoleAuth("admin", "teacher"), h.GradeConfig.SelectEvent)
				grades.POST("/:grade/events/:eventId/copy", middleware.RoleAuth("admin", "teacher"), h.GradeConfig.CopyEvent)
				grades.PUT("/:grade/order", middleware.RoleAuth("admin", "teacher"), h.GradeConfig.Reorder)
				grades.POST("/:grade/access-codes", middleware.RoleAuth("admin", "teacher"), h.GradeConfig.EnsureCodes)
				grades.GET("/:grade/standings", h.Score.Standings)
				grades.GET("/:grade/standings/export", h.Export.ExportStandings)
				grades.GET("/:grade/snapshot", h.Live.Snapshot)
				grades.GET("/:grade/live", h.Live.Stream)
			}

			// 성장 기록 모듈
			records := authorized.Group("/records")
			{
				records.GET("/students/:studentId", h.Record.ListByStudent)
				records.POST("/practice", middleware.RoleAuth("admin", "teacher"), h.Record.CreatePractice)
			}
		}
	}

	return r
}
