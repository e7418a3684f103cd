package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goto/salt/audit"
	"github.com/sirupsen/logrus"

	"github.com/Dafi-web/events-sub000/pkg/auth"
	"github.com/Dafi-web/events-sub000/pkg/log"
)

const (
	logrusActorKey = "actor"
	httpPathKey    = "http_path"
)

// headerAuth trusts the identity forwarded by the identity provider in front
// of the service. Requests without a user id header are anonymous.
func headerAuth(cfg Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := auth.ActorFromHeaders(c.GetHeader(cfg.UserIDHeader), c.GetHeader(cfg.RoleHeader))
		if actor != nil {
			ctx := auth.WithActor(c.Request.Context(), actor)
			ctx = audit.WithActor(ctx, actor.ID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// enrichLogFields attaches the actor and route to the request context so
// every log line written while serving it carries them.
func enrichLogFields(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := logrus.Fields{
			httpPathKey: c.FullPath(),
		}
		if actor := auth.ActorFromContext(c.Request.Context()); actor != nil {
			fields[logrusActorKey] = actor.ID
		}

		ctx, err := log.WithMetadata(c.Request.Context(), fields)
		if err != nil {
			logger.Warn(c.Request.Context(), "failed to attach log fields", "error", err)
		} else {
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

func requestLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []interface{}{
			"method", c.Request.Method,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if c.Writer.Status() >= 500 {
			logger.Error(c.Request.Context(), "request failed", args...)
			return
		}
		logger.Debug(c.Request.Context(), "request served", args...)
	}
}
