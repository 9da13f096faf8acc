// Package server exposes the interaction webhook over HTTP.
package server

import (
	"encoding/json"
	"log"
	"net/http"

	"profile-bot/internal/command"
	"profile-bot/internal/discord"
	"profile-bot/internal/signature"
	"profile-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// Server routes verified interactions to the command registry.
type Server struct {
	registry *cmd.Registry
	verifier *signature.Verifier
	engine   *gin.Engine
}

func New(registry *cmd.Registry, verifier *signature.Verifier) *Server {
	s := &Server{
		registry: registry,
		verifier: verifier,
	}
	s.engine = s.routes()
	return s
}

// Handler returns the http.Handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(requestID(), gin.Logger(), gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[ERR] Panic while handling %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, discord.ErrorBody(discord.ErrInternal))
	}))

	r.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "Method not allowed")
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, discord.ErrorBody("Not found"))
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	verify := s.verifier.Middleware()
	r.POST("/", verify, s.handleInteraction)
	r.POST("/interactions", verify, s.handleInteraction)

	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		if parsed, err := uuid.Parse(c.GetHeader(HeaderRequestID)); err == nil {
			id = parsed.String()
		}
		c.Header(HeaderRequestID, id)
		c.Set(HeaderRequestID, id)
		c.Next()
	}
}

func (s *Server) handleInteraction(c *gin.Context) {
	body, ok := signature.Body(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, discord.ErrorBody(discord.ErrBadSignature))
		return
	}

	var head struct {
		Type discordgo.InteractionType `json:"type"`
	}
	if err := json.Unmarshal(body, &head); err != nil {
		log.Printf("[ERR] [%s] Malformed interaction payload: %v", c.GetString(HeaderRequestID), err)
		c.JSON(http.StatusInternalServerError, discord.ErrorBody(discord.ErrInternal))
		return
	}

	switch head.Type {
	case discordgo.InteractionPing:
		c.JSON(http.StatusOK, discord.Pong())

	case discordgo.InteractionApplicationCommand:
		var i discordgo.Interaction
		if err := json.Unmarshal(body, &i); err != nil {
			log.Printf("[ERR] [%s] Malformed command payload: %v", c.GetString(HeaderRequestID), err)
			c.JSON(http.StatusInternalServerError, discord.ErrorBody(discord.ErrInternal))
			return
		}
		s.dispatch(c, &i)

	default:
		log.Printf("[WARN] [%s] Unknown interaction type: %d", c.GetString(HeaderRequestID), head.Type)
		c.JSON(http.StatusBadRequest, discord.ErrorBody(discord.ErrUnknownType))
	}
}

func (s *Server) dispatch(c *gin.Context, i *discordgo.Interaction) {
	slash := command.NewContext(i)

	found := s.registry.Get(slash.Name)
	if found == nil {
		log.Printf("[WARN] [%s] Unknown command: %q", c.GetString(HeaderRequestID), slash.Name)
		c.JSON(http.StatusBadRequest, discord.ErrorBody(discord.ErrUnknownCommand))
		return
	}

	if err := found.Run(c.Request.Context(), &cmd.Invocation{Data: slash}); err != nil {
		c.JSON(http.StatusInternalServerError, discord.ErrorBody(discord.ErrInternal))
		return
	}

	c.JSON(http.StatusOK, slash.Response())
}
