// cmd/webhook/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profile-bot/internal/config"
	"profile-bot/internal/profile/minecraft"
	"profile-bot/internal/profile/roblox"
	"profile-bot/internal/server"
	"profile-bot/internal/signature"
	"profile-bot/pkg/batch"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("[INFO] Starting profile webhook...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	rb := roblox.NewClient(roblox.Endpoints{
		Users:      cfg.Endpoints.RobloxUsers,
		Thumbnails: cfg.Endpoints.RobloxThumbnails,
		Avatar:     cfg.Endpoints.RobloxAvatar,
		Economy:    cfg.Endpoints.RobloxEconomy,
	}, cfg.HTTPTimeout, batch.Options{Size: cfg.AssetBatchSize, Delay: cfg.AssetPacing})
	mc := minecraft.NewClient(cfg.Endpoints.Crafty, cfg.HTTPTimeout)

	registry := server.Commands(server.Deps{
		Roblox:            rb,
		Minecraft:         mc,
		RobloxUsername:    cfg.RobloxUsername,
		MinecraftUsername: cfg.MinecraftUsername,
		About:             cfg.About,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.New(registry, signature.NewVerifier(cfg.PublicKey)).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] HTTP server error:", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("[ERR] Shutdown:", err)
	}

	log.Println("[INFO] Webhook exited cleanly")
}
