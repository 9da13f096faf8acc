// /internal/config/config.go
package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
}

// Endpoints holds the base URLs of the upstream profile APIs.
type Endpoints struct {
	RobloxUsers      string `env:"ROBLOX_USERS_URL" envDefault:"https://users.roblox.com"`
	RobloxThumbnails string `env:"ROBLOX_THUMBNAILS_URL" envDefault:"https://thumbnails.roblox.com"`
	RobloxAvatar     string `env:"ROBLOX_AVATAR_URL" envDefault:"https://avatar.roblox.com"`
	RobloxEconomy    string `env:"ROBLOX_ECONOMY_URL" envDefault:"https://economy.roblox.com"`
	Crafty           string `env:"CRAFTY_URL" envDefault:"https://api.crafty.gg"`
}

type Config struct {
	PublicKeyHex string `env:"DISCORD_PUBLIC_KEY,required,notEmpty"`
	Port         string `env:"PORT" envDefault:"8080"`

	RobloxUsername    string `env:"ROBLOX_USERNAME" envDefault:"Shir0haru"`
	MinecraftUsername string `env:"MINECRAFT_USERNAME" envDefault:"Shir0haru"`

	AssetBatchSize int           `env:"ASSET_BATCH_SIZE" envDefault:"10"`
	AssetPacing    time.Duration `env:"ASSET_PACING" envDefault:"200ms"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	About string `env:"BOT_ABOUT" envDefault:"Game profile lookups over Discord interactions"`

	Endpoints Endpoints

	PublicKey ed25519.PublicKey
}

// Load reads the process environment once. The returned config is not
// modified afterwards.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	key, err := ParsePublicKey(cfg.PublicKeyHex)
	if err != nil {
		return nil, err
	}
	cfg.PublicKey = key

	if cfg.AssetBatchSize < 1 {
		cfg.AssetBatchSize = 1
	}
	if cfg.AssetPacing < 0 {
		cfg.AssetPacing = 0
	}

	return &cfg, nil
}

// ParsePublicKey decodes the hex application public key shown in the
// Discord developer portal.
func ParsePublicKey(s string) (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY is not hex: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	return ed25519.PublicKey(raw), nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// RegisterConfig is used by cmd/register only; the webhook itself never
// needs a bot token.
type RegisterConfig struct {
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`
	AppID        string `env:"DISCORD_APP_ID,required,notEmpty"`
	GuildID      string `env:"DISCORD_GUILD_ID"`
}

func LoadRegister() (*RegisterConfig, error) {
	cfg, err := env.ParseAs[RegisterConfig]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
