package minecraft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"profile-bot/internal/profile"
)

const Game = "minecraft"

const DefaultBaseURL = "https://api.crafty.gg"

// Profile is the normalized record rendered by the formatter. Preview URLs
// are empty when the player has no skin or cape on record.
type Profile struct {
	UUID          string
	Name          string
	ProfileURL    string
	PageURL       string
	SkinURL       string
	PreviewSkin   string
	PreviewCape   string
	Location      string
	MonthlyViews  int64
	LifetimeViews int64
	DownloadSkin  string
}

type Client struct {
	http    *profile.Requester
	baseURL string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    profile.NewRequester(Game, timeout),
		baseURL: baseURL,
	}
}

// Fetch looks the player up by username. Presentation URLs are derived
// from the returned identifiers without further calls.
func (c *Client) Fetch(ctx context.Context, username string) (*Profile, error) {
	log.Printf("[INFO] Fetching Minecraft profile for %s", username)

	var resp playerResponse
	if err := c.http.GetJSON(ctx, c.baseURL+"/api/v2/players/"+url.PathEscape(username), &resp); err != nil {
		return nil, err
	}

	d := resp.Data
	if d == nil || d.UUID == "" {
		return nil, profile.NotFound(Game, "player "+username)
	}

	name := d.Username
	if name == "" {
		name = username
	}

	p := &Profile{
		UUID:          d.UUID,
		Name:          name,
		ProfileURL:    "https://crafty.gg/@" + url.PathEscape(name),
		PageURL:       "https://crafty.gg/player/" + d.UUID,
		SkinURL:       fmt.Sprintf("https://minotar.net/helm/%s/512.png", d.UUID),
		Location:      UnknownFlag + " Unknown",
		MonthlyViews:  d.ViewsMonthly,
		LifetimeViews: d.ViewsLifetime,
		DownloadSkin:  "https://minecraft.tools/download-skin/" + url.PathEscape(name),
	}

	if len(d.Skins) > 0 && d.Skins[0].ID != "" {
		p.PreviewSkin = "https://crafty.gg/skins/" + string(d.Skins[0].ID)
	}
	if len(d.Capes) > 0 && d.Capes[0].ID != "" {
		p.PreviewCape = "https://crafty.gg/capes/" + string(d.Capes[0].ID)
	}
	if d.Location != nil {
		p.Location = CountryFlag(d.Location.Code) + " " + d.Location.Country
	}

	return p, nil
}

type playerResponse struct {
	Success bool        `json:"success"`
	Data    *playerData `json:"data"`
}

type playerData struct {
	UUID          string    `json:"uuid"`
	Username      string    `json:"username"`
	Skins         []texture `json:"skins"`
	Capes         []texture `json:"capes"`
	Location      *location `json:"location"`
	ViewsMonthly  int64     `json:"views_monthly"`
	ViewsLifetime int64     `json:"views_lifetime"`
}

type texture struct {
	ID textureID `json:"id"`
}

type location struct {
	Code    string `json:"code"`
	Country string `json:"country"`
}

// textureID accepts both string and numeric ids.
type textureID string

func (t *textureID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = textureID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = textureID(n.String())
	return nil
}
