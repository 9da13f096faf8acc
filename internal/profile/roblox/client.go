package roblox

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"profile-bot/internal/profile"
	"profile-bot/pkg/batch"
)

const Game = "roblox"

// Endpoints are the API hosts the client talks to.
type Endpoints struct {
	Users      string
	Thumbnails string
	Avatar     string
	Economy    string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{
		Users:      "https://users.roblox.com",
		Thumbnails: "https://thumbnails.roblox.com",
		Avatar:     "https://avatar.roblox.com",
		Economy:    "https://economy.roblox.com",
	}
}

type Client struct {
	http      *profile.Requester
	endpoints Endpoints
	assets    batch.Options
}

func NewClient(endpoints Endpoints, timeout time.Duration, assets batch.Options) *Client {
	return &Client{
		http:      profile.NewRequester(Game, timeout),
		endpoints: trimEndpoints(endpoints),
		assets:    assets,
	}
}

// Fetch resolves username to an id, then loads details, avatar and worn
// items. Every error is a *profile.FetchError.
func (c *Client) Fetch(ctx context.Context, username string) (*Profile, error) {
	log.Printf("[INFO] Fetching Roblox profile for %s", username)

	userID, err := c.lookupUserID(ctx, username)
	if err != nil {
		return nil, err
	}

	var (
		details  userDetails
		avatar   string
		assetIDs []int64
	)

	err = batch.All(ctx,
		func(ctx context.Context) error {
			return c.http.GetJSON(ctx, fmt.Sprintf("%s/v1/users/%d", c.endpoints.Users, userID), &details)
		},
		func(ctx context.Context) error {
			var err error
			avatar, err = c.avatarURL(ctx, userID)
			return err
		},
		func(ctx context.Context) error {
			var wearing wearingResponse
			if err := c.http.GetJSON(ctx, fmt.Sprintf("%s/v1/users/%d/currently-wearing", c.endpoints.Avatar, userID), &wearing); err != nil {
				return err
			}
			assetIDs = wearing.AssetIDs
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	assets := c.fetchAssets(ctx, assetIDs)

	name := details.Name
	if name == "" {
		name = username
	}

	return &Profile{
		UserID:      userID,
		Name:        name,
		DisplayName: details.DisplayName,
		Description: details.Description,
		Created:     details.Created,
		AvatarURL:   avatar,
		Assets:      assets,
	}, nil
}

func (c *Client) lookupUserID(ctx context.Context, username string) (int64, error) {
	var resp usernameLookupResponse
	err := c.http.PostJSON(ctx, c.endpoints.Users+"/v1/usernames/users", usernameLookupRequest{
		Usernames:          []string{username},
		ExcludeBannedUsers: false,
	}, &resp)
	if err != nil {
		return 0, err
	}
	if len(resp.Data) == 0 || resp.Data[0].ID == 0 {
		return 0, profile.NotFound(Game, "user "+username)
	}
	return resp.Data[0].ID, nil
}

func (c *Client) avatarURL(ctx context.Context, userID int64) (string, error) {
	q := url.Values{}
	q.Set("userIds", fmt.Sprint(userID))
	q.Set("size", "420x420")
	q.Set("format", "Png")
	q.Set("isCircular", "true")

	var resp thumbnailResponse
	if err := c.http.GetJSON(ctx, c.endpoints.Thumbnails+"/v1/users/avatar?"+q.Encode(), &resp); err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", nil
	}
	return resp.Data[0].ImageURL, nil
}

func (c *Client) fetchAssets(ctx context.Context, ids []int64) []Asset {
	if len(ids) == 0 {
		log.Println("[INFO] No asset IDs found, user may not be wearing anything")
		return nil
	}

	assets := batch.Collect(ctx, ids, c.assets, c.assetDetails, func(id int64, err error) {
		log.Printf("[WARN] Failed to fetch asset %d: %v", id, err)
	})
	log.Printf("[INFO] Assets fetched: %d of %d", len(assets), len(ids))
	return assets
}

func (c *Client) assetDetails(ctx context.Context, id int64) (Asset, error) {
	var d assetDetails
	if err := c.http.GetJSON(ctx, fmt.Sprintf("%s/v2/assets/%d/details", c.endpoints.Economy, id), &d); err != nil {
		return Asset{}, err
	}

	creator := "Unknown"
	if d.Creator != nil && d.Creator.Name != "" {
		creator = d.Creator.Name
	}
	assetID := d.AssetID
	if assetID == 0 {
		assetID = id
	}

	return Asset{
		ID:          assetID,
		Name:        d.Name,
		AssetType:   d.AssetTypeID,
		CreatorName: creator,
	}, nil
}

func profileURL(userID int64) string {
	return fmt.Sprintf("https://www.roblox.com/users/%d/profile", userID)
}

func trimEndpoints(e Endpoints) Endpoints {
	d := DefaultEndpoints()
	pick := func(v, def string) string {
		v = strings.TrimRight(strings.TrimSpace(v), "/")
		if v == "" {
			return def
		}
		return v
	}
	return Endpoints{
		Users:      pick(e.Users, d.Users),
		Thumbnails: pick(e.Thumbnails, d.Thumbnails),
		Avatar:     pick(e.Avatar, d.Avatar),
		Economy:    pick(e.Economy, d.Economy),
	}
}
