package roblox

// Profile is the normalized record rendered by the formatter.
type Profile struct {
	UserID      int64
	Name        string
	DisplayName string
	Description string
	Created     string
	AvatarURL   string
	Assets      []Asset
}

// Asset is one currently worn catalog item.
type Asset struct {
	ID          int64
	Name        string
	AssetType   int
	CreatorName string
}

// ProfileURL is the public profile page.
func (p *Profile) ProfileURL() string {
	return profileURL(p.UserID)
}

// upstream response shapes

type usernameLookupRequest struct {
	Usernames          []string `json:"usernames"`
	ExcludeBannedUsers bool     `json:"excludeBannedUsers"`
}

type usernameLookupResponse struct {
	Data []struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
	} `json:"data"`
}

type userDetails struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Created     string `json:"created"`
}

type thumbnailResponse struct {
	Data []struct {
		TargetID int64  `json:"targetId"`
		State    string `json:"state"`
		ImageURL string `json:"imageUrl"`
	} `json:"data"`
}

type wearingResponse struct {
	AssetIDs []int64 `json:"assetIds"`
}

type assetDetails struct {
	AssetID     int64  `json:"AssetId"`
	Name        string `json:"Name"`
	AssetTypeID int    `json:"AssetTypeId"`
	Creator     *struct {
		Name string `json:"Name"`
	} `json:"Creator"`
}
