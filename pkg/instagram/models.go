package instagram

import "encoding/json"

// User represents an Instagram user profile
type User struct {
	PK             int64  `json:"pk"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	Biography      string `json:"biography,omitempty"`
	IsPrivate      bool   `json:"is_private"`
	IsVerified     bool   `json:"is_verified"`
	ProfilePicURL  string `json:"profile_pic_url"`
	FollowerCount  int    `json:"follower_count"`
	FollowingCount int    `json:"following_count"`
	MediaCount     int    `json:"media_count"`
}

// UserInfo wraps the payload of the user info endpoints
type UserInfo struct {
	User   User   `json:"user"`
	Status string `json:"status"`
}

// Caption is the caption of a media item
type Caption struct {
	PK   json.Number `json:"pk"`
	Text string      `json:"text"`
}

// Media represents a single media item (photo, video or carousel)
type Media struct {
	PK           int64    `json:"pk"`
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	MediaType    int      `json:"media_type"`
	TakenAt      int64    `json:"taken_at"`
	LikeCount    int      `json:"like_count"`
	CommentCount int      `json:"comment_count"`
	Caption      *Caption `json:"caption"`
	User         *User    `json:"user,omitempty"`
}

// MediaPage is a paginated list of media items. Pass NextMaxID back as
// the cursor to fetch the following page.
type MediaPage struct {
	Items         []Media `json:"items"`
	NumResults    int     `json:"num_results"`
	MoreAvailable bool    `json:"more_available"`
	NextMaxID     string  `json:"next_max_id"`
	Status        string  `json:"status"`
}

// UserList is a paginated list of users (followers, following, likers)
type UserList struct {
	Users     []User `json:"users"`
	NextMaxID string `json:"next_max_id"`
	Status    string `json:"status"`
}

// Comment represents a single comment on a media item
type Comment struct {
	PK               int64  `json:"pk"`
	Text             string `json:"text"`
	CreatedAt        int64  `json:"created_at"`
	CommentLikeCount int    `json:"comment_like_count"`
	User             User   `json:"user"`
}

// CommentPage is a paginated list of comments. Pass NextMinID back as
// the cursor to fetch the following page.
type CommentPage struct {
	Comments     []Comment `json:"comments"`
	CommentCount int       `json:"comment_count"`
	NextMinID    string    `json:"next_min_id"`
	Status       string    `json:"status"`
}

// Reel is one user's current stories
type Reel struct {
	ID              json.Number `json:"id"`
	LatestReelMedia int64       `json:"latest_reel_media"`
	Items           []Media     `json:"items"`
	User            User        `json:"user"`
}

// Stories holds story reels keyed by user id
type Stories struct {
	Reels  map[string]Reel `json:"reels"`
	Status string          `json:"status"`
}

// Hashtag represents an Instagram hashtag
type Hashtag struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	MediaCount int    `json:"media_count"`
}

// SearchUser is a ranked user entry in search results
type SearchUser struct {
	Position int  `json:"position"`
	User     User `json:"user"`
}

// SearchHashtag is a ranked hashtag entry in search results
type SearchHashtag struct {
	Position int     `json:"position"`
	Hashtag  Hashtag `json:"hashtag"`
}

// SearchResult is the payload of the search endpoint
type SearchResult struct {
	Users    []SearchUser    `json:"users"`
	Hashtags []SearchHashtag `json:"hashtags"`
	Places   json.RawMessage `json:"places,omitempty"`
	Status   string          `json:"status"`
}

// Location represents an Instagram location
type Location struct {
	PK      int64   `json:"pk"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// LocationInfo wraps the payload of the location info endpoint
type LocationInfo struct {
	Location Location `json:"location"`
	Status   string   `json:"status"`
}
