package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rocketapi/pkg/api"
	"rocketapi/pkg/errors"
	"rocketapi/pkg/logger"
)

// DefaultCount is the page size used when no count is given
const DefaultCount = 12

// payload is the JSON body of an endpoint call
type payload = map[string]interface{}

// API is the Instagram facade over the RocketAPI transport
type API struct {
	client *api.Client
}

// New creates a new Instagram API client. Timeouts below 15 seconds are
// discouraged by the service.
func New(token string, timeout time.Duration, log logger.Logger) *API {
	return &API{client: api.NewClient(token, timeout, log)}
}

// NewWithClient creates an Instagram API facade over an existing
// transport client. Useful for sharing one client between facades.
func NewWithClient(client *api.Client) *API {
	return &API{client: client}
}

// Client returns the underlying transport client, which exposes the
// last raw envelope and the request counter for debugging.
func (a *API) Client() *api.Client {
	return a.client
}

// decodeInto unmarshals an endpoint body into a typed payload
func decodeInto[T any](raw json.RawMessage, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.BadResponse(fmt.Sprintf("failed to decode payload: %v", err), raw)
	}
	return &out, nil
}

// Search searches for users, hashtags and places
func (a *API) Search(ctx context.Context, query string) (*SearchResult, error) {
	return decodeInto[SearchResult](a.client.Request(ctx, "instagram/search", payload{"query": query}))
}

// GetUserInfo retrieves user information by username
func (a *API) GetUserInfo(ctx context.Context, username string) (*UserInfo, error) {
	return decodeInto[UserInfo](a.client.Request(ctx, "instagram/user/get_info", payload{"username": username}))
}

// GetUserInfoByID retrieves user information by user id
func (a *API) GetUserInfoByID(ctx context.Context, userID int64) (*UserInfo, error) {
	return decodeInto[UserInfo](a.client.Request(ctx, "instagram/user/get_info_by_id", payload{"id": userID}))
}

// GetUserMedia retrieves user media by user id. count caps at 50 on the
// service side; maxID is the next_max_id cursor from the previous page.
func (a *API) GetUserMedia(ctx context.Context, userID int64, count int, maxID string) (*MediaPage, error) {
	p := countedPayload(userID, count)
	if maxID != "" {
		p["max_id"] = maxID
	}
	return decodeInto[MediaPage](a.client.Request(ctx, "instagram/user/get_media", p))
}

// GetUserClips retrieves user clips (the "Reels" section) by user id.
// The pagination cursor comes back in the max_id field, not next_max_id.
func (a *API) GetUserClips(ctx context.Context, userID int64, count int, maxID string) (*MediaPage, error) {
	p := countedPayload(userID, count)
	if maxID != "" {
		p["max_id"] = maxID
	}
	return decodeInto[MediaPage](a.client.Request(ctx, "instagram/user/get_clips", p))
}

// GetUserGuides retrieves user guides by user id
func (a *API) GetUserGuides(ctx context.Context, userID int64, maxID string) (json.RawMessage, error) {
	p := payload{"id": userID}
	if maxID != "" {
		p["max_id"] = maxID
	}
	return a.client.Request(ctx, "instagram/user/get_guides", p)
}

// GetUserTags retrieves media the user is tagged in. The pagination
// cursor comes back in the end_cursor field.
func (a *API) GetUserTags(ctx context.Context, userID int64, count int, maxID string) (json.RawMessage, error) {
	p := countedPayload(userID, count)
	if maxID != "" {
		p["max_id"] = maxID
	}
	return a.client.Request(ctx, "instagram/user/get_tags", p)
}

// GetUserFollowing retrieves accounts the user follows. count caps at
// 200 on the service side.
func (a *API) GetUserFollowing(ctx context.Context, userID int64, count int, maxID string) (*UserList, error) {
	p := countedPayload(userID, count)
	if maxID != "" {
		p["max_id"] = maxID
	}
	return decodeInto[UserList](a.client.Request(ctx, "instagram/user/get_following", p))
}

// SearchUserFollowing searches within the accounts the user follows
func (a *API) SearchUserFollowing(ctx context.Context, userID int64, query string) (*UserList, error) {
	return decodeInto[UserList](a.client.Request(ctx, "instagram/user/get_following",
		payload{"id": userID, "query": query}))
}

// GetUserFollowers retrieves the user's followers. count caps at 100 on
// the service side.
func (a *API) GetUserFollowers(ctx context.Context, userID int64, count int, maxID string) (*UserList, error) {
	p := countedPayload(userID, count)
	if maxID != "" {
		p["max_id"] = maxID
	}
	return decodeInto[UserList](a.client.Request(ctx, "instagram/user/get_followers", p))
}

// SearchUserFollowers searches within the user's followers
func (a *API) SearchUserFollowers(ctx context.Context, userID int64, query string) (*UserList, error) {
	return decodeInto[UserList](a.client.Request(ctx, "instagram/user/get_followers",
		payload{"id": userID, "query": query}))
}

// GetUserStoriesBulk retrieves stories for up to 4 user ids per request
func (a *API) GetUserStoriesBulk(ctx context.Context, userIDs []int64) (*Stories, error) {
	return decodeInto[Stories](a.client.Request(ctx, "instagram/user/get_stories", payload{"ids": userIDs}))
}

// GetUserStories retrieves a single user's stories
func (a *API) GetUserStories(ctx context.Context, userID int64) (*Stories, error) {
	return a.GetUserStoriesBulk(ctx, []int64{userID})
}

// GetUserHighlights retrieves the user's highlight tray
func (a *API) GetUserHighlights(ctx context.Context, userID int64) (json.RawMessage, error) {
	return a.client.Request(ctx, "instagram/user/get_highlights", payload{"id": userID})
}

// GetUserLive retrieves the user's live broadcast, if any
func (a *API) GetUserLive(ctx context.Context, userID int64) (json.RawMessage, error) {
	return a.client.Request(ctx, "instagram/user/get_live", payload{"id": userID})
}

// GetUserSimilarAccounts looks up accounts similar to the user.
// Typically up to 80 accounts come back.
func (a *API) GetUserSimilarAccounts(ctx context.Context, userID int64) (*UserList, error) {
	return decodeInto[UserList](a.client.Request(ctx, "instagram/user/get_similar_accounts", payload{"id": userID}))
}

// GetUserAbout obtains the "About this Account" details. The endpoint
// is only enabled for Enterprise+ plans.
func (a *API) GetUserAbout(ctx context.Context, userID int64) (json.RawMessage, error) {
	return a.client.Request(ctx, "instagram/user/get_about", payload{"id": userID})
}

// GetMediaInfo retrieves media information by media id
func (a *API) GetMediaInfo(ctx context.Context, mediaID int64) (*MediaPage, error) {
	return decodeInto[MediaPage](a.client.Request(ctx, "instagram/media/get_info", payload{"id": mediaID}))
}

// GetMediaInfoByShortcode retrieves media information by shortcode,
// returning the same payload as GetMediaInfo
func (a *API) GetMediaInfoByShortcode(ctx context.Context, shortcode string) (*MediaPage, error) {
	return decodeInto[MediaPage](a.client.Request(ctx, "instagram/media/get_info_by_shortcode",
		payload{"shortcode": shortcode}))
}

// GetMediaLikes retrieves accounts that liked a media item. count caps
// at 50 on the service side.
func (a *API) GetMediaLikes(ctx context.Context, shortcode string, count int, maxID string) (*UserList, error) {
	p := payload{"shortcode": shortcode, "count": normalizeCount(count)}
	if maxID != "" {
		p["max_id"] = maxID
	}
	return decodeInto[UserList](a.client.Request(ctx, "instagram/media/get_likes", p))
}

// GetMediaComments retrieves comments on a media item. Set
// canSupportThreading to false for chronological order; minID is the
// next_min_id cursor from the previous page.
func (a *API) GetMediaComments(ctx context.Context, mediaID int64, canSupportThreading bool, minID string) (*CommentPage, error) {
	p := payload{"media_id": mediaID, "can_support_threading": canSupportThreading}
	if minID != "" {
		p["min_id"] = minID
	}
	return decodeInto[CommentPage](a.client.Request(ctx, "instagram/media/get_comments", p))
}

// GetMediaShortcodeByID converts a media id to its shortcode. The
// endpoint is provided free of charge.
func (a *API) GetMediaShortcodeByID(ctx context.Context, mediaID int64) (json.RawMessage, error) {
	return a.client.Request(ctx, "instagram/media/get_shortcode_by_id", payload{"id": mediaID})
}

// GetMediaIDByShortcode converts a shortcode to its media id. The
// endpoint is provided free of charge.
func (a *API) GetMediaIDByShortcode(ctx context.Context, shortcode string) (json.RawMessage, error) {
	return a.client.Request(ctx, "instagram/media/get_id_by_shortcode", payload{"shortcode": shortcode})
}

// GetGuideInfo retrieves guide information by guide id
func (a *API) GetGuideInfo(ctx context.Context, guideID int64) (json.RawMessage, error) {
	return a.client.Request(ctx, "instagram/guide/get_info", payload{"id": guideID})
}

// GetLocationInfo retrieves location information by location id
func (a *API) GetLocationInfo(ctx context.Context, locationID int64) (*LocationInfo, error) {
	return decodeInto[LocationInfo](a.client.Request(ctx, "instagram/location/get_info", payload{"id": locationID}))
}

// GetLocationMedia retrieves location media by location id. Pagination
// needs both the page number and max_id from the previous response.
func (a *API) GetLocationMedia(ctx context.Context, locationID int64, page int, maxID string) (json.RawMessage, error) {
	p := payload{"id": locationID}
	if page > 0 {
		p["page"] = page
	}
	if maxID != "" {
		p["max_id"] = maxID
	}
	return a.client.Request(ctx, "instagram/location/get_media", p)
}

// GetHashtagInfo retrieves hashtag information by hashtag name
func (a *API) GetHashtagInfo(ctx context.Context, name string) (*Hashtag, error) {
	return decodeInto[Hashtag](a.client.Request(ctx, "instagram/hashtag/get_info", payload{"name": name}))
}

// GetHashtagMedia retrieves hashtag media by hashtag name. Pagination
// needs both the page number and max_id from the previous response.
func (a *API) GetHashtagMedia(ctx context.Context, name string, page int, maxID string) (json.RawMessage, error) {
	p := payload{"name": name}
	if page > 0 {
		p["page"] = page
	}
	if maxID != "" {
		p["max_id"] = maxID
	}
	return a.client.Request(ctx, "instagram/hashtag/get_media", p)
}

// GetHighlightStoriesBulk retrieves stories for several highlight ids
func (a *API) GetHighlightStoriesBulk(ctx context.Context, highlightIDs []int64) (json.RawMessage, error) {
	return a.client.Request(ctx, "instagram/highlight/get_stories", payload{"ids": highlightIDs})
}

// GetHighlightStories retrieves stories for a single highlight id
func (a *API) GetHighlightStories(ctx context.Context, highlightID int64) (json.RawMessage, error) {
	return a.GetHighlightStoriesBulk(ctx, []int64{highlightID})
}

// GetCommentLikes retrieves accounts that liked a comment
func (a *API) GetCommentLikes(ctx context.Context, commentID int64, maxID string) (*UserList, error) {
	p := payload{"id": commentID}
	if maxID != "" {
		p["max_id"] = maxID
	}
	return decodeInto[UserList](a.client.Request(ctx, "instagram/comment/get_likes", p))
}

// GetCommentReplies retrieves replies to a comment. The pagination
// cursor comes back in the next_max_child_cursor field.
func (a *API) GetCommentReplies(ctx context.Context, commentID, mediaID int64, maxID string) (json.RawMessage, error) {
	p := payload{"id": commentID, "media_id": mediaID}
	if maxID != "" {
		p["max_id"] = maxID
	}
	return a.client.Request(ctx, "instagram/comment/get_replies", p)
}

// GetAudioMedia retrieves media using an audio track by audio id
func (a *API) GetAudioMedia(ctx context.Context, audioID int64, maxID string) (json.RawMessage, error) {
	p := payload{"id": audioID}
	if maxID != "" {
		p["max_id"] = maxID
	}
	return a.client.Request(ctx, "instagram/audio/get_media", p)
}

// countedPayload builds the common {id, count} payload
func countedPayload(userID int64, count int) payload {
	return payload{"id": userID, "count": normalizeCount(count)}
}

// normalizeCount substitutes the default page size for zero or negative counts
func normalizeCount(count int) int {
	if count <= 0 {
		return DefaultCount
	}
	return count
}
