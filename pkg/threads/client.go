package threads

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rocketapi/pkg/api"
	"rocketapi/pkg/errors"
	"rocketapi/pkg/logger"
)

// payload is the JSON body of an endpoint call
type payload = map[string]interface{}

// API is the Threads facade over the RocketAPI transport
type API struct {
	client *api.Client
}

// New creates a new Threads API client. Timeouts below 15 seconds are
// discouraged by the service.
func New(token string, timeout time.Duration, log logger.Logger) *API {
	return &API{client: api.NewClient(token, timeout, log)}
}

// NewWithClient creates a Threads API facade over an existing transport
// client. Useful for sharing one client between facades.
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

// SearchUsers searches for Threads users. rankToken and pageToken come
// from the previous page of results and may be empty.
func (a *API) SearchUsers(ctx context.Context, query, rankToken, pageToken string) (*SearchResult, error) {
	p := payload{"query": query}
	if rankToken != "" {
		p["rank_token"] = rankToken
	}
	if pageToken != "" {
		p["page_token"] = pageToken
	}
	return decodeInto[SearchResult](a.client.Request(ctx, "threads/search_users", p))
}

// GetUserInfo retrieves Threads user information by user id
func (a *API) GetUserInfo(ctx context.Context, userID int64) (*UserInfo, error) {
	return decodeInto[UserInfo](a.client.Request(ctx, "threads/user/get_info", payload{"id": userID}))
}

// GetUserFeed retrieves a user's thread feed. maxID is the next_max_id
// cursor from the previous page.
func (a *API) GetUserFeed(ctx context.Context, userID int64, maxID string) (*Feed, error) {
	return decodeInto[Feed](a.client.Request(ctx, "threads/user/get_feed", cursorPayload(userID, maxID)))
}

// GetUserReplies retrieves a user's replies feed
func (a *API) GetUserReplies(ctx context.Context, userID int64, maxID string) (*Feed, error) {
	return decodeInto[Feed](a.client.Request(ctx, "threads/user/get_replies", cursorPayload(userID, maxID)))
}

// GetUserFollowers retrieves a user's followers
func (a *API) GetUserFollowers(ctx context.Context, userID int64, maxID string) (*UserList, error) {
	return decodeInto[UserList](a.client.Request(ctx, "threads/user/get_followers", cursorPayload(userID, maxID)))
}

// SearchUserFollowers searches within a user's followers
func (a *API) SearchUserFollowers(ctx context.Context, userID int64, query string) (*UserList, error) {
	return decodeInto[UserList](a.client.Request(ctx, "threads/user/get_followers",
		payload{"id": userID, "query": query}))
}

// GetUserFollowing retrieves accounts the user follows
func (a *API) GetUserFollowing(ctx context.Context, userID int64, maxID string) (*UserList, error) {
	return decodeInto[UserList](a.client.Request(ctx, "threads/user/get_following", cursorPayload(userID, maxID)))
}

// SearchUserFollowing searches within the accounts the user follows
func (a *API) SearchUserFollowing(ctx context.Context, userID int64, query string) (*UserList, error) {
	return decodeInto[UserList](a.client.Request(ctx, "threads/user/get_following",
		payload{"id": userID, "query": query}))
}

// GetThreadReplies retrieves replies to a thread. The downwards
// pagination cursor comes back in the paging_tokens field.
func (a *API) GetThreadReplies(ctx context.Context, threadID int64, maxID string) (json.RawMessage, error) {
	return a.client.Request(ctx, "threads/thread/get_replies", cursorPayload(threadID, maxID))
}

// GetThreadLikes retrieves accounts that liked a thread
func (a *API) GetThreadLikes(ctx context.Context, threadID int64) (*Likes, error) {
	return decodeInto[Likes](a.client.Request(ctx, "threads/thread/get_likes", payload{"id": threadID}))
}

// cursorPayload builds the common {id, max_id} payload, omitting the
// cursor when empty
func cursorPayload(id int64, maxID string) payload {
	p := payload{"id": id}
	if maxID != "" {
		p["max_id"] = maxID
	}
	return p
}
