package threads

// User represents a Threads user profile
type User struct {
	PK            int64  `json:"pk"`
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	IsVerified    bool   `json:"is_verified"`
	ProfilePicURL string `json:"profile_pic_url"`
	FollowerCount int    `json:"follower_count"`
}

// UserInfo wraps the payload of the user info endpoint
type UserInfo struct {
	User   User   `json:"user"`
	Status string `json:"status"`
}

// Caption is the text of a thread post
type Caption struct {
	Text string `json:"text"`
}

// Post is a single post inside a thread
type Post struct {
	PK        int64    `json:"pk"`
	ID        string   `json:"id"`
	Code      string   `json:"code"`
	TakenAt   int64    `json:"taken_at"`
	LikeCount int      `json:"like_count"`
	Caption   *Caption `json:"caption"`
	User      User     `json:"user"`
}

// ThreadItem wraps one post of a thread
type ThreadItem struct {
	Post Post `json:"post"`
}

// Thread is a sequence of connected posts
type Thread struct {
	ID          string       `json:"id"`
	ThreadItems []ThreadItem `json:"thread_items"`
}

// Feed is a paginated list of threads. Pass NextMaxID back as the
// cursor to fetch the following page.
type Feed struct {
	Threads   []Thread `json:"threads"`
	NextMaxID string   `json:"next_max_id"`
	Status    string   `json:"status"`
}

// Likes is the payload of the thread likes endpoint
type Likes struct {
	Users     []User `json:"users"`
	UserCount int    `json:"user_count"`
	Status    string `json:"status"`
}

// UserList is a paginated list of users (followers, following)
type UserList struct {
	Users     []User `json:"users"`
	NextMaxID string `json:"next_max_id"`
	Status    string `json:"status"`
}

// SearchResult is the payload of the user search endpoint
type SearchResult struct {
	NumResults int    `json:"num_results"`
	Users      []User `json:"users"`
	RankToken  string `json:"rank_token"`
	PageToken  string `json:"page_token"`
	HasMore    bool   `json:"has_more"`
	Status     string `json:"status"`
}
