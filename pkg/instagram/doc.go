// Package instagram provides a typed client for the RocketAPI
// Instagram endpoints.
//
// This package includes:
//   - Per-endpoint methods covering users, media, comments, stories,
//     hashtags and locations
//   - Typed models for the stable payload shapes, raw JSON for the rest
//   - Cursor-based pagination passed straight through to the service
//
// Example usage:
//
//	ig := instagram.New(token, 15*time.Second, nil)
//
//	info, err := ig.GetUserInfo(ctx, "instagram")
//	if err != nil {
//	    if errors.IsNotFound(err) {
//	        // no such user
//	    }
//	    return err
//	}
//
//	media, err := ig.GetUserMedia(ctx, info.User.PK, 12, "")
//	for media.MoreAvailable {
//	    media, err = ig.GetUserMedia(ctx, info.User.PK, 12, media.NextMaxID)
//	    // ...
//	}
package instagram
