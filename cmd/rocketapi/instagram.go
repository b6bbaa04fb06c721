package main

import (
	"github.com/spf13/cobra"
)

var (
	igCount int
	igMaxID string
	igMinID string
	igPage  int
	igQuery string
)

// instagramCmd groups the Instagram endpoints
var instagramCmd = &cobra.Command{
	Use:   "instagram",
	Short: "Query the Instagram endpoints",
}

var igSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for users, hashtags and places",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		result, err := ig.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var igUserCmd = &cobra.Command{
	Use:   "user",
	Short: "User profile, media and relationship endpoints",
}

var igUserInfoCmd = &cobra.Command{
	Use:   "info <username>",
	Short: "Get user information by username",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		info, err := ig.GetUserInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var igUserInfoByIDCmd = &cobra.Command{
	Use:   "info-by-id <user-id>",
	Short: "Get user information by user id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		info, err := ig.GetUserInfoByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var igUserMediaCmd = &cobra.Command{
	Use:   "media <user-id>",
	Short: "Get a user's media",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		page, err := ig.GetUserMedia(cmd.Context(), id, igCount, igMaxID)
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var igUserClipsCmd = &cobra.Command{
	Use:   "clips <user-id>",
	Short: "Get a user's clips (reels)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		page, err := ig.GetUserClips(cmd.Context(), id, igCount, igMaxID)
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var igUserFollowersCmd = &cobra.Command{
	Use:   "followers <user-id>",
	Short: "Get or search a user's followers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		if igQuery != "" {
			list, err := ig.SearchUserFollowers(cmd.Context(), id, igQuery)
			if err != nil {
				return err
			}
			return printJSON(list)
		}
		list, err := ig.GetUserFollowers(cmd.Context(), id, igCount, igMaxID)
		if err != nil {
			return err
		}
		return printJSON(list)
	},
}

var igUserFollowingCmd = &cobra.Command{
	Use:   "following <user-id>",
	Short: "Get or search the accounts a user follows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		if igQuery != "" {
			list, err := ig.SearchUserFollowing(cmd.Context(), id, igQuery)
			if err != nil {
				return err
			}
			return printJSON(list)
		}
		list, err := ig.GetUserFollowing(cmd.Context(), id, igCount, igMaxID)
		if err != nil {
			return err
		}
		return printJSON(list)
	},
}

var igUserStoriesCmd = &cobra.Command{
	Use:   "stories <user-id> [user-id...]",
	Short: "Get active stories for one or more users",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int64, 0, len(args))
		for _, arg := range args {
			id, err := parseID(arg)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		stories, err := ig.GetUserStoriesBulk(cmd.Context(), ids)
		if err != nil {
			return err
		}
		return printJSON(stories)
	},
}

var igUserHighlightsCmd = &cobra.Command{
	Use:   "highlights <user-id>",
	Short: "Get a user's highlights",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		raw, err := ig.GetUserHighlights(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var igUserSimilarCmd = &cobra.Command{
	Use:   "similar <user-id>",
	Short: "Get accounts similar to a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		list, err := ig.GetUserSimilarAccounts(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(list)
	},
}

var igUserAboutCmd = &cobra.Command{
	Use:   "about <user-id>",
	Short: "Get 'about this account' information",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		raw, err := ig.GetUserAbout(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var igMediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Media, comment and like endpoints",
}

var igMediaInfoCmd = &cobra.Command{
	Use:   "info <media-id>",
	Short: "Get media information by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		page, err := ig.GetMediaInfo(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var igMediaInfoByShortcodeCmd = &cobra.Command{
	Use:   "info-by-shortcode <shortcode>",
	Short: "Get media information by shortcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		page, err := ig.GetMediaInfoByShortcode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var igMediaLikesCmd = &cobra.Command{
	Use:   "likes <shortcode>",
	Short: "Get accounts that liked a media",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		list, err := ig.GetMediaLikes(cmd.Context(), args[0], igCount, igMaxID)
		if err != nil {
			return err
		}
		return printJSON(list)
	},
}

var igMediaCommentsCmd = &cobra.Command{
	Use:   "comments <media-id>",
	Short: "Get comments on a media",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		page, err := ig.GetMediaComments(cmd.Context(), id, true, igMinID)
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var igMediaShortcodeCmd = &cobra.Command{
	Use:   "shortcode <media-id>",
	Short: "Convert a media id to its shortcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		raw, err := ig.GetMediaShortcodeByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var igMediaIDCmd = &cobra.Command{
	Use:   "id <shortcode>",
	Short: "Convert a shortcode to its media id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		raw, err := ig.GetMediaIDByShortcode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var igHashtagCmd = &cobra.Command{
	Use:   "hashtag",
	Short: "Hashtag endpoints",
}

var igHashtagInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Get hashtag information",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		tag, err := ig.GetHashtagInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(tag)
	},
}

var igHashtagMediaCmd = &cobra.Command{
	Use:   "media <name>",
	Short: "Get media tagged with a hashtag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		raw, err := ig.GetHashtagMedia(cmd.Context(), args[0], igPage, igMaxID)
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var igLocationCmd = &cobra.Command{
	Use:   "location",
	Short: "Location endpoints",
}

var igLocationInfoCmd = &cobra.Command{
	Use:   "info <location-id>",
	Short: "Get location information",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		info, err := ig.GetLocationInfo(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var igLocationMediaCmd = &cobra.Command{
	Use:   "media <location-id>",
	Short: "Get media posted at a location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		raw, err := ig.GetLocationMedia(cmd.Context(), id, igPage, igMaxID)
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var igCommentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Comment endpoints",
}

var igCommentLikesCmd = &cobra.Command{
	Use:   "likes <comment-id>",
	Short: "Get accounts that liked a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		list, err := ig.GetCommentLikes(cmd.Context(), id, igMaxID)
		if err != nil {
			return err
		}
		return printJSON(list)
	},
}

var igCommentRepliesCmd = &cobra.Command{
	Use:   "replies <comment-id> <media-id>",
	Short: "Get replies to a comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		commentID, err := parseID(args[0])
		if err != nil {
			return err
		}
		mediaID, err := parseID(args[1])
		if err != nil {
			return err
		}
		ig, err := newInstagramAPI()
		if err != nil {
			return err
		}
		raw, err := ig.GetCommentReplies(cmd.Context(), commentID, mediaID, igMaxID)
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

func init() {
	rootCmd.AddCommand(instagramCmd)
	instagramCmd.AddCommand(igSearchCmd)

	instagramCmd.AddCommand(igUserCmd)
	igUserCmd.AddCommand(igUserInfoCmd)
	igUserCmd.AddCommand(igUserInfoByIDCmd)
	igUserCmd.AddCommand(igUserMediaCmd)
	igUserCmd.AddCommand(igUserClipsCmd)
	igUserCmd.AddCommand(igUserFollowersCmd)
	igUserCmd.AddCommand(igUserFollowingCmd)
	igUserCmd.AddCommand(igUserStoriesCmd)
	igUserCmd.AddCommand(igUserHighlightsCmd)
	igUserCmd.AddCommand(igUserSimilarCmd)
	igUserCmd.AddCommand(igUserAboutCmd)

	instagramCmd.AddCommand(igMediaCmd)
	igMediaCmd.AddCommand(igMediaInfoCmd)
	igMediaCmd.AddCommand(igMediaInfoByShortcodeCmd)
	igMediaCmd.AddCommand(igMediaLikesCmd)
	igMediaCmd.AddCommand(igMediaCommentsCmd)
	igMediaCmd.AddCommand(igMediaShortcodeCmd)
	igMediaCmd.AddCommand(igMediaIDCmd)

	instagramCmd.AddCommand(igHashtagCmd)
	igHashtagCmd.AddCommand(igHashtagInfoCmd)
	igHashtagCmd.AddCommand(igHashtagMediaCmd)

	instagramCmd.AddCommand(igLocationCmd)
	igLocationCmd.AddCommand(igLocationInfoCmd)
	igLocationCmd.AddCommand(igLocationMediaCmd)

	instagramCmd.AddCommand(igCommentCmd)
	igCommentCmd.AddCommand(igCommentLikesCmd)
	igCommentCmd.AddCommand(igCommentRepliesCmd)

	// Pagination flags shared across the Instagram subcommands
	instagramCmd.PersistentFlags().IntVar(&igCount, "count", 0, "number of items per page")
	instagramCmd.PersistentFlags().StringVar(&igMaxID, "max-id", "", "pagination cursor from the previous page")
	instagramCmd.PersistentFlags().StringVar(&igMinID, "min-id", "", "comment pagination cursor")
	instagramCmd.PersistentFlags().IntVar(&igPage, "page", 0, "page number for hashtag and location media")
	instagramCmd.PersistentFlags().StringVar(&igQuery, "query", "", "filter followers/following by query")
}
