package main

import (
	"github.com/spf13/cobra"
)

var (
	thMaxID     string
	thQuery     string
	thRankToken string
	thPageToken string
)

// threadsCmd groups the Threads endpoints
var threadsCmd = &cobra.Command{
	Use:   "threads",
	Short: "Query the Threads endpoints",
}

var thSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for Threads users",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := newThreadsAPI()
		if err != nil {
			return err
		}
		result, err := th.SearchUsers(cmd.Context(), args[0], thRankToken, thPageToken)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var thUserCmd = &cobra.Command{
	Use:   "user",
	Short: "User profile, feed and relationship endpoints",
}

var thUserInfoCmd = &cobra.Command{
	Use:   "info <user-id>",
	Short: "Get Threads user information",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		th, err := newThreadsAPI()
		if err != nil {
			return err
		}
		info, err := th.GetUserInfo(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

var thUserFeedCmd = &cobra.Command{
	Use:   "feed <user-id>",
	Short: "Get a user's thread feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		th, err := newThreadsAPI()
		if err != nil {
			return err
		}
		feed, err := th.GetUserFeed(cmd.Context(), id, thMaxID)
		if err != nil {
			return err
		}
		return printJSON(feed)
	},
}

var thUserRepliesCmd = &cobra.Command{
	Use:   "replies <user-id>",
	Short: "Get a user's replies feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		th, err := newThreadsAPI()
		if err != nil {
			return err
		}
		feed, err := th.GetUserReplies(cmd.Context(), id, thMaxID)
		if err != nil {
			return err
		}
		return printJSON(feed)
	},
}

var thUserFollowersCmd = &cobra.Command{
	Use:   "followers <user-id>",
	Short: "Get or search a user's followers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		th, err := newThreadsAPI()
		if err != nil {
			return err
		}
		if thQuery != "" {
			list, err := th.SearchUserFollowers(cmd.Context(), id, thQuery)
			if err != nil {
				return err
			}
			return printJSON(list)
		}
		list, err := th.GetUserFollowers(cmd.Context(), id, thMaxID)
		if err != nil {
			return err
		}
		return printJSON(list)
	},
}

var thUserFollowingCmd = &cobra.Command{
	Use:   "following <user-id>",
	Short: "Get or search the accounts a user follows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		th, err := newThreadsAPI()
		if err != nil {
			return err
		}
		if thQuery != "" {
			list, err := th.SearchUserFollowing(cmd.Context(), id, thQuery)
			if err != nil {
				return err
			}
			return printJSON(list)
		}
		list, err := th.GetUserFollowing(cmd.Context(), id, thMaxID)
		if err != nil {
			return err
		}
		return printJSON(list)
	},
}

var thThreadCmd = &cobra.Command{
	Use:   "thread",
	Short: "Thread reply and like endpoints",
}

var thThreadRepliesCmd = &cobra.Command{
	Use:   "replies <thread-id>",
	Short: "Get replies to a thread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		th, err := newThreadsAPI()
		if err != nil {
			return err
		}
		raw, err := th.GetThreadReplies(cmd.Context(), id, thMaxID)
		if err != nil {
			return err
		}
		return printJSON(raw)
	},
}

var thThreadLikesCmd = &cobra.Command{
	Use:   "likes <thread-id>",
	Short: "Get accounts that liked a thread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		th, err := newThreadsAPI()
		if err != nil {
			return err
		}
		likes, err := th.GetThreadLikes(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(likes)
	},
}

func init() {
	rootCmd.AddCommand(threadsCmd)
	threadsCmd.AddCommand(thSearchCmd)

	threadsCmd.AddCommand(thUserCmd)
	thUserCmd.AddCommand(thUserInfoCmd)
	thUserCmd.AddCommand(thUserFeedCmd)
	thUserCmd.AddCommand(thUserRepliesCmd)
	thUserCmd.AddCommand(thUserFollowersCmd)
	thUserCmd.AddCommand(thUserFollowingCmd)

	threadsCmd.AddCommand(thThreadCmd)
	thThreadCmd.AddCommand(thThreadRepliesCmd)
	thThreadCmd.AddCommand(thThreadLikesCmd)

	threadsCmd.PersistentFlags().StringVar(&thMaxID, "max-id", "", "pagination cursor from the previous page")
	threadsCmd.PersistentFlags().StringVar(&thQuery, "query", "", "filter followers/following by query")
	thSearchCmd.Flags().StringVar(&thRankToken, "rank-token", "", "rank token from the previous search page")
	thSearchCmd.Flags().StringVar(&thPageToken, "page-token", "", "page token from the previous search page")
}
