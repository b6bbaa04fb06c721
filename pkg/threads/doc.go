// Package threads provides a typed client for the RocketAPI Threads
// endpoints: user search, profiles, feeds, replies and likes.
package threads
