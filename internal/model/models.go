// Package model holds the domain records returned by the data-access layer.
//
// These are plain structs: column names map to fields, JSON tags define
// the shape the HTTP layer serves.
package model

import "time"

// User is a registered account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Tweet belongs to exactly one author. Hashtags attach through the
// tweet_hashtags join relation; likes through the likes relation.
type Tweet struct {
	ID        int64     `json:"id"`
	AuthorID  int64     `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Hashtag is a tag that can be attached to any number of tweets.
type Hashtag struct {
	ID  int64  `json:"id"`
	Tag string `json:"tag"`
}

// FollowerRef identifies one follower of a user: the id/username pair
// projected out of the users⇄followers self-join.
type FollowerRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LikeCount is the aggregate count of likes on a single tweet.
type LikeCount struct {
	TweetID int64 `json:"tweet_id"`
	Likes   int64 `json:"likes"`
}

// HashtagCount pairs a hashtag with the number of tweets carrying it.
// Produced by the trending lookup and consumed by the stats refresh job.
type HashtagCount struct {
	Tag    string `json:"tag"`
	Tweets int64  `json:"tweets"`
}

// UserDigest is the composite produced by the diagnostic aggregator:
// the target user, everything directly attached to them, and the
// hashtag/like lookups driven by their first tweet.
//
// FirstTweet is nil when the user has no tweets; in that case
// FirstTweetHashtags is empty and FirstTweetLikes is zero.
type UserDigest struct {
	User               *User         `json:"user"`
	AllUsers           []User        `json:"all_users"`
	Tweets             []Tweet       `json:"tweets"`
	FirstTweet         *Tweet        `json:"first_tweet"`
	FirstTweetHashtags []Hashtag     `json:"first_tweet_hashtags"`
	FirstTweetLikes    int64         `json:"first_tweet_likes"`
	Followers          []FollowerRef `json:"followers"`
}
