package model

const (
	// Score bounds, inclusive
	MinScore = 0
	MaxScore = 10

	// Content limits
	MaxReviewerNameLength = 100
	MaxCommentLength      = 2000
)
