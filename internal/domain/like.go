package domain

// LikeTarget identifies the kind of entity a like attaches to.
type LikeTarget string

const (
	LikeTargetVideo   LikeTarget = "video"
	LikeTargetComment LikeTarget = "comment"
	LikeTargetTweet   LikeTarget = "tweet"
)

// ValidLikeTargets contains all like target kinds.
var ValidLikeTargets = []LikeTarget{LikeTargetVideo, LikeTargetComment, LikeTargetTweet}

// IsValidLikeTarget checks if a like target kind is valid.
func IsValidLikeTarget(t LikeTarget) bool {
	for _, v := range ValidLikeTargets {
		if v == t {
			return true
		}
	}
	return false
}
