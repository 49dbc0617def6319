package dailylog

import "errors"

var (
	ErrLogNotFound  = errors.New("daily log not found")
	ErrNotLogAuthor = errors.New("caller is not the author of this daily log")
)
