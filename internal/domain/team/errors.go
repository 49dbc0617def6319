package team

import "errors"

var (
	ErrTeamNotFound = errors.New("team not found")
	ErrTeamNameExists = errors.New("team name already exists")
)
