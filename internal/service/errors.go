package service

import "errors"

var (
	ErrGroupExists     = errors.New("resource group already exists")
	ErrGroupNotFound   = errors.New("resource group not found")
	ErrMappingNotFound = errors.New("pair-up mapping not found")
	ErrTeamIDRequired  = errors.New("team id is required for Teams groups")
)
