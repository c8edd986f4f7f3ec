package domain

import "errors"

var (
	ErrInvalidImageURL = errors.New("invalid image url")
	ErrEmptyPrompt     = errors.New("empty prompt")
	ErrProviderFailure = errors.New("provider failure")
	ErrEmptyArchive    = errors.New("no images exported")
)
