package domain

import "errors"

var (
	ErrNoFileProvided     = errors.New("no file provided")
	ErrNoFileSpecified    = errors.New("no file specified")
	ErrFileTooLarge       = errors.New("file too large")
	ErrUnsupportedType    = errors.New("unsupported media type")
	ErrFileNotFound       = errors.New("file not found")
	ErrInvalidResizeType  = errors.New("invalid resize type")
	ErrMissingDimensions  = errors.New("width and height are required")
	ErrInvalidPercentage  = errors.New("percentage out of range")
	ErrInvalidDimensions  = errors.New("invalid target dimensions")
	ErrDimensionsTooLarge = errors.New("target dimensions exceed limit")
	ErrImageTooLarge      = errors.New("source image exceeds pixel limit")
	ErrUnreadableImage    = errors.New("could not determine image dimensions")
	ErrResizeFailed       = errors.New("resize failed")
	ErrInvalidStorageArea = errors.New("invalid storage area")
)
