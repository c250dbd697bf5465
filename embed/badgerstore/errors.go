package badgerstore

import "errors"

var (
	// ErrNoModel indicates that the database holds no saved model.
	ErrNoModel = errors.New("no model stored")

	// ErrCorruptModel indicates stored records inconsistent with the
	// model metadata.
	ErrCorruptModel = errors.New("stored model is corrupt")

	// ErrModelRequired indicates a nil model passed to SaveModel.
	ErrModelRequired = errors.New("model is required")
)
