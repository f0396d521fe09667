package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToSave   = errors.New("failed to save record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrCorruptRecord  = errors.New("stored record is corrupt")
)
