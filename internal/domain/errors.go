package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrMatterNotFound       = errors.New("matter not found")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrRevisionNotFound     = errors.New("revision not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrDuplicateReference   = errors.New("matter reference already exists")
	ErrInvalidStatus        = errors.New("invalid status value")
	ErrInvalidSubjectKind   = errors.New("invalid audit subject kind")
	ErrSameMatterTransfer   = errors.New("transfer requires two distinct matters")
	ErrReferentialIntegrity = errors.New("referenced entity does not exist")
	ErrUploadFailed         = errors.New("revision upload to storage failed")
)
