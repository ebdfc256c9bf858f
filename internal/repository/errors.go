package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Server error codes the bootstrapper reacts to.
const (
	codeNamespaceExists       = 48
	codeIndexOptionsConflict  = 85
	codeIndexKeySpecsConflict = 86
)

func IsNamespaceExists(err error) bool {
	return hasCode(err, codeNamespaceExists)
}

// IsIndexConflict reports an existing index with the same name or keys but
// different options.
func IsIndexConflict(err error) bool {
	return hasCode(err, codeIndexOptionsConflict) || hasCode(err, codeIndexKeySpecsConflict)
}

func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func hasCode(err error, code int32) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code == code
	}
	var se mongo.ServerError
	if errors.As(err, &se) {
		return se.HasErrorCode(int(code))
	}
	return false
}
