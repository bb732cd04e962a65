package dberrors

import (
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsDuplicateKeyError checks if the error is a MongoDB unique-index violation
// (error code 11000). The unique index is the durable guard against races the
// application-level pre-check cannot close.
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// DuplicateKeyField extracts the colliding field name from a duplicate-key
// error. Unique indexes are named "<field>_1", and the server reports the
// index name in the write error message. Returns "" when the field cannot
// be determined.
func DuplicateKeyField(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "index: "
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	name := msg[i+len(marker):]
	if j := strings.IndexAny(name, " }"); j >= 0 {
		name = name[:j]
	}
	return strings.TrimSuffix(name, "_1")
}
