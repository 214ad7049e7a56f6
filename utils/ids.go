package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UniqueID returns the unique_id value stamped onto new documents.
func UniqueID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// TransactionID returns a gateway-facing transaction reference.
func TransactionID() string {
	return "txn_" + uuid.NewString()
}
