package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixeldesignindia/organic-api/apperror"
)

func TestTransactionsUnsupported(t *testing.T) {
	assert.True(t, transactionsUnsupported(mongo.CommandError{
		Code:    20,
		Name:    "IllegalOperation",
		Message: "Transaction numbers are only allowed on a replica set member or mongos",
	}))
	assert.True(t, transactionsUnsupported(mongo.CommandError{
		Message: "Transaction numbers are only allowed on a replica set member or mongos",
	}))

	assert.False(t, transactionsUnsupported(mongo.CommandError{Code: 11000, Message: "duplicate key"}))
	assert.False(t, transactionsUnsupported(apperror.BadRequest("Not enough stock")))
	assert.False(t, transactionsUnsupported(nil))
}
