package coupons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUpdateFields(t *testing.T) {
	assert.Equal(t, bson.M{"discount": 15.0, "expirationDate": int64(1717200000000)},
		updateFields(15, 1717200000000))
	assert.Equal(t, bson.M{"discount": 10.0}, updateFields(10, 0))
	assert.Equal(t, bson.M{"expirationDate": int64(1717200000000)}, updateFields(0, 1717200000000))
	assert.Empty(t, updateFields(0, 0))
}
