package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBannerUpdateFields(t *testing.T) {
	zero := 0
	assert.Equal(t, bson.M{"title": "Summer sale", "link_url": "/sale", "position": 0},
		bannerUpdateFields("Summer sale", "/sale", &zero))
	assert.Equal(t, bson.M{"title": "Summer sale"}, bannerUpdateFields("Summer sale", "", nil))
	assert.Empty(t, bannerUpdateFields("", "", nil))
}

func TestFAQUpdateFields(t *testing.T) {
	three := 3
	assert.Equal(t, bson.M{"question": "How do refunds work?", "position": 3},
		faqUpdateFields("How do refunds work?", "", &three))
	assert.Equal(t, bson.M{"answer": "Within 7 days."}, faqUpdateFields("", "Within 7 days.", nil))
	assert.Empty(t, faqUpdateFields("", "", nil))
}

func TestIntroUpdateFields(t *testing.T) {
	assert.Equal(t, bson.M{"title": "Welcome", "body": "Fresh produce, delivered."},
		introUpdateFields("Welcome", "Fresh produce, delivered.", nil))
	assert.Empty(t, introUpdateFields("", "", nil))
}
