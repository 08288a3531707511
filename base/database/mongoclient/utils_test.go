package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhaus/goauction/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableFeed struct {
		Feed     *string `bson:"feed,omitempty"`
		Decimals *int    `bson:"decimals,omitempty"`
		Asset    string  `bson:"asset"`
		Note     string  `bson:"note"`
	}

	patchable := &PatchableFeed{}
	patchable.Feed = ptr.String("")
	patchable.Decimals = ptr.Int(8)
	patchable.Note = "usdc/usd"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"feed":     "",
			"decimals": 8,
			// field asset is empty, so ignore
			"note": "usdc/usd",
		},
		updater,
	)
}
