package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileRequestProfilePicture(t *testing.T) {
	var absent UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"displayName":"A","email":"a@x.io"}`), &absent))
	assert.False(t, absent.ProfilePicture.Set)

	var null UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"displayName":"A","email":"a@x.io","profilePicture":null}`), &null))
	assert.True(t, null.ProfilePicture.Set)
	assert.Nil(t, null.ProfilePicture.Value)

	var set UpdateProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"displayName":"A","email":"a@x.io","profilePicture":"p.png"}`), &set))
	assert.True(t, set.ProfilePicture.Set)
	require.NotNil(t, set.ProfilePicture.Value)
	assert.Equal(t, "p.png", *set.ProfilePicture.Value)
}

func TestCreateTopicListRequestHasTopicData(t *testing.T) {
	cases := map[string]bool{
		`{"userToken":"t"}`:                         false,
		`{"userToken":"t","topicData":null}`:        false,
		`{"userToken":"t","topicData":""}`:          false,
		`{"userToken":"t","topicData":"{}"}`:        true,
		`{"userToken":"t","topicData":{"title":1}}`: true,
	}
	for body, want := range cases {
		var req CreateTopicListRequest
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		assert.Equal(t, want, req.HasTopicData(), body)
	}
}
