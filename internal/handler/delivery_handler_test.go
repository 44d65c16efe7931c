package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type entryBatchJSON struct {
	Entries []struct {
		EntryID string `json:"entryId"`
		Updated string `json:"updated"`
	} `json:"entries"`
}

func TestDeliveryHandler_Sift(t *testing.T) {
	_, delivery, _ := newHandlers(t)

	body := `{"feedName":"news","entries":[{"entryId":"1","updated":"t1"},{"entryId":"2","updated":"t1"}]}`

	c, rec := newJSONContext(t, http.MethodPost, "/api/channels/100/entries/sift", body)
	c.SetParamNames("channelID")
	c.SetParamValues("100")
	require.NoError(t, delivery.Sift(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got entryBatchJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Entries, 2)
	require.Equal(t, "1", got.Entries[0].EntryID)

	// The same batch is all seen now
	c, rec = newJSONContext(t, http.MethodPost, "/api/channels/100/entries/sift", body)
	c.SetParamNames("channelID")
	c.SetParamValues("100")
	require.NoError(t, delivery.Sift(c))
	require.Equal(t, http.StatusOK, rec.Code)

	got = entryBatchJSON{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Empty(t, got.Entries)
}

func TestDeliveryHandler_Filter_DoesNotRecord(t *testing.T) {
	_, delivery, _ := newHandlers(t)

	body := `{"feedName":"news","entries":[{"entryId":"1","updated":"t1"}]}`
	for i := 0; i < 2; i++ {
		c, rec := newJSONContext(t, http.MethodPost, "/api/channels/100/entries/filter", body)
		c.SetParamNames("channelID")
		c.SetParamValues("100")
		require.NoError(t, delivery.Filter(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var got entryBatchJSON
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got.Entries, 1)
	}
}

func TestDeliveryHandler_MarkSeen(t *testing.T) {
	_, delivery, _ := newHandlers(t)

	body := `{"feedName":"news","entries":[{"entryId":"1","updated":"t1"}]}`

	c, rec := newJSONContext(t, http.MethodPost, "/api/channels/100/entries/seen", body)
	c.SetParamNames("channelID")
	c.SetParamValues("100")
	require.NoError(t, delivery.MarkSeen(c))
	require.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newJSONContext(t, http.MethodPost, "/api/channels/100/entries/filter", body)
	c.SetParamNames("channelID")
	c.SetParamValues("100")
	require.NoError(t, delivery.Filter(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got entryBatchJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Empty(t, got.Entries)
}

func TestDeliveryHandler_BadRequest(t *testing.T) {
	_, delivery, _ := newHandlers(t)

	t.Run("entry id not a number", func(t *testing.T) {
		c, rec := newJSONContext(t, http.MethodPost, "/api/channels/100/entries/sift",
			`{"feedName":"news","entries":[{"entryId":"abc","updated":"t1"}]}`)
		c.SetParamNames("channelID")
		c.SetParamValues("100")
		require.NoError(t, delivery.Sift(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("channel param not a number", func(t *testing.T) {
		c, rec := newJSONContext(t, http.MethodPost, "/api/channels/xyz/entries/sift",
			`{"feedName":"news","entries":[]}`)
		c.SetParamNames("channelID")
		c.SetParamValues("xyz")
		require.NoError(t, delivery.Sift(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		c, rec := newJSONContext(t, http.MethodPost, "/api/channels/100/entries/sift", `{"entries":`)
		c.SetParamNames("channelID")
		c.SetParamValues("100")
		require.NoError(t, delivery.Sift(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
