package status

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `{"quests":[
 {"title":"Cook's Assistant","status":"COMPLETED","difficulty":0,"members":false,"questPoints":1,"userEligible":true},
 {"title":"Restless Ghost","status":"STARTED","difficulty":0,"members":false,"questPoints":1,"userEligible":true},
 {"title":"Dragon Slayer","status":"NOT_STARTED","difficulty":2,"members":false,"questPoints":2,"userEligible":false}
],"loggedIn":"false"}`

func sample(t *testing.T) *Statuses {
	t.Helper()

	s, err := Decode(strings.NewReader(sampleFeed))
	require.NoError(t, err)
	return s
}

func TestLookupFallsBackWithoutArticle(t *testing.T) {
	s := sample(t)

	q, ok := s.Lookup("The Restless Ghost")
	require.True(t, ok)
	assert.Equal(t, "Restless Ghost", q.Title)

	_, ok = s.Lookup("The Dig Site")
	assert.False(t, ok)

	_, ok = s.Lookup("Restless Ghost, The")
	assert.False(t, ok)
}

func TestState(t *testing.T) {
	s := sample(t)

	assert.Equal(t, Completed, s.State("Cook's Assistant"))
	assert.Equal(t, Started, s.State("The Restless Ghost"))
	assert.Equal(t, NotStarted, s.State("Dragon Slayer"))
	assert.Equal(t, Unknown, s.State("32 QPs"))

	assert.True(t, s.Completed("Cook's Assistant"))
	assert.False(t, s.Completed("The Restless Ghost"))
	assert.False(t, s.Completed("Missing"))
}

func TestStateColours(t *testing.T) {
	assert.Equal(t, "palegreen", Completed.Colour())
	assert.Equal(t, "orange", Started.Colour())
	assert.Equal(t, "salmon", NotStarted.Colour())
	assert.Equal(t, "lightgrey", Unknown.Colour())
	assert.Equal(t, "not started", ParseState(" not_started ").String())
}

func TestTitlesAndCounts(t *testing.T) {
	s := sample(t)

	assert.Equal(t, []string{"Cook's Assistant", "Dragon Slayer", "Restless Ghost"}, s.Titles())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, map[State]int{Completed: 1, Started: 1, NotStarted: 1}, s.Counts())
}

func TestNilStatuses(t *testing.T) {
	var s *Statuses

	assert.Equal(t, Unknown, s.State("anything"))
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Titles())
}

func TestDecodeEmptyFeed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"quests":[],"loggedIn":"false"}`))
	assert.True(t, errors.Is(err, ErrUnknownPlayer))

	_, err = Decode(strings.NewReader(`{"quests":[],"loggedIn":"true"}`))
	assert.True(t, errors.Is(err, ErrUnknownPlayer))

	_, err = Decode(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("user") != "tenujin" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	s, err := Fetch(context.Background(), srv.Client(), srv.URL+"/runemetrics/quests", "tenujin")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	_, err = Fetch(context.Background(), srv.Client(), srv.URL, "someone")
	assert.ErrorContains(t, err, "HTTP 404")

	_, err = Fetch(context.Background(), srv.Client(), srv.URL, "")
	assert.ErrorContains(t, err, "missing username")
}

func TestFeedURL(t *testing.T) {
	u, err := FeedURL(DefaultFeedURL, "Iron Man")
	require.NoError(t, err)
	assert.Equal(t, "https://apps.runescape.com/runemetrics/quests?user=Iron+Man", u)
}
