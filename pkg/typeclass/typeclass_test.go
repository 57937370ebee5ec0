package typeclass

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tweet   = Tweet{Text: "my tweet", Retweet: "my retweet"}
	article = NewsArticle{Headline: "My headline", Author: "Homer Simpson"}
)

func TestSeparateInstances(t *testing.T) {
	if got := (TweetSummary{}).Summarise(tweet); got != "Tweet: my tweet Retweet: my retweet" {
		t.Fatalf("unexpected tweet summary %q", got)
	}
	if got := (NewsArticleSummary{}).Summarise(article); got != "Headline: My headline Author: Homer Simpson" {
		t.Fatalf("unexpected article summary %q", got)
	}
}

func TestInfo(t *testing.T) {
	assert.Equal(t, "Default Information", TweetSummary{}.Info(tweet))
	assert.Equal(t, "NewsArticle Information", NewsArticleSummary{}.Info(article))
}

func TestDescribe(t *testing.T) {
	expected := "Summary is: Tweet: my tweet Retweet: my retweet, Info: Default Information"

	assert.Equal(t, "Tat ta", AnyFarewell{}.SayBye(tweet))
	assert.Equal(t, expected, Describe[Tweet](TweetSummary{}, tweet))
	assert.Equal(t, expected+" Bye: Tat ta",
		DescribeWithFarewell[Tweet, any](TweetSummary{}, AnyFarewell{}, tweet, "Bye: "))
}

func TestScope_Stacked(t *testing.T) {
	outer := Register[NewsArticle](NewScope(), NewsArticleSummary{})
	inner := Register[Tweet](outer.Nested(), TweetSummary{})

	summary, err := inner.Summarise(tweet)
	require.NoError(t, err)
	assert.Equal(t, "Tweet: my tweet Retweet: my retweet", summary)

	info, err := inner.Info(tweet)
	require.NoError(t, err)
	assert.Equal(t, "Default Information", info)

	summary, err = inner.Summarise(article)
	require.NoError(t, err)
	assert.Equal(t, "Headline: My headline Author: Homer Simpson", summary)

	info, err = inner.Info(article)
	require.NoError(t, err)
	assert.Equal(t, "NewsArticle Information", info)

	described, err := inner.Describe(article)
	require.NoError(t, err)
	assert.Equal(t, "Summary is: Headline: My headline Author: Homer Simpson, Info: NewsArticle Information", described)
}

type shoutingTweet struct {
	DefaultInfo[Tweet]
}

func (shoutingTweet) Summarise(t Tweet) string {
	return "TWEET " + t.Text
}

func TestScope_InnerShadowsOuter(t *testing.T) {
	outer := Register[Tweet](NewScope(), TweetSummary{})
	inner := Register[Tweet](outer.Nested(), shoutingTweet{})

	got, err := inner.Summarise(tweet)
	require.NoError(t, err)
	assert.Equal(t, "TWEET my tweet", got)

	got, err = outer.Summarise(tweet)
	require.NoError(t, err)
	assert.Equal(t, "Tweet: my tweet Retweet: my retweet", got)
}

func TestScope_MissingInstance(t *testing.T) {
	scope := Register[Tweet](NewScope(), TweetSummary{})

	_, err := scope.Summarise(article)
	require.Error(t, err)
	assert.True(t, Error.Has(err))
	assert.True(t, errors.Is(err, ErrNoInstance))

	_, err = scope.Info(42)
	assert.ErrorIs(t, err, ErrNoInstance)

	_, err = scope.Describe(&tweet)
	assert.ErrorIs(t, err, ErrNoInstance)
}
