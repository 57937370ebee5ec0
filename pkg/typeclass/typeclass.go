package typeclass

import "fmt"

type NewsArticle struct {
	Headline string
	Author   string
}

type Tweet struct {
	Text    string
	Retweet string
}

// Summary grafts summarising behaviour onto T without touching T itself.
type Summary[T any] interface {
	Summarise(v T) string
	Info(v T) string
}

type Farewell[D any] interface {
	SayBye(v D) string
}

// DefaultInfo is embedded by instances that keep the default Info.
type DefaultInfo[T any] struct{}

func (DefaultInfo[T]) Info(T) string {
	return "Default Information"
}

type TweetSummary struct {
	DefaultInfo[Tweet]
}

func (TweetSummary) Summarise(t Tweet) string {
	return fmt.Sprintf("Tweet: %s Retweet: %s", t.Text, t.Retweet)
}

type NewsArticleSummary struct{}

func (NewsArticleSummary) Summarise(a NewsArticle) string {
	return fmt.Sprintf("Headline: %s Author: %s", a.Headline, a.Author)
}

func (NewsArticleSummary) Info(NewsArticle) string {
	return "NewsArticle Information"
}

// AnyFarewell says goodbye to any value at all.
type AnyFarewell struct{}

func (AnyFarewell) SayBye(any) string {
	return "Tat ta"
}

var (
	_ Summary[Tweet]       = TweetSummary{}
	_ Summary[NewsArticle] = NewsArticleSummary{}
	_ Farewell[any]        = AnyFarewell{}
)

func Describe[T any](summary Summary[T], v T) string {
	return fmt.Sprintf("Summary is: %s, Info: %s", summary.Summarise(v), summary.Info(v))
}

// DescribeWithFarewell needs both capabilities at once.
func DescribeWithFarewell[T, D any](summary Summary[T], farewell Farewell[D], v T, d D) string {
	return fmt.Sprintf("%s Bye: %s", Describe(summary, v), farewell.SayBye(d))
}
