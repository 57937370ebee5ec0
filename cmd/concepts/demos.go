package main

import (
	"context"
	"strconv"

	"github.com/ib-77/either/internal/config"
	"github.com/ib-77/either/internal/logging"
	"github.com/ib-77/either/pkg/dispatch"
	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/either/chain"
	"github.com/ib-77/either/pkg/either/core"
	"github.com/ib-77/either/pkg/typeclass"
	"github.com/ib-77/either/pkg/variance"
)

func double(n int) either.Either[string, int] {
	return either.Right[string](n * 2)
}

func eitherDemo(ctx context.Context, _ config.Config) error {
	log := logging.FromContext(ctx)

	doubled := either.FlatMap(either.FlatMap(either.Widen[string](either.Of(6)), double), double)
	log.Info("doubled twice", logging.Stringer("result", doubled))

	for _, text := range []string{"6", "abc"} {
		parsed := either.ParseInt(text)
		log.Info("parsed", logging.String("input", text), logging.Stringer("result", parsed))
	}

	rendered := chain.Finally(
		chain.MapTo(
			chain.FromValue[string, int](ctx, 6).
				Map(func(_ context.Context, n int) int { return n * 2 }).
				Map(func(_ context.Context, n int) int { return n * 2 }),
			func(_ context.Context, n int) string { return strconv.Itoa(n) }),
		func(_ context.Context, s string) string { return s },
		func(_ context.Context, msg string) string { return "failed: " + msg },
	)
	log.Info("evolved", logging.String("result", rendered))

	return nil
}

func typeclassDemo(ctx context.Context, _ config.Config) error {
	log := logging.FromContext(ctx)

	tweet := typeclass.Tweet{Text: "my tweet", Retweet: "my retweet"}
	article := typeclass.NewsArticle{Headline: "My headline", Author: "Homer Simpson"}

	log.Info(typeclass.DescribeWithFarewell[typeclass.Tweet, any](
		typeclass.TweetSummary{}, typeclass.AnyFarewell{}, tweet, "Bye: "))

	scope := typeclass.Register[typeclass.Tweet](
		typeclass.Register[typeclass.NewsArticle](typeclass.NewScope(), typeclass.NewsArticleSummary{}).Nested(),
		typeclass.TweetSummary{})

	for _, v := range []any{tweet, article} {
		described, err := scope.Describe(v)
		if err != nil {
			return err
		}
		log.Info(described)
	}

	return nil
}

func varianceDemo(ctx context.Context, _ config.Config) error {
	log := logging.FromContext(ctx)

	cats := variance.NewProducer(variance.Cat{Name: "Tom"})
	mammals := variance.Covary[variance.Cat, variance.Mammal](cats,
		func(c variance.Cat) variance.Mammal { return c })
	log.Info("mammal says " + mammals.Produce().Speak())

	consumer := variance.Contravary[variance.Mammal, variance.Cat](
		variance.InConsumer[variance.Mammal]{Value: variance.Dog{Name: "Rex"}},
		func(c variance.Cat) variance.Mammal { return c })
	log.Info(consumer.Consume(variance.Cat{Name: "Tom"}))

	for _, v := range []variance.Vehicle{variance.Car{Wheels: 5}, variance.Truck{Wheels: 5, HaulLimit: 5}} {
		log.Info(variance.StartEngine(v))
		log.Info(variance.StartEngineOf(variance.HasEngine[variance.Vehicle]{EngineRelated: v}))
	}

	return nil
}

func dispatchDemo(ctx context.Context, cfg config.Config) error {
	log := logging.FromContext(ctx)
	dc := cfg.Dispatch

	ctx = core.WithProcessOptions(ctx, dc.ProcessRemaining)
	if dc.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dc.Timeout.Duration)
		defer cancel()
	}

	tasks := dispatch.Tasks(dc.Tasks, func(id int) dispatch.Task {
		return dispatch.BlockingIO(id, dc.MinSleep.Duration, dc.MaxSleep.Duration)
	})

	for _, d := range []dispatch.Dispatcher{dispatch.Pool{Size: dc.PoolSize}, dispatch.PerTask{}} {
		report := dispatch.Measure(ctx, d, tasks)
		log.Info("dispatcher compared",
			logging.String(logging.KeyDispatcher, report.Dispatcher),
			logging.Duration(logging.KeyElapsed, report.Elapsed))
	}

	return nil
}
