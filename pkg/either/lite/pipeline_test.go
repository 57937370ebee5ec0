package lite

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/either/pkg/either"
	"github.com/ib-77/either/pkg/either/core"
)

// TestParsePipeline runs text through validate -> parse -> double -> finalize
// with several lines per stage.
func TestParsePipeline(t *testing.T) {
	inputs := []string{"1", "2", "bad", "", "5", "-4", "12x"}

	results := processNumbers(inputs)

	assert.Equal(t, len(inputs), len(results))

	var values, invalid []string
	for _, res := range results {
		if res == "invalid" {
			invalid = append(invalid, res)
		} else {
			values = append(values, res)
		}
	}
	sort.Strings(values)

	assert.Len(t, invalid, 3)
	assert.Equal(t, []string{"doubled: -8", "doubled: 10", "doubled: 2", "doubled: 4"}, values)
}

func processNumbers(inputs []string) []string {
	ctx := context.Background()

	finallyHandlers := FinallyHandlers[int, string]{
		OnSuccess: func(ctx context.Context, r int) string {
			return fmt.Sprintf("doubled: %d", r)
		},
		OnError: func(ctx context.Context, err error) string {
			return "invalid"
		},
	}

	return core.FromChanMany(ctx,
		Finally(ctx,
			Turnout(ctx,
				Turnout(ctx,
					Run(ctx,
						core.ToChanManyRights(ctx, inputs),
						Validate(validateNotEmpty), 2),
					Switch(parse), 2),
				Map(func(_ context.Context, n int) int { return n * 2 }), 2),
			finallyHandlers,
		),
	)
}

func validateNotEmpty(_ context.Context, s string) (bool, string) {
	return s != "", "empty input"
}

func parse(_ context.Context, s string) either.Result[int] {
	return either.MapLeft(either.ParseInt(s), func(msg string) error { return errors.New(msg) })
}
