package variance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/either/pkg/either"
)

func catToMammal(c Cat) Mammal { return c }

func TestCovary(t *testing.T) {
	var cats Source[Cat] = NewProducer(Cat{Name: "Tom"})

	mammals := Covary(cats, catToMammal)
	if got := mammals.Produce().Speak(); got != "Meow" {
		t.Fatalf("expected Meow, got %q", got)
	}

	anything := AsAny(cats)
	assert.Equal(t, Cat{Name: "Tom"}, anything.Produce())
}

func TestContravary(t *testing.T) {
	var mammals Consumer[Mammal] = InConsumer[Mammal]{Value: Dog{Name: "Rex"}}

	cats := Contravary(mammals, catToMammal)
	assert.Equal(t, "class value: [{Rex}] fun var [{Tom}]", cats.Consume(Cat{Name: "Tom"}))
}

func TestInConsumer(t *testing.T) {
	c := InConsumer[int]{Value: 1}
	assert.Equal(t, "class value: [1] fun var [2]", c.Consume(2))
}

func TestSourceOf(t *testing.T) {
	src, ok := SourceOf[int](either.Of(6))
	require.True(t, ok)
	assert.Equal(t, 6, src.Produce())

	_, ok = SourceOf[int](either.Left[error, int](errors.New("boom")))
	assert.False(t, ok)
}

func TestStartEngine(t *testing.T) {
	tests := []struct {
		name    string
		vehicle Vehicle
		plain   string
		tagged  string
	}{
		{
			name:    "car",
			vehicle: Car{Wheels: 5},
			plain:   "Starting Car with [5] wheels",
			tagged:  "Starting Car with [5] wheels",
		},
		{
			name:    "truck",
			vehicle: Truck{Wheels: 5, HaulLimit: 5},
			plain:   "Starting Truck which can haul [5] grams",
			tagged:  "Starting Truck with [5] wheels hauling [5] grams",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.plain, StartEngine(tt.vehicle))
			assert.Equal(t, tt.tagged, StartEngineOf(HasEngine[Vehicle]{EngineRelated: tt.vehicle}))
		})
	}
}

func TestStartEngine_Nil(t *testing.T) {
	assert.Equal(t, "Cannot start <nil>", StartEngine(nil))
}
