package either

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type silentError struct{}

func (silentError) Error() string { return "" }

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{name: "plain", text: "6", want: 6},
		{name: "negative", text: "-42", want: -42},
		{name: "plus sign", text: "+7", want: 7},
		{name: "letters", text: "abc", wantErr: true},
		{name: "empty", text: "", wantErr: true},
		{name: "decimal", text: "1.5", wantErr: true},
		{name: "spaces", text: " 6", wantErr: true},
		{name: "overflow", text: "99999999999999999999999", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInt(tt.text)
			if tt.wantErr {
				require.True(t, got.IsLeft(), "expected a left for %q, got %v", tt.text, got)
				assert.NotEmpty(t, got.LeftValue())
				assert.Contains(t, got.LeftValue(), strconv.Quote(tt.text))
				return
			}
			require.True(t, got.IsRight(), "expected a right for %q, got %v", tt.text, got)
			assert.Equal(t, tt.want, got.RightValue())
		})
	}
}

func TestParseInt_SameAsOf(t *testing.T) {
	of := Widen[string](Of(6))
	parsed := ParseInt("6")
	assert.Equal(t, of.RightValue(), parsed.RightValue())
	assert.True(t, Equal(of, parsed))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "boom", MessageOf(errors.New("boom")))
	assert.Equal(t, NoMessage, MessageOf(silentError{}))
	assert.Equal(t, NoMessage, MessageOf(nil))

	var nilPtr *strconv.NumError
	assert.Equal(t, NoMessage, MessageOf(nilPtr))
}
