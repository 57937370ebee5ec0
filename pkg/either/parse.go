package either

import "strconv"

// NoMessage is the left value used when a failure carries no description.
const NoMessage = "No message"

// ParseInt parses a base 10 integer in the range of int.
func ParseInt(text string) Either[string, int] {
	n, err := strconv.Atoi(text)
	if err != nil {
		return Left[string, int](MessageOf(err))
	}
	return Right[string](n)
}

// MessageOf returns the error text, or NoMessage for a nil or silent error.
func MessageOf(err error) string {
	if IsNil(err) {
		return NoMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return NoMessage
}
