package redisresult

import (
	"time"

	"github.com/spf13/cast"
)

// Converter transforms a raw driver reply into its target representation.
// Bulk replies arrive as []byte from redigo and string from go-redis;
// the stock converters accept both.
type Converter func(value interface{}) (interface{}, error)

func stringify(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

func ToString(v interface{}) (interface{}, error) {
	return cast.ToStringE(stringify(v))
}

func ToInt64(v interface{}) (interface{}, error) {
	return cast.ToInt64E(stringify(v))
}

func ToBool(v interface{}) (interface{}, error) {
	return cast.ToBoolE(stringify(v))
}

// ToStatusString coerces a status reply such as "OK" or "PONG" to a
// string, regardless of which driver produced it.
func ToStatusString(v interface{}) (interface{}, error) {
	return cast.ToStringE(stringify(v))
}

// OKToBool maps the "OK" status reply to true.
func OKToBool(v interface{}) (interface{}, error) {
	s, err := cast.ToStringE(stringify(v))
	if err != nil {
		return nil, err
	}
	return s == "OK", nil
}

func ToStrings(v interface{}) (interface{}, error) {
	return cast.ToStringSliceE(v)
}

// SecondsToDuration converts integer replies such as TTL to a Duration.
func SecondsToDuration(v interface{}) (interface{}, error) {
	n, err := cast.ToInt64E(stringify(v))
	if err != nil {
		return nil, err
	}
	return time.Duration(n) * time.Second, nil
}
