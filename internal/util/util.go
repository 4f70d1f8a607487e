package util

import (
	"os"

	"github.com/scheerer/sunrise-leds/internal/logging"
)

var logger = logging.New("util")

func Getenv[T StringParsable](key string, def T) T {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return ParseStringAs(v, def)
}
