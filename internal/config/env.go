package config

import (
	"os"

	"github.com/pradeep-ramanna/rccl-developer/internal/log"
)

// envInt reads an integer-valued environment variable or returns the
// default. A set variable is converted with atoi semantics; range rules are
// enforced later by validation, not here.
func envInt(key string, defaultValue int) int {
	logger := log.WithComponent("config")
	v, ok := os.LookupEnv(key)
	if !ok {
		logger.Debug().
			Str("key", key).
			Int("default", defaultValue).
			Str("source", "default").
			Msg("using default value")
		return defaultValue
	}
	n := atoi(v)
	logger.Debug().
		Str("key", key).
		Str("raw", v).
		Int("value", n).
		Str("source", "environment").
		Msg("using environment variable")
	return n
}

// atoi converts the leading integer portion of s: optional whitespace, an
// optional sign, then digits up to the first non-digit character. No leading
// digits yields 0, so "12x" converts to 12 and "x" to 0. This matches the C
// library conversion the tool has always used for its environment variables;
// malformed text is never an error here, only the later range checks are.
func atoi(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && '0' <= s[i] && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
