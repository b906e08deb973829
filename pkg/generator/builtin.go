package generator

import (
	mathrand "math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fauxdoc/fauxdoc/pkg/template"
)

// TimestampLayout is the format of every generated timestamp:
// ISO 8601 with seconds and a numeric zone offset, e.g.
// 2026-08-23T14:07:31+0000.
const TimestampLayout = "2006-01-02T15:04:05-0700"

// hashLength is the size of a generated hash string.
const hashLength = 16

// RegisterBuiltins adds the core value generators to the registry. A
// nil rng uses the global concurrency-safe source; a seeded rng makes
// draws deterministic (uuid stays crypto-random either way).
func RegisterBuiltins(reg *Registry, rng *mathrand.Rand) {
	reg.Register("date",
		"Current UTC timestamp, or a random recent one when 'sub_rnd_days' limits how many days may be subtracted",
		dateGen(rng))
	reg.Register("now",
		"Current UTC timestamp",
		nowGen())
	reg.Register("hash",
		"16-character alphanumeric hash",
		hashGen(rng))
	reg.Register("random_value",
		"Random element of the pipe-delimited 'options' parameter, e.g. options=\"a|b|c\"",
		randomValueGen(rng))
	reg.Register("chance",
		"Roll within [0, range); 0 yields the first pipe-delimited option, anything else the second",
		chanceGen(rng))
	reg.Register("randomint",
		"Random integer in [0, range)",
		randomIntGen(rng))
	reg.Register("uuid",
		"Random UUID v4",
		uuidGen())
}

// dateGen returns the current UTC timestamp, optionally shifted back by
// a uniformly random number of days below 'sub_rnd_days'.
func dateGen(rng *mathrand.Rand) template.Func {
	return func(args template.Args) (string, error) {
		if !args.Has("sub_rnd_days") {
			return time.Now().UTC().Format(TimestampLayout), nil
		}
		days, ok := args.Int("sub_rnd_days")
		if !ok {
			return "", &ArgumentError{Generator: "date", Argument: "sub_rnd_days", Reason: "must be an integer"}
		}
		if days <= 0 {
			return "", &ArgumentError{Generator: "date", Argument: "sub_rnd_days", Reason: "must be positive"}
		}
		offset := intN(rng, int(days))
		return time.Now().UTC().AddDate(0, 0, -offset).Format(TimestampLayout), nil
	}
}

func nowGen() template.Func {
	return func(template.Args) (string, error) {
		return time.Now().UTC().Format(TimestampLayout), nil
	}
}

func hashGen(rng *mathrand.Rand) template.Func {
	return func(template.Args) (string, error) {
		return alphanumericString(rng, hashLength), nil
	}
}

// randomValueGen picks a uniformly random element of the pipe-delimited
// 'options' parameter. A missing or non-string parameter degrades to an
// empty string instead of failing.
func randomValueGen(rng *mathrand.Rand) template.Func {
	return func(args template.Args) (string, error) {
		options, ok := args.String("options")
		if !ok {
			return "", nil
		}
		parts := strings.Split(options, "|")
		return parts[intN(rng, len(parts))], nil
	}
}

// chanceGen draws in [0, range) and returns the first option on a zero
// draw, the second otherwise. Both parameters are required and
// validated.
func chanceGen(rng *mathrand.Rand) template.Func {
	return func(args template.Args) (string, error) {
		rangeN, ok := args.Int("range")
		if !ok {
			return "", &ArgumentError{Generator: "chance", Argument: "range", Reason: "must be an integer"}
		}
		if rangeN < 1 {
			return "", &ArgumentError{Generator: "chance", Argument: "range", Reason: "must be positive"}
		}
		options, ok := args.String("options")
		if !ok {
			return "", &ArgumentError{Generator: "chance", Argument: "options", Reason: "must be a string"}
		}
		parts := strings.Split(options, "|")
		if len(parts) < 2 {
			return "", &ArgumentError{Generator: "chance", Argument: "options", Reason: "must contain two pipe-delimited values"}
		}
		if intN(rng, int(rangeN)) == 0 {
			return parts[0], nil
		}
		return parts[1], nil
	}
}

// randomIntGen draws a uniformly random integer in [0, range). The
// range defaults to 0 when absent, which is an empty draw space and
// therefore an error; range=1 is a valid degenerate draw that always
// yields "0".
func randomIntGen(rng *mathrand.Rand) template.Func {
	return func(args template.Args) (string, error) {
		var rangeN int64
		if args.Has("range") {
			var ok bool
			rangeN, ok = args.Int("range")
			if !ok {
				return "", &ArgumentError{Generator: "randomint", Argument: "range", Reason: "must be an integer"}
			}
		}
		if rangeN < 1 {
			return "", &ArgumentError{Generator: "randomint", Argument: "range", Reason: "must be positive"}
		}
		return strconv.Itoa(intN(rng, int(rangeN))), nil
	}
}

func uuidGen() template.Func {
	return func(template.Args) (string, error) {
		return uuid.New().String(), nil
	}
}
