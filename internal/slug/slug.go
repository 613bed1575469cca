// Package slug derives URL-safe identifiers from display names.
// Uniqueness is the caller's concern: on collision the caller appends
// -1, -2, ... until an unused slug is found.
package slug

import (
	"context"
	"fmt"
	"strings"
)

var replacer = strings.NewReplacer(
	" ", "-",
	"&", "and",
	"/", "-",
	"\\", "-",
	"'", "",
	"\"", "",
)

// Generate lowercases the name, turns spaces and slashes into hyphens,
// expands & to "and" and strips quotes.
func Generate(name string) string {
	return replacer.Replace(strings.ToLower(name))
}

// Unique generates a slug for name and resolves collisions by
// appending an incrementing numeric suffix. exists reports whether a
// candidate slug is already taken (callers exclude their own id when
// updating).
func Unique(ctx context.Context, name string, exists func(context.Context, string) (bool, error)) (string, error) {
	base := Generate(name)
	candidate := base
	for counter := 1; ; counter++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}
