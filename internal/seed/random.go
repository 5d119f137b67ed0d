package seed

import (
	"math"
	"strings"
)

// Random is the pinned pseudo-random function every fixture is derived from:
// the fractional part of sin(seed)*10000. Changing it changes every fixture.
func Random(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return x - math.Floor(x)
}

func index(n int, seed float64) int {
	return int(math.Floor(Random(seed) * float64(n)))
}

func pick[T any](pool []T, seed float64) T {
	return pool[index(len(pool), seed)]
}

// pickMultiple draws count items, re-rolling with escalating seed offsets
// until an unused index is found or the pool is exhausted.
func pickMultiple[T any](pool []T, count int, seed float64) []T {
	result := make([]T, 0, count)
	used := make(map[int]struct{}, count)
	for i := 0; i < count; i++ {
		var idx int
		attempt := 0
		for {
			idx = index(len(pool), seed+float64(i+len(result)+attempt))
			attempt++
			if _, dup := used[idx]; !dup || len(used) >= len(pool) {
				break
			}
		}
		used[idx] = struct{}{}
		result = append(result, pool[idx])
	}
	return result
}

func lower(s string) string {
	return strings.ToLower(s)
}
