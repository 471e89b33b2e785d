// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the set-like
helpers used for id lists (favorites, favorite list mangas, genres).
*/
package slice

import "slices"

// Unique returns the elements of input in first-occurrence order without duplicates.
// The result is never nil.
func Unique[T comparable](input []T) []T {
	seen := make(map[T]struct{}, len(input))
	result := make([]T, 0, len(input))
	for _, v := range input {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// AppendUnique appends value unless it is already present.
// The second result reports whether the slice changed.
func AppendUnique[T comparable](input []T, value T) ([]T, bool) {
	if slices.Contains(input, value) {
		return input, false
	}
	return append(input, value), true
}

// Remove returns input without any occurrence of value.
// The second result reports whether the slice changed.
func Remove[T comparable](input []T, value T) ([]T, bool) {
	result := OrEmpty(slices.DeleteFunc(slices.Clone(input), func(v T) bool { return v == value }))
	return result, len(result) != len(input)
}

// OrEmpty replaces a nil slice with an empty one so it encodes as [] instead of null.
func OrEmpty[T any](input []T) []T {
	if input == nil {
		return []T{}
	}
	return input
}

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}
