package utils

import "strings"

// UniqueStrings returns items without duplicates, keeping first occurrences in order.
func UniqueStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// PrependUnique puts item first, drops any other case-insensitive copy of it and caps the length.
// A limit <= 0 means no cap.
func PrependUnique(items []string, item string, limit int) []string {
	out := make([]string, 0, len(items)+1)
	out = append(out, item)
	for _, existing := range items {
		if strings.EqualFold(existing, item) {
			continue
		}
		out = append(out, existing)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RemoveFold drops every case-insensitive match of item.
func RemoveFold(items []string, item string) []string {
	out := make([]string, 0, len(items))
	for _, existing := range items {
		if !strings.EqualFold(existing, item) {
			out = append(out, existing)
		}
	}
	return out
}

// ContainsFold reports whether items holds item, ignoring case.
func ContainsFold(items []string, item string) bool {
	for _, existing := range items {
		if strings.EqualFold(existing, item) {
			return true
		}
	}
	return false
}
