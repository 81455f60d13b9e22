package util

import "strings"

// DefaultSearchKeyMarkers are the directional and flag-stop tokens that get moved
// from the front of a stop name to the back of its search key.
var DefaultSearchKeyMarkers = []string{"FLAGSTOP", "NB", "SB", "EB", "WB"}

func RemoveDuplicateStrings(strings []string, ignoreList []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, ignoreString := range ignoreList {
		presentStrings[ignoreString] = true
	}

	for _, item := range strings {
		if _, value := presentStrings[item]; !value && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}
	return list
}

func ContainsString(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}

	return false
}

// NormaliseSearchTerm uppercases a term and collapses runs of whitespace.
func NormaliseSearchTerm(term string) string {
	return strings.Join(strings.Fields(strings.ToUpper(term)), " ")
}

// StopSearchKey derives the prefix search key for a stop name.
//
// The name is uppercased and every leading marker token is relocated to the end,
// so "NB MAIN ST" becomes "MAIN ST NB" and "FLAGSTOP WB MAIN ST" becomes
// "MAIN ST FLAGSTOP WB". Markers that appear anywhere but the front are left alone.
func StopSearchKey(name string, markers []string) string {
	tokens := strings.Fields(strings.ToUpper(name))

	var moved []string
	for len(tokens) > 1 && ContainsString(markers, tokens[0]) {
		moved = append(moved, tokens[0])
		tokens = tokens[1:]
	}

	return strings.Join(append(tokens, moved...), " ")
}
