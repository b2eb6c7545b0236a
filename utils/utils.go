package utils

import (
	urlParser "net/url"
	"path/filepath"
	"slices"
	"strings"

	. "github.com/redexp/familychart/types"
)

const ChartExt = ".json"

func UriToPath(uri Uri) (string, error) {
	if strings.HasPrefix(uri, "/") {
		return uri, nil
	}

	url, err := urlParser.Parse(uri)

	if err != nil {
		return "", err
	}

	return url.Path, nil
}

func ToUri(path string) Uri {
	if strings.HasPrefix(path, "/") {
		path = "file://" + path
	}

	return path
}

func NormalizeUri(uri Uri) (Uri, error) {
	path, err := UriToPath(uri)

	if err != nil {
		return "", err
	}

	return ToUri(path), nil
}

// TitleFromUri returns the file name without extension, the way charts are saved as "<title>.json".
func TitleFromUri(uri Uri) string {
	path, err := UriToPath(uri)

	if err != nil {
		return ""
	}

	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}

func P[T any](src T) *T {
	return &src
}

// SameElements compares two lists as multisets.
func SameElements[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}

	count := make(map[T]int, len(a))

	for _, v := range a {
		count[v]++
	}

	for _, v := range b {
		count[v]--

		if count[v] < 0 {
			return false
		}
	}

	return true
}

func AppendUniq[T comparable](list []T, items ...T) []T {
	for _, item := range items {
		if !slices.Contains(list, item) {
			list = append(list, item)
		}
	}

	return list
}

func Without[T comparable](list []T, item T) []T {
	return slices.DeleteFunc(list, func(v T) bool {
		return v == item
	})
}

func Uniq[T comparable](list []T) []T {
	res := make([]T, 0, len(list))

	return AppendUniq(res, list...)
}

func Compact[T any](list []*T) []*T {
	return slices.DeleteFunc(list, func(v *T) bool {
		return v == nil
	})
}
