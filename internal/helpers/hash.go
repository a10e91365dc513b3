package helpers

import (
	"crypto/md5"
	"fmt"
)

// Hash is an utility to determine a MD5 hash (acceptable as not used for security reasons).
func Hash(bytes []byte) string {
	h := md5.New()
	h.Write(bytes)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// HashText returns the hash of a text, ignoring leading and trailing newlines
// so that saving a note in an editor does not change its hash.
func HashText(text string) string {
	return Hash([]byte(trimNewlines(text)))
}

func trimNewlines(text string) string {
	start, end := 0, len(text)
	for start < end && (text[start] == '\n' || text[start] == '\r') {
		start++
	}
	for end > start && (text[end-1] == '\n' || text[end-1] == '\r') {
		end--
	}
	return text[start:end]
}
