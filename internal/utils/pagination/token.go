package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}

// EncodeEntryCursor creates a token pointing just after the entry at offset in
// an append-only log. The entry ID lets the reader detect a stale cursor.
func EncodeEntryCursor(offset int, entryID string) string {
	return EncodeMultiFieldToken(strconv.Itoa(offset), entryID)
}

// DecodeEntryCursor parses a token created by EncodeEntryCursor.
func DecodeEntryCursor(token string) (int, string, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, "", err
	}
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("invalid pagination token format (split)")
	}
	offset, err := strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		return 0, "", fmt.Errorf("invalid pagination token format (offset %q)", parts[0])
	}
	return offset, parts[1], nil
}
