package codes

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrInvalidLength = errors.New("invalid code length")
)

const (
	// ReferenceLength is the number of random characters in a booking reference.
	ReferenceLength = 8

	// ReferenceGroupSize splits references for reading aloud over the phone.
	ReferenceGroupSize = 4

	// Upper case alphanumeric excluding ambiguous characters (I, L, O, 0, 1)
	charsetReference = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

// NewReference creates a booking reference such as "EMT-K7PQ-2XRM".
// An empty prefix yields just the grouped code.
func NewReference(prefix string) (string, error) {
	code, err := GenerateCode(ReferenceLength, charsetReference)
	if err != nil {
		return "", err
	}
	code = FormatCode(code, ReferenceGroupSize)
	if prefix == "" {
		return code, nil
	}
	return strings.ToUpper(prefix) + "-" + code, nil
}

// GenerateCode creates a code of specified length from a given character set.
func GenerateCode(length int, charset string) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}
	if len(charset) == 0 {
		return "", errors.New("charset cannot be empty")
	}

	result := make([]byte, length)
	max := big.NewInt(int64(len(charset)))

	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random character: %w", err)
		}
		result[i] = charset[n.Int64()]
	}

	return string(result), nil
}

// FormatCode formats a code with dashes for readability.
// e.g., "ABCD1234" -> "ABCD-1234" with groupSize=4
func FormatCode(code string, groupSize int) string {
	if groupSize < 1 || len(code) <= groupSize {
		return code
	}

	var parts []string
	for i := 0; i < len(code); i += groupSize {
		end := min(i+groupSize, len(code))
		parts = append(parts, code[i:end])
	}

	return strings.Join(parts, "-")
}
