// Package ref generates short reference codes used to correlate off-chain
// payments with their deposit records.
package ref

import "math/rand/v2"

const (
	// alphabet matches what reconciliation tooling expects: uppercase
	// letters and digits only, so codes survive bank transfer notes.
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// DepositLength is the length of deposit reference codes.
	DepositLength = 8
)

// Generate creates a random reference code of the given length. Codes are
// not secrets and are not deduplicated; the keyspace makes collisions
// between outstanding deposits unlikely enough for reconciliation.
func Generate(length int) string {
	if length <= 0 {
		length = DepositLength
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(result)
}
