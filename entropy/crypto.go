package entropy

import "crypto/rand"

// CryptoSource is a Source backed by crypto/rand.
type CryptoSource struct{}

// Fill populates out with crypto/rand output.
func (CryptoSource) Fill(out []byte) error {
	_, err := rand.Read(out)
	return err
}

// EntropyEstimate reports the ideal 8.0 bits/byte for an OS CSPRNG.
func (CryptoSource) EntropyEstimate() float64 { return 8.0 }
