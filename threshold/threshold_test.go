package threshold

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/veilmesh/otgm/entropy"
)

func TestSplitReconstructScenario(t *testing.T) {
	secret := []byte{0x42, 0x99}
	src := &entropy.Counter{Start: 0x10}

	shares, err := Split(secret, 2, 3, src)
	if err != nil {
		t.Fatal(err)
	}
	if len(shares) != 3 {
		t.Fatalf("got %d shares, want 3", len(shares))
	}
	for i, s := range shares {
		if s.Identifier != byte(i+1) {
			t.Fatalf("share %d identifier = %d, want %d", i, s.Identifier, i+1)
		}
		if len(s.Value) != 2 {
			t.Fatalf("share %d length = %d, want 2", i, len(s.Value))
		}
	}

	for _, subset := range [][]int{{0, 1}, {0, 2}, {1, 2}} {
		got, err := Reconstruct([]Share{shares[subset[0]], shares[subset[1]]}, 2)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, secret) {
			t.Fatalf("subset %v reconstructed %x, want %x", subset, got, secret)
		}
	}
}

func TestRoundTripAllKN(t *testing.T) {
	secret := bytes.Repeat([]byte{0xAB}, 17)
	for n := 2; n <= 16; n++ {
		for k := 2; k <= n; k++ {
			shares, err := Split(secret, k, n, entropy.CryptoSource{})
			if err != nil {
				t.Fatalf("k=%d n=%d: %v", k, n, err)
			}
			got, err := Reconstruct(shares[:k], k)
			if err != nil {
				t.Fatalf("k=%d n=%d reconstruct: %v", k, n, err)
			}
			if !bytes.Equal(got, secret) {
				t.Fatalf("k=%d n=%d: reconstructed %x, want %x", k, n, got, secret)
			}
		}
	}
}

func TestInsufficientSharesFailsFastWithoutReadingValues(t *testing.T) {
	shares := []Share{{Identifier: 1, Value: nil}}
	if _, err := Reconstruct(shares, 2); err != ErrInsufficientShares {
		t.Fatalf("got %v, want ErrInsufficientShares", err)
	}
}

func TestInvalidThresholdKGreaterThanN(t *testing.T) {
	if _, err := Split([]byte{1}, 5, 3, entropy.CryptoSource{}); err != ErrInvalidThreshold {
		t.Fatalf("got %v, want ErrInvalidThreshold", err)
	}
}

func TestInvalidThresholdKEqualsOne(t *testing.T) {
	if _, err := Split([]byte{1}, 1, 3, entropy.CryptoSource{}); err != ErrInvalidThreshold {
		t.Fatalf("got %v, want ErrInvalidThreshold", err)
	}
}

func TestEmptySecret(t *testing.T) {
	if _, err := Split(nil, 2, 3, entropy.CryptoSource{}); err != ErrEmptyShare {
		t.Fatalf("got %v, want ErrEmptyShare", err)
	}
}

func TestDuplicateShareIndexRejected(t *testing.T) {
	shares := []Share{
		{Identifier: 1, Value: []byte{1, 2}},
		{Identifier: 1, Value: []byte{3, 4}},
	}
	if _, err := Reconstruct(shares, 2); err != ErrDuplicateShareIndex {
		t.Fatalf("got %v, want ErrDuplicateShareIndex", err)
	}
}

func TestShareLengthMismatchRejected(t *testing.T) {
	shares := []Share{
		{Identifier: 1, Value: []byte{1, 2}},
		{Identifier: 2, Value: []byte{3}},
	}
	if _, err := Reconstruct(shares, 2); err != ErrShareLengthMismatch {
		t.Fatalf("got %v, want ErrShareLengthMismatch", err)
	}
}

func TestRefreshPreservesSecret(t *testing.T) {
	secret := []byte{0x42, 0x99}
	shares, err := Split(secret, 2, 3, entropy.CryptoSource{})
	if err != nil {
		t.Fatal(err)
	}
	before := make([][]byte, len(shares))
	for i, s := range shares {
		before[i] = bytes.Clone(s.Value)
	}

	if err := Refresh(shares, 2, entropy.CryptoSource{}); err != nil {
		t.Fatal(err)
	}

	for i, s := range shares {
		if bytes.Equal(s.Value, before[i]) {
			t.Fatalf("share %d unchanged after refresh", i)
		}
	}

	got, err := Reconstruct(shares[:2], 2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, secret) {
		t.Fatalf("reconstructed %x after refresh, want %x", got, secret)
	}
}

func TestMixedPreAndPostRefreshSharesFailOrReturnJunk(t *testing.T) {
	secret := []byte{0x42, 0x99}
	shares, err := Split(secret, 2, 3, entropy.CryptoSource{})
	if err != nil {
		t.Fatal(err)
	}
	stalePre := Share{Identifier: shares[0].Identifier, Value: bytes.Clone(shares[0].Value)}

	if err := Refresh(shares, 2, entropy.CryptoSource{}); err != nil {
		t.Fatal(err)
	}

	mixed := []Share{stalePre, shares[1]}
	got, err := Reconstruct(mixed, 2)
	if err == nil && bytes.Equal(got, secret) {
		t.Fatal("mixing a pre-refresh share with a post-refresh share reconstructed the original secret")
	}
}

func TestAddThenReconstructYieldsXORSum(t *testing.T) {
	s1 := []byte{0x11, 0x22, 0x33}
	s2 := []byte{0xF0, 0x0F, 0xAA}
	want := make([]byte, len(s1))
	for i := range want {
		want[i] = s1[i] ^ s2[i]
	}

	shares1, err := Split(s1, 2, 3, entropy.CryptoSource{})
	if err != nil {
		t.Fatal(err)
	}
	shares2, err := Split(s2, 2, 3, entropy.CryptoSource{})
	if err != nil {
		t.Fatal(err)
	}

	added := make([]Share, 3)
	for i := range added {
		added[i], err = Add(shares1[i], shares2[i])
		if err != nil {
			t.Fatal(err)
		}
	}

	got, err := Reconstruct(added[:2], 2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("reconstructed sum %x, want %x", got, want)
	}
}

func TestAddRejectsMismatchedIdentifiers(t *testing.T) {
	a := Share{Identifier: 1, Value: []byte{1, 2}}
	b := Share{Identifier: 2, Value: []byte{3, 4}}
	if _, err := Add(a, b); err != ErrInvalidShareIndex {
		t.Fatalf("got %v, want ErrInvalidShareIndex", err)
	}
}

func TestAddRejectsMismatchedLengths(t *testing.T) {
	a := Share{Identifier: 1, Value: []byte{1, 2}}
	b := Share{Identifier: 1, Value: []byte{3}}
	if _, err := Add(a, b); err != ErrShareLengthMismatch {
		t.Fatalf("got %v, want ErrShareLengthMismatch", err)
	}
}

func TestKMinusOneSharesLookUniformAcrossManySplits(t *testing.T) {
	// Across many random splits of the same secret, a fixed (k-1)-subset of
	// share values should not cluster around any particular byte value: a
	// crude but effective check for the information-theoretic independence
	// property, by verifying no single byte value dominates the sample.
	secret := []byte{0x77}
	counts := make(map[byte]int)
	const trials = 2000
	for i := 0; i < trials; i++ {
		shares, err := Split(secret, 3, 5, entropy.CryptoSource{})
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range shares[:2] { // the (k-1)-subset {1, 2}
			counts[s.Value[0]]++
		}
	}
	for v, c := range counts {
		if c > trials/4 {
			t.Fatalf("share value %#x appeared %d/%d times, suspiciously non-uniform", v, c, trials)
		}
	}
}

func init() {
	// sanity: crypto/rand must be wired through without error for the tests
	// above that rely on entropy.CryptoSource.
	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
}
