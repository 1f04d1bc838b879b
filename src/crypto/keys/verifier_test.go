package keys

import (
	"fmt"
	"sync"
	"testing"

	"github.com/mosaicnetworks/supernode/src/common"
	"github.com/mosaicnetworks/supernode/src/crypto"
)

func signedTriple(t *testing.T, seed string) (digest, sig, pub []byte) {
	key, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	digest = crypto.SHA256([]byte(seed))

	sig, err = key.Sign(digest)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	return digest, sig, key.Public()
}

func TestVerifierValidSignature(t *testing.T) {
	verifier := NewVerifier(nil, common.NewTestEntry(t))

	digest, sig, pub := signedTriple(t, "valid")

	if !verifier.Verify(digest, sig, pub) {
		t.Fatalf("signature should verify")
	}
}

func TestVerifierCacheIsConsumedOnHit(t *testing.T) {
	cache := NewSigCache(10)
	verifier := NewVerifier(cache, common.NewTestEntry(t))

	digest, sig, pub := signedTriple(t, "cached")

	// First call runs the full verification and caches the fingerprint.
	if !verifier.Verify(digest, sig, pub) {
		t.Fatalf("first verification should succeed")
	}
	if cache.Len() != 1 {
		t.Fatalf("cache should hold 1 entry, holds %d", cache.Len())
	}

	// Second call hits the cache and consumes the entry.
	if !verifier.Verify(digest, sig, pub) {
		t.Fatalf("second verification should succeed")
	}
	if cache.Len() != 0 {
		t.Fatalf("cache hit should consume the entry, cache holds %d", cache.Len())
	}

	// Third call misses the cache, recomputes, and caches again.
	if !verifier.Verify(digest, sig, pub) {
		t.Fatalf("third verification should succeed")
	}
	if cache.Len() != 1 {
		t.Fatalf("recomputed verification should be cached again, cache holds %d", cache.Len())
	}
}

func TestVerifierRejectsTampering(t *testing.T) {
	verifier := NewVerifier(NewSigCache(10), common.NewTestEntry(t))

	digest, sig, pub := signedTriple(t, "tamper")

	tamper := func(b []byte, i int) []byte {
		c := make([]byte, len(b))
		copy(c, b)
		c[i] ^= 0x01
		return c
	}

	if verifier.Verify(tamper(digest, 0), sig, pub) {
		t.Fatalf("tampered digest should not verify")
	}

	if verifier.Verify(digest, tamper(sig, len(sig)-1), pub) {
		t.Fatalf("tampered signature should not verify")
	}

	if verifier.Verify(digest, sig, tamper(pub, 1)) {
		t.Fatalf("tampered public key should not verify")
	}

	// The original triple still verifies.
	if !verifier.Verify(digest, sig, pub) {
		t.Fatalf("untampered triple should verify")
	}
}

func TestVerifierWrongKey(t *testing.T) {
	verifier := NewVerifier(NewSigCache(10), common.NewTestEntry(t))

	digest, sig, _ := signedTriple(t, "wrong key")
	other, _ := GenerateKeyPair()

	if verifier.Verify(digest, sig, other.Public()) {
		t.Fatalf("signature should not verify against another key")
	}
}

func TestVerifierMalformedInputIsInvalid(t *testing.T) {
	cache := NewSigCache(10)
	verifier := NewVerifier(cache, common.NewTestEntry(t))

	digest, sig, pub := signedTriple(t, "malformed")

	if verifier.Verify(digest, []byte("not a signature"), pub) {
		t.Fatalf("garbage signature bytes should report false")
	}

	if verifier.Verify(digest, sig, []byte("not a point")) {
		t.Fatalf("garbage public key bytes should report false")
	}

	if cache.Len() != 0 {
		t.Fatalf("failed verifications should not touch the cache")
	}
}

func TestSigCacheEviction(t *testing.T) {
	limit := 3
	cache := NewSigCache(limit)
	verifier := NewVerifier(cache, common.NewTestEntry(t))

	key, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	for i := 0; i < limit+2; i++ {
		digest := crypto.SHA256([]byte(fmt.Sprintf("message %d", i)))

		sig, err := key.Sign(digest)
		if err != nil {
			t.Fatalf("err: %v", err)
		}

		if !verifier.Verify(digest, sig, key.Public()) {
			t.Fatalf("signature %d should verify", i)
		}

		if cache.Len() > limit {
			t.Fatalf("cache exceeded its limit: %d > %d", cache.Len(), limit)
		}
	}

	if cache.Len() != limit {
		t.Fatalf("cache should be full at %d entries, holds %d", limit, cache.Len())
	}
}

func TestVerifierConcurrent(t *testing.T) {
	verifier := NewVerifier(NewSigCache(100), common.NewTestEntry(t))

	digest, sig, pub := signedTriple(t, "concurrent")

	var wg sync.WaitGroup
	results := make(chan bool, 200)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				results <- verifier.Verify(digest, sig, pub)
			}
		}()
	}

	wg.Wait()
	close(results)

	for ok := range results {
		if !ok {
			t.Fatalf("a concurrent verification failed")
		}
	}
}
