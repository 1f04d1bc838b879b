package keys

import (
	"sync"

	"github.com/btcsuite/btcd/btcec"
	"github.com/sirupsen/logrus"

	"github.com/mosaicnetworks/supernode/src/common"
)

// SignatureCacheLimit is the default capacity of a SigCache.
const SignatureCacheLimit = 5000

// SigCache remembers fingerprints of signatures that have already been fully
// verified. A lookup hit consumes the entry, so a given fingerprint is served
// from the cache at most once before the next verification recomputes it from
// scratch. When the cache is full, inserting evicts an arbitrary entry; there
// is no recency or frequency ordering. All methods are safe for concurrent
// use; the mutex covers the whole check-then-act sequence of each call.
type SigCache struct {
	mu      sync.Mutex
	limit   int
	entries map[string]struct{}
}

// NewSigCache creates a SigCache holding at most limit fingerprints. A limit
// of zero or less falls back to SignatureCacheLimit.
func NewSigCache(limit int) *SigCache {
	if limit <= 0 {
		limit = SignatureCacheLimit
	}

	return &SigCache{
		limit:   limit,
		entries: make(map[string]struct{}),
	}
}

// consume reports whether fp is in the cache, removing it when it is.
func (c *SigCache) consume(fp string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[fp]; ok {
		delete(c.entries, fp)
		return true
	}

	return false
}

// add inserts fp, evicting an arbitrary entry first when the cache is full.
func (c *SigCache) add(fp string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.limit {
		for victim := range c.entries {
			delete(c.entries, victim)
			break
		}
	}

	c.entries[fp] = struct{}{}
}

// Len returns the number of cached fingerprints.
func (c *SigCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Verifier checks DER-encoded signatures against digests and public keys,
// short-circuiting repeated checks of the same triple through a SigCache.
// The cache is passed in at construction so that independent verifiers can
// have independent caches, or share one.
type Verifier struct {
	cache  *SigCache
	logger *logrus.Entry
}

// NewVerifier creates a Verifier around the given cache. A nil cache gets a
// fresh one with the default capacity.
func NewVerifier(cache *SigCache, logger *logrus.Entry) *Verifier {
	if cache == nil {
		cache = NewSigCache(SignatureCacheLimit)
	}

	if logger == nil {
		log := logrus.New()
		log.Level = logrus.DebugLevel
		logger = logrus.NewEntry(log)
	}

	return &Verifier{
		cache:  cache,
		logger: logger,
	}
}

// Verify reports whether sig is a valid signature of digest by the owner of
// the public key encoded in pub. Malformed signature or public key bytes are
// reported as an invalid signature, never as an error; a caller cannot tell
// a forged signature from an unparseable one. A valid result is cached by
// fingerprint; a cached result is consumed on its first re-check.
func (v *Verifier) Verify(digest, sig, pub []byte) bool {
	fp := fingerprint(digest, sig, pub)

	if v.cache.consume(fp) {
		return true
	}

	r, s, err := DecodeSignature(sig)
	if err != nil {
		v.logger.WithError(err).Debug("Treating unparseable signature as invalid")
		return false
	}

	pubKey, err := btcec.ParsePubKey(pub, btcec.S256())
	if err != nil {
		v.logger.WithError(err).Debug("Treating unparseable public key as invalid")
		return false
	}

	if !Verify(pubKey.ToECDSA(), digest, r, s) {
		return false
	}

	v.cache.add(fp)

	return true
}

// fingerprint concatenates the hex forms of digest, signature and public key
// into the cache key of the triple.
func fingerprint(digest, sig, pub []byte) string {
	return common.EncodeToString(digest) + ":" + common.EncodeToString(sig) + ":" + common.EncodeToString(pub)
}
