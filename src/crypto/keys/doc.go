// Package keys implements the key-management and signature core of the
// supernode client library.
//
// A client owns a cryptographic key-pair from which its deposit address is
// derived. The private key is secret and is used to sign transaction digests;
// the public key is published so that other parties can verify those
// signatures. Key pairs are serialized to a fixed DER structure that
// interoperates with the other wallets and nodes reading and writing the same
// format.
//
// Signature verification goes through a Verifier, which keeps a bounded cache
// of recently validated signatures to avoid recomputing expensive curve
// arithmetic when the same signature is checked twice in a short window.
package keys
