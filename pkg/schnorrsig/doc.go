// Package schnorrsig generates secp256k1 keypairs and creates and verifies
// BIP-340 style Schnorr signatures over arbitrary length messages.
//
// Public keys are x-only (32 bytes, implicit even Y) and signatures are the
// 64-byte concatenation R.x || s. The challenge hashes the raw message bytes:
//
//	e = H_tag("BIP0340/challenge", R.x || P.x || m) mod n
//
// so a 32-byte message produces a signature that any BIP-340 verifier accepts.
//
// # Quick Start
//
//	scheme := schnorrsig.NewScheme()
//
//	kp, err := scheme.GenerateKeypair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Public key: %s\n", kp.PublicKey())
//
//	sig, err := scheme.Sign(kp, schnorrsig.PublicMessage([]byte("hello")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	valid, err := scheme.VerifyEncoded(kp.PublicKey().String(), sig.String(), "68656c6c6f")
//
// # Nonces
//
// Signing nonces are synthetic: the nonce is derived from the secret key and
// the message, and 32 bytes of auxiliary randomness from the scheme's entropy
// source are mixed in. DeterministicNonce replaces the auxiliary randomness
// with zeros, which makes signatures reproducible:
//
//	scheme := schnorrsig.NewScheme().WithNonceGen(schnorrsig.DeterministicNonce{})
//
// # Entropy
//
// The entropy source defaults to crypto/rand.Reader. Tests can inject a
// reproducible source:
//
//	scheme := schnorrsig.NewScheme().WithEntropy(schnorrsig.FixedSeedEntropy(seed))
package schnorrsig
