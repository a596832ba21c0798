package obolus

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
)

// KeyRole records whether key material signs responses or verifies them.
type KeyRole string

const (
	// RoleSigning marks an Ed25519 private key
	RoleSigning KeyRole = "signing"

	// RoleVerification marks an Ed25519 public key
	RoleVerification KeyRole = "verification"
)

// KeyEncoding records which accepted source encoding key material was
// normalized from. The encoding is chosen by the caller through the
// constructor, never sniffed from the input.
type KeyEncoding string

const (
	// EncodingPEM is the textual PEM container form
	// (PKCS#8 for private keys, PKIX for public keys)
	EncodingPEM KeyEncoding = "pem"

	// EncodingBase64 is the base64-encoded compact binary form
	// (raw Ed25519 key bytes, or DER)
	EncodingBase64 KeyEncoding = "base64"
)

// KeyMaterial is a normalized Ed25519 key regardless of source encoding.
// It exposes only the raw key bytes and the role; no other component
// inspects encoding details. A KeyMaterial holds either a private or a
// public key, never both roles at once.
type KeyMaterial struct {
	role     KeyRole
	encoding KeyEncoding
	priv     ed25519.PrivateKey
	pub      ed25519.PublicKey
}

// Role returns whether the key signs or verifies.
func (k KeyMaterial) Role() KeyRole {
	return k.role
}

// Encoding returns the source encoding the key was normalized from.
func (k KeyMaterial) Encoding() KeyEncoding {
	return k.encoding
}

// Bytes returns the raw key bytes: the full private key for signing
// material, the public key for verification material.
func (k KeyMaterial) Bytes() []byte {
	if k.role == RoleSigning {
		return []byte(k.priv)
	}
	return []byte(k.pub)
}

// Verifier derives the verification KeyMaterial for a signing key.
func (k KeyMaterial) Verifier() (KeyMaterial, error) {
	if k.role != RoleSigning {
		return KeyMaterial{}, fmt.Errorf("cannot derive public key from %s key: %w", k.role, ErrKeyLoad)
	}
	return KeyMaterial{
		role:     RoleVerification,
		encoding: k.encoding,
		pub:      k.priv.Public().(ed25519.PublicKey),
	}, nil
}

// MarshalPEM encodes the key in its PEM container form:
// PKCS#8 for signing keys, PKIX for verification keys.
func (k KeyMaterial) MarshalPEM() ([]byte, error) {
	switch k.role {
	case RoleSigning:
		der, err := x509.MarshalPKCS8PrivateKey(k.priv)
		if err != nil {
			return nil, fmt.Errorf("failed to encode private key: %w", err)
		}
		return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
	case RoleVerification:
		der, err := x509.MarshalPKIXPublicKey(k.pub)
		if err != nil {
			return nil, fmt.Errorf("failed to encode public key: %w", err)
		}
		return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), nil
	default:
		return nil, ErrKeyLoad
	}
}

// MarshalBase64 encodes the raw key bytes in the compact base64 form.
func (k KeyMaterial) MarshalBase64() string {
	return base64.StdEncoding.EncodeToString(k.Bytes())
}

// GenerateKeyPair creates a fresh Ed25519 key pair and returns the
// signing and verification halves.
func GenerateKeyPair() (signing KeyMaterial, verification KeyMaterial, err error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return KeyMaterial{}, KeyMaterial{}, fmt.Errorf("failed to generate key pair: %w", err)
	}
	signing = KeyMaterial{role: RoleSigning, encoding: EncodingPEM, priv: priv}
	verification = KeyMaterial{role: RoleVerification, encoding: EncodingPEM, pub: pub}
	return signing, verification, nil
}

// ParseSigningKeyPEM normalizes a PEM-encoded PKCS#8 Ed25519 private key.
func ParseSigningKeyPEM(data []byte) (KeyMaterial, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return KeyMaterial{}, fmt.Errorf("no PEM block found: %w", ErrKeyLoad)
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("invalid PKCS#8 private key: %w", ErrKeyLoad)
	}

	priv, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return KeyMaterial{}, fmt.Errorf("not an Ed25519 private key: %w", ErrKeyLoad)
	}

	return KeyMaterial{role: RoleSigning, encoding: EncodingPEM, priv: priv}, nil
}

// ParseVerificationKeyPEM normalizes a PEM-encoded PKIX Ed25519 public key.
func ParseVerificationKeyPEM(data []byte) (KeyMaterial, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return KeyMaterial{}, fmt.Errorf("no PEM block found: %w", ErrKeyLoad)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("invalid PKIX public key: %w", ErrKeyLoad)
	}

	pub, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return KeyMaterial{}, fmt.Errorf("not an Ed25519 public key: %w", ErrKeyLoad)
	}

	return KeyMaterial{role: RoleVerification, encoding: EncodingPEM, pub: pub}, nil
}

// ParseSigningKeyBase64 normalizes a base64-encoded compact private key.
// The decoded bytes may be a 32-byte Ed25519 seed, a 64-byte private
// key, or a DER-encoded PKCS#8 document.
func ParseSigningKeyBase64(s string) (KeyMaterial, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("invalid base64: %w", ErrKeyLoad)
	}

	var priv ed25519.PrivateKey
	switch len(raw) {
	case ed25519.SeedSize:
		priv = ed25519.NewKeyFromSeed(raw)
	case ed25519.PrivateKeySize:
		priv = ed25519.PrivateKey(raw)
	default:
		parsed, err := x509.ParsePKCS8PrivateKey(raw)
		if err != nil {
			return KeyMaterial{}, fmt.Errorf("invalid compact private key: %w", ErrKeyLoad)
		}
		var ok bool
		if priv, ok = parsed.(ed25519.PrivateKey); !ok {
			return KeyMaterial{}, fmt.Errorf("not an Ed25519 private key: %w", ErrKeyLoad)
		}
	}

	return KeyMaterial{role: RoleSigning, encoding: EncodingBase64, priv: priv}, nil
}

// ParseVerificationKeyBase64 normalizes a base64-encoded compact public
// key. The decoded bytes may be a 32-byte Ed25519 public key or a
// DER-encoded PKIX document.
func ParseVerificationKeyBase64(s string) (KeyMaterial, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return KeyMaterial{}, fmt.Errorf("invalid base64: %w", ErrKeyLoad)
	}

	var pub ed25519.PublicKey
	if len(raw) == ed25519.PublicKeySize {
		pub = ed25519.PublicKey(raw)
	} else {
		parsed, err := x509.ParsePKIXPublicKey(raw)
		if err != nil {
			return KeyMaterial{}, fmt.Errorf("invalid compact public key: %w", ErrKeyLoad)
		}
		var ok bool
		if pub, ok = parsed.(ed25519.PublicKey); !ok {
			return KeyMaterial{}, fmt.Errorf("not an Ed25519 public key: %w", ErrKeyLoad)
		}
	}

	return KeyMaterial{role: RoleVerification, encoding: EncodingBase64, pub: pub}, nil
}
