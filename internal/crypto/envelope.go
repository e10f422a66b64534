// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
)

// envelopeCodec is the AES-256-CBC + HMAC-SHA256 implementation of
// [EnvelopeCodec]. The envelope layout is fixed:
//
//	base64( iv (16) || mac (32) || ciphertext )
//
// where mac = HMAC-SHA256(iv || ciphertext, key).
//
// The same 256-bit key is used for both the cipher and the MAC. Deriving
// two sub-keys (HKDF with distinct labels) would be the stronger design but
// changes the envelope format and would invalidate every stored secret, so
// the single-key scheme is kept. See DESIGN.md.
type envelopeCodec struct {
	key   []byte
	block cipher.Block
}

// NewEnvelopeCodec constructs an [EnvelopeCodec] over the given 32-byte key.
// Returns an error for any other key length; the vault must never operate
// with a missing or truncated key.
func NewEnvelopeCodec(key []byte) (EnvelopeCodec, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("envelope key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return &envelopeCodec{key: key, block: block}, nil
}

// Encrypt implements [EnvelopeCodec].
func (c *envelopeCodec) Encrypt(plaintext string) (string, error) {
	// 1. Fresh random IV per call. Reusing an IV under the same key breaks
	// CBC confidentiality, so the IV is never cached or derived.
	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	// 2. CBC-encrypt the PKCS#7-padded plaintext.
	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(ciphertext, padded)

	// 3. MAC covers both the IV and the ciphertext.
	mac := c.mac(iv, ciphertext)

	// 4. blob = iv || mac || ciphertext
	blob := make([]byte, 0, len(iv)+len(mac)+len(ciphertext))
	blob = append(blob, iv...)
	blob = append(blob, mac...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [EnvelopeCodec]. Any malformed, truncated, or tampered
// input yields (_, false); decryption is never attempted before the MAC
// verifies.
func (c *envelopeCodec) Decrypt(blob string) (string, bool) {
	decoded, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", false
	}

	if len(decoded) < aes.BlockSize+sha256.Size {
		return "", false
	}

	iv := decoded[:aes.BlockSize]
	mac := decoded[aes.BlockSize : aes.BlockSize+sha256.Size]
	ciphertext := decoded[aes.BlockSize+sha256.Size:]

	// Constant-time MAC check before touching the cipher.
	if !hmac.Equal(mac, c.mac(iv, ciphertext)) {
		return "", false
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", false
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, ok := pkcs7Unpad(plaintext, aes.BlockSize)
	if !ok {
		return "", false
	}

	return string(unpadded), true
}

func (c *envelopeCodec) mac(iv, ciphertext []byte) []byte {
	m := hmac.New(sha256.New, c.key)
	m.Write(iv)
	m.Write(ciphertext)
	return m.Sum(nil)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, false
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, false
		}
	}

	return data[:len(data)-padLen], true
}
