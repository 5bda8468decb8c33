// Package otp implements the one-time-pad engine: encrypt-then-MAC over a
// pad block, with MAC verification strictly preceding decryption.
package otp

import (
	"errors"

	"github.com/veilmesh/otgm/pad"
	"github.com/veilmesh/otgm/sip64"
	"github.com/veilmesh/otgm/xorengine"
)

// ErrBlockTooSmall is returned when a supplied block cannot carry the
// requested payload length plus the fixed MAC-key tail.
var ErrBlockTooSmall = errors.New("otp: block too small for payload")

// ErrKeystreamTooShort is returned when splitting a block leaves fewer
// keystream bytes than the ciphertext it must cover.
var ErrKeystreamTooShort = errors.New("otp: keystream shorter than ciphertext")

// ErrTagMismatch is returned by DecryptAndVerify when the computed SIP-64
// tag does not match the expected tag. No decryption is performed.
var ErrTagMismatch = errors.New("otp: tag mismatch")

// splitBlock divides block into its keystream and MAC-key halves, failing
// if block does not carry at least payloadLen bytes of keystream plus the
// fixed MAC-key tail.
func splitBlock(block []byte, payloadLen int) (keystream, macKey []byte, err error) {
	if len(block) < payloadLen+pad.MacKeySize {
		return nil, nil, ErrBlockTooSmall
	}
	keystream = block[:len(block)-pad.MacKeySize]
	macKey = block[len(block)-pad.MacKeySize:]
	if len(keystream) < payloadLen {
		return nil, nil, ErrKeystreamTooShort
	}
	return keystream, macKey, nil
}

// EncryptAndTag encrypts plaintext against block's keystream and
// authenticates the result under block's MAC key and metadata, returning
// the ciphertext and a 64-byte tag.
//
// Fails with ErrBlockTooSmall if len(block) < len(plaintext)+64.
func EncryptAndTag(plaintext, metadata, block []byte) (ciphertext, tag []byte, err error) {
	keystream, macKey, err := splitBlock(block, len(plaintext))
	if err != nil {
		return nil, nil, err
	}
	ciphertext = make([]byte, len(plaintext))
	xorengine.Xor(plaintext, keystream[:len(plaintext)], ciphertext)
	tag = sip64.Tag(ciphertext, metadata, macKey)
	return ciphertext, tag, nil
}

// DecryptAndVerify verifies expectedTag against ciphertext, metadata, and
// block's MAC key before decrypting. On a tag mismatch it returns
// ErrTagMismatch and does not decrypt; no observable behaviour distinguishes
// which byte of the tag, if any, differed.
//
// Fails with ErrBlockTooSmall if len(block) < len(ciphertext)+64.
func DecryptAndVerify(ciphertext, metadata, block, expectedTag []byte) (plaintext []byte, err error) {
	keystream, macKey, err := splitBlock(block, len(ciphertext))
	if err != nil {
		return nil, err
	}
	if !sip64.Verify(ciphertext, metadata, macKey, expectedTag) {
		return nil, ErrTagMismatch
	}
	plaintext = make([]byte, len(ciphertext))
	xorengine.Xor(ciphertext, keystream[:len(ciphertext)], plaintext)
	return plaintext, nil
}
