package claims

import (
	"testing"

	"github.com/ugorji/go/codec"
)

type storedClient struct {
	ClientID string   `json:"client_id"`
	Scopes   []string `json:"scopes"`
	Active   bool     `json:"active"`
}

// TestBlobRoundTripJSON tests encode/decode through the default JSON handle
func TestBlobRoundTripJSON(t *testing.T) {
	h := NewTestHelper(t)

	original := storedClient{
		ClientID: "client1",
		Scopes:   []string{"openid", "profile"},
		Active:   true,
	}

	encoded, err := EncodeBlob(original)
	h.AssertNoError(err)

	result, err := DecodeBlob[storedClient](encoded)
	h.AssertNoError(err)
	AssertPresent(t, result, original)
}

// TestBlobRoundTripCBOR tests the re-encoded binary blob path
func TestBlobRoundTripCBOR(t *testing.T) {
	h := NewTestHelper(t)

	cfg := DefaultConfig()
	cfg.BlobHandle = &codec.CborHandle{}
	ext, err := NewWithConfig(cfg)
	h.AssertNoError(err)

	original := storedClient{ClientID: "client2", Scopes: []string{"openid"}}

	encoded, err := EncodeBlobWithExtractor(ext, original)
	h.AssertNoError(err)

	result, err := DecodeBlobWithExtractor[storedClient](ext, encoded)
	h.AssertNoError(err)
	AssertPresent(t, result, original)
}

// TestDecodeBlobEmpty tests that empty input is absence, not an error
func TestDecodeBlobEmpty(t *testing.T) {
	h := NewTestHelper(t)

	result, err := DecodeBlob[storedClient]("")
	h.AssertNoError(err)
	AssertAbsent(t, result)
}

// TestDecodeBlobCorrupt tests that failures are typed errors, not absence
// markers
func TestDecodeBlobCorrupt(t *testing.T) {
	h := NewTestHelper(t)

	// Not base64url
	_, err := DecodeBlob[storedClient]("!!not-base64!!")
	h.AssertErrorIs(err, ErrBlobCorrupt)

	// Valid base64url, payload does not decode as JSON
	_, err = DecodeBlob[storedClient]("bm90LWpzb24")
	h.AssertErrorIs(err, ErrBlobCorrupt)
}

// TestDecodeBlobPaddedInput tests that padded base64url is accepted
func TestDecodeBlobPaddedInput(t *testing.T) {
	h := NewTestHelper(t)

	// `{"client_id":"x","scopes":null,"active":false}` padded
	result, err := DecodeBlob[storedClient]("eyJjbGllbnRfaWQiOiJ4Iiwic2NvcGVzIjpudWxsLCJhY3RpdmUiOmZhbHNlfQ==")
	h.AssertNoError(err)
	v := result.MustGet()
	h.AssertEqual("x", v.ClientID)
	h.AssertEqual(false, v.Active)
}
