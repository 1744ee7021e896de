package claims

import (
	"encoding/base64"
	"strings"

	"github.com/ugorji/go/codec"
	"go.uber.org/zap"
)

// Legacy blob codec. Stored objects are base64url strings over a
// self-describing structured payload (JSON by default, CBOR when the
// extractor is configured with a codec.CborHandle). Blobs produced by
// runtime-specific binary serialization must be re-encoded once through
// EncodeBlob before this path can read them.

// DecodeBlob decodes a base64url string into a value of type T using the
// default extractor's blob handle. An empty input is absent; decoding and
// deserialization failures return an ErrBlobCorrupt error so callers can
// tell "missing" from "corrupt".
func DecodeBlob[T any](encoded string) (Optional[T], error) {
	return DecodeBlobWithExtractor[T](getDefaultExtractor(), encoded)
}

// DecodeBlobWithExtractor decodes a base64url string into a value of type T
// using the given extractor's blob handle
func DecodeBlobWithExtractor[T any](e *Extractor, encoded string) (Optional[T], error) {
	if encoded == "" {
		return None[T](), nil
	}
	raw, err := base64URLDecode(encoded)
	if err != nil {
		e.logger().Debug("blob is not base64url", zap.Error(err))
		return None[T](), newBlobError("decode_blob", "input is not base64url", err)
	}
	var v T
	if err := codec.NewDecoderBytes(raw, e.cfg.BlobHandle).Decode(&v); err != nil {
		e.logger().Debug("blob payload does not decode", zap.Error(err))
		return None[T](), newBlobError("decode_blob", "payload does not match target shape", err)
	}
	return Some(v), nil
}

// EncodeBlob serializes a value through the default extractor's blob handle
// and base64url-encodes the result. Paired with DecodeBlob it performs the
// one-time re-encoding of legacy stored objects.
func EncodeBlob(v any) (string, error) {
	return EncodeBlobWithExtractor(getDefaultExtractor(), v)
}

// EncodeBlobWithExtractor serializes a value through the given extractor's
// blob handle and base64url-encodes the result
func EncodeBlobWithExtractor(e *Extractor, v any) (string, error) {
	var raw []byte
	if err := codec.NewEncoderBytes(&raw, e.cfg.BlobHandle).Encode(v); err != nil {
		return "", newBlobError("encode_blob", "value is not encodable", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// base64URLDecode accepts both padded and unpadded base64url input
func base64URLDecode(s string) ([]byte, error) {
	if strings.ContainsRune(s, '=') {
		return base64.URLEncoding.DecodeString(s)
	}
	return base64.RawURLEncoding.DecodeString(s)
}
