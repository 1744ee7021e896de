package claims

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/ugorji/go/codec"
	"go.uber.org/zap"
)

// Config controls how an Extractor decodes, converts, and logs. The codec is
// an explicit value per extractor rather than a hidden process-wide
// singleton; all fields are read-only after the extractor is constructed and
// safe for unsynchronized concurrent reads.
type Config struct {
	// Codec performs tree and collection conversions. Defaults to
	// jsoniter.ConfigCompatibleWithStandardLibrary.
	Codec jsoniter.API

	// BlobHandle deserializes legacy base64url blobs. Defaults to a JSON
	// handle; set a codec.CborHandle for blobs re-encoded into CBOR.
	BlobHandle codec.Handle

	// Logger receives decode diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Codec:      jsoniter.ConfigCompatibleWithStandardLibrary,
		BlobHandle: &codec.JsonHandle{},
		Logger:     zap.NewNop(),
	}
}

// Validate fills unset fields with their defaults
func (c *Config) Validate() error {
	if c == nil {
		return newOperationError("validate_config", "config cannot be nil")
	}
	if c.Codec == nil {
		c.Codec = jsoniter.ConfigCompatibleWithStandardLibrary
	}
	if c.BlobHandle == nil {
		c.BlobHandle = &codec.JsonHandle{}
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}
	clone := *c
	return &clone
}
