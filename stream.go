package claims

import (
	"io"

	mapset "github.com/deckarep/golang-set/v2"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// Streaming helpers over caller-owned jsoniter reader/writer handles. The
// readers consume one complete construct, delimiters included, and leave the
// iterator positioned just past it.

// ReadScalarMap consumes a JSON object from the iterator into a mapping from
// member name to Scalar. String, boolean, and integer members are kept;
// nested arrays, nested objects, and nulls are consumed and omitted.
// Non-integral numbers corrupt the read and surface as a stream error.
func (e *Extractor) ReadScalarMap(iter *jsoniter.Iterator) (map[string]Scalar, error) {
	out := make(map[string]Scalar)
	// ReadObjectCB distinguishes end-of-object from an empty-string key
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, member string) bool {
		switch iter.WhatIsNext() {
		case jsoniter.StringValue:
			out[member] = StringScalar(iter.ReadString())
		case jsoniter.BoolValue:
			out[member] = BoolScalar(iter.ReadBool())
		case jsoniter.NumberValue:
			out[member] = Int64Scalar(iter.ReadInt64())
		default:
			iter.Skip()
			e.logger().Debug("skipping non-scalar member", zap.String("member", member))
		}
		return true
	})
	if err := streamError(iter); err != nil {
		return nil, newStreamError("read_scalar_map", err)
	}
	return out, nil
}

// ReadScalarSet consumes a JSON array from the iterator into a homogeneous
// set of Scalars. The element kind is inferred from the first element:
// strings and integers are collected; any other first-element kind causes
// the remaining elements to be skipped and an empty set to be returned.
// Homogeneity is the caller's contract — a mixed array surfaces as a stream
// error and the iterator is not recoverable.
func (e *Extractor) ReadScalarSet(iter *jsoniter.Iterator) (mapset.Set[Scalar], error) {
	set := mapset.NewSet[Scalar]()
	kind := jsoniter.InvalidValue
	for iter.ReadArray() {
		if kind == jsoniter.InvalidValue {
			kind = iter.WhatIsNext()
		}
		switch kind {
		case jsoniter.StringValue:
			set.Add(StringScalar(iter.ReadString()))
		case jsoniter.NumberValue:
			set.Add(Int64Scalar(iter.ReadInt64()))
		default:
			iter.Skip()
		}
	}
	if err := streamError(iter); err != nil {
		return nil, newStreamError("read_scalar_set", err)
	}
	return set, nil
}

// WriteNullSafeArray writes the set's elements as a JSON array in set
// iteration order, which is undefined; a nil set writes a JSON null. Callers
// needing stable output should use WriteStringArray with a sorted slice.
// The stream is not flushed.
func WriteNullSafeArray(stream *jsoniter.Stream, items mapset.Set[string]) error {
	if items == nil {
		stream.WriteNil()
		return stream.Error
	}
	return WriteStringArray(stream, items.ToSlice())
}

// WriteStringArray writes the slice as a JSON array, preserving order.
// A nil slice writes an empty array. The stream is not flushed.
func WriteStringArray(stream *jsoniter.Stream, items []string) error {
	stream.WriteArrayStart()
	for i, s := range items {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(s)
	}
	stream.WriteArrayEnd()
	return stream.Error
}

// streamError filters the iterator's clean-end-of-input signal
func streamError(iter *jsoniter.Iterator) error {
	if iter.Error != nil && iter.Error != io.EOF {
		return iter.Error
	}
	return nil
}
