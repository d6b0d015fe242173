// Package serializablefifomap wraps fifomap.FIFOMap with a serix-backed wire
// codec. The encoding writes the entries in iteration order and decoding
// replays them through Insert, so a round trip reproduces the insertion order
// of the source exactly.
package serializablefifomap

import (
	"context"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"

	"github.com/cjxgm/fifo-map/fifomap"
)

// SerializableFIFOMap provides an insertion-ordered map that is serializable.
type SerializableFIFOMap[K comparable, V any] struct {
	*fifomap.FIFOMap[K, V]
}

// New returns a new *SerializableFIFOMap.
func New[K comparable, V any]() *SerializableFIFOMap[K, V] {
	return &SerializableFIFOMap[K, V]{
		FIFOMap: fifomap.New[K, V](),
	}
}

// Encode returns a serialized byte slice of the object.
func (s *SerializableFIFOMap[K, V]) Encode(api *serix.API) ([]byte, error) {
	seri := serializer.NewSerializer()

	seri.WriteNum(uint32(s.Size()), func(err error) error {
		return ierrors.Wrap(err, "failed to write SerializableFIFOMap size to serializer")
	})

	s.ForEach(func(key K, val V) bool {
		keyBytes, err := api.Encode(context.Background(), key)
		if err != nil {
			seri.AbortIf(func(_ error) error {
				return ierrors.Wrap(err, "failed to encode SerializableFIFOMap key")
			})
		}
		seri.WriteBytes(keyBytes, func(err error) error {
			return ierrors.Wrap(err, "failed to write SerializableFIFOMap key to serializer")
		})

		valBytes, err := api.Encode(context.Background(), val)
		if err != nil {
			seri.AbortIf(func(_ error) error {
				return ierrors.Wrap(err, "failed to serialize SerializableFIFOMap value")
			})
		}
		seri.WriteBytes(valBytes, func(err error) error {
			return ierrors.Wrap(err, "failed to write SerializableFIFOMap value to serializer")
		})

		return true
	})

	return seri.Serialize()
}

// Decode deserializes bytes into a valid object. Entries are replayed through
// Insert, so if the wire data carries a key twice, the first occurrence wins.
func (s *SerializableFIFOMap[K, V]) Decode(api *serix.API, b []byte) (bytesRead int, err error) {
	var mapSize uint32
	bytesReadSize, err := api.Decode(context.Background(), b[bytesRead:], &mapSize)
	if err != nil {
		return 0, ierrors.Wrap(err, "failed to read SerializableFIFOMap size")
	}
	bytesRead += bytesReadSize

	for i := uint32(0); i < mapSize; i++ {
		var key K
		bytesReadKey, err := api.Decode(context.Background(), b[bytesRead:], &key)
		if err != nil {
			return 0, ierrors.Wrap(err, "failed to read SerializableFIFOMap key")
		}
		bytesRead += bytesReadKey

		var value V
		bytesReadValue, err := api.Decode(context.Background(), b[bytesRead:], &value)
		if err != nil {
			return 0, ierrors.Wrap(err, "failed to read SerializableFIFOMap value")
		}
		bytesRead += bytesReadValue

		s.Insert(key, value)
	}

	return bytesRead, nil
}
