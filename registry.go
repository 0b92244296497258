package nibble

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Registry maps content types to codecs so callers can serialize by MIME
// type. Registries are safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

// NewRegistry returns a registry holding the given codecs.
// Later codecs replace earlier ones with the same content type.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{codecs: make(map[string]Codec, len(codecs))}
	for _, c := range codecs {
		r.Register(c)
	}
	return r
}

// Register adds c under its content type, replacing any previous codec.
// Returns the registry for chaining.
func (r *Registry) Register(c Codec) *Registry {
	r.mu.Lock()
	r.codecs[c.ContentType()] = c
	r.mu.Unlock()

	emitCodecRegistered(context.Background(), c.ContentType(), modeOf(c))
	return r
}

// Lookup returns the codec registered for contentType.
func (r *Registry) Lookup(contentType string) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codecs[contentType]
	return c, ok
}

// ContentTypes returns the registered content types in sorted order.
func (r *Registry) ContentTypes() []string {
	r.mu.RLock()
	types := make([]string, 0, len(r.codecs))
	for ct := range r.codecs {
		types = append(types, ct)
	}
	r.mu.RUnlock()

	slices.Sort(types)
	return types
}

// Serialize looks up the codec for contentType and calls Serialize.
func (r *Registry) Serialize(ctx context.Context, contentType string, b []byte) ([]byte, error) {
	c, err := r.codec(contentType)
	if err != nil {
		return nil, err
	}
	return Serialize(ctx, c, b)
}

// Deserialize looks up the codec for contentType and calls Deserialize.
func (r *Registry) Deserialize(ctx context.Context, contentType string, data []byte) ([]byte, error) {
	c, err := r.codec(contentType)
	if err != nil {
		return nil, err
	}
	return Deserialize(ctx, c, data)
}

func (r *Registry) codec(contentType string) (Codec, error) {
	c, ok := r.Lookup(contentType)
	if !ok {
		return nil, fmt.Errorf("%w for content type %q", ErrUnknownCodec, contentType)
	}
	return c, nil
}
