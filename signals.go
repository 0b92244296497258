package nibble

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for adapter events.
var (
	SignalCodecRegistered     = capitan.NewSignal("nibble.codec.registered", "Codec added to a registry")
	SignalSerializeComplete   = capitan.NewSignal("nibble.serialize.complete", "Serialize operation finished")
	SignalDeserializeComplete = capitan.NewSignal("nibble.deserialize.complete", "Deserialize operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyMode        = capitan.NewStringKey("mode")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// Values of KeyMode.
const (
	ModeHex = "hex" // byte sequence written as a hex string
	ModeRaw = "raw" // byte sequence written as format-native bytes
)

// modeOf returns the KeyMode value for a codec.
func modeOf(c Codec) string {
	if c.HumanReadable() {
		return ModeHex
	}
	return ModeRaw
}

// emitCodecRegistered emits an event when a codec is registered.
func emitCodecRegistered(ctx context.Context, contentType, mode string) {
	capitan.Emit(ctx, SignalCodecRegistered,
		KeyContentType.Field(contentType),
		KeyMode.Field(mode),
	)
}

// emitSerializeComplete emits an event when serialize finishes.
func emitSerializeComplete(ctx context.Context, contentType, mode string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyMode.Field(mode),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalSerializeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalSerializeComplete, fields...)
	}
}

// emitDeserializeComplete emits an event when deserialize finishes.
func emitDeserializeComplete(ctx context.Context, contentType, mode string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyMode.Field(mode),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDeserializeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDeserializeComplete, fields...)
	}
}
