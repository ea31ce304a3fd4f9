package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"

	uv "github.com/Frizi/ultraviolet"
	"github.com/Frizi/ultraviolet/codec"
)

// converter decodes one value (or a list) of a fixed aggregate type from
// src and re-encodes it into sink. It returns the number of values written.
type converter func(src uv.Source, sink uv.Sink, cfg Config) (int, error)

var converters = map[string]converter{
	"vec2":   convert[uv.Vec2],
	"vec3":   convert[uv.Vec3],
	"vec4":   convert[uv.Vec4],
	"bivec2": convert[uv.Bivec2],
	"bivec3": convert[uv.Bivec3],
	"rotor2": convert[uv.Rotor2],
	"rotor3": convert[uv.Rotor3],
	"mat2":   convert[uv.Mat2],
	"mat3":   convert[uv.Mat3],
	"mat4":   convert[uv.Mat4],
}

var tables = map[string]*uv.FieldTable{
	"vec2":   uv.Vec2{}.FieldTable(),
	"vec3":   uv.Vec3{}.FieldTable(),
	"vec4":   uv.Vec4{}.FieldTable(),
	"bivec2": uv.Bivec2{}.FieldTable(),
	"bivec3": uv.Bivec3{}.FieldTable(),
	"rotor2": uv.Rotor2{}.FieldTable(),
	"rotor3": uv.Rotor3{}.FieldTable(),
	"mat2":   uv.Mat2{}.FieldTable(),
	"mat3":   uv.Mat3{}.FieldTable(),
	"mat4":   uv.Mat4{}.FieldTable(),
}

func typeNames() []string {
	names := make([]string, 0, len(converters))
	for n := range converters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func convert[T any, PT uv.AggregatePtr[T]](src uv.Source, sink uv.Sink, cfg Config) (int, error) {
	in := cfg.Decode
	in.Policy = cfg.InPolicy
	out := uv.EncodeOpt{Policy: cfg.OutPolicy}
	if cfg.List {
		vs, err := uv.DecodeSlice[T, PT](src, in)
		if err != nil {
			return 0, err
		}
		return len(vs), uv.EncodeSlice(sink, aggregates[T, PT](vs), out)
	}
	v, err := uv.Decode[T, PT](src, in)
	if err != nil {
		return 0, err
	}
	return 1, uv.Encode(sink, PT(&v), out)
}

func aggregates[T any, PT uv.AggregatePtr[T]](vs []T) []uv.Aggregate {
	out := make([]uv.Aggregate, len(vs))
	for i := range vs {
		out[i] = PT(&vs[i])
	}
	return out
}

// run converts the single document on r into w as configured.
func run(cfg Config, r io.Reader, w io.Writer, logger zerolog.Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	src, err := codec.NewSource(cfg.From, r)
	if err != nil {
		return err
	}
	sink, err := codec.NewSink(cfg.To, w)
	if err != nil {
		return err
	}
	logger.Debug().
		Str("type", cfg.Type).
		Str("from", cfg.From).
		Str("to", cfg.To).
		Stringer("in_policy", cfg.InPolicy).
		Stringer("out_policy", cfg.OutPolicy).
		Bool("list", cfg.List).
		Msg("converting")

	n, err := converters[cfg.Type](src, sink, cfg)
	if err != nil {
		if iss, ok := uv.AsIssues(err); ok {
			for _, it := range iss {
				logger.Error().Str("path", it.Path).Str("code", it.Code).Msg(it.Message)
			}
		}
		return fmt.Errorf("convert %s: %w", cfg.Type, err)
	}
	logger.Info().Int("values", n).Msg("converted")
	return nil
}
