// Package convert turns FlowHigh JSON responses into model trees.
//
// Every JSON object carrying an "eltype" key is dispatched to the builder of
// the matching node kind. Only keys present in the object are applied, so
// Has reports exactly what the service sent. Objects without an element
// type and bare scalars survive as model.Raw.
package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/leapstack-labs/flowhigh/pkg/model"
	"github.com/leapstack-labs/flowhigh/pkg/tree"
)

var (
	// ErrUnknownElementType is returned for an eltype with no node kind.
	ErrUnknownElementType = errors.New("unknown element type")
	// ErrFieldType is returned when a field holds a value of the wrong shape.
	ErrFieldType = errors.New("unexpected field type")
)

type decoder func(r *reader) model.Node

// Converter decodes responses. The registry accumulates every node built
// by the converter across calls.
type Converter struct {
	reg    *tree.Registry
	logger *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRegistry makes the converter add nodes to reg.
func WithRegistry(reg *tree.Registry) Option {
	return func(c *Converter) {
		if reg != nil {
			c.reg = reg
		}
	}
}

// New creates a Converter with its own registry.
func New(opts ...Option) *Converter {
	c := &Converter{
		reg:    tree.NewRegistry(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the registry the converter adds nodes to.
func (c *Converter) Registry() *tree.Registry { return c.reg }

// Unmarshal decodes JSON text into a generic value. Numbers are kept as
// json.Number so their text survives untouched.
func Unmarshal(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return v, nil
}

// Decode unmarshals data and converts the result.
func (c *Converter) Decode(data []byte) (model.Element, error) {
	v, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return c.Convert(v)
}

// DecodeParSeQL decodes a full analysis response, whose root must be a
// ParSeQL element.
func (c *Converter) DecodeParSeQL(data []byte) (*model.ParSeQL, error) {
	e, err := c.Decode(data)
	if err != nil {
		return nil, err
	}
	root, ok := e.(*model.ParSeQL)
	if !ok {
		return nil, fmt.Errorf("response root is %s, want ParSeQL: %w", describe(e), ErrFieldType)
	}
	return root, nil
}

// Convert turns a generic JSON value into an Element.
func (c *Converter) Convert(v any) (model.Element, error) {
	return c.value(v, "")
}

func (c *Converter) value(v any, path string) (model.Element, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		if list, isList := v.([]any); isList {
			elems, err := c.list(list, path)
			if err != nil {
				return nil, err
			}
			return model.Raw{Value: elems}, nil
		}
		return model.Raw{Value: v}, nil
	}
	kind, ok := obj["eltype"].(string)
	if !ok {
		return model.Raw{Value: obj}, nil
	}
	return c.object(obj, kind, path)
}

func (c *Converter) list(list []any, path string) ([]model.Element, error) {
	out := make([]model.Element, 0, len(list))
	for i, item := range list {
		e, err := c.value(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (c *Converter) object(obj map[string]any, kind, path string) (model.Node, error) {
	decode, ok := decoders[strings.ToLower(kind)]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", pathOr(path), ErrUnknownElementType, kind)
	}
	r := &reader{conv: c, obj: obj, path: pathOr(path)}
	n := decode(r)
	if r.err != nil {
		return nil, r.err
	}
	if unknown := r.unused(); len(unknown) > 0 {
		c.logger.Debug("ignoring unknown fields", "path", r.path, "eltype", kind, "fields", unknown)
	}
	c.reg.Add(n)
	return n, nil
}

func pathOr(path string) string {
	if path == "" {
		return "$"
	}
	return path
}

func describe(e model.Element) string {
	if n, ok := e.(model.Node); ok {
		return n.Kind()
	}
	return fmt.Sprintf("%T", e)
}

// reader applies the fields of one JSON object. The first error sticks and
// turns every later lookup into a miss.
type reader struct {
	conv *Converter
	obj  map[string]any
	path string
	used map[string]bool
	err  error
}

func (r *reader) lookup(key string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.obj[key]
	if ok {
		if r.used == nil {
			r.used = make(map[string]bool)
		}
		r.used[key] = true
	}
	return v, ok
}

func (r *reader) unused() []string {
	var out []string
	for k := range r.obj {
		if k != "eltype" && !r.used[k] {
			out = append(out, k)
		}
	}
	return out
}

func (r *reader) fail(key string, v any) {
	if r.err == nil {
		r.err = fmt.Errorf("%s.%s: %w: %T", r.path, key, ErrFieldType, v)
	}
}

func (r *reader) child(key string) string {
	return r.path + "." + key
}

func (r *reader) str(key string) (string, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return "", false
	}
	s, ok := scalar(v)
	if !ok {
		r.fail(key, v)
		return "", false
	}
	return s, true
}

func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}

func (r *reader) strs(key string) ([]string, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return nil, false
	}
	list, isList := v.([]any)
	if !isList {
		s, ok := scalar(v)
		if !ok {
			r.fail(key, v)
			return nil, false
		}
		if v == nil {
			return nil, true
		}
		return []string{s}, true
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := scalar(item)
		if !ok {
			r.fail(key, item)
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func (r *reader) elem(key string) (model.Element, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return nil, false
	}
	if v == nil {
		return nil, true
	}
	e, err := r.conv.value(v, r.child(key))
	if err != nil {
		r.err = err
		return nil, false
	}
	return e, true
}

// elems reads a collection. A lone object is taken as a one-element
// collection.
func (r *reader) elems(key string) ([]model.Element, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return nil, false
	}
	var list []any
	switch t := v.(type) {
	case nil:
		return nil, true
	case []any:
		list = t
	case map[string]any:
		list = []any{t}
	default:
		r.fail(key, v)
		return nil, false
	}
	out, err := r.conv.list(list, r.child(key))
	if err != nil {
		r.err = err
		return nil, false
	}
	return out, true
}

func (r *reader) ext(key string) (model.DialectExtension, bool) {
	v, ok := r.lookup(key)
	if !ok {
		return nil, false
	}
	switch t := v.(type) {
	case nil:
		return nil, true
	case map[string]any:
		return model.DialectExtension(t), true
	}
	r.fail(key, v)
	return nil, false
}

// one reads a field whose value must be a node of type T. An object
// without eltype is decoded as kind.
func one[T model.Node](r *reader, key, kind string) (T, bool) {
	var zero T
	v, ok := r.lookup(key)
	if !ok {
		return zero, false
	}
	if v == nil {
		return zero, true
	}
	obj, ok := v.(map[string]any)
	if !ok {
		r.fail(key, v)
		return zero, false
	}
	name, ok := obj["eltype"].(string)
	if !ok {
		name = kind
	}
	n, err := r.conv.object(obj, name, r.child(key))
	if err != nil {
		r.err = err
		return zero, false
	}
	t, ok := n.(T)
	if !ok {
		if r.err == nil {
			r.err = fmt.Errorf("%s.%s: %w: got %s, want %s", r.path, key, ErrFieldType, n.Kind(), kind)
		}
		return zero, false
	}
	return t, true
}
