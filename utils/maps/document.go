package maps

import (
	"encoding/json"
	"gdtools.org/lemmatizer/utils"
)

// Document is a typed view over a JSON object shared with other services.
// Fields that T does not declare survive a decode/encode round trip, at any
// depth of nested objects.
type Document[T any] struct {
	Value T
	raw   map[string]interface{}
}

func Decode[T any](b []byte) (*Document[T], error) {
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return nil, err
	}
	return &Document[T]{Value: value, raw: raw}, nil
}

// Update applies fn to the typed view. A panic inside fn is returned as an
// error and leaves the document unchanged.
func (doc *Document[T]) Update(fn func(value *T)) (err error) {
	if fn == nil {
		return nil
	}
	defer utils.RecoverWithError(&err)
	updated := doc.Value
	fn(&updated)
	doc.Value = updated
	return nil
}

func (doc *Document[T]) Fields() (map[string]interface{}, error) {
	own, err := toMap(doc.Value)
	if err != nil {
		return nil, err
	}
	return merge(copyMap(doc.raw), own), nil
}

func (doc *Document[T]) MarshalJSON() ([]byte, error) {
	fields, err := doc.Fields()
	if err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

// Project builds a document holding only the fields U declares, taken from
// the current state of from.
func Project[T, U any](from *Document[T]) (*Document[U], error) {
	b, err := json.Marshal(from)
	if err != nil {
		return nil, err
	}
	projected, err := Decode[U](b)
	if err != nil {
		return nil, err
	}
	projected.raw = nil
	return projected, nil
}
