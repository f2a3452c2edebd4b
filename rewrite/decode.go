package rewrite

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// ErrConfigDecode is wrapped by every error returned from Decode.
var ErrConfigDecode = errors.New("invalid query rewrite configuration")

// Decode parses a JSON payload of the form
//
//	{"name": {"add": {"position": -1, "value": "v"}}, "other": {"remove": {"regexp": "^x"}}}
//
// into an OperationSet. Key order in the payload is the application order.
func Decode(payload []byte) (*OperationSet, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("%w: payload is not valid JSON", ErrConfigDecode)
	}

	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrConfigDecode, root.Type)
	}

	set := NewOperationSet()
	var err error
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		var op Operation
		op, err = decodeOperation(value)
		if err != nil {
			err = fmt.Errorf("%w: parameter %q: %w", ErrConfigDecode, name, err)
			return false
		}
		set.Set(name, op)
		return true
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func decodeOperation(value gjson.Result) (Operation, error) {
	if !value.IsObject() {
		return nil, fmt.Errorf("expected an object with a single \"add\" or \"remove\" key")
	}

	var (
		tag  string
		body gjson.Result
		keys int
	)
	value.ForEach(func(k, v gjson.Result) bool {
		keys++
		tag = k.String()
		body = v
		return true
	})
	if keys != 1 {
		return nil, fmt.Errorf("expected exactly one operation, got %d", keys)
	}
	if !body.IsObject() {
		return nil, fmt.Errorf("%s: expected an object", tag)
	}

	switch tag {
	case KindAdd:
		return decodeAdd(body)
	case KindRemove:
		return decodeRemove(body)
	default:
		return nil, fmt.Errorf("unknown operation %q, expected \"add\" or \"remove\"", tag)
	}
}

func decodeAdd(body gjson.Result) (*AddOperation, error) {
	op := NewAddOperation()
	err := forEachField(body, func(field string, v gjson.Result) error {
		switch field {
		case "position":
			if v.Type == gjson.Null {
				return fmt.Errorf("add: position must not be null")
			}
			position, err := decodePosition(v)
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			op.Position = position
		case "value":
			value, err := decodeOptionalString(v)
			if err != nil {
				return fmt.Errorf("add: value: %w", err)
			}
			op.Value = value
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return op, nil
}

func decodeRemove(body gjson.Result) (*RemoveOperation, error) {
	op := RemoveAll()
	err := forEachField(body, func(field string, v gjson.Result) error {
		switch field {
		case "position":
			if v.Type == gjson.Null {
				return nil
			}
			position, err := decodePosition(v)
			if err != nil {
				return fmt.Errorf("remove: %w", err)
			}
			op.Position = &position
		case "regexp":
			source, err := decodeOptionalString(v)
			if err != nil {
				return fmt.Errorf("remove: regexp: %w", err)
			}
			if source == nil {
				return nil
			}
			pattern, err := CompilePattern(*source)
			if err != nil {
				return err
			}
			op.Pattern = pattern
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return op, nil
}

// forEachField visits the fields of body in order. Unknown fields are passed
// through to fn, which ignores them; a repeated field is an error.
func forEachField(body gjson.Result, fn func(field string, v gjson.Result) error) error {
	seen := make(map[string]bool)
	var err error
	body.ForEach(func(k, v gjson.Result) bool {
		field := k.String()
		if seen[field] {
			err = fmt.Errorf("duplicate field %q", field)
			return false
		}
		seen[field] = true
		err = fn(field, v)
		return err == nil
	})
	return err
}

// decodePosition accepts a JSON integer or a string holding one.
func decodePosition(v gjson.Result) (Position, error) {
	var text string
	switch v.Type {
	case gjson.Number:
		text = v.Raw
	case gjson.String:
		text = v.Str
	default:
		return 0, fmt.Errorf("position: expected a number or numeric string, got %s", v.Type)
	}

	n, err := strconv.ParseInt(text, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("position: %q is not an integer in [-128, 127]", text)
	}
	return Position(n), nil
}

func decodeOptionalString(v gjson.Result) (*string, error) {
	switch v.Type {
	case gjson.Null:
		return nil, nil
	case gjson.String:
		s := v.Str
		return &s, nil
	default:
		return nil, fmt.Errorf("expected a string, got %s", v.Type)
	}
}
