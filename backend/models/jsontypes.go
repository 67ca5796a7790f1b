package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// boolPair is one entry of an ordered JSON object of booleans. Go maps do not
// keep insertion order, but both the streak and the unlock map expose a fixed
// key order to clients, so they are stored as pair slices instead.
type boolPair struct {
	Key   string
	Value bool
}

func marshalBoolPairs(pairs []boolPair) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if p.Value {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func unmarshalBoolPairs(data []byte) ([]boolPair, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object")
	}

	var pairs []boolPair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errors.New("expected a string key")
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		val, ok := valTok.(bool)
		if !ok {
			return nil, fmt.Errorf("expected a boolean for %q", key)
		}
		pairs = append(pairs, boolPair{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func pairsValue(pairs []boolPair) (driver.Value, error) {
	raw, err := marshalBoolPairs(pairs)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func pairsScan(src interface{}) ([]boolPair, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return unmarshalBoolPairs(v)
	case string:
		return unmarshalBoolPairs([]byte(v))
	default:
		return nil, fmt.Errorf("cannot scan %T into a bool map", src)
	}
}
