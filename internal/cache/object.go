package cache

import (
	"bytes"
	"encoding/json"
)

// member is one key/value pair of a JSON object.
type member struct {
	Key   string
	Value json.RawMessage
}

// object is a JSON object that remembers the order of its keys. Values that
// are not objects decode to an empty object instead of failing.
type object []member

func (o *object) UnmarshalJSON(data []byte) error {
	*o = nil
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		// Duplicate keys keep their first position and last value.
		if i, ok := index[key]; ok {
			(*o)[i].Value = value
			continue
		}
		index[key] = len(*o)
		*o = append(*o, member{Key: key, Value: value})
	}
	return nil
}

func (o object) get(key string) (json.RawMessage, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// str returns the string value of key. The second result is false when the
// key is missing, null or not a string.
func (o object) str(key string) (string, bool) {
	raw, ok := o.get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || isNull(raw) {
		return "", false
	}
	return s, true
}

func (o object) obj(key string) object {
	raw, ok := o.get(key)
	if !ok {
		return nil
	}
	return decodeObject(raw)
}

func decodeObject(raw json.RawMessage) object {
	var o object
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil
	}
	return o
}

func isObject(raw json.RawMessage) bool {
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{"))
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
