package guard

import (
	"github.com/jmgilman/go/guard/errors"
)

// FindValueByKey returns the value stored under key.
// A nil mapping holds no keys.
//
// Returns CodeKeyNotFound if key is not present.
func (g *Guard) FindValueByKey(mapping map[string]int, key string) (int, error) {
	value, ok := mapping[key]
	if !ok {
		return 0, g.fail("FindValueByKey", keyNotFound(key))
	}
	return value, nil
}

// GetElementAsNumber returns the value stored under key parsed as a base-10 integer.
//
// Returns CodeKeyNotFound if key is not present, and otherwise the ParseInt
// errors (CodeFormat or CodeOverflow) for the stored value.
func (g *Guard) GetElementAsNumber(mapping map[string]string, key string) (int, error) {
	value, ok := mapping[key]
	if !ok {
		return 0, g.fail("GetElementAsNumber", keyNotFound(key))
	}

	n, err := parseInt(value)
	if err != nil {
		return 0, g.fail("GetElementAsNumber", errors.WithContext(err, "key", key))
	}
	return n, nil
}

func keyNotFound(key string) errors.CodedError {
	err := errors.Newf(errors.CodeKeyNotFound, "key %q not found", key)
	return errors.WithContext(err, "key", key)
}
