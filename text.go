package guard

import (
	stderrors "errors"
	"strconv"
	"strings"

	"github.com/jmgilman/go/guard/errors"
	"github.com/jmgilman/go/guard/optional"
)

// Reverse returns text with its characters in reverse order.
// Characters are Unicode code points, so multi-byte runes survive intact.
//
// Returns CodeNullInput if text is absent.
func (g *Guard) Reverse(text optional.Value[string]) (string, error) {
	s, ok := text.Get()
	if !ok {
		return "", g.fail("Reverse", errors.New(errors.CodeNullInput, "text must not be absent"))
	}

	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes), nil
}

// ParseInt parses text as a base-10 integer. An optional leading sign is
// accepted and surrounding ASCII whitespace (space, \t, \n, \v, \f, \r) is
// ignored. Other Unicode spaces make the text malformed.
//
// Returns CodeFormat if text is not a base-10 integer, or CodeOverflow if it is
// one but does not fit in an int. The strconv error is kept as the cause.
func (g *Guard) ParseInt(text string) (int, error) {
	n, err := parseInt(text)
	if err != nil {
		return 0, g.fail("ParseInt", err)
	}
	return n, nil
}

// asciiSpace is the whitespace ParseInt tolerates around a number.
const asciiSpace = " \t\n\v\f\r"

func parseInt(text string) (int, errors.CodedError) {
	n, err := strconv.Atoi(strings.Trim(text, asciiSpace))
	if err == nil {
		return n, nil
	}

	ctx := map[string]interface{}{"text": text}
	if stderrors.Is(err, strconv.ErrRange) {
		return 0, errors.WrapWithContext(err, errors.CodeOverflow, "integer out of range", ctx)
	}
	return 0, errors.WrapWithContext(err, errors.CodeFormat, "text is not a base-10 integer", ctx)
}
