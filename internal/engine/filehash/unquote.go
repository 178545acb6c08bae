package filehash

import (
	"strings"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/zerr"
)

// UnquoteFilename decodes a file name as quoted by git.
// Names that are not wrapped in double quotes are returned unchanged.
// Inside quotes, backslash escapes are decoded left to right, so "\NNN" is an
// octal byte only when the backslash itself is not escaped. The decoded bytes
// form the UTF-8 file name.
func UnquoteFilename(name string) (string, error) {
	if len(name) < 2 || name[0] != '"' || name[len(name)-1] != '"' {
		return name, nil
	}

	inner := name[1 : len(name)-1]
	if !strings.Contains(inner, `\`) {
		return inner, nil
	}

	out := make([]byte, 0, len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}

		i++
		if i >= len(inner) {
			return "", zerr.With(domain.ErrInvalidQuotedFilename, "name", name)
		}

		switch e := inner[i]; e {
		case '\\', '"':
			out = append(out, e)
		case 'a':
			out = append(out, '\a')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'v':
			out = append(out, '\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			value := 0
			j := i
			for j < len(inner) && j < i+3 && inner[j] >= '0' && inner[j] <= '7' {
				value = value*8 + int(inner[j]-'0')
				j++
			}
			if value > 0xff {
				return "", zerr.With(domain.ErrInvalidQuotedFilename, "name", name)
			}
			out = append(out, byte(value))
			i = j - 1
		default:
			return "", zerr.With(domain.ErrInvalidQuotedFilename, "name", name)
		}
	}
	return string(out), nil
}
