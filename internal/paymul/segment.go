package paymul

import "bytes"

// UN/EDIFACT service characters (syntax level A).
const (
	componentSeparator = ':'
	elementSeparator   = '+'
	segmentTerminator  = '\''
	segmentSeparator   = '\n'
)

type element []string

type segment struct {
	tag      string
	elements []element
}

func el(components ...string) element {
	return element(components)
}

func seg(tag string, elements ...element) segment {
	return segment{tag: tag, elements: elements}
}

// trimmed drops trailing empty components; empty components in the middle
// keep their separators.
func (e element) trimmed() element {
	n := len(e)
	for n > 0 && e[n-1] == "" {
		n--
	}
	return e[:n]
}

func (s segment) writeTo(buf *bytes.Buffer) {
	elements := make([]element, 0, len(s.elements))
	for _, e := range s.elements {
		elements = append(elements, e.trimmed())
	}
	for len(elements) > 0 && len(elements[len(elements)-1]) == 0 {
		elements = elements[:len(elements)-1]
	}

	buf.WriteString(s.tag)
	for _, e := range elements {
		buf.WriteByte(elementSeparator)
		for i, c := range e {
			if i > 0 {
				buf.WriteByte(componentSeparator)
			}
			buf.WriteString(c)
		}
	}
	buf.WriteByte(segmentTerminator)
}
