package routepath

import "strings"

// A Segment is one "/"-separated part of a path template:
// either literal text or a named parameter.
type Segment struct {
	Value string
	Param bool
}

// String renders the Segment the way it appears in a template.
func (s Segment) String() string {
	if s.Param {
		return "{" + s.Value + "}"
	}

	return s.Value
}

// Segments splits template into its Segments.
// A segment wholly wrapped in curly braces is a parameter; anything else is literal.
// The empty template, the index route of the root directory, has no Segments.
func Segments(template string) []Segment {
	template = strings.Trim(template, "/")
	if template == "" {
		return nil
	}

	parts := strings.Split(template, "/")
	segs := make([]Segment, len(parts))
	for i, part := range parts {
		if len(part) > 2 && strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			segs[i] = Segment{Value: part[1 : len(part)-1], Param: true}
			continue
		}

		segs[i] = Segment{Value: part}
	}

	return segs
}

// Params lists the parameter names in template in the order they appear.
func Params(template string) []string {
	var params []string
	for _, seg := range Segments(template) {
		if seg.Param {
			params = append(params, seg.Value)
		}
	}

	return params
}
