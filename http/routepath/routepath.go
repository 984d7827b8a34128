package routepath

import (
	"fmt"
	"regexp"
	"strings"
)

// IndexStem is the file stem marking the index route of a directory.
const IndexStem = "route"

var (
	paramRegex       = regexp.MustCompile(`\[(.*?)\]`)
	bracketsReplacer = strings.NewReplacer("[", "{", "]", "}")
)

// A StripMode decides how the name of the route tree's root directory
// is removed from a path template.
type StripMode int

const (
	// StripSegment drops a leading directory segment equal to the root directory's name.
	// Deeper segments equal to the name, and segments merely containing it,
	// e.g., "rapid" under root "api", are left alone.
	StripSegment StripMode = iota

	// StripText removes the first textual occurrence of the root directory's name
	// from the joined directory path, wherever it appears.
	StripText
)

// NewStripMode parses val ("segment" or "text") into a StripMode.
func NewStripMode(val string) (StripMode, error) {
	switch strings.ToLower(val) {
	case "segment":
		return StripSegment, nil
	case "text":
		return StripText, nil
	default:
		return StripSegment, fmt.Errorf("unknown strip mode %q", val)
	}
}

func (m StripMode) String() string {
	switch m {
	case StripSegment:
		return "segment"
	case StripText:
		return "text"
	default:
		return "unknown"
	}
}

// ConvertBrackets replaces every "[" with "{" and every "]" with "}" in segment.
// Unbalanced brackets are not validated and pass through converted one for one.
func ConvertBrackets(segment string) string {
	return bracketsReplacer.Replace(segment)
}

// ParamName finds the first bracketed group in stem and returns what is inside it.
// Only the first group counts: "[a]-[b]" yields "a".
func ParamName(stem string) (string, bool) {
	match := paramRegex.FindStringSubmatch(stem)
	if match == nil {
		return "", false
	}

	return match[1], true
}

// Resolve builds the path template for a route module
// whose file stem is stem and which sits in the directories dirs below the root directory named rootName.
//
// Resolve strips the root directory's name with StripSegment;
// use ResolveWith to choose another StripMode.
func Resolve(rootName string, dirs []string, stem string) string {
	return ResolveWith(StripSegment, rootName, dirs, stem)
}

// ResolveWith is Resolve with an explicit StripMode.
//
// The directories are joined with "/" after converting their brackets,
// and the root directory's name is removed from them according to mode.
// Then:
//   - a stem of exactly IndexStem appends nothing;
//   - a stem containing a bracketed group appends "/{param}";
//   - any other stem appends "/<stem>".
//
// The template never starts with "/".
func ResolveWith(mode StripMode, rootName string, dirs []string, stem string) string {
	converted := make([]string, len(dirs))
	for i, dir := range dirs {
		converted[i] = ConvertBrackets(dir)
	}

	path := strip(mode, rootName, converted)

	switch param, ok := ParamName(stem); {
	case stem == IndexStem:
	case ok:
		path += "/{" + param + "}"
	default:
		path += "/" + stem
	}

	return strings.TrimLeft(path, "/")
}

// Tag derives the tag for a route mounted at template.
//
// With StripSegment, template already starts below the root directory, so Tag returns it unchanged.
// With StripText, Tag removes the first occurrence of rootName from template, as ResolveWith does.
func Tag(mode StripMode, rootName, template string) string {
	if mode == StripSegment {
		return template
	}

	return strings.TrimLeft(strip(mode, rootName, []string{template}), "/")
}

func strip(mode StripMode, rootName string, segments []string) string {
	if rootName == "" {
		return strings.Join(segments, "/")
	}

	if mode == StripText {
		return strings.Replace(strings.Join(segments, "/"), rootName, "", 1)
	}

	if len(segments) > 0 && segments[0] == rootName {
		segments = segments[1:]
	}

	return strings.Join(segments, "/")
}
