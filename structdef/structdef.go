package structdef

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	randstruct "github.com/wippyai/randstruct"
	"github.com/wippyai/randstruct/errors"
)

// File is a parsed struct definition file.
type File struct {
	Structs []*Struct `yaml:"structs"`
}

// Struct is one aggregate definition.
type Struct struct {
	Name      string    `yaml:"name"`
	Randomize bool      `yaml:"randomize"`
	Fields    []*Member `yaml:"fields"`
}

// Member is one field of a struct definition. It implements
// randstruct.Field so definitions feed the randomizer directly.
type Member struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	// Bits, when non-zero, marks the member as a bit-field of that many bits.
	Bits uint64 `yaml:"bits,omitempty"`
	// Width overrides the resolved width in bits, for opaque or foreign types.
	Width uint64 `yaml:"width,omitempty"`
}

// IsBitfield reports whether the member was declared with a bit count.
func (m *Member) IsBitfield() bool {
	return m.Bits > 0
}

// Parse decodes struct definitions from YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.ParseFailed("struct definitions", err)
	}
	for _, s := range f.Structs {
		if s.Name == "" {
			return nil, errors.InvalidData(errors.PhaseParse, nil, "struct with no name")
		}
		for i, m := range s.Fields {
			if m.Name == "" {
				return nil, errors.InvalidData(errors.PhaseParse,
					[]string{s.Name}, "field "+strconv.Itoa(i)+" has no name")
			}
			if m.Type == "" && m.Width == 0 && m.Bits == 0 {
				return nil, errors.InvalidData(errors.PhaseParse,
					[]string{s.Name, m.Name}, "field needs a type, width, or bits")
			}
		}
	}
	return &f, nil
}

// Load reads and parses a struct definition file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ParseFailed(path, err)
	}
	return Parse(data)
}

// Lookup returns the named struct.
func (f *File) Lookup(name string) (*Struct, error) {
	for _, s := range f.Structs {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, errors.NotFound(errors.PhaseParse, "struct", name)
}

// FieldList returns the struct's members as the field sequence the
// randomizer consumes, in declaration order.
func (s *Struct) FieldList() []randstruct.Field {
	out := make([]randstruct.Field, len(s.Fields))
	for i, m := range s.Fields {
		out[i] = m
	}
	return out
}

// widthsByName maps primitive type names to their width in bits.
var widthsByName = map[string]uint64{
	"bool": 8,
	"char": 8,
	"u8":   8,
	"i8":   8,
	"u16":  16,
	"i16":  16,
	"u32":  32,
	"i32":  32,
	"f32":  32,
	"u64":  64,
	"i64":  64,
	"f64":  64,
	"ptr":  64,
}

// Widths resolves member widths from the builtin primitive table, explicit
// overrides, and array types of the form [N]T. It implements
// randstruct.WidthResolver for parsed definitions.
type Widths struct{}

// WidthInBits returns the width of a parsed member.
func (Widths) WidthInBits(f randstruct.Field) (uint64, error) {
	m, ok := f.(*Member)
	if !ok {
		return 0, errors.InvalidData(errors.PhaseResolve, nil, "field is not a structdef member")
	}
	return m.WidthInBits()
}

// WidthInBits resolves the member's own width. An explicit Width wins over
// the type table.
func (m *Member) WidthInBits() (uint64, error) {
	if m.Width > 0 {
		return m.Width, nil
	}
	return typeWidth(m.Name, m.Type)
}

func typeWidth(fieldName, typeName string) (uint64, error) {
	if w, ok := widthsByName[typeName]; ok {
		return w, nil
	}

	// Array form [N]T.
	if strings.HasPrefix(typeName, "[") {
		end := strings.IndexByte(typeName, ']')
		if end > 1 {
			n, err := strconv.ParseUint(typeName[1:end], 10, 32)
			if err == nil {
				elem, werr := typeWidth(fieldName, typeName[end+1:])
				if werr != nil {
					return 0, werr
				}
				return n * elem, nil
			}
		}
	}

	return 0, errors.UnknownType(errors.PhaseResolve, []string{fieldName}, typeName)
}
