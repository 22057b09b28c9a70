package structdef_test

import (
	"errors"
	"testing"

	rserrors "github.com/wippyai/randstruct/errors"
	"github.com/wippyai/randstruct/structdef"
)

const sample = `
structs:
  - name: packet
    randomize: true
    fields:
      - {name: version, type: u8, bits: 3}
      - {name: flags, type: u8, bits: 5}
      - {name: length, type: u32}
      - {name: payload, type: "[16]u8"}
  - name: point
    fields:
      - {name: x, type: f64}
      - {name: y, type: f64}
      - {name: tag, width: 24}
`

func TestParse(t *testing.T) {
	f, err := structdef.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(f.Structs) != 2 {
		t.Fatalf("got %d structs, want 2", len(f.Structs))
	}

	packet, err := f.Lookup("packet")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !packet.Randomize {
		t.Error("packet should be marked randomize")
	}
	if len(packet.Fields) != 4 {
		t.Fatalf("packet has %d fields, want 4", len(packet.Fields))
	}
	if !packet.Fields[0].IsBitfield() || !packet.Fields[1].IsBitfield() {
		t.Error("version and flags should be bit-fields")
	}
	if packet.Fields[2].IsBitfield() {
		t.Error("length should not be a bit-field")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"bad yaml", "structs: ["},
		{"unnamed struct", "structs:\n  - fields:\n      - {name: x, type: u8}"},
		{"unnamed field", "structs:\n  - name: s\n    fields:\n      - {type: u8}"},
		{"typeless field", "structs:\n  - name: s\n    fields:\n      - {name: x}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := structdef.Parse([]byte(tt.in))
			if err == nil {
				t.Fatal("expected parse error")
			}
			var serr *rserrors.Error
			if !errors.As(err, &serr) || serr.Phase != rserrors.PhaseParse {
				t.Errorf("got %v, want a parse-phase error", err)
			}
		})
	}
}

func TestLookupMissing(t *testing.T) {
	f, err := structdef.Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = f.Lookup("nope")
	var serr *rserrors.Error
	if !errors.As(err, &serr) || serr.Kind != rserrors.KindNotFound {
		t.Errorf("got %v, want kind %s", err, rserrors.KindNotFound)
	}
}

func TestWidthResolution(t *testing.T) {
	tests := []struct {
		typeName string
		width    uint64
	}{
		{"bool", 8},
		{"char", 8},
		{"u8", 8},
		{"i16", 16},
		{"u32", 32},
		{"f32", 32},
		{"i64", 64},
		{"f64", 64},
		{"ptr", 64},
		{"[16]u8", 128},
		{"[4]u32", 128},
		{"[2][3]u8", 48},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			m := &structdef.Member{Name: "f", Type: tt.typeName}
			got, err := structdef.Widths{}.WidthInBits(m)
			if err != nil {
				t.Fatalf("WidthInBits: %v", err)
			}
			if got != tt.width {
				t.Errorf("width = %d, want %d", got, tt.width)
			}
		})
	}
}

func TestWidthOverride(t *testing.T) {
	m := &structdef.Member{Name: "blob", Type: "opaque", Width: 24}
	got, err := structdef.Widths{}.WidthInBits(m)
	if err != nil {
		t.Fatalf("WidthInBits: %v", err)
	}
	if got != 24 {
		t.Errorf("width = %d, want 24", got)
	}
}

func TestWidthUnknownType(t *testing.T) {
	for _, typeName := range []string{"u128", "[x]u8", "[4]nope", ""} {
		m := &structdef.Member{Name: "f", Type: typeName}
		_, err := structdef.Widths{}.WidthInBits(m)
		var serr *rserrors.Error
		if !errors.As(err, &serr) || serr.Kind != rserrors.KindUnknownType {
			t.Errorf("type %q: got %v, want kind %s", typeName, err, rserrors.KindUnknownType)
		}
	}
}

func TestWidthsRejectsForeignField(t *testing.T) {
	_, err := structdef.Widths{}.WidthInBits(foreignField{})
	var serr *rserrors.Error
	if !errors.As(err, &serr) || serr.Kind != rserrors.KindInvalidData {
		t.Errorf("got %v, want kind %s", err, rserrors.KindInvalidData)
	}
}

type foreignField struct{}

func (foreignField) IsBitfield() bool { return false }
