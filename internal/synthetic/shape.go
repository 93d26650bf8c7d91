package synthetic

import "github.com/tidwall/gjson"

// Shape selects the extension-field family of a synthetic event.
type Shape uint8

const (
	// ShapeBase is the generic event shape with no extension fields.
	// Unrecognized native kinds fall back to it.
	ShapeBase Shape = iota
	// ShapeMouse covers click, pointer, and mouse movement events.
	ShapeMouse
	// ShapeKeyboard covers key-down, key-up, and key-press events.
	ShapeKeyboard
	// ShapeFocus covers focus-in and focus-out events.
	ShapeFocus
	// ShapeTouch covers touch-start/end/move/cancel events.
	ShapeTouch
	// ShapeDrag covers drag-family events.
	ShapeDrag
	// ShapeWheel covers wheel events.
	ShapeWheel
	// ShapeClipboard covers copy, cut, and paste events.
	ShapeClipboard
	// ShapeUI covers scroll and other UIEvent-family events.
	ShapeUI
	// ShapeAnimation covers animation start/end/iteration events.
	ShapeAnimation
	// ShapeTransition covers transition-end events.
	ShapeTransition
	// ShapeComposition covers IME composition events.
	ShapeComposition
	// ShapeSelect covers the logical "select" event; it carries no
	// extension fields beyond the base record.
	ShapeSelect

	shapeCount
)

// String returns a short name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeBase:
		return "base"
	case ShapeMouse:
		return "mouse"
	case ShapeKeyboard:
		return "keyboard"
	case ShapeFocus:
		return "focus"
	case ShapeTouch:
		return "touch"
	case ShapeDrag:
		return "drag"
	case ShapeWheel:
		return "wheel"
	case ShapeClipboard:
		return "clipboard"
	case ShapeUI:
		return "ui"
	case ShapeAnimation:
		return "animation"
	case ShapeTransition:
		return "transition"
	case ShapeComposition:
		return "composition"
	case ShapeSelect:
		return "select"
	default:
		return "unknown"
	}
}

// FieldKind is the value type of an extension field.
type FieldKind uint8

const (
	// FieldNumber derives a float64.
	FieldNumber FieldKind = iota
	// FieldString derives a string.
	FieldString
	// FieldBool derives a bool.
	FieldBool
	// FieldRaw derives the decoded JSON value as-is (objects, arrays).
	FieldRaw
)

// FieldDescriptor declares one extension field: its name, the gjson path
// used to derive it from the native payload, its value kind, and the
// default used when the path is absent (and restored on release).
type FieldDescriptor struct {
	Name    string
	Path    string
	Kind    FieldKind
	Default any
}

func num(name string) FieldDescriptor {
	return FieldDescriptor{Name: name, Path: name, Kind: FieldNumber, Default: float64(0)}
}

func str(name string) FieldDescriptor {
	return FieldDescriptor{Name: name, Path: name, Kind: FieldString, Default: ""}
}

func boolean(name string) FieldDescriptor {
	return FieldDescriptor{Name: name, Path: name, Kind: FieldBool, Default: false}
}

func raw(name string) FieldDescriptor {
	return FieldDescriptor{Name: name, Path: name, Kind: FieldRaw, Default: nil}
}

// Shared descriptor groups. Families are composed from these lists at
// table-construction time; there is no runtime inheritance.
var (
	modifierFields = []FieldDescriptor{
		boolean("ctrlKey"), boolean("shiftKey"), boolean("altKey"), boolean("metaKey"),
	}

	pointerFields = []FieldDescriptor{
		num("screenX"), num("screenY"),
		num("clientX"), num("clientY"),
		num("pageX"), num("pageY"),
		num("button"), num("buttons"),
	}
)

func compose(groups ...[]FieldDescriptor) []FieldDescriptor {
	var out []FieldDescriptor
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// shapeFields maps every shape to its fixed, ordered extension-field list.
var shapeFields = [shapeCount][]FieldDescriptor{
	ShapeBase:   nil,
	ShapeSelect: nil,
	ShapeMouse:  compose(pointerFields, modifierFields, []FieldDescriptor{raw("relatedTarget")}),
	ShapeKeyboard: compose([]FieldDescriptor{
		str("key"), str("code"),
		num("charCode"), num("keyCode"), num("which"),
		boolean("repeat"),
	}, modifierFields),
	ShapeFocus: {raw("relatedTarget")},
	ShapeTouch: compose([]FieldDescriptor{
		raw("touches"), raw("targetTouches"), raw("changedTouches"),
	}, modifierFields),
	ShapeDrag:      compose(pointerFields, modifierFields, []FieldDescriptor{raw("dataTransfer")}),
	ShapeWheel:     compose(pointerFields, modifierFields, []FieldDescriptor{num("deltaX"), num("deltaY"), num("deltaZ"), num("deltaMode")}),
	ShapeClipboard: {raw("clipboardData")},
	ShapeUI:        {num("detail"), raw("view")},
	ShapeAnimation: {str("animationName"), str("pseudoElement"), num("elapsedTime")},
	ShapeTransition: {str("propertyName"), str("pseudoElement"), num("elapsedTime")},
	ShapeComposition: {str("data")},
}

// Fields returns the shape's extension-field descriptors in declaration
// order. The returned slice must not be modified.
func (s Shape) Fields() []FieldDescriptor {
	if s >= shapeCount {
		return nil
	}
	return shapeFields[s]
}

// derive extracts the descriptor's value from a raw JSON payload, falling
// back to the declared default when the path is missing.
func (d FieldDescriptor) derive(payload []byte) any {
	res := gjson.GetBytes(payload, d.Path)
	if !res.Exists() {
		return d.Default
	}
	switch d.Kind {
	case FieldNumber:
		return res.Float()
	case FieldString:
		return res.String()
	case FieldBool:
		return res.Bool()
	default:
		return res.Value()
	}
}
