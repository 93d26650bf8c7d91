package synthetic

// Instance is an opaque reference to a node in the host UI tree. The
// pipeline never inspects instances itself; it hands them to the injected
// tree adapter for ancestor walks and listener lookups.
type Instance any

// Handler is a listener registered on a UI-tree node under a registration
// name. Handlers run synchronously during dispatch.
type Handler func(*Event)

// PhasedNames holds the derived registration names for a two-phase
// logical event.
type PhasedNames struct {
	// Bubbled is the bubble-phase registration name ("onX").
	Bubbled string

	// Captured is the capture-phase registration name ("onXCapture").
	Captured string
}

// DispatchConfig describes propagation mode and native dependencies for one
// logical event. Exactly one of Phased or Direct is set; that choice fixes
// the propagation mode for every event of this logical type.
type DispatchConfig struct {
	// Logical is the globally unique logical event name (e.g. "click").
	Logical string

	// Phased holds the capture/bubble registration names for two-phase
	// events. Nil for direct events.
	Phased *PhasedNames

	// Direct is the registration name for non-bubbling events. Empty for
	// phased events.
	Direct string

	// Dependencies lists every native kind that can trigger extraction of
	// this logical event. Listener-presence checks consult it.
	Dependencies []Kind

	// Interactive marks user-intent-bearing events (click, key, focus,
	// submit) as opposed to ambient ones (scroll, mouse move).
	Interactive bool
}

// RegistrationName derives the listener name for a logical event:
// "click" becomes "onClick", "selectionChange" becomes "onSelectionChange".
func RegistrationName(logical string) string {
	if logical == "" {
		return ""
	}
	b := []byte(logical)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return "on" + string(b)
}

// CaptureRegistrationName derives the capture-phase listener name for a
// logical event ("onClickCapture").
func CaptureRegistrationName(logical string) string {
	return RegistrationName(logical) + "Capture"
}

// PhasedConfig builds a two-phase dispatch config for a logical event.
func PhasedConfig(logical string, interactive bool, deps ...Kind) *DispatchConfig {
	return &DispatchConfig{
		Logical: logical,
		Phased: &PhasedNames{
			Bubbled:  RegistrationName(logical),
			Captured: CaptureRegistrationName(logical),
		},
		Dependencies: deps,
		Interactive:  interactive,
	}
}

// DirectConfig builds a single-phase dispatch config for a non-bubbling
// logical event.
func DirectConfig(logical string, interactive bool, deps ...Kind) *DispatchConfig {
	return &DispatchConfig{
		Logical:      logical,
		Direct:       RegistrationName(logical),
		Dependencies: deps,
		Interactive:  interactive,
	}
}

// IsPhased reports whether the config uses two-phase propagation.
func (c *DispatchConfig) IsPhased() bool { return c.Phased != nil }

// RegistrationNames returns every listener name this config can dispatch
// under, in capture-then-bubble order for phased configs.
func (c *DispatchConfig) RegistrationNames() []string {
	if c.Phased != nil {
		return []string{c.Phased.Captured, c.Phased.Bubbled}
	}
	return []string{c.Direct}
}
