package valueobject

// ControllerMap resolves controller codes to organizational unit names. It is
// built once at startup from configuration and treated as immutable; the
// builders and reconciliation code only ever read it.
type ControllerMap struct {
	names map[string]string
}

// DefaultControllerNames is the fixed 8-entry enumeration of organizational
// units used by the hospital, keyed by controller code.
var DefaultControllerNames = map[string]string{
	"1": "TIM KERJA PELAYANAN PENUNJANG",
	"2": "INST. PEMELIHARAAN SARANA DAN PERALATAN RS (IPSRS)",
	"3": "INSTALASI KESEHATAN LINGKUNGAN & K3 RS",
	"4": "TIM KERJA TATA USAHA & RUMAH TANGGA",
	"5": "INSTALASI SIM RS",
	"6": "TIM KERJA ORGANISASI & SDM",
	"7": "TIM KERJA PENDIDIKAN & PELATIHAN",
	"8": "INSTALASI PEMASARAN & PENGEMBANGAN BISNIS",
}

// NewControllerMap creates a ControllerMap from the given code-to-name table.
// The input is copied so later mutation of the argument cannot leak in.
func NewControllerMap(names map[string]string) ControllerMap {
	copied := make(map[string]string, len(names))
	for code, name := range names {
		copied[code] = name
	}
	return ControllerMap{names: copied}
}

// DefaultControllerMap returns a ControllerMap with the standard 8 units.
func DefaultControllerMap() ControllerMap {
	return NewControllerMap(DefaultControllerNames)
}

// Resolve returns the unit name for a controller code. ok=false means the code
// is not part of the enumeration and the row cannot be attributed.
func (m ControllerMap) Resolve(code string) (string, bool) {
	name, ok := m.names[code]
	return name, ok
}

// Names returns a copy of the underlying code-to-name table.
func (m ControllerMap) Names() map[string]string {
	copied := make(map[string]string, len(m.names))
	for code, name := range m.names {
		copied[code] = name
	}
	return copied
}
