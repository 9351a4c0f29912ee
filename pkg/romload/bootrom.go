package romload

import "fmt"

// LoadBootROM reads filename via Load and validates it is exactly 256
// bytes, the fixed size of the DMG boot overlay.
func LoadBootROM(filename string) ([256]byte, error) {
	var out [256]byte

	data, err := Load(filename)
	if err != nil {
		return out, err
	}
	if len(data) != 256 {
		return out, fmt.Errorf("romload: boot rom %s is %d bytes, want 256", filename, len(data))
	}

	copy(out[:], data)
	return out, nil
}
