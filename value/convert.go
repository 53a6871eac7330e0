package value

import (
	"strconv"

	"github.com/Lannee/cmlang"
)

// ToText converts any value to Text, using its textual form.
func ToText(v Value) Text {
	if t, ok := v.(Text); ok {
		return t
	}
	return Text(v.Render())
}

// ToInteger converts a value to an Integer.
//
//	unit     → 0
//	integer  → unchanged
//	string   → parsed as a base-10 int64 literal, with optional sign
//
// Strings which are not a valid integer literal, including literals out of
// the 64-bit range, yield a ConversionError. Any other kind yields an
// UnsupportedConversion.
func ToInteger(v Value) (Integer, error) {
	switch x := v.(type) {
	case UnitValue:
		return 0, nil
	case Integer:
		return x, nil
	case Text:
		n, err := strconv.ParseInt(string(x), 10, 64)
		if err != nil {
			tracer().Debugf("conversion of %q failed: %v", string(x), err)
			return 0, cmlang.Errorf(cmlang.ConversionError,
				"cannot convert string %q to type integer", string(x))
		}
		return Integer(n), nil
	}
	kind := "undefined"
	if v != nil {
		kind = v.Kind().String()
	}
	return 0, cmlang.Errorf(cmlang.UnsupportedConversion,
		"unsupported conversion of type %s to type integer", kind)
}
