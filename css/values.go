package css

import (
	"go.uber.org/zap"
)

// TranslateValue converts the lower-cased raw text of a declaration into a
// typed Value according to the property.
func TranslateValue(prop Property, raw string, opts Options) Value {
	switch prop.Kind() {
	case KindColor:
		return ColorValue(ParseColor(raw), raw)
	case KindLength:
		return LengthValue(ParseLength(raw, opts.FractionalLengths), raw)
	default:
		return OtherValue(raw)
	}
}

// translate is TranslateValue with diagnostics for degraded values.
func (sp *sheetParser) translate(prop Property, raw string) Value {
	v := TranslateValue(prop, raw, sp.opts)
	if !sp.log.Core().Enabled(zap.DebugLevel) {
		return v
	}
	switch v.Kind {
	case KindColor:
		if _, ok := parseColor(raw); !ok {
			sp.log.Debug("Color not understood, using default", zap.Stringer("property", prop), zap.String("value", raw))
		}
	case KindLength:
		var suffix string
		if sp.opts.FractionalLengths {
			_, suffix = splitDecimal(raw)
		} else {
			_, suffix = splitDigits(raw)
		}
		if _, ok := ParseUnit(suffix); !ok && suffix != "" {
			sp.log.Debug("Unknown length unit, using px", zap.Stringer("property", prop), zap.String("value", raw))
		}
	}
	return v
}
