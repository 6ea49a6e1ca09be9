package css

// Property identifies the properties the translator knows how to type.
type Property int

const (
	PropertyUnknown Property = iota
	PropertyBackgroundColor
	PropertyBorderColor
	PropertyColor
	PropertyMarginTop
	PropertyMarginRight
	PropertyMarginBottom
	PropertyMarginLeft
	PropertyPaddingTop
	PropertyPaddingRight
	PropertyPaddingBottom
	PropertyPaddingLeft
	PropertyBorderTopWidth
	PropertyBorderRightWidth
	PropertyBorderBottomWidth
	PropertyBorderLeftWidth
	PropertyHeight
	PropertyWidth
)

var propertyNames = map[string]Property{
	"background-color":    PropertyBackgroundColor,
	"border-color":        PropertyBorderColor,
	"color":               PropertyColor,
	"margin-top":          PropertyMarginTop,
	"margin-right":        PropertyMarginRight,
	"margin-bottom":       PropertyMarginBottom,
	"margin-left":         PropertyMarginLeft,
	"padding-top":         PropertyPaddingTop,
	"padding-right":       PropertyPaddingRight,
	"padding-bottom":      PropertyPaddingBottom,
	"padding-left":        PropertyPaddingLeft,
	"border-top-width":    PropertyBorderTopWidth,
	"border-right-width":  PropertyBorderRightWidth,
	"border-bottom-width": PropertyBorderBottomWidth,
	"border-left-width":   PropertyBorderLeftWidth,
	"height":              PropertyHeight,
	"width":               PropertyWidth,
}

// LookupProperty maps an already lower-cased property name. Names are matched
// exactly, anything unknown yields PropertyUnknown.
func LookupProperty(name string) Property {
	return propertyNames[name]
}

// String returns the CSS property name, empty for PropertyUnknown.
func (p Property) String() string {
	for name, prop := range propertyNames {
		if prop == p {
			return name
		}
	}
	return ""
}

// Kind tells which Value kind the property translates into.
func (p Property) Kind() ValueKind {
	switch p {
	case PropertyBackgroundColor, PropertyBorderColor, PropertyColor:
		return KindColor
	case PropertyMarginTop, PropertyMarginRight, PropertyMarginBottom, PropertyMarginLeft,
		PropertyPaddingTop, PropertyPaddingRight, PropertyPaddingBottom, PropertyPaddingLeft,
		PropertyBorderTopWidth, PropertyBorderRightWidth, PropertyBorderBottomWidth, PropertyBorderLeftWidth,
		PropertyHeight, PropertyWidth:
		return KindLength
	case PropertyUnknown:
		return KindOther
	default:
		return KindOther
	}
}
