package config

// Specification of requested output type.
// ENUM(text, yaml, xml, ion, css)
type OutputFmt int

// Ext returns file name extension for the output format.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtText:
		return ".txt"
	case OutputFmtYaml:
		return ".yaml"
	case OutputFmtXml:
		return ".xml"
	case OutputFmtIon:
		return ".ion"
	case OutputFmtCss:
		return ".css"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
