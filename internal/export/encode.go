package export

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
)

// xmlUnsafe escapes the noncharacters U+FFFE and U+FFFF, which are legal
// in a JSON string but not in XML text, where the encoder would replace
// them with U+FFFD.
var xmlUnsafe = strings.NewReplacer("\ufffe", `\ufffe`, "\uffff", `\uffff`)

// RootElement is the name of the XML root element.
const RootElement = "process_data"

// processData is the XML envelope. Text holds JSON-encoded content.
type processData struct {
	XMLName xml.Name `xml:"process_data"`
	Text    string   `xml:",chardata"`
}

// Encode serializes content in the given format.
func Encode(content string, format Format) ([]byte, error) {
	switch format {
	case FormatPlain:
		return encodePlain(content)
	case FormatXML:
		return encodeXML(content)
	default:
		return nil, fmt.Errorf("encoding content: %w: %s", ErrUnknownFormat, format)
	}
}

// encodePlain returns content as a JSON string literal.
// HTML characters are left unescaped so markup stays readable.
func encodePlain(content string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(content); err != nil {
		return nil, fmt.Errorf("encoding JSON string: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// encodeXML returns an indented XML document wrapping the JSON string form
// of content.
func encodeXML(content string) ([]byte, error) {
	text, err := encodePlain(content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(processData{Text: xmlUnsafe.Replace(string(text))}); err != nil {
		return nil, fmt.Errorf("encoding XML document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding XML document: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
