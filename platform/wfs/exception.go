package wfs

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// MapServer and GeoServer both answer bad queries with HTTP 200 and an XML
// exception document, so JSON decoding alone cannot be trusted.

// isXML reports whether the body looks like an XML document instead of JSON.
func isXML(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n\xef\xbb\xbf")
	return len(trimmed) > 0 && trimmed[0] == '<'
}

// exceptionMessage extracts the human readable text of a WFS exception
// document, tolerating both the OWS ExceptionReport and the legacy
// ServiceExceptionReport vocabularies in any namespace.
func exceptionMessage(body []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(body))

	var texts []string
	var element string
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			element = t.Name.Local
		case xml.CharData:
			if element == "ExceptionText" || element == "ServiceException" {
				if msg := strings.TrimSpace(string(t)); msg != "" {
					texts = append(texts, msg)
				}
			}
		case xml.EndElement:
			element = ""
		}
	}

	return strings.Join(texts, "; ")
}
