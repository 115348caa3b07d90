package panos

import (
	"fmt"
	"strings"
)

// errorCodes maps PAN-OS API status codes to their documented meaning.
var errorCodes = map[string]string{
	"400": "Bad request - A required parameter is missing or an illegal parameter value is used",
	"403": "Forbidden - Authentication or authorization error, including invalid key or insufficient admin rights",
	"1":   "Unknown command - The specific config or operational command is not recognized",
	"2":   "Internal error - Check with technical support when seeing these errors",
	"3":   "Internal error - Check with technical support when seeing these errors",
	"4":   "Internal error - Check with technical support when seeing these errors",
	"5":   "Internal error - Check with technical support when seeing these errors",
	"6":   "Bad Xpath - The xpath specified in one or more attributes of the command is invalid",
	"7":   "Object not present - Object specified by the xpath is not present",
	"8":   "Object not unique - For commands that operate on a single object, the specified object is not unique",
	"9":   "Internal error - Check with technical support when seeing these errors",
	"10":  "Reference count not zero - Object cannot be deleted as there are other objects that refer to it",
	"11":  "Internal error - Check with technical support when seeing these errors",
	"12":  "Invalid object - Xpath or element values provided are not complete",
	"13":  "Operation failed - A descriptive error message is returned in the response",
	"14":  "Operation not possible - Operation is not possible",
	"15":  "Operation denied - The operation is not allowed for this admin or on this device",
	"16":  "Unauthorized - The API role does not have access rights to run this query",
	"17":  "Invalid command - Invalid command or parameters",
	"18":  "Malformed command - The XML is malformed",
	"19":  "Success - Command completed successfully",
	"20":  "Success - Command completed successfully",
	"21":  "Internal error - Check with technical support when seeing these errors",
	"22":  "Session timed out - The session for this query timed out",
}

// CodeDescription returns the documented meaning of an API status code, or
// an empty string for unknown codes.
func CodeDescription(code string) string {
	return errorCodes[code]
}

// APIError is returned when the device answers with status="error".
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	desc := CodeDescription(e.Code)
	switch {
	case e.Code == "" && e.Message == "":
		return "request failed"
	case e.Code == "":
		return e.Message
	case desc == "" && e.Message == "":
		return fmt.Sprintf("error code %s", e.Code)
	case desc == "":
		return fmt.Sprintf("error code %s: %s", e.Code, e.Message)
	case e.Message == "":
		return fmt.Sprintf("error code %s: %s", e.Code, desc)
	}
	return fmt.Sprintf("error code %s: %s (%s)", e.Code, desc, e.Message)
}

// apiMsg covers both <msg>text</msg> and <msg><line>..</line></msg>.
type apiMsg struct {
	Text  string   `xml:",chardata"`
	Lines []string `xml:"line"`
}

func (m apiMsg) String() string {
	parts := make([]string, 0, len(m.Lines)+1)
	if text := strings.TrimSpace(m.Text); text != "" {
		parts = append(parts, text)
	}
	for _, line := range m.Lines {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, "; ")
}
