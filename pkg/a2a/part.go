package a2a

import (
	"encoding/base64"
	"fmt"
)

/*
Part is a discriminated union over text, data and file parts. We keep it
simple by embedding all optional fields in a single struct rather than
writing custom JSON marshalling logic.

Exactly ONE of Text, Data or File should be populated according to the Kind
field. This is not enforced at the struct level; use Validate when the
constraint matters.
*/
type Part struct {
	Kind PartKind `json:"kind"`

	// Exactly one of the following should be populated depending on Kind.
	Text string         `json:"text,omitempty"`
	Data map[string]any `json:"data,omitempty"`
	File *FilePart      `json:"file,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`
}

// PartKind is the discriminator for a Part union.
type PartKind string

const (
	PartKindText PartKind = "text"
	PartKindData PartKind = "data"
	PartKindFile PartKind = "file"
)

type FilePart struct {
	Name     *string `json:"name,omitempty"`
	MimeType *string `json:"mime_type,omitempty"`
	Bytes    string  `json:"bytes,omitempty"` // base-64 encoded
	URI      string  `json:"uri,omitempty"`
}

func NewTextPart(text string) Part {
	return Part{
		Kind: PartKindText,
		Text: text,
	}
}

func NewDataPart(data map[string]any) Part {
	return Part{
		Kind: PartKindData,
		Data: data,
	}
}

func NewFilePart(name string, mimeType string, data []byte) Part {
	return Part{
		Kind: PartKindFile,
		File: &FilePart{
			Name:     &name,
			MimeType: &mimeType,
			Bytes:    base64.StdEncoding.EncodeToString(data),
		},
	}
}

// Validate checks that the part follows the discriminated union pattern.
func (part *Part) Validate() error {
	switch part.Kind {
	case PartKindText:
		if part.Text == "" {
			return fmt.Errorf("text part has empty text field")
		}
	case PartKindData:
		if len(part.Data) == 0 {
			return fmt.Errorf("data part has empty data field")
		}
	case PartKindFile:
		if part.File == nil {
			return fmt.Errorf("file part has nil file field")
		}
		if part.File.Bytes != "" && part.File.URI != "" {
			return fmt.Errorf("file part cannot have both bytes and uri set")
		}
		if part.File.Bytes == "" && part.File.URI == "" {
			return fmt.Errorf("file part must have either bytes or uri set")
		}
	default:
		return fmt.Errorf("unknown part kind: %s", part.Kind)
	}

	return nil
}
