package upload

import (
	"errors"
	"mime"
	"strings"
)

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrInvalidFileType = errors.New("file type is not allowed")
	ErrFileTooLarge    = errors.New("file exceeds the size limit")
)

// Kind tells the media store how to treat an object.
type Kind string

const (
	KindImage Kind = "image"
	KindRaw   Kind = "raw"
)

const (
	TypeJPEG = "image/jpeg"
	TypePNG  = "image/png"
	TypeGIF  = "image/gif"
	TypeWebP = "image/webp"
	TypePDF  = "application/pdf"
	TypeDOC  = "application/msword"
	TypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Policy is one upload contract: an allow-list of content types and a byte cap.
type Policy struct {
	name     string
	maxBytes int64
	allowed  map[string]Kind
}

func NewPolicy(name string, maxBytes int64, allowed ...string) Policy {
	m := make(map[string]Kind, len(allowed))
	for _, ct := range allowed {
		m[ct] = kindOf(ct)
	}
	return Policy{name: name, maxBytes: maxBytes, allowed: m}
}

// CheckoutSlipPolicy covers the slip form on the checkout page.
func CheckoutSlipPolicy(maxBytes int64) Policy {
	return NewPolicy("checkout-slip", maxBytes, TypeJPEG, TypePNG)
}

// OrderSlipPolicy covers slip uploads from the order list.
func OrderSlipPolicy(maxBytes int64) Policy {
	return NewPolicy("order-slip", maxBytes, TypeJPEG, TypePNG, TypeWebP)
}

func ExamFilePolicy(maxBytes int64) Policy {
	return NewPolicy("exam-file", maxBytes, TypePDF, TypeDOC, TypeDOCX, TypeJPEG, TypePNG, TypeGIF)
}

func (p Policy) Name() string    { return p.name }
func (p Policy) MaxBytes() int64 { return p.maxBytes }

// Check validates a file against the policy and classifies it.
func (p Policy) Check(contentType string, size int64) (Kind, error) {
	if size <= 0 {
		return "", ErrEmptyFile
	}
	kind, ok := p.allowed[NormalizeContentType(contentType)]
	if !ok {
		return "", ErrInvalidFileType
	}
	if size > p.maxBytes {
		return "", ErrFileTooLarge
	}
	return kind, nil
}

// NormalizeContentType strips parameters and folds the non-standard image/jpg.
func NormalizeContentType(ct string) string {
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(ct))
	}
	if mediaType == "image/jpg" || mediaType == "image/pjpeg" {
		return TypeJPEG
	}
	return mediaType
}

func kindOf(contentType string) Kind {
	if strings.HasPrefix(contentType, "image/") {
		return KindImage
	}
	return KindRaw
}
