package gstdec

import (
	"strings"

	"github.com/tinyzimmer/go-gst/gst"
)

// ErrCategory classifies a pipeline error by the decode stage that
// produced it. GStreamer reports everything through one bus message;
// the category makes "file is missing" distinguishable from "file is
// not an image" without parsing GLib error domains.
type ErrCategory int

const (
	ErrCategoryUnknown ErrCategory = iota
	ErrCategoryFile
	ErrCategoryContainer
	ErrCategoryDecoder
)

func (c ErrCategory) String() string {
	switch c {
	case ErrCategoryFile:
		return "file"
	case ErrCategoryContainer:
		return "container"
	case ErrCategoryDecoder:
		return "decoder"
	default:
		return "unknown"
	}
}

// Keyword lists checked in order. File problems mask container
// problems, container problems mask decoder problems: the earliest
// failing stage is the one worth reporting.
var (
	fileKeywords = []string{
		"no such file",
		"not found",
		"could not open",
		"permission denied",
		"resource",
	}
	containerKeywords = []string{
		"could not determine type",
		"typefind",
		"demux",
		"invalid atom",
		"corrupt",
	}
	decoderKeywords = []string{
		"missing plugin",
		"no suitable plugins",
		"decode",
		"codec",
	}
)

// ClassifyDecodeError maps a bus error to the decode stage it came
// from.
func ClassifyDecodeError(gerr *gst.GError) ErrCategory {
	if gerr == nil {
		return ErrCategoryUnknown
	}
	return classifyDecodeText(gerr.Error(), gerr.DebugString())
}

func classifyDecodeText(message, debug string) ErrCategory {
	text := strings.ToLower(message + " " + debug)
	switch {
	case containsAny(text, fileKeywords):
		return ErrCategoryFile
	case containsAny(text, containerKeywords):
		return ErrCategoryContainer
	case containsAny(text, decoderKeywords):
		return ErrCategoryDecoder
	default:
		return ErrCategoryUnknown
	}
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
