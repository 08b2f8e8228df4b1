package view

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownStyle = errors.New("unknown pagination style")

type Style string

const (
	StyleBootstrap Style = "bootstrap"
	StyleTailwind  Style = "tailwind"
)

func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleBootstrap, "":
		return StyleBootstrap, nil
	case StyleTailwind:
		return StyleTailwind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// theme is the class set of one markup variant. Empty classes are omitted.
type theme struct {
	nav          string
	list         string
	item         string
	itemActive   string
	itemDisabled string
	link         string
	current      string
	ellipsis     string
	summary      string
}

var themes = map[Style]theme{
	StyleBootstrap: {
		list:         "pagination",
		item:         "page-item",
		itemActive:   "page-item active",
		itemDisabled: "page-item disabled",
		link:         "page-link",
		current:      "page-link",
		ellipsis:     "page-link",
		summary:      "text-muted small",
	},
	StyleTailwind: {
		nav:      "flex items-center justify-between",
		list:     "inline-flex -space-x-px text-sm",
		link:     "px-3 py-2 leading-tight text-gray-500 bg-white border border-gray-300 hover:bg-gray-100 hover:text-gray-700",
		current:  "px-3 py-2 leading-tight text-white bg-blue-600 border border-blue-600",
		ellipsis: "px-3 py-2 leading-tight text-gray-400 bg-white border border-gray-300 cursor-default",
		summary:  "text-sm text-gray-700",
	},
}
