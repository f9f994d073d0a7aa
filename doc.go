// Package rxline implements an embeddable, Emacs-style interactive line
// editor: UTF-8 aware buffer editing, syntax-highlight and hint hooks, tab
// completion with common-prefix expansion and paginated listing, a
// kill-ring, and incremental history search.
//
// The package implements the editing loop and its rendering pipeline only.
// Terminal mode switching, byte-level I/O, ANSI/Win32 cursor emission and
// window-resize delivery are supplied by a Terminal implementation (see
// package rxline/term for a concrete POSIX backend); history persistence is
// supplied by a History implementation.
package rxline
