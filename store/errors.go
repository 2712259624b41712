package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound             = errors.New("store: article not found")
	ErrDuplicateIdentifier  = errors.New("store: duplicate article identifier")
	ErrFrontMatterInvalid   = errors.New("store: front matter is invalid")
	ErrIdentifierRequired   = errors.New("store: article identifier is required")
	ErrPublishDateRequired  = errors.New("store: publish date is required")
	ErrTitleRequired        = errors.New("store: title is required")
	ErrIdentifierCharacters = errors.New("store: identifier contains invalid characters")
)

// NotFoundError reports a lookup miss for a specific identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	id := strings.TrimSpace(e.ID)
	if id != "" {
		return fmt.Sprintf("%s: id=%s", ErrNotFound.Error(), id)
	}
	return ErrNotFound.Error()
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ParseError reports a document that failed to load. The document is excluded
// from the store entirely; there is no partial inclusion.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ErrFrontMatterInvalid.Error()
	}
	path := strings.TrimSpace(e.Path)
	switch {
	case path != "" && e.Err != nil:
		return fmt.Sprintf("store: parse %s: %v", path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("store: parse: %v", e.Err)
	case path != "":
		return fmt.Sprintf("%s: path=%s", ErrFrontMatterInvalid.Error(), path)
	default:
		return ErrFrontMatterInvalid.Error()
	}
}

func (e *ParseError) Unwrap() error {
	if e == nil || e.Err == nil {
		return ErrFrontMatterInvalid
	}
	return e.Err
}

// DuplicateIdentifierError captures a unique-identifier violation between two
// source documents at load time.
type DuplicateIdentifierError struct {
	ID           string
	Path         string
	ExistingPath string
}

func (e *DuplicateIdentifierError) Error() string {
	if e == nil {
		return ErrDuplicateIdentifier.Error()
	}
	id := strings.TrimSpace(e.ID)
	if id == "" {
		return ErrDuplicateIdentifier.Error()
	}
	if e.Path != "" && e.ExistingPath != "" {
		return fmt.Sprintf("%s: id=%s (%s and %s)", ErrDuplicateIdentifier.Error(), id, e.ExistingPath, e.Path)
	}
	return fmt.Sprintf("%s: id=%s", ErrDuplicateIdentifier.Error(), id)
}

func (e *DuplicateIdentifierError) Unwrap() error {
	return ErrDuplicateIdentifier
}
