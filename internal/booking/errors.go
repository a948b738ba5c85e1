package booking

import "errors"

// ErrUnknownField is returned when an edit names a field the form does not have.
var ErrUnknownField = errors.New("unknown form field")

// ErrUnknownPackage is returned when a package selection does not match the catalog.
var ErrUnknownPackage = errors.New("unknown package")

// ErrUnknownAddon is returned when an add-on selection does not match the catalog.
var ErrUnknownAddon = errors.New("unknown add-on")
