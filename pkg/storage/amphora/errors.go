package amphora

import (
	"errors"
)

var (
	// ErrInvalidAlias is returned when an alias is empty or longer
	// than MaxAliasLen bytes.
	ErrInvalidAlias = errors.New("invalid alias length")

	// ErrAliasExists is returned on an attempt to store a file under
	// an already occupied alias.
	ErrAliasExists = errors.New("alias already exists")

	// ErrEmptyContent is returned on an attempt to store a file
	// without content.
	ErrEmptyContent = errors.New("empty content")

	// ErrTableFull is returned when the filenode table has no free
	// slots left.
	ErrTableFull = errors.New("filenode table is full")

	// ErrNoSpace is returned when the container does not have enough
	// free data blocks for the content.
	ErrNoSpace = errors.New("not enough free blocks")

	// ErrFileNotFound is returned when the requested alias is not
	// stored in the container.
	ErrFileNotFound = errors.New("file not found")

	// ErrCorruptChain is returned when a block chain ends or leaves
	// the data region before the whole content is read.
	ErrCorruptChain = errors.New("corrupt block chain")

	// ErrCorruptTable is returned when the stored filenode table
	// cannot be decoded.
	ErrCorruptTable = errors.New("corrupt filenode table")

	// ErrInvalidLayout is returned when the configured geometry
	// leaves no room for data blocks.
	ErrInvalidLayout = errors.New("invalid container layout")
)
