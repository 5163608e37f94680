/*
Package amphora implements a minimal virtual file system laid out inside
a single fixed-size file, the container. Files are stored under string
aliases and occupy chains of fixed-size blocks, so the container never
grows and never fragments the host file system.

The container file consists of four contiguous regions:

	[Header][Filenode Table][Block Bitmap][Data Blocks]

All integers of the format are little-endian.

The header pins the geometry the container was formatted with:

  - 4-byte format version
  - 8-byte total container size
  - 8-byte block size
  - 8-byte filenode table offset
  - 8-byte filenode table capacity
  - 8-byte block bitmap offset
  - 8-byte data region offset
  - 8-byte data block count

The filenode table starts with an 8-byte record count equal to its
capacity, followed by fixed-width records of MaxAliasLen+18 bytes
each: the alias buffer, the alias length byte, the 8-byte content
size, the 8-byte first block index and the usage flag byte.

The bitmap tracks data block usage with one bit per block, LSB-first
within each byte, a set bit meaning the block is used. It is sized for
a first-pass estimate of the block count, so only the first BlockCount
bits are meaningful.

Each data block ends with an 8-byte index of the next block of the
chain; the rest of the block carries content. The last block of a
chain stores NoBlock in place of the index. Content shorter than the
usable block size leaves the tail of the block zeroed.

On Init, a container whose header does not match the configured
geometry is formatted from scratch: the previous contents, whatever
they were, are discarded. For correct operation, Open and Init must be
called before any other method.
*/
package amphora
