/*
Package decode turns capture-pipeline log files into typed frame sequences.

Every decoder is line oriented and never fails on malformed content: each line
is parsed on its own, a line that does not fit its target shape is counted in
Result.Skipped (with the first few reasons kept in Result.Faults), and decoding
continues. Only I/O errors from the underlying reader are returned.

FILE FORMATS:

	.bja            12 comma-separated floats (joint angles, no timestamp)
	.btr            x,y,z;x,y,z;...(33 triples)/timestamp
	_body.btr2d     x,y;x,y;...;x,y/timestamp   (33 pairs, zero padded)
	_leftHand.btr2d and _rightHand.btr2d
	                same shape with 21 pairs
	.bap            30 comma-separated angles then a float timestamp
	.bmr            b0,b1,...,b57-timestamp    (58 byte values)

The 3D decoder is strict: the coordinate block must yield exactly 33 valid
triples or the line is dropped. The 2D decoders are lenient about structure:
a pair without exactly two fields, or a trailing segment without a single '/',
is replaced by a zero vector and the landmark list is zero padded to the
expected count. A non-numeric coordinate still drops the whole line.

BALANCE MAT BLOCK:

The first 56 of the 58 bytes are 28 little-endian uint16 sensor slots; the
last two bytes are padding. Slots are wired to anatomical positions through a
fixed table (see leftSlots/rightSlots); slots 0 and 1 are not connected.
*/
package decode
