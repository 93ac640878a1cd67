// Package destbuffer implements DestinationBuffer, the fixed-capacity
// batching buffer that converts many small cross-locale inclusion writes
// into a few bulk transfers.
//
// A Buffer holds up to Capacity() triples (srcID, destID, kind); kind says
// which of the local NodeData arrays (vertex-keyed or edge-keyed) srcID
// indexes into, and destID is the neighbor descriptor to append there.
// Append reserves a slot via fetch-add on an atomic counter, writes the
// triple, then bumps a second "filled" atomic; Drain is only ever called
// on the locale that owns the buffer, and walks every slot (including
// unclaimed "holes", left as Kind == None) appending into the local
// NodeData.
package destbuffer
