// Package gostreams provides lazy, stateful operations on streams of elements.
// Streams are Go iterators (iter.Seq and iter.Seq2) that are pulled one element at a time,
// and every operation in this package returns another lazy stream rather than materializing its input.
//
// Streams are constructed from slices, channels, or any arbitrary iter.Seq.
//
// Elements may then be operated upon using mapping, filtering, compacting, or partial sorting
// (ISort), or be grouped into runs of equal leading keys (Grouper).
//
// Some operations hand out streams that share state with the operation that produced them.
// A Scanner's ScanWhile and ScanUntil streams read from the Scanner's Cursor, and the Items
// of a Section read from the SectionSplitter that produced it. Only one such stream may be
// consumed at a time. A SectionSplitter refuses to advance to the next Section while the
// current one still has unread elements, returning an error that wraps ErrState.
//
// Finally, the elements are consumed by terminal operations, such as collecting them into slices or maps,
// counting their frequencies, checking for matching elements, or simply iterating over them.
// Terminal operations receive a context.CancelCauseFunc. Calling the cancel function will
// short-circuit the stream, and the cause of the cancelation is returned to the caller.
//
// Streams are always lazy and single-threaded: no operation in this package starts a goroutine,
// and an upstream element is only pulled once a downstream operation or consumer asks for it.
// Abandoning a stream early is always allowed.
package gostreams
