// Package labelio reads and writes the plain-text label files the
// metastates command works on.
//
// A label file holds whitespace-separated integers, one sample each, in
// time order; newlines carry no meaning.  Files on disk are conventionally
// 1-based, so Load is called with shift -1 and Save with shift +1 to map
// them to and from the 0-based symbols used by the models.
//
// WriteSegments renders encoded intervals as a tab-separated table with a
// header row: start, stop, label, samples, ms.
package labelio
