// Package fields derives the question list of a hosted form from its URL.
//
// Each query parameter whose key carries the identifying prefix ("entry." by
// default) becomes one Field labelled "Question N" with a text input. Caller
// overrides are merged onto extracted fields afterwards; overrides for keys
// the URL does not expose are ignored. Extraction is pure: the same URL and
// overrides always produce the same FieldSet.
package fields
