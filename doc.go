// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsonval implements a scanner and parser for a relaxed dialect of
// JSON text. The value model built on top of it lives in the value package.
//
// # Dialect
//
// The accepted language is a superset of JSON:
//
//   - Strings may be enclosed in either double (") or single (') quotation
//     marks. Both forms accept the same escapes, including \' and \".
//   - Object member names may be written bare, without quotation marks, if
//     they begin with a letter, "_", "$", or a code point above U+0100 and
//     continue with those or digits. Reserved ECMAScript words such as
//     "class" and "true" are not allowed as bare names.
//
// Numbers follow the JSON grammar exactly: no leading "+", no redundant
// leading zeroes, and no trailing letters ("15px" is an error, not a number
// followed by a name). The constants true, false, and null must be spelled
// exactly.
//
// # Scanning
//
// The Scanner type implements a lexical scanner.  Construct a scanner from an
// io.Reader and call its Next method to iterate over the stream. Next advances
// to the next input token and returns nil, or reports an error:
//
//	s := jsonval.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// indicates an I/O or lexical error in the input.
//
//	if s.Err() != io.EOF {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// # Streaming
//
// The Stream type implements an event-driven recursive-descent parser.  The
// parser works by calling methods on a Handler value to report the structure
// of the input. In case of error, parsing is terminated and an error of
// concrete type *jsonval.SyntaxError is returned. There is no recovery: the
// first error ends the parse.
//
// Construct a Stream from an io.Reader, and call its Parse method. Parse
// returns nil if the input was fully processed without error. If a Handler
// method reports an error, parsing stops and that error is returned.
//
//	s := jsonval.NewStream(input)
//	if err := s.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// To parse a single value from the front of the input, call ParseOne. This
// method returns io.EOF if no further values are available. To require that
// the input contain exactly one value, call ParseSingle.
//
// # Handlers
//
// The Handler interface accepts parser events from a Stream. The methods of
// a handler correspond to the syntax of JSON values:
//
//	JSON type  | Methods                   | Description
//	---------- | ------------------------- | ---------------------------------
//	object     | BeginObject, EndObject    | { ... }
//	array      | BeginArray, EndArray      | [ ... ]
//	member     | BeginMember, EndMember    | key: value
//	value      | Value                     | true, false, null, number, string
//	--         | EndOfInput                | end of input
//
// Each method is passed an Anchor value that can be used to retrieve location
// and type information. The Anchor passed to a handler method is only valid
// for the duration of that method call; the handler must copy any data it
// needs to retain beyond the lifetime of the call.
package jsonval
