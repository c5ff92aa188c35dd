// Package portabletext reads block trees in the Portable Text JSON format
// into [model.BlockTree].
//
// Two entry points cover the two ways content arrives:
//
//   - [Decode] and [DecodeString] parse JSON strictly. Structural problems are
//     reported as *[Error] values carrying a JSON path such as
//     "[3].children[1].marks" and wrapping one of the package sentinels so
//     callers can test them with errors.Is. Input must be a single array.
//   - [Value] converts whatever a CMS client already decoded (strings, maps,
//     slices, raw JSON bytes) without ever failing. Shapes it does not
//     recognize keep only their flattened text.
//
// [Encode] writes a tree back out as JSON.
package portabletext
