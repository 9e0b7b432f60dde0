// Package recordio decodes structured text into query records and encodes
// records back to indented JSON.
//
// Decoding enforces the record shape: the payload must be an array whose
// elements are all objects. Scalars are kept as typed values; nested arrays
// and objects are kept as raw JSON text. Field order follows the source.
package recordio
